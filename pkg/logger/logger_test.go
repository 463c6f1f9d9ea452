package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	Convey("Given an initialized logger", t, func() {
		var buf bytes.Buffer
		So(Init(WithWriter(&buf)), ShouldBeNil)
		defer func() { _ = Sync() }()

		l := Get()
		So(l, ShouldNotBeNil)

		Convey("When logging at info", func() {
			l.Info(context.Background(), "rows read", Int("rows", 3), String("path", "in.csv"))

			Convey("Then the record carries fields and caller", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "rows read")
				So(out, ShouldContainSubstring, "rows=3")
				So(out, ShouldContainSubstring, "path=in.csv")
				So(out, ShouldContainSubstring, "logger_test.go")
			})
		})

		Convey("When logging at debug with the default level", func() {
			l.Debug(context.Background(), "hidden")

			Convey("Then nothing is written", func() {
				So(buf.String(), ShouldBeEmpty)
			})
		})

		Convey("When the level is lowered to debug", func() {
			So(SetLevelString("DEBUG"), ShouldBeNil)
			defer func() { _ = SetLevelString("info") }()
			l.Debug(context.Background(), "visible")

			Convey("Then debug records are written", func() {
				So(buf.String(), ShouldContainSubstring, "visible")
			})
		})

		Convey("When using With and Named", func() {
			l.Named("ingest").With(String("run_id", "r-1")).Warn(nil, "skipped", Error(errors.New("boom")))

			Convey("Then the attached fields appear", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "run_id=r-1")
				So(out, ShouldContainSubstring, "ingest.error=boom")
			})
		})
	})
}

func TestLoggerJSON(t *testing.T) {
	Convey("Given a JSON logger", t, func() {
		var buf bytes.Buffer
		So(Init(WithWriter(&buf), WithJSON(true)), ShouldBeNil)

		Get().Error(context.Background(), "write failed", Bool("partial", false))

		Convey("Then output is a JSON line", func() {
			So(buf.String(), ShouldStartWith, "{")
			So(buf.String(), ShouldContainSubstring, `"partial":false`)
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level strings", t, func() {
		So(Init(WithWriter(&bytes.Buffer{})), ShouldBeNil)

		So(SetLevelString("warning"), ShouldBeNil)
		So(SetLevelString(""), ShouldBeNil)
		So(SetLevelString("loud"), ShouldNotBeNil)
	})
}
