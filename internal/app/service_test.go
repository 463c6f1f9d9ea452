package service_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/okian/podium/internal/adapters/source"
	service "github.com/okian/podium/internal/app"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/report"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init(logger.WithWriter(io.Discard))
	if err != nil {
		panic(err)
	}
}

// memorySink keeps the last document it was handed.
type memorySink struct {
	doc   *report.Document
	calls int
	err   error
}

func (m *memorySink) Write(_ context.Context, doc *report.Document) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	m.doc = doc
	return nil
}

func row(medal, noc, games, event, discipline string) model.RawRecord {
	return model.RawRecord{Medal: medal, NOC: noc, Games: games, Event: event, Discipline: discipline}
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should get a generated run id", func() {
			So(svc, ShouldNotBeNil)
			So(svc.RunID(), ShouldHaveLength, 36)
			So(service.New().RunID(), ShouldNotEqual, svc.RunID())
		})
	})

	Convey("Given a new service with a fixed run id", t, func() {
		svc := service.New(service.WithRunID("run-1"))

		So(svc.RunID(), ShouldEqual, "run-1")
	})
}

func TestService_Run(t *testing.T) {
	Convey("Given a service over an in-memory source", t, func() {
		ctx := context.Background()
		reg := prometheus.NewRegistry()
		rec := metrics.NewManager(metrics.WithPrometheusRegistry(reg))
		out := &memorySink{}

		newService := func(rows ...model.RawRecord) *service.Service {
			return service.New(
				service.WithSource(source.NewSlice(rows...)),
				service.WithSink(out),
				service.WithRecorder(rec),
			)
		}

		Convey("When a team medal appears once per athlete", func() {
			svc := newService(
				row("Gold", "XYZ", "2020 Summer Olympics", "Team Event A", "Football (Football)"),
				row("Gold", "XYZ", "2020 Summer Olympics", "Team Event A", "Football (Football)"),
				row("", "XYZ", "2020 Summer Olympics", "100m", "Athletics"),
			)
			res, err := svc.Run(ctx)

			Convey("Then one summary with one gold is written", func() {
				So(err, ShouldBeNil)
				So(res.Records, ShouldEqual, 3)
				So(res.Medals, ShouldEqual, 1)
				So(res.Countries, ShouldEqual, 1)
				So(res.RunID, ShouldEqual, svc.RunID())

				So(out.calls, ShouldEqual, 1)
				xyz, ok := out.doc.Get("XYZ")
				So(ok, ShouldBeTrue)
				So(xyz.TotalMedals, ShouldEqual, 1)
				So(xyz.Summer, ShouldResemble, []report.SportMedals{{Sport: "Football", Emoji: xyz.Summer[0].Emoji, Gold: 1}})
				So(xyz.Winter, ShouldBeEmpty)
			})

			Convey("Then metrics describe the run", func() {
				expected := `
# HELP podium_pipeline_countries_reported Number of countries in the last written summary
# TYPE podium_pipeline_countries_reported gauge
podium_pipeline_countries_reported 1
`
				So(testutil.GatherAndCompare(reg, strings.NewReader(expected), "podium_pipeline_countries_reported"), ShouldBeNil)
				So(testutil.CollectAndCount(reg, "podium_pipeline_stage_duration_milliseconds"), ShouldEqual, 3)
			})
		})

		Convey("When only youth Games rows are present", func() {
			svc := newService(row("Gold", "XYZ", "2018 Youth Olympics", "Team Event A", "Football (Football)"))
			res, err := svc.Run(ctx)

			Convey("Then an empty document is still written", func() {
				So(err, ShouldBeNil)
				So(res.Countries, ShouldEqual, 0)
				So(out.calls, ShouldEqual, 1)
				So(out.doc.Len(), ShouldEqual, 0)
			})
		})

		Convey("When a medal row is malformed", func() {
			svc := newService(
				row("Gold", "USA", "2020 Summer Olympics", "100m", "Athletics"),
				row("Silver", "USA", "", "200m", "Athletics"),
			)
			_, err := svc.Run(ctx)

			Convey("Then the run fails and nothing is written", func() {
				So(errors.Is(err, model.ErrMalformedRecord), ShouldBeTrue)
				So(err.Error(), ShouldStartWith, metrics.StageIngest)
				So(out.calls, ShouldEqual, 0)
			})
		})

		Convey("When the context is cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			svc := newService(row("Gold", "USA", "2020 Summer Olympics", "100m", "Athletics"))
			_, err := svc.Run(cctx)

			Convey("Then the run stops without output", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
				So(out.calls, ShouldEqual, 0)
			})
		})

		Convey("When the sink fails", func() {
			out.err = errors.New("disk full")
			svc := newService(row("Gold", "USA", "2020 Summer Olympics", "100m", "Athletics"))
			_, err := svc.Run(ctx)

			Convey("Then the error is reported from the write stage", func() {
				So(errors.Is(err, out.err), ShouldBeTrue)
				So(err.Error(), ShouldStartWith, metrics.StageWrite)
			})
		})
	})

	Convey("Given a service without collaborators", t, func() {
		ctx := context.Background()

		Convey("When no source is configured", func() {
			_, err := service.New(service.WithSink(&memorySink{})).Run(ctx)
			So(errors.Is(err, service.ErrNoSource), ShouldBeTrue)
		})

		Convey("When no sink is configured", func() {
			_, err := service.New(service.WithSource(source.NewSlice())).Run(ctx)
			So(errors.Is(err, service.ErrNoSink), ShouldBeTrue)
		})
	})
}
