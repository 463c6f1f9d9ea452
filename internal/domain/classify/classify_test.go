package classify_test

import (
	"testing"

	"github.com/okian/podium/internal/domain/classify"
	"github.com/okian/podium/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalizeSport(t *testing.T) {
	Convey("Given discipline labels", t, func() {
		Convey("When the label is compound and kept separate", func() {
			So(classify.NormalizeSport("Swimming (Aquatics)"), ShouldEqual, "Swimming")
			So(classify.NormalizeSport("Beach Volleyball (Volleyball)"), ShouldEqual, "Beach Volleyball")
			So(classify.NormalizeSport("Skeleton (Bobsleigh)"), ShouldEqual, "Skeleton")
		})

		Convey("When sub-disciplines are grouped", func() {
			So(classify.NormalizeSport("Trampolining (Gymnastics)"), ShouldEqual, "Gymnastics")
			So(classify.NormalizeSport("Cycling Track (Cycling)"), ShouldEqual, "Cycling")
			So(classify.NormalizeSport("3x3 Basketball (Basketball)"), ShouldEqual, "Basketball")
			So(classify.NormalizeSport("Football (Football)"), ShouldEqual, "Football")
		})

		Convey("When hockey is renamed", func() {
			So(classify.NormalizeSport("Hockey"), ShouldEqual, "Field Hockey")
			So(classify.NormalizeSport("Hockey 5s"), ShouldEqual, "Field Hockey")
		})

		Convey("When the label is standalone or unknown", func() {
			So(classify.NormalizeSport("Athletics"), ShouldEqual, "Athletics")
			So(classify.NormalizeSport("Underwater Chess (Aquatics)"), ShouldEqual, "Underwater Chess (Aquatics)")
			So(classify.NormalizeSport(""), ShouldEqual, "")
		})
	})
}

func TestDetectSeason(t *testing.T) {
	Convey("Given Games labels", t, func() {
		So(classify.DetectSeason("2020 Summer Olympics"), ShouldEqual, model.SeasonSummer)
		So(classify.DetectSeason("1924 Winter Olympics"), ShouldEqual, model.SeasonWinter)

		Convey("Then non-standard Games are not modeled", func() {
			So(classify.DetectSeason("2020 Youth Olympics"), ShouldEqual, model.SeasonNone)
			So(classify.DetectSeason("2018 Summer Youth Olympics"), ShouldEqual, model.SeasonNone)
			So(classify.DetectSeason("1906 Intercalated Games"), ShouldEqual, model.SeasonNone)
			So(classify.DetectSeason("1956 Equestrian Olympics"), ShouldEqual, model.SeasonNone)
			So(classify.DetectSeason("Summer Olympics"), ShouldEqual, model.SeasonNone)
			So(classify.DetectSeason(""), ShouldEqual, model.SeasonNone)
		})
	})
}

func TestFlag(t *testing.T) {
	Convey("Given NOC codes", t, func() {
		Convey("When the region is known", func() {
			So(classify.Flag("USA"), ShouldEqual, "\U0001F1FA\U0001F1F8")
			So(classify.Flag("GER"), ShouldEqual, "\U0001F1E9\U0001F1EA")
			So(classify.Flag("ROC"), ShouldEqual, classify.Flag("RUS"))
		})

		Convey("When an override exists", func() {
			So(classify.Flag("FRG"), ShouldEqual, "\U0001F1E9\U0001F1EA")
			So(classify.Flag("ANZ"), ShouldEqual, "\U0001F1E6\U0001F1FA")
			So(classify.Flag("URS"), ShouldEqual, classify.NeutralFlag())
		})

		Convey("When the NOC is unknown", func() {
			So(classify.Flag("XYZ"), ShouldEqual, classify.NeutralFlag())
			So(classify.Flag(""), ShouldEqual, classify.NeutralFlag())
		})
	})
}

func TestDisplayMetadata(t *testing.T) {
	Convey("Given display lookups", t, func() {
		So(classify.CountryName("AHO"), ShouldEqual, "Curaçao")
		So(classify.CountryName("XYZ"), ShouldEqual, "XYZ")
		So(classify.SportEmoji("Football"), ShouldEqual, "⚽")
		So(classify.SportEmoji("Quidditch"), ShouldEqual, classify.FallbackEmoji())
		So(classify.FallbackEmoji(), ShouldEqual, "🏅")
		So(classify.NeutralFlag(), ShouldEqual, "🏳️")
	})
}
