package report_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/okian/podium/internal/domain/classify"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/report"
	"github.com/okian/podium/internal/domain/tally"
	. "github.com/smartystreets/goconvey/convey"
)

func add(t *tally.Tally, noc string, season model.Season, sport string, tier model.Tier, n int) {
	for range n {
		t.Add(noc, season, sport, tier)
	}
}

func TestBuild(t *testing.T) {
	Convey("Given a tally with more sports than are reported", t, func() {
		tl := tally.New()
		add(tl, "USA", model.SeasonSummer, "Swimming", model.TierGold, 10)
		add(tl, "USA", model.SeasonSummer, "Athletics", model.TierSilver, 8)
		add(tl, "USA", model.SeasonSummer, "Rowing", model.TierBronze, 2)
		add(tl, "USA", model.SeasonSummer, "Boxing", model.TierGold, 2)
		add(tl, "USA", model.SeasonSummer, "Diving", model.TierGold, 3)
		add(tl, "USA", model.SeasonSummer, "Archery", model.TierBronze, 1)
		add(tl, "USA", model.SeasonSummer, "Fencing", model.TierSilver, 1)
		add(tl, "USA", model.SeasonWinter, "Curling", model.TierGold, 1)

		doc := report.Build(tl)

		Convey("Then each season keeps its five best sports", func() {
			usa, ok := doc.Get("USA")
			So(ok, ShouldBeTrue)
			So(usa.Summer, ShouldHaveLength, report.TopSports)
			var names []string
			for _, s := range usa.Summer {
				names = append(names, s.Sport)
			}
			So(names, ShouldResemble, []string{"Swimming", "Athletics", "Diving", "Rowing", "Boxing"})
		})

		Convey("Then the total counts every sport, not only the reported ones", func() {
			usa, _ := doc.Get("USA")
			So(usa.TotalMedals, ShouldEqual, 28)
			reported := 0
			for _, s := range append(usa.Summer, usa.Winter...) {
				reported += s.Total()
			}
			So(usa.TotalMedals, ShouldBeGreaterThan, reported)
		})

		Convey("Then display metadata is attached", func() {
			usa, _ := doc.Get("USA")
			So(usa.Name, ShouldEqual, "United States")
			So(usa.Code, ShouldEqual, "USA")
			So(usa.Flag, ShouldEqual, "\U0001F1FA\U0001F1F8")
			So(usa.Summer[0].Emoji, ShouldEqual, classify.SportEmoji("Swimming"))
		})
	})

	Convey("Given sports tied on total", t, func() {
		tl := tally.New()
		add(tl, "NOR", model.SeasonWinter, "Biathlon", model.TierBronze, 2)
		add(tl, "NOR", model.SeasonWinter, "Curling", model.TierGold, 2)
		add(tl, "NOR", model.SeasonWinter, "Alpine Skiing", model.TierSilver, 3)
		add(tl, "NOR", model.SeasonWinter, "Bobsleigh", model.TierGold, 2)

		doc := report.Build(tl)

		Convey("Then ties keep first-contribution order", func() {
			nor, _ := doc.Get("NOR")
			So(nor.Winter[0].Sport, ShouldEqual, "Alpine Skiing")
			So(nor.Winter[1].Sport, ShouldEqual, "Biathlon")
			So(nor.Winter[2].Sport, ShouldEqual, "Curling")
			So(nor.Winter[3].Sport, ShouldEqual, "Bobsleigh")
		})

		Convey("Then the empty season is an empty list", func() {
			nor, _ := doc.Get("NOR")
			So(nor.Summer, ShouldNotBeNil)
			So(nor.Summer, ShouldBeEmpty)
		})
	})

	Convey("Given an unknown country and sport", t, func() {
		tl := tally.New()
		tl.Add("XYZ", model.SeasonSummer, "Underwater Chess", model.TierGold)

		doc := report.Build(tl)
		xyz, ok := doc.Get("XYZ")

		Convey("Then fallbacks are used", func() {
			So(ok, ShouldBeTrue)
			So(xyz.Name, ShouldEqual, "XYZ")
			So(xyz.Flag, ShouldEqual, classify.NeutralFlag())
			So(xyz.Summer[0].Emoji, ShouldEqual, classify.FallbackEmoji())
			So(xyz.TotalMedals, ShouldEqual, 1)
		})
	})

	Convey("Given an empty tally", t, func() {
		doc := report.Build(tally.New())

		So(doc.Len(), ShouldEqual, 0)
		b, err := json.Marshal(doc)
		So(err, ShouldBeNil)
		So(string(b), ShouldEqual, "{}")
	})
}

func TestDocumentJSON(t *testing.T) {
	Convey("Given a document with several countries", t, func() {
		tl := tally.New()
		tl.Add("USA", model.SeasonSummer, "Swimming", model.TierGold)
		tl.Add("CAN", model.SeasonWinter, "Curling", model.TierSilver)
		tl.Add("AUS", model.SeasonSummer, "Rowing", model.TierBronze)
		doc := report.Build(tl)

		b, err := json.Marshal(doc)
		So(err, ShouldBeNil)
		out := string(b)

		Convey("Then keys appear in ascending NOC order", func() {
			aus := strings.Index(out, `"AUS":`)
			can := strings.Index(out, `"CAN":`)
			usa := strings.Index(out, `"USA":`)
			So(aus, ShouldBeGreaterThan, 0)
			So(can, ShouldBeGreaterThan, aus)
			So(usa, ShouldBeGreaterThan, can)
		})

		Convey("Then field names and empty lists match the wire format", func() {
			var decoded map[string]map[string]any
			So(json.Unmarshal(b, &decoded), ShouldBeNil)
			can := decoded["CAN"]
			So(can["code"], ShouldEqual, "CAN")
			So(can["totalMedals"], ShouldEqual, float64(1))
			So(can["summer"], ShouldResemble, []any{})
			winter := can["winter"].([]any)
			So(winter[0].(map[string]any)["silver"], ShouldEqual, float64(1))
			So(winter[0].(map[string]any)["sport"], ShouldEqual, "Curling")
		})
	})
}
