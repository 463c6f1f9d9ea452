package tally

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/okian/podium/internal/domain/classify"
	"github.com/okian/podium/internal/domain/dedupe"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

// Source yields raw rows until io.EOF.
type Source interface {
	Next(ctx context.Context) (model.RawRecord, error)
}

// Recorder receives per-row pipeline counters. *metrics.Manager satisfies it.
type Recorder interface {
	RecordRead()
	RecordSkipped(reason string)
	RecordDuplicate()
	RecordMedal(season, tier string)
}

// Stats summarizes one aggregation pass.
type Stats struct {
	Read       int
	NoMedal    int
	Unknown    int // present but unrecognized medal values
	OffSeason  int // youth, intercalated and other special Games
	Duplicates int
	Credited   int
}

// Aggregator turns a row stream into a Tally.
type Aggregator struct {
	logger   logger.Logger
	recorder Recorder
	dedupe   []dedupe.Option
}

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(a *Aggregator) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(a *Aggregator) {
		if r != nil {
			a.recorder = r
		}
	}
}

// WithDedupeOptions passes options to the per-run deduper.
func WithDedupeOptions(opts ...dedupe.Option) Option {
	return func(a *Aggregator) {
		a.dedupe = append(a.dedupe, opts...)
	}
}

// NewAggregator creates an aggregator. Without options it logs through the
// global logger and records on the global metrics manager.
func NewAggregator(opts ...Option) *Aggregator {
	a := &Aggregator{}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = logger.Named("tally")
	}
	if a.recorder == nil {
		a.recorder = metrics.Default()
	}
	return a
}

// Aggregate consumes src until io.EOF. Each row is applied at most once and
// each team medal is credited once, however many athlete rows carry it.
// Any source error or malformed medal row aborts the pass; no tally is
// returned in that case.
func (a *Aggregator) Aggregate(ctx context.Context, src Source) (*Tally, Stats, error) {
	var stats Stats
	t := New()
	seen := dedupe.NewInMemoryDeduper(a.dedupe...)

	for {
		if err := ctx.Err(); err != nil {
			return nil, stats, fmt.Errorf("aggregate: %w", err)
		}
		rec, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("aggregate: read row %d: %w", stats.Read+1, err)
		}
		stats.Read++
		a.recorder.RecordRead()

		if err := a.apply(ctx, t, seen, rec, &stats); err != nil {
			return nil, stats, fmt.Errorf("aggregate: row %d: %w", stats.Read, err)
		}
	}

	a.logger.Info(ctx, "tally built",
		logger.Int("rows", stats.Read),
		logger.Int("credited", stats.Credited),
		logger.Int("duplicates", stats.Duplicates),
		logger.Int("no_medal", stats.NoMedal),
		logger.Int("unknown_tier", stats.Unknown),
		logger.Int("off_season", stats.OffSeason),
		logger.Int("countries", t.Len()),
	)
	return t, stats, nil
}

func (a *Aggregator) apply(ctx context.Context, t *Tally, seen dedupe.Deduper, rec model.RawRecord, stats *Stats) error {
	tier := model.ParseTier(rec.Medal)
	switch {
	case tier == model.TierNone:
		stats.NoMedal++
		a.recorder.RecordSkipped(metrics.SkipNoMedal)
		return nil
	case !tier.Valid():
		stats.Unknown++
		a.recorder.RecordSkipped(metrics.SkipUnknownTier)
		a.logger.Debug(ctx, "skipping unrecognized medal value", logger.String("medal", rec.Medal))
		return nil
	}

	if err := rec.Validate(); err != nil {
		return err
	}

	season := classify.DetectSeason(rec.Games)
	if season == model.SeasonNone {
		stats.OffSeason++
		a.recorder.RecordSkipped(metrics.SkipUnsupportedSeason)
		return nil
	}

	key := rec.Key(tier)
	if seen.SeenAndRecord(ctx, key) {
		stats.Duplicates++
		a.recorder.RecordDuplicate()
		a.logger.Debug(ctx, "team medal already credited", logger.String("key", key.String()))
		return nil
	}

	t.Add(rec.NOC, season, classify.NormalizeSport(rec.Discipline), tier)
	stats.Credited++
	a.recorder.RecordMedal(season.String(), tier.String())
	return nil
}
