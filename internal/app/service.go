// Package service runs the medal summary pipeline: ingest rows into a
// tally, build the report and hand it to the sink.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/podium/internal/adapters/sink"
	"github.com/okian/podium/internal/domain/report"
	"github.com/okian/podium/internal/domain/tally"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

const component = "service"

// Recorder receives pipeline metrics. *metrics.Manager satisfies it.
type Recorder interface {
	tally.Recorder
	UpdateCountries(n int)
	RecordStageDuration(stage string, ms float64)
	RecordError(component, errorType string)
}

// Result summarizes a successful run.
type Result struct {
	RunID     string
	Records   int // rows read from the source
	Medals    int // medals credited after deduplication
	Countries int // entries in the written document
	Duration  time.Duration
}

// Service wires a source, the aggregation core and a sink.
type Service struct {
	mu sync.Mutex

	source   tally.Source
	sink     sink.Sink
	runID    string
	recorder Recorder
	logger   logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSource sets the row source.
func WithSource(src tally.Source) Option {
	return func(s *Service) {
		s.source = src
	}
}

// WithSink sets where the document is written.
func WithSink(out sink.Sink) Option {
	return func(s *Service) {
		s.sink = out
	}
}

// WithRunID fixes the run id instead of generating one.
func WithRunID(id string) Option {
	return func(s *Service) {
		if id != "" {
			s.runID = id
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// New constructs a Service. Without options it logs through the global
// logger and records on the global metrics manager.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.runID == "" {
		s.runID = uuid.NewString()
	}
	if s.recorder == nil {
		s.recorder = metrics.Default()
	}
	if s.logger == nil {
		s.logger = logger.Named(component)
	}
	return s
}

// RunID returns the id attached to every log line of the run.
func (s *Service) RunID() string {
	return s.runID
}

// Run executes the pipeline once. Nothing is written unless every stage
// succeeds.
func (s *Service) Run(ctx context.Context) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.source == nil {
		return Result{}, ErrNoSource
	}
	if s.sink == nil {
		return Result{}, ErrNoSink
	}

	log := s.logger.With(logger.String("run_id", s.runID))
	res := Result{RunID: s.runID}
	start := time.Now()
	log.Info(ctx, "run started")

	var (
		t     *tally.Tally
		stats tally.Stats
	)
	err := s.stage(ctx, log, metrics.StageIngest, func() error {
		agg := tally.NewAggregator(
			tally.WithLogger(log),
			tally.WithRecorder(s.recorder),
		)
		var err error
		t, stats, err = agg.Aggregate(ctx, s.source)
		return err
	})
	if err != nil {
		return res, err
	}
	res.Records = stats.Read
	res.Medals = stats.Credited

	var doc *report.Document
	_ = s.stage(ctx, log, metrics.StageReport, func() error {
		doc = report.Build(t)
		return nil
	})
	res.Countries = doc.Len()
	s.recorder.UpdateCountries(doc.Len())

	err = s.stage(ctx, log, metrics.StageWrite, func() error {
		return s.sink.Write(ctx, doc)
	})
	if err != nil {
		return res, err
	}

	res.Duration = time.Since(start)
	log.Info(ctx, "run finished",
		logger.Int("records", res.Records),
		logger.Int("medals", res.Medals),
		logger.Int("countries", res.Countries),
		logger.Duration("duration", res.Duration),
	)
	return res, nil
}

// stage times fn and records its outcome under name.
func (s *Service) stage(ctx context.Context, log logger.Logger, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	s.recorder.RecordStageDuration(name, float64(elapsed.Microseconds())/1000)
	if err != nil {
		s.recorder.RecordError(component, name)
		log.Error(ctx, "stage failed",
			logger.String("stage", name),
			logger.Duration("elapsed", elapsed),
			logger.Error(err),
		)
		return fmt.Errorf("%s: %w", name, err)
	}
	log.Debug(ctx, "stage done",
		logger.String("stage", name),
		logger.Duration("elapsed", elapsed),
	)
	return nil
}
