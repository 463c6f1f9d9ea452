package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/okian/podium/internal/adapters/sink"
	"github.com/okian/podium/internal/adapters/source"
	app "github.com/okian/podium/internal/app"
	"github.com/okian/podium/internal/config"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

func main() {
	// A missing .env is fine; anything else is reported once logging works.
	envErr := godotenv.Load()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		_, _ = os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		stop()
		os.Exit(1)
	}

	if err := initLogging(cfg, os.Stdout, os.Stderr); err != nil {
		_, _ = os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		stop()
		os.Exit(1)
	}
	log := logger.Get()
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		log.Warn(ctx, "ignoring unreadable .env file", logger.Error(envErr))
	}

	code := 0
	if err := run(ctx, cfg, log); err != nil {
		log.Error(ctx, "medal summary failed", logger.Error(err))
		code = 1
	}
	stop()
	os.Exit(code)
}

// initLogging routes logs to stderr when the document itself goes to stdout.
func initLogging(cfg *config.Config, stdout, stderr io.Writer) error {
	w := stdout
	if cfg.OutputPath == sink.Stdout {
		w = stderr
	}
	if err := logger.Init(
		logger.WithWriter(w),
		logger.WithJSON(cfg.LogFormat == config.LogFormatJSON),
	); err != nil {
		return err
	}
	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(context.Background(), "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}
	return nil
}

// run opens the input, executes the pipeline and exports metrics when a
// textfile path is configured.
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	src, err := source.Open(cfg.InputPath, cfg.InputFormat, cfg.InputSheet)
	if err != nil {
		return fmt.Errorf("open %s: %w", cfg.InputPath, err)
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			log.Warn(ctx, "closing input failed", logger.Error(cerr))
		}
	}()

	svc := app.New(
		app.WithLogger(log.Named("service")),
		app.WithSource(src),
		app.WithSink(sink.NewFileSink(cfg.OutputPath)),
	)
	res, runErr := svc.Run(ctx)

	if cfg.MetricsPath != "" {
		if err := metrics.WriteTextfile(cfg.MetricsPath); err != nil {
			log.Warn(ctx, "metrics export failed", logger.String("path", cfg.MetricsPath), logger.Error(err))
		}
	}
	if runErr != nil {
		return runErr
	}

	log.Info(ctx, "medal summary written",
		logger.String("output", cfg.OutputPath),
		logger.Int("countries", res.Countries),
		logger.String("run_id", res.RunID),
	)
	return nil
}
