package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"glossa-hq/rosetta/pkg/config"
	"glossa-hq/rosetta/pkg/engine"
	"glossa-hq/rosetta/pkg/lexicon"
	"glossa-hq/rosetta/pkg/telemetry/logging"
	"glossa-hq/rosetta/pkg/telemetry/metrics"
)

// loadConfig reads the --config file, or returns defaults when the flag was
// not given.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default()
	}
	return config.Load(cfgFile)
}

// setupLogger builds the process logger from config, honoring --verbose.
func setupLogger(cfg *config.Config) (*slog.Logger, error) {
	logCfg := logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
	}
	if verbose {
		logCfg.Level = "debug"
	}

	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}

// buildRepository constructs the rule repository named by the config.
func buildRepository(ctx context.Context, cfg *config.Config, logger *slog.Logger) (lexicon.Repository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Lexicon.Source {
	case config.SourceFile:
		src, err := lexicon.NewFileSource(ctx, cfg.Lexicon.Path, cfg.Lexicon.Encoding, logger)
		return src, noop, err

	case config.SourceDirectory:
		src, err := lexicon.NewDirSource(ctx, cfg.Lexicon.Path, cfg.Lexicon.Encoding, logger)
		return src, noop, err

	case config.SourceSQLite:
		src, err := lexicon.NewSQLiteSource(lexicon.SQLiteConfig{
			Path:  cfg.Lexicon.Path,
			Table: cfg.Lexicon.Table,
		})
		if err != nil {
			return nil, noop, err
		}
		return src, src.Close, nil

	case "":
		return nil, noop, fmt.Errorf("no lexicon source configured (set lexicon.source)")

	default:
		return nil, noop, fmt.Errorf("unknown lexicon source %q", cfg.Lexicon.Source)
	}
}

// buildEngine constructs the engine over a repository, wiring metrics when
// enabled. The returned registry and metrics are nil when metrics are
// disabled.
func buildEngine(cfg *config.Config, repo lexicon.Repository, logger *slog.Logger) (*engine.Engine, *prometheus.Registry, *metrics.LookupMetrics, error) {
	format, err := engine.ParseNumericFormat(cfg.NumericFormat)
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []engine.Option{engine.WithLogger(logger)}

	var (
		registry *prometheus.Registry
		lookups  *metrics.LookupMetrics
	)
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		lookups = metrics.NewLookupMetrics(metrics.Options{
			Namespace: cfg.Metrics.Namespace,
			Subsystem: cfg.Metrics.Subsystem,
		}, registry)
		opts = append(opts, engine.WithMetrics(lookups))
	}

	eng, err := engine.New(repo, engine.Config{
		Preferences:      cfg.Languages,
		FallbackLanguage: cfg.FallbackLanguage,
		EnablePanic:      cfg.EnablePanic,
		NumericFormat:    format,
		StrictArguments:  cfg.StrictArguments,
	}, opts...)
	if err != nil {
		return nil, nil, nil, err
	}
	return eng, registry, lookups, nil
}
