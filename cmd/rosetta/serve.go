package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"glossa-hq/rosetta/pkg/lexicon"
	"glossa-hq/rosetta/pkg/server"
	"glossa-hq/rosetta/pkg/telemetry/metrics"
)

var serveFlags struct {
	listenAddress string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve translation lookups over HTTP",
	Long: `Start the translation server.

The server answers GET /v1/translate?key=...&arg=... lookups, exposes
Prometheus metrics on /metrics when enabled, and hot-reloads the lexicon on
file changes or a cron schedule.

Examples:
  # Serve with a config file
  rosetta serve --config /etc/rosetta/config.yaml

  # Override the listen address
  rosetta serve --config config.yaml --listen 0.0.0.0:8089`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveFlags.listenAddress, "listen", "l", "", "override listen address")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveFlags.listenAddress != "" {
		cfg.Server.ListenAddress = serveFlags.listenAddress
	}

	logger, err := setupLogger(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := buildRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	eng, registry, lookups, err := buildEngine(cfg, repo, logger)
	if err != nil {
		return err
	}

	// Hot reload for sources that support it.
	if reloader, ok := repo.(lexicon.Reloader); ok {
		reloader = instrumentedReloader{inner: reloader, metrics: lookups}

		if cfg.Lexicon.Watch {
			watcher, err := lexicon.NewWatcher(cfg.Lexicon.Path, cfg.Lexicon.DebounceInterval, logger)
			if err != nil {
				return err
			}
			go func() {
				if err := watcher.Watch(ctx, reloader.Reload); err != nil && ctx.Err() == nil {
					logger.Error("lexicon watcher stopped", "error", err)
				}
			}()
		}

		if cfg.Lexicon.ReloadSchedule != "" {
			scheduler := lexicon.NewReloadScheduler(reloader, logger)
			if err := scheduler.Start(cfg.Lexicon.ReloadSchedule); err != nil {
				return err
			}
			defer scheduler.Stop()
		}
	}

	srv := server.New(cfg.Server, eng, registry, logger)
	return srv.Start(ctx)
}

// instrumentedReloader counts reload results on the lookup metrics. A nil
// metrics receiver makes it a passthrough.
type instrumentedReloader struct {
	inner   lexicon.Reloader
	metrics *metrics.LookupMetrics
}

func (r instrumentedReloader) Reload(ctx context.Context) error {
	if err := r.inner.Reload(ctx); err != nil {
		r.metrics.ObserveReload("error")
		return err
	}
	r.metrics.ObserveReload("success")
	return nil
}
