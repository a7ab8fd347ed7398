package lexicon

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"
)

// ReloadScheduler reloads a repository on a cron schedule. It complements
// the fsnotify Watcher for backing stores where change events are not
// available, such as network mounts or the SQLite table being edited by
// another process.
type ReloadScheduler struct {
	repo    Reloader
	cron    *cron.Cron
	logger  *slog.Logger
	mu      sync.Mutex
	running bool
}

// NewReloadScheduler creates a scheduler for the given repository.
func NewReloadScheduler(repo Reloader, logger *slog.Logger) *ReloadScheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReloadScheduler{
		repo:   repo,
		cron:   cron.New(),
		logger: logger.With("component", "lexicon.scheduler"),
	}
}

// Start begins scheduled reloading using standard cron syntax, e.g.
// "*/15 * * * *" for every fifteen minutes.
func (s *ReloadScheduler) Start(schedule string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("reload scheduler already running")
	}

	_, err := s.cron.AddFunc(schedule, func() {
		if err := s.repo.Reload(context.Background()); err != nil {
			s.logger.Error("scheduled lexicon reload failed, keeping previous rules", "error", err)
			return
		}
		s.logger.Info("scheduled lexicon reload complete")
	})
	if err != nil {
		return fmt.Errorf("invalid reload schedule %q: %w", schedule, err)
	}

	s.cron.Start()
	s.running = true
	s.logger.Info("lexicon reload scheduler started", "schedule", schedule)
	return nil
}

// Stop halts scheduled reloading, waiting for an in-flight reload to finish.
func (s *ReloadScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	<-s.cron.Stop().Done()
	s.running = false
	s.logger.Info("lexicon reload scheduler stopped")
}
