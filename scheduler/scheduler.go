// Package scheduler refreshes the cached collections on a cron schedule and
// tells open dashboards about it.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Dosada05/scouting-system/live"
	"github.com/Dosada05/scouting-system/services"
)

const jobTimeout = time.Minute

type Config struct {
	Enabled  bool
	CronSpec string // standard 5-field spec
}

// Refresher is the part of services.Collections the job needs.
type Refresher interface {
	RefreshAll(ctx context.Context) error
}

type Scheduler struct {
	c         *cron.Cron
	config    Config
	refresher Refresher
	notifier  services.Notifier
	logger    *slog.Logger
}

func New(cfg Config, refresher Refresher, notifier services.Notifier, logger *slog.Logger) (*Scheduler, error) {
	s := &Scheduler{
		c:         cron.New(),
		config:    cfg,
		refresher: refresher,
		notifier:  notifier,
		logger:    logger,
	}
	if _, err := s.c.AddFunc(cfg.CronSpec, func() { s.RunOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("invalid cron spec %q: %w", cfg.CronSpec, err)
	}
	return s, nil
}

// RunOnce refreshes every collection and broadcasts the result to the
// dashboard room.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	start := time.Now()
	err := s.refresher.RefreshAll(ctx)
	if err != nil {
		s.logger.Warn("scheduled refresh failed", slog.Any("error", err), slog.Duration("took", time.Since(start)))
	} else {
		s.logger.Info("scheduled refresh done", slog.Duration("took", time.Since(start)))
	}
	if s.notifier != nil {
		s.notifier.BroadcastToRoom(live.RoomDashboard, live.Message{
			Type:    live.TypeCollectionsRefreshed,
			Payload: map[string]bool{"ok": err == nil},
			RoomID:  live.RoomDashboard,
		})
	}
	return err
}

func (s *Scheduler) Start() {
	s.logger.Info("starting refresh scheduler", slog.String("cron", s.config.CronSpec))
	s.c.Start()
}

// Stop stops the schedule and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.c.Stop().Done()
}

func (s *Scheduler) Config() Config {
	return s.config
}
