// Package scheduler runs periodic background jobs, currently the
// user_stats cache refresh.
package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/tijeane/quran-learning/internal/logger"
	"github.com/tijeane/quran-learning/internal/repository"
)

type Scheduler struct {
	cron  *gocron.Scheduler
	stats repository.StatsRepository
	log   *logger.Logger
}

func New(stats repository.StatsRepository) *Scheduler {
	return &Scheduler{
		cron:  gocron.NewScheduler(time.UTC),
		stats: stats,
		log:   logger.Default().WithPrefix("scheduler"),
	}
}

// Start registers the stats refresh job and begins running it in the
// background. A refresh also runs once immediately so a fresh process
// serves warm stats.
func (s *Scheduler) Start(interval time.Duration) error {
	_, err := s.cron.Every(interval).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := s.stats.RefreshAll(ctx); err != nil {
			s.log.Error("stats refresh failed: %v", err)
			return
		}
		s.log.Debug("stats cache refreshed")
	})
	if err != nil {
		return err
	}
	s.cron.StartAsync()
	s.log.Info("started, stats refresh every %v", interval)
	return nil
}

// Stop halts the job runner and waits for in-flight jobs.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info("stopped")
}
