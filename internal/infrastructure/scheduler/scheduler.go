// Package scheduler runs recurring background jobs.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/NoBdr07/plateforme-owod/internal/api/metrics"
	"github.com/NoBdr07/plateforme-owod/internal/core/ports"
)

// weeklyRotationSpec fires every Monday at midnight.
const weeklyRotationSpec = "0 0 * * MON"

// Scheduler owns the cron runner and the jobs registered on it.
type Scheduler struct {
	cron   *cron.Cron
	weekly ports.WeeklyService
	log    zerolog.Logger
}

// New builds a Scheduler with the weekly rotation job registered.
func New(weekly ports.WeeklyService, log zerolog.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		weekly: weekly,
		log:    log,
	}
	if _, err := s.cron.AddFunc(weeklyRotationSpec, s.rotateWeekly); err != nil {
		return nil, err
	}
	return s, nil
}

// Start launches the cron runner in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Str("spec", weeklyRotationSpec).Msg("scheduler started")
}

// Stop halts the runner and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("scheduler stopped")
}

func (s *Scheduler) rotateWeekly() {
	log := s.log

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	weekly, err := s.weekly.Rotate(ctx)
	if err != nil {
		metrics.WeeklyRotationsTotal.WithLabelValues("error").Inc()
		log.Error().Err(err).Msg("weekly designer rotation failed")
		return
	}
	metrics.WeeklyRotationsTotal.WithLabelValues("ok").Inc()
	log.Info().
		Str("designer_id", weekly.DesignerID).
		Time("start_date", weekly.StartDate).
		Msg("weekly designer rotated")
}
