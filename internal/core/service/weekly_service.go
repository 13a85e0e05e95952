package service

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
	"github.com/NoBdr07/plateforme-owod/internal/core/ports"
)

// WeeklyService picks and serves the featured designer of the week.
type WeeklyService struct {
	weekly    ports.WeeklyRepository
	designers ports.DesignerRepository
	log       zerolog.Logger
	now       func() time.Time
	pick      func(n int) int
}

// WeeklyOption customises a WeeklyService.
type WeeklyOption func(*WeeklyService)

// WithWeeklyClock replaces the time source, for tests.
func WithWeeklyClock(now func() time.Time) WeeklyOption {
	return func(s *WeeklyService) { s.now = now }
}

// WithWeeklyPick replaces the random index source, for tests.
func WithWeeklyPick(pick func(n int) int) WeeklyOption {
	return func(s *WeeklyService) { s.pick = pick }
}

func NewWeeklyService(weekly ports.WeeklyRepository, designers ports.DesignerRepository, log zerolog.Logger, opts ...WeeklyOption) *WeeklyService {
	s := &WeeklyService{
		weekly:    weekly,
		designers: designers,
		log:       log,
		now:       time.Now,
		pick:      rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns the designer behind the latest weekly pick.
func (s *WeeklyService) Current(ctx context.Context) (*domain.Designer, error) {
	weekly, err := s.weekly.FindLatest(ctx)
	if err != nil {
		return nil, err
	}
	return s.designers.FindByID(ctx, weekly.DesignerID)
}

// Rotate selects a random designer, excluding the previous week's pick so
// the feature never repeats twice in a row, and records the new week.
func (s *WeeklyService) Rotate(ctx context.Context) (*domain.WeeklyDesigner, error) {
	designers, err := s.designers.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(designers) == 0 {
		return nil, domain.ErrDesignerNotFound
	}

	previous, err := s.weekly.FindLatest(ctx)
	if err != nil && !errors.Is(err, domain.ErrWeeklyNotFound) {
		return nil, err
	}

	candidates := designers
	if previous != nil {
		candidates = candidates[:0:0]
		for _, d := range designers {
			if d.ID != previous.DesignerID {
				candidates = append(candidates, d)
			}
		}
	}
	if len(candidates) == 0 {
		// single designer in the directory: keep featuring them
		candidates = designers
	}

	selected := candidates[s.pick(len(candidates))]

	now := s.now().UTC()
	weekly := &domain.WeeklyDesigner{
		DesignerID: selected.ID,
		StartDate:  now,
		EndDate:    nextMonday(now),
	}

	saved, err := s.weekly.Save(ctx, weekly)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("designer_id", selected.ID).Time("until", saved.EndDate).Msg("weekly designer rotated")
	return saved, nil
}

// nextMonday returns the first Monday strictly after t, at midnight UTC.
func nextMonday(t time.Time) time.Time {
	days := (int(time.Monday) - int(t.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	next := t.AddDate(0, 0, days)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, time.UTC)
}
