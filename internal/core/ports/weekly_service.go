package ports

import (
	"context"

	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
)

type WeeklyService interface {
	// Current returns the designer featured this week.
	Current(ctx context.Context) (*domain.Designer, error)
	// Rotate picks a new featured designer, excluding last week's.
	Rotate(ctx context.Context) (*domain.WeeklyDesigner, error)
}
