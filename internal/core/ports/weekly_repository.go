package ports

import (
	"context"

	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
)

// WeeklyRepository persists weekly featured-designer picks.
type WeeklyRepository interface {
	Save(ctx context.Context, weekly *domain.WeeklyDesigner) (*domain.WeeklyDesigner, error)
	FindLatest(ctx context.Context) (*domain.WeeklyDesigner, error)
}
