package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/huddle/internal/domain"
)

// ErrNotFound is returned when a lookup by id matches no row.
var ErrNotFound = errors.New("not found")

type GameRepo interface {
	Create(ctx context.Context, g *domain.Game) error
	GetByID(ctx context.Context, id string) (*domain.Game, error)
	Exists(ctx context.Context, id string) (bool, error)
	RecentResults(ctx context.Context, f domain.HistoricalFilter) ([]domain.GameResult, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type PlayRepo interface {
	Create(ctx context.Context, p *domain.Play) error
	Tactical(ctx context.Context, f domain.TacticalFilter) ([]domain.PlayRow, error)
	LeagueBaseline(ctx context.Context) (float64, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
