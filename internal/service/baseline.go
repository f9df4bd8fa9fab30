package service

import (
	"context"
	"sync"

	"github.com/alexanderramin/huddle/internal/repository"
	"github.com/patrickmn/go-cache"
)

const leagueBaselineKey = "league_epa"

// BaselineCache computes the league baseline at most once per process.
// Failed computations are not stored, so the next call retries.
type BaselineCache struct {
	plays repository.PlayRepo
	store *cache.Cache
	mu    sync.Mutex
}

func NewBaselineCache(plays repository.PlayRepo) *BaselineCache {
	return &BaselineCache{
		plays: plays,
		store: cache.New(cache.NoExpiration, 0),
	}
}

func (b *BaselineCache) LeagueBaseline(ctx context.Context) (float64, error) {
	if v, ok := b.store.Get(leagueBaselineKey); ok {
		return v.(float64), nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if v, ok := b.store.Get(leagueBaselineKey); ok {
		return v.(float64), nil
	}

	avg, err := b.plays.LeagueBaseline(ctx)
	if err != nil {
		return 0, err
	}
	b.store.Set(leagueBaselineKey, avg, cache.NoExpiration)
	return avg, nil
}
