package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/huddle/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaselineCache_ComputesOnce(t *testing.T) {
	plays := &failingPlayRepo{baseline: 0.042}
	cache := NewBaselineCache(plays)
	ctx := context.Background()

	for range 3 {
		v, err := cache.LeagueBaseline(ctx)
		require.NoError(t, err)
		assert.InDelta(t, 0.042, v, 1e-9)
	}
	assert.Equal(t, 1, plays.calls)
}

func TestBaselineCache_FailureNotCached(t *testing.T) {
	plays := &failingPlayRepo{failBaseline: true}
	cache := NewBaselineCache(plays)
	ctx := context.Background()

	_, err := cache.LeagueBaseline(ctx)
	assert.ErrorIs(t, err, errInjected)

	plays.failBaseline = false
	plays.baseline = 0.1
	v, err := cache.LeagueBaseline(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, v, 1e-9)
	assert.Equal(t, 2, plays.calls)
}

func TestBaselineCache_ConcurrentCallersShareValue(t *testing.T) {
	plays := &failingPlayRepo{baseline: -0.01}
	cache := NewBaselineCache(plays)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := cache.LeagueBaseline(context.Background())
			assert.NoError(t, err)
			assert.InDelta(t, -0.01, v, 1e-9)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, plays.calls)
}

func TestBaselineCache_FromDatabase(t *testing.T) {
	r := setupRepos(t)
	g := testutil.NewTestGame("DAL", "NYG", "2023-09-10")
	r.seedGames(t, g)
	r.seedPlays(t,
		testutil.NewTestPlay(g.ID, "DAL", 0.6),
		testutil.NewTestPlay(g.ID, "NYG", -0.2),
	)

	v, err := NewBaselineCache(r.plays).LeagueBaseline(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 0.2, v, 1e-9)
}
