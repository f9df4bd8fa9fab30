package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/alexanderramin/huddle/internal/domain"
	"github.com/alexanderramin/huddle/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAccess_ReadDuringWrite runs tactical and historical queries
// from several goroutines while plays are being inserted.
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	ctx := context.Background()

	games := NewSQLiteGameRepo(database)
	plays := NewSQLitePlayRepo(database)

	g := testutil.NewTestGame("KC", "BUF", "2024-10-01")
	require.NoError(t, games.Create(ctx, g))

	const written = 20
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < written; i++ {
			p := testutil.NewTestPlay(g.ID, "KC", float64(i)/10, testutil.WithYards(i))
			if err := plays.Create(ctx, p); err != nil {
				t.Errorf("writer: create play %d: %v", i, err)
				return
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				rows, err := plays.Tactical(ctx, domain.TacticalFilter{Team: "KC"})
				if err != nil {
					t.Errorf("reader %d: tactical: %v", reader, err)
					return
				}
				for _, row := range rows {
					if row.PosTeam != "KC" {
						t.Errorf("reader %d: got row for %q", reader, row.PosTeam)
					}
				}
				if _, err := games.RecentResults(ctx, domain.HistoricalFilter{Teams: []string{"KC"}}); err != nil {
					t.Errorf("reader %d: recent results: %v", reader, err)
					return
				}
			}
		}(r)
	}

	wg.Wait()

	rows, err := plays.Tactical(ctx, domain.TacticalFilter{Team: "KC"})
	require.NoError(t, err)
	assert.Len(t, rows, written)
}

// TestConcurrentAccess_ConcurrentReads checks that many readers see the same
// fully written state.
func TestConcurrentAccess_ConcurrentReads(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	ctx := context.Background()

	games := NewSQLiteGameRepo(database)
	plays := NewSQLitePlayRepo(database)

	const gameCount = 10
	for i := 0; i < gameCount; i++ {
		g := testutil.NewTestGame("DAL", "PHI", fmt.Sprintf("2023-10-%02d", i+1))
		require.NoError(t, games.Create(ctx, g))
		require.NoError(t, plays.Create(ctx, testutil.NewTestPlay(g.ID, "DAL", 0.5)))
		require.NoError(t, plays.Create(ctx, testutil.NewTestPlay(g.ID, "PHI", -0.5)))
	}

	var wg sync.WaitGroup
	const readers = 20

	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()

			results, err := games.RecentResults(ctx, domain.HistoricalFilter{Teams: []string{"PHI", "DAL"}, Limit: 5})
			if err != nil {
				t.Errorf("reader %d: recent results: %v", reader, err)
				return
			}
			if len(results) != 5 || results[0].Gameday != "2023-10-10" {
				t.Errorf("reader %d: unexpected results %+v", reader, results)
			}

			rows, err := plays.Tactical(ctx, domain.TacticalFilter{Team: "DAL"})
			if err != nil {
				t.Errorf("reader %d: tactical: %v", reader, err)
				return
			}
			if len(rows) != gameCount {
				t.Errorf("reader %d: expected %d rows, got %d", reader, gameCount, len(rows))
			}

			baseline, err := plays.LeagueBaseline(ctx)
			if err != nil {
				t.Errorf("reader %d: baseline: %v", reader, err)
				return
			}
			if baseline != 0 {
				t.Errorf("reader %d: expected baseline 0, got %v", reader, baseline)
			}
		}(r)
	}

	wg.Wait()
}
