package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/alexanderramin/huddle/internal/domain"
	"github.com/alexanderramin/huddle/internal/repository"
	"github.com/alexanderramin/huddle/internal/testutil"
	"github.com/stretchr/testify/require"
)

var errInjected = errors.New("disk I/O error")

type repos struct {
	games *repository.SQLiteGameRepo
	plays *repository.SQLitePlayRepo
}

func setupRepos(t *testing.T) repos {
	t.Helper()
	conn := testutil.NewTestDB(t)
	return repos{
		games: repository.NewSQLiteGameRepo(conn),
		plays: repository.NewSQLitePlayRepo(conn),
	}
}

func (r repos) seedGames(t *testing.T, games ...*domain.Game) {
	t.Helper()
	for _, g := range games {
		require.NoError(t, r.games.Create(context.Background(), g))
	}
}

func (r repos) seedPlays(t *testing.T, plays ...*domain.Play) {
	t.Helper()
	for _, p := range plays {
		require.NoError(t, r.plays.Create(context.Background(), p))
	}
}

// recordingObserver keeps every event it sees.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last(t *testing.T) UseCaseEvent {
	t.Helper()
	o.mu.Lock()
	defer o.mu.Unlock()
	require.NotEmpty(t, o.events)
	return o.events[len(o.events)-1]
}

// failingGameRepo fails every historical query.
type failingGameRepo struct {
	repository.GameRepo
}

func (failingGameRepo) RecentResults(context.Context, domain.HistoricalFilter) ([]domain.GameResult, error) {
	return nil, errInjected
}

// failingPlayRepo fails the tactical query and counts baseline calls.
type failingPlayRepo struct {
	repository.PlayRepo
	failTactical bool
	failBaseline bool
	baseline     float64
	calls        int
}

func (f *failingPlayRepo) Tactical(ctx context.Context, q domain.TacticalFilter) ([]domain.PlayRow, error) {
	if f.failTactical {
		return nil, errInjected
	}
	return f.PlayRepo.Tactical(ctx, q)
}

func (f *failingPlayRepo) LeagueBaseline(context.Context) (float64, error) {
	f.calls++
	if f.failBaseline {
		return 0, errInjected
	}
	return f.baseline, nil
}
