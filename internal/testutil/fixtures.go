package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/huddle/internal/domain"
	"github.com/google/uuid"
)

var testWeekCounter atomic.Int64

// Game options
type GameOption func(*domain.Game)

func WithScore(home, away int) GameOption {
	return func(g *domain.Game) {
		g.HomeScore = &home
		g.AwayScore = &away
	}
}

func WithoutScore() GameOption {
	return func(g *domain.Game) {
		g.HomeScore = nil
		g.AwayScore = nil
	}
}

func WithSeason(s int) GameOption {
	return func(g *domain.Game) {
		g.Season = s
	}
}

func WithWeek(w int) GameOption {
	return func(g *domain.Game) {
		g.Week = w
	}
}

func WithGameID(id string) GameOption {
	return func(g *domain.Game) {
		g.ID = id
	}
}

// NewTestGame builds a completed game between home and away on gameday.
// Season defaults to the gameday's year.
func NewTestGame(home, away, gameday string, opts ...GameOption) *domain.Game {
	season := 2023
	if len(gameday) >= 4 {
		_, _ = fmt.Sscanf(gameday[:4], "%d", &season)
	}
	g := &domain.Game{
		ID:        uuid.New().String(),
		Season:    season,
		Week:      int(testWeekCounter.Add(1)%18) + 1,
		Gameday:   gameday,
		HomeTeam:  home,
		AwayTeam:  away,
		HomeScore: domain.IntPtr(21),
		AwayScore: domain.IntPtr(17),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Play options
type PlayOption func(*domain.Play)

func WithDown(d int) PlayOption {
	return func(p *domain.Play) {
		p.Down = &d
	}
}

func WithPlayType(pt string) PlayOption {
	return func(p *domain.Play) {
		p.PlayType = pt
	}
}

func WithYards(y int) PlayOption {
	return func(p *domain.Play) {
		p.YardsGained = y
	}
}

func WithTouchdown() PlayOption {
	return func(p *domain.Play) {
		p.Touchdown = true
	}
}

func WithYardline(y int) PlayOption {
	return func(p *domain.Play) {
		p.Yardline100 = &y
	}
}

func WithoutYardline() PlayOption {
	return func(p *domain.Play) {
		p.Yardline100 = nil
	}
}

func WithoutEPA() PlayOption {
	return func(p *domain.Play) {
		p.EPA = nil
	}
}

// NewTestPlay builds a first-down pass play for posteam in gameID.
func NewTestPlay(gameID, posteam string, epa float64, opts ...PlayOption) *domain.Play {
	p := &domain.Play{
		GameID:      gameID,
		PosTeam:     posteam,
		Down:        domain.IntPtr(1),
		PlayType:    string(domain.PlayPass),
		YardsGained: 5,
		EPA:         &epa,
		Yardline100: domain.IntPtr(50),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
