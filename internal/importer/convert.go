package importer

import "github.com/alexanderramin/huddle/internal/domain"

// Converted holds the domain rows built from a validated dataset.
type Converted struct {
	Games []*domain.Game
	Plays []*domain.Play
}

// Convert transforms a validated Dataset into domain rows ready for
// persistence. Team codes are upper-cased. Call ValidateDataset first.
func Convert(ds *Dataset) *Converted {
	out := &Converted{
		Games: make([]*domain.Game, 0, len(ds.Games)),
		Plays: make([]*domain.Play, 0, len(ds.Plays)),
	}
	for _, g := range ds.Games {
		out.Games = append(out.Games, &domain.Game{
			ID:        g.GameID,
			Season:    g.Season,
			Week:      g.Week,
			Gameday:   g.Gameday,
			HomeTeam:  normalizeCode(g.HomeTeam),
			AwayTeam:  normalizeCode(g.AwayTeam),
			HomeScore: g.HomeScore,
			AwayScore: g.AwayScore,
		})
	}
	for _, p := range ds.Plays {
		out.Plays = append(out.Plays, &domain.Play{
			GameID:      p.GameID,
			PosTeam:     normalizeCode(p.PosTeam),
			Down:        p.Down,
			PlayType:    p.PlayType,
			YardsGained: p.YardsGained,
			Touchdown:   p.Touchdown,
			EPA:         p.EPA,
			Yardline100: p.Yardline100,
		})
	}
	return out
}
