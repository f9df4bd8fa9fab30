package domain

// Game is one row of the games table.
type Game struct {
	ID        string
	Season    int
	Week      int
	Gameday   string // YYYY-MM-DD
	HomeTeam  string
	AwayTeam  string
	HomeScore *int
	AwayScore *int
}

// Completed reports whether both scores are recorded.
func (g *Game) Completed() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}

// GameResult is the projection returned by the historical query.
type GameResult struct {
	Season    int
	Week      int
	Gameday   string
	HomeTeam  string
	AwayTeam  string
	HomeScore *int
	AwayScore *int
}

// Winner returns the code of the winning team, or "" for a tie or an
// unfinished game.
func (r GameResult) Winner() string {
	if r.HomeScore == nil || r.AwayScore == nil {
		return ""
	}
	switch {
	case *r.HomeScore > *r.AwayScore:
		return r.HomeTeam
	case *r.AwayScore > *r.HomeScore:
		return r.AwayTeam
	default:
		return ""
	}
}
