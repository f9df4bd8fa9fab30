package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/huddle/internal/domain"
	"github.com/alexanderramin/huddle/internal/intelligence"
)

// StoredGameFunc reports whether a game id already exists in the store.
type StoredGameFunc func(gameID string) bool

// ValidateDataset checks the dataset before conversion and returns every
// problem found. stored may be nil when the store is empty or about to be
// replaced.
func ValidateDataset(ds *Dataset, stored StoredGameFunc) []error {
	if stored == nil {
		stored = func(string) bool { return false }
	}
	var errs []error

	if len(ds.Games) == 0 && len(ds.Plays) == 0 {
		errs = append(errs, fmt.Errorf("dataset has no games and no plays"))
	}

	gameIDs := make(map[string]bool, len(ds.Games))
	for i := range ds.Games {
		errs = append(errs, validateGame(i, &ds.Games[i], gameIDs, stored)...)
	}
	for i := range ds.Plays {
		errs = append(errs, validatePlay(i, &ds.Plays[i], gameIDs, stored)...)
	}

	return errs
}

func validateGame(i int, g *GameImport, seen map[string]bool, stored StoredGameFunc) []error {
	var errs []error
	prefix := fmt.Sprintf("games[%d]", i)

	if g.GameID == "" {
		errs = append(errs, fmt.Errorf("%s.game_id is required", prefix))
	} else {
		prefix = fmt.Sprintf("games[%d] (%s)", i, g.GameID)
		if seen[g.GameID] {
			errs = append(errs, fmt.Errorf("%s: duplicate game_id", prefix))
		} else if stored(g.GameID) {
			errs = append(errs, fmt.Errorf("%s: game already stored (use --replace)", prefix))
		}
		seen[g.GameID] = true
	}

	if g.Season <= 0 {
		errs = append(errs, fmt.Errorf("%s.season must be positive, got %d", prefix, g.Season))
	}
	if g.Week < 1 {
		errs = append(errs, fmt.Errorf("%s.week must be >= 1, got %d", prefix, g.Week))
	}
	if g.Gameday == "" {
		errs = append(errs, fmt.Errorf("%s.gameday is required", prefix))
	} else if _, err := time.Parse("2006-01-02", g.Gameday); err != nil {
		errs = append(errs, fmt.Errorf("%s.gameday: invalid date format %q (expected YYYY-MM-DD)", prefix, g.Gameday))
	}

	home, away := normalizeCode(g.HomeTeam), normalizeCode(g.AwayTeam)
	if !intelligence.IsTeamCode(home) {
		errs = append(errs, fmt.Errorf("%s.home_team: unknown team %q", prefix, g.HomeTeam))
	}
	if !intelligence.IsTeamCode(away) {
		errs = append(errs, fmt.Errorf("%s.away_team: unknown team %q", prefix, g.AwayTeam))
	}
	if home != "" && home == away {
		errs = append(errs, fmt.Errorf("%s: home_team and away_team are both %q", prefix, home))
	}

	if (g.HomeScore == nil) != (g.AwayScore == nil) {
		errs = append(errs, fmt.Errorf("%s: home_score and away_score must both be set or both omitted", prefix))
	}
	if g.HomeScore != nil && *g.HomeScore < 0 {
		errs = append(errs, fmt.Errorf("%s.home_score must be >= 0, got %d", prefix, *g.HomeScore))
	}
	if g.AwayScore != nil && *g.AwayScore < 0 {
		errs = append(errs, fmt.Errorf("%s.away_score must be >= 0, got %d", prefix, *g.AwayScore))
	}

	return errs
}

func validatePlay(i int, p *PlayImport, games map[string]bool, stored StoredGameFunc) []error {
	var errs []error
	prefix := fmt.Sprintf("plays[%d]", i)

	if p.GameID == "" {
		errs = append(errs, fmt.Errorf("%s.game_id is required", prefix))
	} else if !games[p.GameID] && !stored(p.GameID) {
		errs = append(errs, fmt.Errorf("%s.game_id %q not found", prefix, p.GameID))
	}

	if p.PosTeam != "" && !intelligence.IsTeamCode(normalizeCode(p.PosTeam)) {
		errs = append(errs, fmt.Errorf("%s.posteam: unknown team %q", prefix, p.PosTeam))
	}
	if p.Down != nil && (*p.Down < 1 || *p.Down > 4) {
		errs = append(errs, fmt.Errorf("%s.down must be 1..4, got %d", prefix, *p.Down))
	}
	if p.PlayType != "" && !domain.ValidPlayTypes[p.PlayType] {
		errs = append(errs, fmt.Errorf("%s.play_type: invalid value %q", prefix, p.PlayType))
	}
	if p.Yardline100 != nil && (*p.Yardline100 < 0 || *p.Yardline100 > 100) {
		errs = append(errs, fmt.Errorf("%s.yardline_100 must be 0..100, got %d", prefix, *p.Yardline100))
	}

	return errs
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidationError joins collected validation errors under ErrInvalidDataset.
func ValidationError(errs []error) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%d problem(s):", len(errs))
	for _, e := range errs {
		b.WriteString("\n  - ")
		b.WriteString(e.Error())
	}
	return fmt.Errorf("%w: %s", ErrInvalidDataset, b.String())
}
