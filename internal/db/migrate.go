package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate creates the games and plays tables. Every statement is safe to
// re-run, so a database produced by an earlier loader is upgraded in place.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN fails on databases that already have it.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS games (
		game_id    TEXT PRIMARY KEY,
		season     INTEGER NOT NULL,
		week       INTEGER NOT NULL,
		gameday    TEXT NOT NULL,
		home_team  TEXT NOT NULL,
		away_team  TEXT NOT NULL,
		home_score INTEGER,
		away_score INTEGER
	)`,

	`CREATE INDEX IF NOT EXISTS idx_games_gameday ON games(gameday)`,
	`CREATE INDEX IF NOT EXISTS idx_games_home ON games(home_team)`,
	`CREATE INDEX IF NOT EXISTS idx_games_away ON games(away_team)`,
	`CREATE INDEX IF NOT EXISTS idx_games_season ON games(season)`,

	`CREATE TABLE IF NOT EXISTS plays (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id      TEXT NOT NULL REFERENCES games(game_id) ON DELETE CASCADE,
		posteam      TEXT,
		down         INTEGER,
		play_type    TEXT,
		yards_gained INTEGER,
		touchdown    INTEGER NOT NULL DEFAULT 0,
		epa          REAL
	)`,

	// Goal-line distance arrived after the first dataset load.
	`ALTER TABLE plays ADD COLUMN yardline_100 INTEGER`,

	`CREATE INDEX IF NOT EXISTS idx_plays_game ON plays(game_id)`,
	`CREATE INDEX IF NOT EXISTS idx_plays_posteam ON plays(posteam)`,
}
