package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/huddle/internal/db"
	"github.com/alexanderramin/huddle/internal/domain"
)

// SQLiteGameRepo implements GameRepo using a SQLite database.
type SQLiteGameRepo struct {
	db db.DBTX
}

// NewSQLiteGameRepo creates a new SQLiteGameRepo.
func NewSQLiteGameRepo(conn db.DBTX) *SQLiteGameRepo {
	return &SQLiteGameRepo{db: conn}
}

func (r *SQLiteGameRepo) Create(ctx context.Context, g *domain.Game) error {
	query := `INSERT INTO games (game_id, season, week, gameday, home_team, away_team, home_score, away_score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.Season,
		g.Week,
		g.Gameday,
		g.HomeTeam,
		g.AwayTeam,
		nullableIntToValue(g.HomeScore),
		nullableIntToValue(g.AwayScore),
	)
	if err != nil {
		return fmt.Errorf("inserting game %s: %w", g.ID, err)
	}
	return nil
}

func (r *SQLiteGameRepo) GetByID(ctx context.Context, id string) (*domain.Game, error) {
	query := `SELECT game_id, season, week, gameday, home_team, away_team, home_score, away_score
		FROM games WHERE game_id = ?`

	var (
		g                    domain.Game
		homeScore, awayScore sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&g.ID, &g.Season, &g.Week, &g.Gameday, &g.HomeTeam, &g.AwayTeam, &homeScore, &awayScore,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("game: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning game: %w", err)
	}
	g.HomeScore = intPtrFromNull(homeScore)
	g.AwayScore = intPtrFromNull(awayScore)
	return &g, nil
}

func (r *SQLiteGameRepo) Exists(ctx context.Context, id string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM games WHERE game_id = ?`, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking game %s: %w", id, err)
	}
	return n > 0, nil
}

// RecentResults returns the most recent completed games for the filter,
// newest first. Two teams match their head-to-head games in either home/away
// order; otherwise only Teams[0] is used.
func (r *SQLiteGameRepo) RecentResults(ctx context.Context, f domain.HistoricalFilter) ([]domain.GameResult, error) {
	if len(f.Teams) == 0 {
		return nil, fmt.Errorf("recent results: no team given")
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 5
	}

	var (
		query string
		args  []any
	)
	if f.HeadToHead() {
		query = `SELECT season, week, gameday, home_team, away_team, home_score, away_score
			FROM games
			WHERE ((home_team = ? AND away_team = ?) OR (home_team = ? AND away_team = ?))
			  AND home_score IS NOT NULL AND away_score IS NOT NULL
			ORDER BY gameday DESC LIMIT ?`
		args = []any{f.Teams[0], f.Teams[1], f.Teams[1], f.Teams[0], limit}
	} else {
		query = `SELECT season, week, gameday, home_team, away_team, home_score, away_score
			FROM games
			WHERE (home_team = ? OR away_team = ?)
			  AND home_score IS NOT NULL AND away_score IS NOT NULL
			ORDER BY gameday DESC LIMIT ?`
		args = []any{f.Teams[0], f.Teams[0], limit}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying recent results: %w", err)
	}
	defer rows.Close()

	var results []domain.GameResult
	for rows.Next() {
		var (
			res                  domain.GameResult
			homeScore, awayScore sql.NullInt64
		)
		if err := rows.Scan(&res.Season, &res.Week, &res.Gameday, &res.HomeTeam, &res.AwayTeam, &homeScore, &awayScore); err != nil {
			return nil, fmt.Errorf("scanning game result: %w", err)
		}
		res.HomeScore = intPtrFromNull(homeScore)
		res.AwayScore = intPtrFromNull(awayScore)
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating game results: %w", err)
	}
	return results, nil
}

func (r *SQLiteGameRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM games`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting games: %w", err)
	}
	return n, nil
}

// DeleteAll removes every game; plays go with them through the cascade.
func (r *SQLiteGameRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM games`); err != nil {
		return fmt.Errorf("deleting games: %w", err)
	}
	return nil
}
