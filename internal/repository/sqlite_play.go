package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/huddle/internal/db"
	"github.com/alexanderramin/huddle/internal/domain"
)

// SQLitePlayRepo implements PlayRepo using a SQLite database.
type SQLitePlayRepo struct {
	db db.DBTX
}

// NewSQLitePlayRepo creates a new SQLitePlayRepo.
func NewSQLitePlayRepo(conn db.DBTX) *SQLitePlayRepo {
	return &SQLitePlayRepo{db: conn}
}

func (r *SQLitePlayRepo) Create(ctx context.Context, p *domain.Play) error {
	query := `INSERT INTO plays (game_id, posteam, down, play_type, yards_gained, touchdown, epa, yardline_100)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		p.GameID,
		nullableStringToValue(p.PosTeam),
		nullableIntToValue(p.Down),
		nullableStringToValue(p.PlayType),
		p.YardsGained,
		boolToInt(p.Touchdown),
		nullableFloatToValue(p.EPA),
		nullableIntToValue(p.Yardline100),
	)
	if err != nil {
		return fmt.Errorf("inserting play for game %s: %w", p.GameID, err)
	}
	if id, err := res.LastInsertId(); err == nil {
		p.ID = id
	}
	return nil
}

// BuildTacticalQuery assembles the filtered play query. Filters are appended
// in a fixed order (season, team, play type, situation) so the argument list
// lines up with the placeholders.
func BuildTacticalQuery(f domain.TacticalFilter) (string, []any) {
	var (
		b    strings.Builder
		args []any
	)
	if f.Season != nil {
		b.WriteString(`SELECT p.posteam, p.down, p.play_type, p.yards_gained, p.touchdown, p.epa
			FROM plays p
			JOIN games g ON p.game_id = g.game_id
			WHERE p.epa IS NOT NULL AND g.season = ?`)
		args = append(args, *f.Season)
	} else {
		b.WriteString(`SELECT p.posteam, p.down, p.play_type, p.yards_gained, p.touchdown, p.epa
			FROM plays p
			WHERE p.epa IS NOT NULL`)
	}

	if f.Team != "" {
		b.WriteString(" AND p.posteam = ?")
		args = append(args, f.Team)
	}
	if f.PlayType != "" {
		b.WriteString(" AND p.play_type = ?")
		args = append(args, string(f.PlayType))
	}
	if f.Situation.IsRedZone() {
		b.WriteString(" AND p.yardline_100 <= ?")
		args = append(args, domain.RedZoneYardline)
	} else if down, ok := f.Situation.Down(); ok {
		b.WriteString(" AND p.down = ?")
		args = append(args, down)
	}

	return b.String(), args
}

// Tactical returns every play with a recorded EPA that matches the filter.
func (r *SQLitePlayRepo) Tactical(ctx context.Context, f domain.TacticalFilter) ([]domain.PlayRow, error) {
	query, args := BuildTacticalQuery(f)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying plays: %w", err)
	}
	defer rows.Close()

	var out []domain.PlayRow
	for rows.Next() {
		var (
			row       domain.PlayRow
			posteam   sql.NullString
			down      sql.NullInt64
			playType  sql.NullString
			yards     sql.NullInt64
			touchdown int
		)
		if err := rows.Scan(&posteam, &down, &playType, &yards, &touchdown, &row.EPA); err != nil {
			return nil, fmt.Errorf("scanning play row: %w", err)
		}
		row.PosTeam = posteam.String
		row.Down = intPtrFromNull(down)
		row.PlayType = playType.String
		row.YardsGained = int(yards.Int64)
		row.Touchdown = intToBool(touchdown)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating play rows: %w", err)
	}
	return out, nil
}

// LeagueBaseline returns the mean EPA over every play that has one, or 0
// when no play does.
func (r *SQLitePlayRepo) LeagueBaseline(ctx context.Context) (float64, error) {
	var avg sql.NullFloat64
	err := r.db.QueryRowContext(ctx, `SELECT AVG(epa) FROM plays WHERE epa IS NOT NULL`).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("computing league baseline: %w", err)
	}
	return avg.Float64, nil
}

func (r *SQLitePlayRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM plays`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting plays: %w", err)
	}
	return n, nil
}

func (r *SQLitePlayRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plays`); err != nil {
		return fmt.Errorf("deleting plays: %w", err)
	}
	return nil
}
