package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ironforge/footylab/internal/store"
)

const matchColumns = `match_id, season, matchday, match_date,
	home_club_id, home_club_name, away_club_id, away_club_name,
	home_goals, away_goals, status`

// MatchRepository handles match data access
type MatchRepository struct {
	db *store.Database
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *store.Database) *MatchRepository {
	return &MatchRepository{db: db}
}

func scanMatch(scan func(dest ...any) error) (*store.Match, error) {
	m := &store.Match{}
	err := scan(
		&m.MatchID, &m.Season, &m.Matchday, &m.Date,
		&m.HomeClubID, &m.HomeClubName, &m.AwayClubID, &m.AwayClubName,
		&m.HomeGoals, &m.AwayGoals, &m.Status,
	)
	return m, err
}

// GetBySeason returns a season's matches in matchday order. A matchday of
// zero returns the whole season.
func (r *MatchRepository) GetBySeason(ctx context.Context, season string, matchday int) ([]*store.Match, error) {
	query := `
		SELECT ` + matchColumns + `
		FROM matches
		WHERE season = $1 AND ($2 = 0 OR matchday = $2)
		ORDER BY matchday, match_id
	`

	rows, err := r.db.DB().QueryContext(ctx, query, season, matchday)
	if err != nil {
		return nil, fmt.Errorf("querying matches: %w", err)
	}
	defer rows.Close()

	var matches []*store.Match
	for rows.Next() {
		m, err := scanMatch(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning match: %w", err)
		}
		matches = append(matches, m)
	}

	return matches, rows.Err()
}

// GetByID finds a match by ID
func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (*store.Match, error) {
	query := `
		SELECT ` + matchColumns + `
		FROM matches
		WHERE match_id = $1
	`

	m, err := scanMatch(r.db.DB().QueryRowContext(ctx, query, matchID).Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("match not found: %s", matchID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying match: %w", err)
	}

	return m, nil
}

// Matchdays returns the number of matchdays in a season.
func (r *MatchRepository) Matchdays(ctx context.Context, season string) (int, error) {
	var max sql.NullInt32
	err := r.db.DB().QueryRowContext(ctx,
		"SELECT MAX(matchday) FROM matches WHERE season = $1", season).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("querying matchdays: %w", err)
	}
	return int(max.Int32), nil
}
