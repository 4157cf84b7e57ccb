package repository

import (
	"context"
	"fmt"

	"github.com/ironforge/footylab/internal/sim"
	"github.com/ironforge/footylab/internal/store"
)

// StandingsRepository handles league table data access
type StandingsRepository struct {
	db *store.Database
}

// NewStandingsRepository creates a new standings repository
func NewStandingsRepository(db *store.Database) *StandingsRepository {
	return &StandingsRepository{db: db}
}

// GetTable returns the final table for a season, ordered by position.
func (r *StandingsRepository) GetTable(ctx context.Context, season string) ([]*sim.TableRow, error) {
	query := `
		SELECT season, club_id, club_name, position, played, won, drawn, lost,
			goals_for, goals_against, goal_difference, points, form,
			home_wins, home_draws, home_losses, away_wins, away_draws, away_losses
		FROM league_table
		WHERE season = $1
		ORDER BY position
	`

	rows, err := r.db.DB().QueryContext(ctx, query, season)
	if err != nil {
		return nil, fmt.Errorf("querying league table: %w", err)
	}
	defer rows.Close()

	var table []*sim.TableRow
	for rows.Next() {
		row := &sim.TableRow{}
		err := rows.Scan(
			&row.Season, &row.ClubID, &row.ClubName, &row.Position,
			&row.Played, &row.Won, &row.Drawn, &row.Lost,
			&row.GoalsFor, &row.GoalsAgainst, &row.GoalDifference, &row.Points, &row.Form,
			&row.HomeWins, &row.HomeDraws, &row.HomeLosses,
			&row.AwayWins, &row.AwayDraws, &row.AwayLosses,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning table row: %w", err)
		}
		table = append(table, row)
	}

	return table, rows.Err()
}
