package repository

import (
	"context"
	"fmt"

	"github.com/ironforge/footylab/internal/dataset"
	"github.com/ironforge/footylab/internal/store"
)

// LeagueRepository handles league and season metadata access
type LeagueRepository struct {
	db *store.Database
}

// NewLeagueRepository creates a new league repository
func NewLeagueRepository(db *store.Database) *LeagueRepository {
	return &LeagueRepository{db: db}
}

// Get returns the league description row.
func (r *LeagueRepository) Get(ctx context.Context) (*dataset.League, error) {
	query := `
		SELECT league_id, name, short_name, country, num_teams,
			promotion_spots, relegation_spots, european_spots,
			season_format, points_for_win, points_for_draw, points_for_loss
		FROM league
		LIMIT 1
	`

	league := &dataset.League{}
	err := r.db.DB().QueryRowContext(ctx, query).Scan(
		&league.LeagueID, &league.Name, &league.ShortName, &league.Country,
		&league.NumTeams, &league.PromotionSpots, &league.RelegationSpots,
		&league.EuropeanSpots, &league.SeasonFormat, &league.PointsForWin,
		&league.PointsForDraw, &league.PointsForLoss,
	)
	if err != nil {
		return nil, fmt.Errorf("querying league: %w", err)
	}

	return league, nil
}

// GetSeasons returns the season catalogue, oldest first.
func (r *LeagueRepository) GetSeasons(ctx context.Context) ([]*dataset.SeasonInfo, error) {
	query := `
		SELECT season_id, season, start_year, end_year,
			to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
			num_matchdays, is_current
		FROM seasons
		ORDER BY start_year
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying seasons: %w", err)
	}
	defer rows.Close()

	var seasons []*dataset.SeasonInfo
	for rows.Next() {
		s := &dataset.SeasonInfo{}
		err := rows.Scan(
			&s.SeasonID, &s.Season, &s.StartYear, &s.EndYear,
			&s.StartDate, &s.EndDate, &s.NumMatchdays, &s.IsCurrent,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning season: %w", err)
		}
		seasons = append(seasons, s)
	}

	return seasons, rows.Err()
}
