package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ironforge/footylab/internal/gen"
	"github.com/ironforge/footylab/internal/store"
)

const playerColumns = `player_id, club_id, first_name, last_name, full_name,
	nationality, to_char(date_of_birth, 'YYYY-MM-DD'), age, height_cm, weight_kg,
	preferred_foot, position_group, primary_position, secondary_positions,
	overall_rating, potential,
	phys_pace, phys_strength, phys_stamina,
	tech_diving, tech_handling, tech_kicking, tech_reflexes, tech_positioning,
	tech_tackling, tech_marking, tech_heading, tech_passing, tech_ball_control,
	tech_dribbling, tech_shooting, tech_finishing,
	mental_positioning, mental_concentration, mental_decision_making,
	mental_leadership, mental_vision, mental_work_rate, mental_composure,
	contract_years_remaining, market_value, weekly_wage, jersey_number,
	current_form, fitness_level, morale, injury_status,
	leadership, professionalism, temperament, consistency, injury_proneness,
	career_appearances, career_goals, career_assists,
	career_yellow_cards, career_red_cards, career_clean_sheets,
	is_youth, youth_entry_year`

// PlayerRepository handles player data access
type PlayerRepository struct {
	db *store.Database
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *store.Database) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func scanPlayer(scan func(dest ...any) error) (*gen.Player, error) {
	p := &gen.Player{}
	err := scan(
		&p.PlayerID, &p.ClubID, &p.FirstName, &p.LastName, &p.FullName,
		&p.Nationality, &p.DateOfBirth, &p.Age, &p.HeightCM, &p.WeightKG,
		&p.PreferredFoot, &p.PositionGroup, &p.PrimaryPosition, &p.SecondaryPositions,
		&p.OverallRating, &p.Potential,
		&p.Physical.Pace, &p.Physical.Strength, &p.Physical.Stamina,
		&p.Technical.Diving, &p.Technical.Handling, &p.Technical.Kicking,
		&p.Technical.Reflexes, &p.Technical.Positioning,
		&p.Technical.Tackling, &p.Technical.Marking, &p.Technical.Heading,
		&p.Technical.Passing, &p.Technical.BallControl,
		&p.Technical.Dribbling, &p.Technical.Shooting, &p.Technical.Finishing,
		&p.Mental.Positioning, &p.Mental.Concentration, &p.Mental.DecisionMaking,
		&p.Mental.Leadership, &p.Mental.Vision, &p.Mental.WorkRate, &p.Mental.Composure,
		&p.ContractYearsRemaining, &p.MarketValue, &p.WeeklyWage, &p.JerseyNumber,
		&p.CurrentForm, &p.FitnessLevel, &p.Morale, &p.InjuryStatus,
		&p.Leadership, &p.Professionalism, &p.Temperament, &p.Consistency, &p.InjuryProneness,
		&p.CareerAppearances, &p.CareerGoals, &p.CareerAssists,
		&p.CareerYellowCards, &p.CareerRedCards, &p.CareerCleanSheets,
		&p.IsYouth, &p.YouthEntryYear,
	)
	return p, err
}

func (r *PlayerRepository) queryPlayers(ctx context.Context, query string, args ...any) ([]*gen.Player, error) {
	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying players: %w", err)
	}
	defer rows.Close()

	var players []*gen.Player
	for rows.Next() {
		p, err := scanPlayer(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning player: %w", err)
		}
		players = append(players, p)
	}

	return players, rows.Err()
}

// GetByID finds a player by ID
func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (*gen.Player, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM players
		WHERE player_id = $1
	`

	p, err := scanPlayer(r.db.DB().QueryRowContext(ctx, query, playerID).Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("player not found: %s", playerID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying player: %w", err)
	}

	return p, nil
}

// GetSquad returns a club's first-team players, best rated first.
func (r *PlayerRepository) GetSquad(ctx context.Context, clubID string) ([]*gen.Player, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM players
		WHERE club_id = $1 AND is_youth = false
		ORDER BY overall_rating DESC, player_id
	`
	return r.queryPlayers(ctx, query, clubID)
}

// GetYouth returns a club's youth academy players.
func (r *PlayerRepository) GetYouth(ctx context.Context, clubID string) ([]*gen.Player, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM players
		WHERE club_id = $1 AND is_youth = true
		ORDER BY potential DESC, player_id
	`
	return r.queryPlayers(ctx, query, clubID)
}

// Search finds players by partial name match, optionally filtered by position
// group. The limit caps the result set; zero means the default of 50.
func (r *PlayerRepository) Search(ctx context.Context, name, positionGroup string, limit int) ([]*gen.Player, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT ` + playerColumns + `
		FROM players
		WHERE full_name ILIKE '%' || $1 || '%'
			AND ($2 = '' OR position_group = $2)
		ORDER BY overall_rating DESC, player_id
		LIMIT $3
	`
	return r.queryPlayers(ctx, query, name, positionGroup, limit)
}
