package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/ironforge/footylab/internal/dataset"
	"github.com/ironforge/footylab/internal/gen"
)

// LoadDataset replaces the stored dataset with a freshly generated one. All
// tables are rewritten in a single transaction so readers never observe a
// half-loaded league.
func (db *Database) LoadDataset(ctx context.Context, ds *dataset.Dataset) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin load transaction: %w", err)
	}
	defer tx.Rollback()

	tables := []string{"transfers", "league_table", "matches", "players", "staff", "clubs", "seasons", "league"}
	for _, table := range tables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if err := insertLeague(ctx, tx, ds); err != nil {
		return err
	}
	if err := insertSeasons(ctx, tx, ds); err != nil {
		return err
	}
	if err := insertClubs(ctx, tx, ds); err != nil {
		return err
	}
	if err := insertStaff(ctx, tx, ds); err != nil {
		return err
	}
	if err := insertPlayers(ctx, tx, ds); err != nil {
		return err
	}
	if err := insertMatches(ctx, tx, ds); err != nil {
		return err
	}
	if err := insertLeagueTable(ctx, tx, ds); err != nil {
		return err
	}
	if err := insertTransfers(ctx, tx, ds); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO dataset_runs (run_id, seed, season, num_clubs, generated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		ds.RunID, ds.Seed, ds.Season, len(ds.Clubs), ds.GeneratedAt); err != nil {
		return fmt.Errorf("recording dataset run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit load transaction: %w", err)
	}

	log.Printf("✓ Loaded dataset %s (%d clubs, %d players, %d matches)",
		ds.RunID, len(ds.Clubs), len(ds.Players)+len(ds.Youth), len(ds.Fixtures))
	return nil
}

// HasDataset reports whether a dataset for the season is already loaded.
func (db *Database) HasDataset(ctx context.Context, season string) (bool, error) {
	var count int
	err := db.conn.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM matches WHERE season = $1", season).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking for existing dataset: %w", err)
	}
	return count > 0, nil
}

// LatestRun returns the most recent dataset run, or sql.ErrNoRows when the
// store has never been loaded.
func (db *Database) LatestRun(ctx context.Context) (*DatasetRun, error) {
	var run DatasetRun
	err := db.conn.QueryRowContext(ctx, `
		SELECT run_id, seed, season, num_clubs, generated_at
		FROM dataset_runs
		ORDER BY generated_at DESC
		LIMIT 1`).Scan(&run.RunID, &run.Seed, &run.Season, &run.NumClubs, &run.GeneratedAt)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func insertLeague(ctx context.Context, tx *sql.Tx, ds *dataset.Dataset) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO league (
			league_id, name, short_name, country, num_teams,
			promotion_spots, relegation_spots, european_spots,
			season_format, points_for_win, points_for_draw, points_for_loss
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		ds.League.LeagueID, ds.League.Name, ds.League.ShortName, ds.League.Country,
		ds.League.NumTeams, ds.League.PromotionSpots, ds.League.RelegationSpots,
		ds.League.EuropeanSpots, ds.League.SeasonFormat, ds.League.PointsForWin,
		ds.League.PointsForDraw, ds.League.PointsForLoss)
	if err != nil {
		return fmt.Errorf("inserting league: %w", err)
	}
	return nil
}

func insertSeasons(ctx context.Context, tx *sql.Tx, ds *dataset.Dataset) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO seasons (
			season_id, season, start_year, end_year,
			start_date, end_date, num_matchdays, is_current
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range ds.Seasons {
		if _, err := stmt.ExecContext(ctx, s.SeasonID, s.Season, s.StartYear, s.EndYear,
			s.StartDate, s.EndDate, s.NumMatchdays, s.IsCurrent); err != nil {
			return fmt.Errorf("inserting season %s: %w", s.Season, err)
		}
	}
	return nil
}

func insertClubs(ctx context.Context, tx *sql.Tx, ds *dataset.Dataset) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO clubs (
			club_id, full_name, short_name, city, tier, founded_year,
			stadium_name, stadium_capacity, primary_color, secondary_color,
			annual_budget_millions, reputation, training_facility_rating,
			youth_academy_rating, preferred_formation, playing_style
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range ds.Clubs {
		if _, err := stmt.ExecContext(ctx, c.ClubID, c.FullName, c.ShortName, c.City, c.Tier,
			c.FoundedYear, c.StadiumName, c.StadiumCapacity, c.PrimaryColor, c.SecondaryColor,
			c.AnnualBudgetMillions, c.Reputation, c.TrainingFacilityRating,
			c.YouthAcademyRating, c.PreferredFormation, c.PlayingStyle); err != nil {
			return fmt.Errorf("inserting club %s: %w", c.ClubID, err)
		}
	}
	return nil
}

func insertStaff(ctx context.Context, tx *sql.Tx, ds *dataset.Dataset) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO staff (
			staff_id, club_id, role, first_name, last_name, full_name,
			nationality, age, tactical_rating, man_management_rating,
			specialization_rating, contract_years
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range ds.Staff {
		if _, err := stmt.ExecContext(ctx, s.StaffID, s.ClubID, s.Role, s.FirstName, s.LastName,
			s.FullName, s.Nationality, s.Age, s.TacticalRating, s.ManManagementRating,
			s.SpecializationRating, s.ContractYears); err != nil {
			return fmt.Errorf("inserting staff %s: %w", s.StaffID, err)
		}
	}
	return nil
}

func insertPlayers(ctx context.Context, tx *sql.Tx, ds *dataset.Dataset) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO players (
			player_id, club_id, first_name, last_name, full_name,
			nationality, date_of_birth, age, height_cm, weight_kg,
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
			is_youth, youth_entry_year
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35, $36, $37, $38, $39, $40,
			$41, $42, $43, $44, $45, $46, $47, $48, $49, $50,
			$51, $52, $53, $54, $55, $56, $57, $58, $59, $60
		)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, list := range [][]gen.Player{ds.Players, ds.Youth} {
		for _, p := range list {
			if _, err := stmt.ExecContext(ctx,
				p.PlayerID, p.ClubID, p.FirstName, p.LastName, p.FullName,
				p.Nationality, p.DateOfBirth, p.Age, p.HeightCM, p.WeightKG,
				p.PreferredFoot, p.PositionGroup, p.PrimaryPosition, p.SecondaryPositions,
				p.OverallRating, p.Potential,
				p.Physical.Pace, p.Physical.Strength, p.Physical.Stamina,
				p.Technical.Diving, p.Technical.Handling, p.Technical.Kicking,
				p.Technical.Reflexes, p.Technical.Positioning,
				p.Technical.Tackling, p.Technical.Marking, p.Technical.Heading,
				p.Technical.Passing, p.Technical.BallControl,
				p.Technical.Dribbling, p.Technical.Shooting, p.Technical.Finishing,
				p.Mental.Positioning, p.Mental.Concentration, p.Mental.DecisionMaking,
				p.Mental.Leadership, p.Mental.Vision, p.Mental.WorkRate, p.Mental.Composure,
				p.ContractYearsRemaining, p.MarketValue, p.WeeklyWage, p.JerseyNumber,
				p.CurrentForm, p.FitnessLevel, p.Morale, p.InjuryStatus,
				p.Leadership, p.Professionalism, p.Temperament, p.Consistency, p.InjuryProneness,
				p.CareerAppearances, p.CareerGoals, p.CareerAssists,
				p.CareerYellowCards, p.CareerRedCards, p.CareerCleanSheets,
				p.IsYouth, p.YouthEntryYear); err != nil {
				return fmt.Errorf("inserting player %s: %w", p.PlayerID, err)
			}
		}
	}
	return nil
}

func insertMatches(ctx context.Context, tx *sql.Tx, ds *dataset.Dataset) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO matches (
			match_id, season, matchday, match_date,
			home_club_id, home_club_name, away_club_id, away_club_name,
			home_goals, away_goals, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, f := range ds.Fixtures {
		var homeGoals, awayGoals sql.NullInt32
		if f.HomeGoals != nil {
			homeGoals = sql.NullInt32{Int32: int32(*f.HomeGoals), Valid: true}
		}
		if f.AwayGoals != nil {
			awayGoals = sql.NullInt32{Int32: int32(*f.AwayGoals), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, f.MatchID, f.Season, f.Matchday, f.Date,
			f.HomeClubID, f.HomeClubName, f.AwayClubID, f.AwayClubName,
			homeGoals, awayGoals, string(f.Status)); err != nil {
			return fmt.Errorf("inserting match %s: %w", f.MatchID, err)
		}
	}
	return nil
}

func insertLeagueTable(ctx context.Context, tx *sql.Tx, ds *dataset.Dataset) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO league_table (
			season, club_id, club_name, position, played, won, drawn, lost,
			goals_for, goals_against, goal_difference, points, form,
			home_wins, home_draws, home_losses, away_wins, away_draws, away_losses
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range ds.Table {
		if _, err := stmt.ExecContext(ctx, r.Season, r.ClubID, r.ClubName, r.Position,
			r.Played, r.Won, r.Drawn, r.Lost, r.GoalsFor, r.GoalsAgainst,
			r.GoalDifference, r.Points, r.Form,
			r.HomeWins, r.HomeDraws, r.HomeLosses,
			r.AwayWins, r.AwayDraws, r.AwayLosses); err != nil {
			return fmt.Errorf("inserting table row %s: %w", r.ClubID, err)
		}
	}
	return nil
}

func insertTransfers(ctx context.Context, tx *sql.Tx, ds *dataset.Dataset) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transfers (
			transfer_id, season, transfer_window, transfer_date,
			player_id, player_name, from_club, to_club,
			transfer_type, transfer_fee, contract_length_years, weekly_wage,
			player_age, player_ability, reason
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range ds.Transfers {
		if _, err := stmt.ExecContext(ctx, t.TransferID, t.Season, t.Window, t.Date,
			t.PlayerID, t.PlayerName, t.FromClub, t.ToClub,
			t.Type, t.Fee, t.ContractLengthYears, t.WeeklyWage,
			t.PlayerAge, t.PlayerAbility, t.Reason); err != nil {
			return fmt.Errorf("inserting transfer %s: %w", t.TransferID, err)
		}
	}
	return nil
}
