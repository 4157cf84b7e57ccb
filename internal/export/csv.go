// Package export writes the generated dataset to the flat CSV artifacts the
// dashboard consumes.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ironforge/footylab/internal/dataset"
	"github.com/ironforge/footylab/internal/gen"
	"github.com/ironforge/footylab/internal/sim"
)

// WriteAll writes every artifact for the dataset into dir, creating it if
// needed. Filenames for per-season artifacts carry the season tag with the
// slash flattened, e.g. matches_2024_25.csv.
func WriteAll(dir string, ds *dataset.Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	tag := seasonFileTag(ds.Season)
	writers := []struct {
		name  string
		write func(path string) error
	}{
		{"league_info.csv", func(p string) error { return WriteLeagueInfo(p, ds.League) }},
		{"seasons.csv", func(p string) error { return WriteSeasons(p, ds.Seasons) }},
		{"clubs.csv", func(p string) error { return WriteClubs(p, ds.Clubs) }},
		{"staff.csv", func(p string) error { return WriteStaff(p, ds.Staff) }},
		{"players.csv", func(p string) error { return WritePlayers(p, ds.Players) }},
		{"youth_academy.csv", func(p string) error { return WritePlayers(p, ds.Youth) }},
		{fmt.Sprintf("matches_%s.csv", tag), func(p string) error { return WriteMatches(p, ds.Fixtures) }},
		{fmt.Sprintf("league_table_%s.csv", tag), func(p string) error { return WriteLeagueTable(p, ds.Table) }},
		{"transfer_history.csv", func(p string) error { return WriteTransfers(p, ds.Transfers) }},
	}

	for _, w := range writers {
		if err := w.write(filepath.Join(dir, w.name)); err != nil {
			return fmt.Errorf("writing %s: %w", w.name, err)
		}
	}
	return nil
}

func seasonFileTag(season string) string {
	return strings.ReplaceAll(season, "/", "_")
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }

func btoa(v bool) string { return strconv.FormatBool(v) }

func goals(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// WriteLeagueInfo writes the single-row league description.
func WriteLeagueInfo(path string, league dataset.League) error {
	header := []string{
		"league_id", "name", "short_name", "country", "num_teams",
		"promotion_spots", "relegation_spots", "european_spots",
		"season_format", "points_for_win", "points_for_draw", "points_for_loss",
	}
	row := []string{
		league.LeagueID, league.Name, league.ShortName, league.Country, itoa(league.NumTeams),
		itoa(league.PromotionSpots), itoa(league.RelegationSpots), itoa(league.EuropeanSpots),
		league.SeasonFormat, itoa(league.PointsForWin), itoa(league.PointsForDraw), itoa(league.PointsForLoss),
	}
	return writeCSV(path, header, [][]string{row})
}

// WriteSeasons writes the season catalogue.
func WriteSeasons(path string, seasons []dataset.SeasonInfo) error {
	header := []string{"season_id", "season", "start_year", "end_year", "start_date", "end_date", "num_matchdays", "is_current"}
	rows := make([][]string, 0, len(seasons))
	for _, s := range seasons {
		rows = append(rows, []string{
			s.SeasonID, s.Season, itoa(s.StartYear), itoa(s.EndYear),
			s.StartDate, s.EndDate, itoa(s.NumMatchdays), btoa(s.IsCurrent),
		})
	}
	return writeCSV(path, header, rows)
}

// WriteClubs writes the club roster.
func WriteClubs(path string, clubs []gen.Club) error {
	header := []string{
		"club_id", "full_name", "short_name", "city", "tier", "founded_year",
		"stadium_name", "stadium_capacity", "primary_color", "secondary_color",
		"annual_budget_millions", "reputation", "training_facility_rating",
		"youth_academy_rating", "preferred_formation", "playing_style",
	}
	rows := make([][]string, 0, len(clubs))
	for _, c := range clubs {
		rows = append(rows, []string{
			c.ClubID, c.FullName, c.ShortName, c.City, c.Tier, itoa(c.FoundedYear),
			c.StadiumName, itoa(c.StadiumCapacity), c.PrimaryColor, c.SecondaryColor,
			itoa(c.AnnualBudgetMillions), itoa(c.Reputation), itoa(c.TrainingFacilityRating),
			itoa(c.YouthAcademyRating), c.PreferredFormation, c.PlayingStyle,
		})
	}
	return writeCSV(path, header, rows)
}

// WriteStaff writes managers and coaches.
func WriteStaff(path string, staff []gen.StaffMember) error {
	header := []string{
		"staff_id", "club_id", "role", "first_name", "last_name", "full_name",
		"nationality", "age", "tactical_rating", "man_management_rating",
		"specialization_rating", "contract_years",
	}
	rows := make([][]string, 0, len(staff))
	for _, s := range staff {
		rows = append(rows, []string{
			s.StaffID, s.ClubID, s.Role, s.FirstName, s.LastName, s.FullName,
			s.Nationality, itoa(s.Age), itoa(s.TacticalRating), itoa(s.ManManagementRating),
			itoa(s.SpecializationRating), itoa(s.ContractYears),
		})
	}
	return writeCSV(path, header, rows)
}

// playerHeader is shared by the players and youth_academy artifacts.
var playerHeader = []string{
	"player_id", "club_id", "first_name", "last_name", "full_name",
	"nationality", "date_of_birth", "age", "height_cm", "weight_kg",
	"preferred_foot", "position_group", "primary_position", "secondary_positions",
	"overall_rating", "potential",
	"phys_pace", "phys_strength", "phys_stamina",
	"tech_diving", "tech_handling", "tech_kicking", "tech_reflexes", "tech_positioning",
	"tech_tackling", "tech_marking", "tech_heading", "tech_passing", "tech_ball_control",
	"tech_dribbling", "tech_shooting", "tech_finishing",
	"mental_positioning", "mental_concentration", "mental_decision_making",
	"mental_leadership", "mental_vision", "mental_work_rate", "mental_composure",
	"contract_years_remaining", "market_value", "weekly_wage", "jersey_number",
	"current_form", "fitness_level", "morale", "injury_status",
	"leadership", "professionalism", "temperament", "consistency", "injury_proneness",
	"career_appearances", "career_goals", "career_assists",
	"career_yellow_cards", "career_red_cards", "career_clean_sheets",
	"is_youth", "youth_entry_year",
}

// WritePlayers writes a player list (first team or youth academy).
func WritePlayers(path string, players []gen.Player) error {
	rows := make([][]string, 0, len(players))
	for _, p := range players {
		rows = append(rows, []string{
			p.PlayerID, p.ClubID, p.FirstName, p.LastName, p.FullName,
			p.Nationality, p.DateOfBirth, itoa(p.Age), itoa(p.HeightCM), itoa(p.WeightKG),
			p.PreferredFoot, p.PositionGroup, p.PrimaryPosition, p.SecondaryPositions,
			ftoa(p.OverallRating), ftoa(p.Potential),
			itoa(p.Physical.Pace), itoa(p.Physical.Strength), itoa(p.Physical.Stamina),
			itoa(p.Technical.Diving), itoa(p.Technical.Handling), itoa(p.Technical.Kicking),
			itoa(p.Technical.Reflexes), itoa(p.Technical.Positioning),
			itoa(p.Technical.Tackling), itoa(p.Technical.Marking), itoa(p.Technical.Heading),
			itoa(p.Technical.Passing), itoa(p.Technical.BallControl),
			itoa(p.Technical.Dribbling), itoa(p.Technical.Shooting), itoa(p.Technical.Finishing),
			itoa(p.Mental.Positioning), itoa(p.Mental.Concentration), itoa(p.Mental.DecisionMaking),
			itoa(p.Mental.Leadership), itoa(p.Mental.Vision), itoa(p.Mental.WorkRate), itoa(p.Mental.Composure),
			itoa(p.ContractYearsRemaining), itoa(p.MarketValue), itoa(p.WeeklyWage), itoa(p.JerseyNumber),
			ftoa(p.CurrentForm), itoa(p.FitnessLevel), itoa(p.Morale), p.InjuryStatus,
			itoa(p.Leadership), itoa(p.Professionalism), p.Temperament, itoa(p.Consistency), itoa(p.InjuryProneness),
			itoa(p.CareerAppearances), itoa(p.CareerGoals), itoa(p.CareerAssists),
			itoa(p.CareerYellowCards), itoa(p.CareerRedCards), itoa(p.CareerCleanSheets),
			btoa(p.IsYouth), itoa(p.YouthEntryYear),
		})
	}
	return writeCSV(path, playerHeader, rows)
}

// WriteMatches writes one row per fixture, club names denormalized. Goal
// columns are empty for fixtures that were never simulated.
func WriteMatches(path string, fixtures []*sim.Fixture) error {
	header := []string{
		"match_id", "season", "matchday", "date",
		"home_club_id", "home_club_name", "away_club_id", "away_club_name",
		"home_goals", "away_goals", "status",
	}
	rows := make([][]string, 0, len(fixtures))
	for _, f := range fixtures {
		rows = append(rows, []string{
			f.MatchID, f.Season, itoa(f.Matchday), f.Date.Format("2006-01-02"),
			f.HomeClubID, f.HomeClubName, f.AwayClubID, f.AwayClubName,
			goals(f.HomeGoals), goals(f.AwayGoals), string(f.Status),
		})
	}
	return writeCSV(path, header, rows)
}

// WriteLeagueTable writes the final standings, already sorted by position.
func WriteLeagueTable(path string, rows []*sim.TableRow) error {
	header := []string{
		"season", "club_id", "club_name", "position",
		"played", "won", "drawn", "lost",
		"goals_for", "goals_against", "goal_difference", "points", "form",
		"home_wins", "home_draws", "home_losses",
		"away_wins", "away_draws", "away_losses",
	}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Season, r.ClubID, r.ClubName, itoa(r.Position),
			itoa(r.Played), itoa(r.Won), itoa(r.Drawn), itoa(r.Lost),
			itoa(r.GoalsFor), itoa(r.GoalsAgainst), itoa(r.GoalDifference), itoa(r.Points), r.Form,
			itoa(r.HomeWins), itoa(r.HomeDraws), itoa(r.HomeLosses),
			itoa(r.AwayWins), itoa(r.AwayDraws), itoa(r.AwayLosses),
		})
	}
	return writeCSV(path, header, out)
}

// WriteTransfers writes the historical transfer ledger.
func WriteTransfers(path string, transfers []gen.Transfer) error {
	header := []string{
		"transfer_id", "season", "transfer_window", "date",
		"player_id", "player_name", "from_club", "to_club",
		"transfer_type", "transfer_fee", "contract_length_years", "weekly_wage",
		"player_age", "player_ability", "reason",
	}
	rows := make([][]string, 0, len(transfers))
	for _, t := range transfers {
		rows = append(rows, []string{
			t.TransferID, t.Season, t.Window, t.Date,
			t.PlayerID, t.PlayerName, t.FromClub, t.ToClub,
			t.Type, itoa(t.Fee), itoa(t.ContractLengthYears), itoa(t.WeeklyWage),
			itoa(t.PlayerAge), ftoa(t.PlayerAbility), t.Reason,
		})
	}
	return writeCSV(path, header, rows)
}
