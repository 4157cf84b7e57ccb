package sim

import (
	"fmt"
	"sort"
)

// FormWindow bounds the rolling result string kept per club.
const FormWindow = 5

// TableRow is one club's accumulated season record. Rows are mutated in
// place as fixtures are applied; Position is assigned only when the table is
// finalized after the last fixture.
type TableRow struct {
	Season         string `json:"season"`
	ClubID         string `json:"club_id"`
	ClubName       string `json:"club_name"`
	Position       int    `json:"position"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
	Form           string `json:"form"`
	HomeWins       int    `json:"home_wins"`
	HomeDraws      int    `json:"home_draws"`
	HomeLosses     int    `json:"home_losses"`
	AwayWins       int    `json:"away_wins"`
	AwayDraws      int    `json:"away_draws"`
	AwayLosses     int    `json:"away_losses"`
}

// Table is the league standings under accumulation. It is owned exclusively
// by whoever is applying fixtures; no concurrent readers during the batch.
type Table struct {
	season string
	rows   map[string]*TableRow
	// order preserves club insertion order so the finalizing sort is
	// stable across identical re-runs.
	order []string
}

// NewTable creates a zeroed row for every club.
func NewTable(clubs []ClubSeed, season string) *Table {
	t := &Table{
		season: season,
		rows:   make(map[string]*TableRow, len(clubs)),
		order:  make([]string, 0, len(clubs)),
	}
	for _, c := range clubs {
		t.rows[c.ID] = &TableRow{
			Season:   season,
			ClubID:   c.ID,
			ClubName: c.Name,
		}
		t.order = append(t.order, c.ID)
	}
	return t
}

// Row returns the row for a club, if present.
func (t *Table) Row(clubID string) (*TableRow, bool) {
	r, ok := t.rows[clubID]
	return r, ok
}

// ApplyResult folds one completed fixture into the table: both rows get the
// played and goal tallies, the W/D/L counters and points, and their form
// string updated together before the next fixture is processed.
func (t *Table) ApplyResult(homeID, awayID string, homeGoals, awayGoals int) error {
	home, ok := t.rows[homeID]
	if !ok {
		return fmt.Errorf("%w: home club %s has no table row", ErrUnknownClub, homeID)
	}
	away, ok := t.rows[awayID]
	if !ok {
		return fmt.Errorf("%w: away club %s has no table row", ErrUnknownClub, awayID)
	}

	home.Played++
	away.Played++
	home.GoalsFor += homeGoals
	home.GoalsAgainst += awayGoals
	away.GoalsFor += awayGoals
	away.GoalsAgainst += homeGoals

	var homeResult, awayResult string
	switch {
	case homeGoals > awayGoals:
		home.Won++
		home.HomeWins++
		home.Points += 3
		away.Lost++
		away.AwayLosses++
		homeResult, awayResult = "W", "L"
	case homeGoals < awayGoals:
		away.Won++
		away.AwayWins++
		away.Points += 3
		home.Lost++
		home.HomeLosses++
		homeResult, awayResult = "L", "W"
	default:
		home.Drawn++
		home.HomeDraws++
		home.Points++
		away.Drawn++
		away.AwayDraws++
		away.Points++
		homeResult, awayResult = "D", "D"
	}

	home.Form = appendForm(home.Form, homeResult)
	away.Form = appendForm(away.Form, awayResult)
	return nil
}

func appendForm(form, result string) string {
	form += result
	if len(form) > FormWindow {
		form = form[len(form)-FormWindow:]
	}
	return form
}

// Finalize recomputes goal difference, sorts by points, goal difference and
// goals scored (all descending), and assigns 1-indexed positions. The sort
// is stable, so ties beyond the three keys keep club insertion order and an
// identical input always yields an identical ranking.
func (t *Table) Finalize() []*TableRow {
	rows := make([]*TableRow, 0, len(t.order))
	for _, id := range t.order {
		r := t.rows[id]
		r.GoalDifference = r.GoalsFor - r.GoalsAgainst
		rows = append(rows, r)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		return a.GoalsFor > b.GoalsFor
	})

	for i, r := range rows {
		r.Position = i + 1
	}
	return rows
}

// SimulateSeason drives every fixture through the outcome model in input
// order, mutating the fixtures to completed with frozen scores, and returns
// the finalized standings. A failure mid-batch is fatal: the table is purely
// derived and is regenerated from empty state on the next run.
func SimulateSeason(fixtures []*Fixture, clubs []ClubSeed, model *OutcomeModel) ([]*TableRow, error) {
	if len(fixtures) == 0 {
		return nil, fmt.Errorf("%w: no fixtures to simulate", ErrInvalidInput)
	}

	strengths := make(map[string]float64, len(clubs))
	for _, c := range clubs {
		if c.Strength <= 0 {
			return nil, fmt.Errorf("%w: club %s has non-positive strength %.2f",
				ErrConfigurationDefect, c.ID, c.Strength)
		}
		strengths[c.ID] = c.Strength
	}

	table := NewTable(clubs, fixtures[0].Season)

	for _, f := range fixtures {
		homeStrength, ok := strengths[f.HomeClubID]
		if !ok {
			return nil, fmt.Errorf("%w: fixture %s references home club %s", ErrUnknownClub, f.MatchID, f.HomeClubID)
		}
		awayStrength, ok := strengths[f.AwayClubID]
		if !ok {
			return nil, fmt.Errorf("%w: fixture %s references away club %s", ErrUnknownClub, f.MatchID, f.AwayClubID)
		}

		homeGoals, awayGoals, err := model.Simulate(homeStrength, awayStrength)
		if err != nil {
			return nil, fmt.Errorf("simulating %s: %w", f.MatchID, err)
		}

		f.HomeGoals = &homeGoals
		f.AwayGoals = &awayGoals
		f.Status = FixtureCompleted

		if err := table.ApplyResult(f.HomeClubID, f.AwayClubID, homeGoals, awayGoals); err != nil {
			return nil, fmt.Errorf("applying %s: %w", f.MatchID, err)
		}
	}

	return table.Finalize(), nil
}

// BuildTable rebuilds standings from already-completed fixtures, applied in
// input order. Scheduled fixtures are skipped. Used to re-derive the table
// for replay views and to verify ranking determinism.
func BuildTable(fixtures []*Fixture, clubs []ClubSeed, season string) ([]*TableRow, error) {
	table := NewTable(clubs, season)
	for _, f := range fixtures {
		if f.Status != FixtureCompleted || f.HomeGoals == nil || f.AwayGoals == nil {
			continue
		}
		if err := table.ApplyResult(f.HomeClubID, f.AwayClubID, *f.HomeGoals, *f.AwayGoals); err != nil {
			return nil, fmt.Errorf("applying %s: %w", f.MatchID, err)
		}
	}
	return table.Finalize(), nil
}
