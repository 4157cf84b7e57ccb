package sim

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func simulateFourClubSeason(t *testing.T, seed int64) ([]*Fixture, []*TableRow, []ClubSeed) {
	t.Helper()

	clubs := []ClubSeed{
		{ID: "CLB_00001", Name: "A", Strength: 70},
		{ID: "CLB_00002", Name: "B", Strength: 70},
		{ID: "CLB_00003", Name: "C", Strength: 70},
		{ID: "CLB_00004", Name: "D", Strength: 70},
	}

	fixtures, err := GenerateFixtures(clubs, "2024/25")
	require.NoError(t, err)
	require.Len(t, fixtures, 12)

	rows, err := SimulateSeason(fixtures, clubs, NewOutcomeModel(rand.New(rand.NewSource(seed))))
	require.NoError(t, err)
	return fixtures, rows, clubs
}

func TestSimulateSeasonFourClubScenario(t *testing.T) {
	fixtures, rows, _ := simulateFourClubSeason(t, 42)

	require.Len(t, rows, 4)

	totalPoints := 0
	for _, r := range rows {
		// Each club meets the other three home and away.
		require.Equalf(t, 6, r.Played, "club %s played", r.ClubID)
		totalPoints += r.Points
	}

	// 12 matches, each worth 2 (draw) or 3 points.
	require.GreaterOrEqual(t, totalPoints, 24)
	require.LessOrEqual(t, totalPoints, 36)

	for _, f := range fixtures {
		require.Equal(t, FixtureCompleted, f.Status)
		require.NotNil(t, f.HomeGoals)
		require.NotNil(t, f.AwayGoals)
	}
}

func TestSimulateSeasonTableInvariants(t *testing.T) {
	fixtures, rows, _ := simulateFourClubSeason(t, 3)

	var goalsFor, goalsAgainst, fixtureGoals int
	for _, f := range fixtures {
		fixtureGoals += *f.HomeGoals + *f.AwayGoals
	}

	for _, r := range rows {
		if r.Points != 3*r.Won+r.Drawn {
			t.Errorf("%s: points = %d, want %d", r.ClubID, r.Points, 3*r.Won+r.Drawn)
		}
		if r.Played != r.Won+r.Drawn+r.Lost {
			t.Errorf("%s: played = %d, want %d", r.ClubID, r.Played, r.Won+r.Drawn+r.Lost)
		}
		if r.GoalDifference != r.GoalsFor-r.GoalsAgainst {
			t.Errorf("%s: goal difference = %d, want %d", r.ClubID, r.GoalDifference, r.GoalsFor-r.GoalsAgainst)
		}
		if r.Won != r.HomeWins+r.AwayWins || r.Drawn != r.HomeDraws+r.AwayDraws || r.Lost != r.HomeLosses+r.AwayLosses {
			t.Errorf("%s: home/away splits do not sum to season totals", r.ClubID)
		}
		if len(r.Form) > FormWindow {
			t.Errorf("%s: form %q exceeds %d results", r.ClubID, r.Form, FormWindow)
		}
		goalsFor += r.GoalsFor
		goalsAgainst += r.GoalsAgainst
	}

	// Goals are conserved: every goal scored is a goal conceded.
	if goalsFor != goalsAgainst || goalsFor != fixtureGoals {
		t.Errorf("goal conservation violated: for=%d against=%d fixtures=%d", goalsFor, goalsAgainst, fixtureGoals)
	}
}

func TestSimulateSeasonPositionsAreDenseRanks(t *testing.T) {
	_, rows, _ := simulateFourClubSeason(t, 11)

	for i, r := range rows {
		if r.Position != i+1 {
			t.Errorf("row %d has position %d", i, r.Position)
		}
		if i > 0 {
			prev := rows[i-1]
			better := prev.Points > r.Points ||
				(prev.Points == r.Points && prev.GoalDifference > r.GoalDifference) ||
				(prev.Points == r.Points && prev.GoalDifference == r.GoalDifference && prev.GoalsFor >= r.GoalsFor)
			if !better {
				t.Errorf("ordering violated between positions %d and %d", prev.Position, r.Position)
			}
		}
	}
}

func TestBuildTableRankingDeterminism(t *testing.T) {
	fixtures, simulated, clubs := simulateFourClubSeason(t, 8)

	// Rebuilding from the same completed fixture list must reproduce the
	// simulator's ordering and positions exactly, every time.
	for run := 0; run < 3; run++ {
		rebuilt, err := BuildTable(fixtures, clubs, "2024/25")
		require.NoError(t, err)
		require.Len(t, rebuilt, len(simulated))
		for i := range rebuilt {
			require.Equal(t, simulated[i].ClubID, rebuilt[i].ClubID, "run %d row %d", run, i)
			require.Equal(t, simulated[i].Position, rebuilt[i].Position)
			require.Equal(t, simulated[i].Points, rebuilt[i].Points)
			require.Equal(t, simulated[i].Form, rebuilt[i].Form)
		}
	}
}

func TestApplyResultFormWindow(t *testing.T) {
	clubs := []ClubSeed{{ID: "h", Name: "H"}, {ID: "a", Name: "A"}}
	table := NewTable(clubs, "2024/25")

	// Eight straight home wins: the away side's form must stay capped.
	for i := 0; i < 8; i++ {
		if err := table.ApplyResult("h", "a", 2, 0); err != nil {
			t.Fatal(err)
		}
		home, _ := table.Row("h")
		away, _ := table.Row("a")
		if len(home.Form) > FormWindow || len(away.Form) > FormWindow {
			t.Fatalf("form exceeded window after %d results: %q / %q", i+1, home.Form, away.Form)
		}
	}

	home, _ := table.Row("h")
	away, _ := table.Row("a")
	if home.Form != "WWWWW" || away.Form != "LLLLL" {
		t.Errorf("form = %q / %q, want WWWWW / LLLLL", home.Form, away.Form)
	}
}

func TestApplyResultDrawAndMirroredUpdates(t *testing.T) {
	clubs := []ClubSeed{{ID: "h", Name: "H"}, {ID: "a", Name: "A"}}
	table := NewTable(clubs, "2024/25")

	if err := table.ApplyResult("h", "a", 1, 1); err != nil {
		t.Fatal(err)
	}
	if err := table.ApplyResult("h", "a", 0, 3); err != nil {
		t.Fatal(err)
	}

	home, _ := table.Row("h")
	away, _ := table.Row("a")

	if home.Points != 1 || away.Points != 4 {
		t.Errorf("points = %d / %d, want 1 / 4", home.Points, away.Points)
	}
	if home.HomeDraws != 1 || home.HomeLosses != 1 || away.AwayDraws != 1 || away.AwayWins != 1 {
		t.Errorf("home/away split counters wrong: %+v %+v", home, away)
	}
	if home.Form != "DL" || away.Form != "DW" {
		t.Errorf("form = %q / %q, want DL / DW", home.Form, away.Form)
	}
}

func TestSimulateSeasonUnknownClub(t *testing.T) {
	clubs := []ClubSeed{
		{ID: "CLB_00001", Name: "A", Strength: 70},
		{ID: "CLB_00002", Name: "B", Strength: 70},
	}
	fixtures, err := GenerateFixtures(clubs, "2024/25")
	require.NoError(t, err)

	// Simulate against a roster that is missing one referenced club.
	_, err = SimulateSeason(fixtures, clubs[:1], NewOutcomeModel(rand.New(rand.NewSource(1))))
	if !errors.Is(err, ErrUnknownClub) {
		t.Errorf("got %v, want ErrUnknownClub", err)
	}
}

func TestSimulateSeasonConfigurationDefect(t *testing.T) {
	clubs := []ClubSeed{
		{ID: "CLB_00001", Name: "A", Strength: 0},
		{ID: "CLB_00002", Name: "B", Strength: 70},
	}
	fixtures, err := GenerateFixtures(clubs, "2024/25")
	require.NoError(t, err)

	_, err = SimulateSeason(fixtures, clubs, NewOutcomeModel(rand.New(rand.NewSource(1))))
	if !errors.Is(err, ErrConfigurationDefect) {
		t.Errorf("got %v, want ErrConfigurationDefect", err)
	}
}
