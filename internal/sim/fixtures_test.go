package sim

import (
	"errors"
	"fmt"
	"testing"
)

func seedClubs(n int) []ClubSeed {
	clubs := make([]ClubSeed, 0, n)
	for i := 0; i < n; i++ {
		clubs = append(clubs, ClubSeed{
			ID:       fmt.Sprintf("CLB_%05d", i+1),
			Name:     fmt.Sprintf("Club %d", i+1),
			Strength: 70,
		})
	}
	return clubs
}

func TestGenerateFixturesRoundRobinCompleteness(t *testing.T) {
	for _, n := range []int{2, 4, 6, 20} {
		t.Run(fmt.Sprintf("%d_clubs", n), func(t *testing.T) {
			fixtures, err := GenerateFixtures(seedClubs(n), "2024/25")
			if err != nil {
				t.Fatalf("GenerateFixtures(%d): %v", n, err)
			}

			want := n * (n - 1)
			if len(fixtures) != want {
				t.Fatalf("got %d fixtures, want %d", len(fixtures), want)
			}

			// Every ordered pair (home, away) must appear exactly once.
			seen := make(map[string]int)
			for _, f := range fixtures {
				seen[f.HomeClubID+"|"+f.AwayClubID]++
				if f.HomeClubID == f.AwayClubID {
					t.Errorf("fixture %s has a club playing itself", f.MatchID)
				}
			}
			if len(seen) != want {
				t.Errorf("got %d distinct ordered pairs, want %d", len(seen), want)
			}
			for pair, count := range seen {
				if count != 1 {
					t.Errorf("ordered pair %s appears %d times", pair, count)
				}
			}
		})
	}
}

func TestGenerateFixturesInitialState(t *testing.T) {
	fixtures, err := GenerateFixtures(seedClubs(4), "2024/25")
	if err != nil {
		t.Fatal(err)
	}

	for _, f := range fixtures {
		if f.Status != FixtureScheduled {
			t.Errorf("%s: status = %q, want scheduled", f.MatchID, f.Status)
		}
		if f.HomeGoals != nil || f.AwayGoals != nil {
			t.Errorf("%s: scores set before simulation", f.MatchID)
		}
		if f.Season != "2024/25" {
			t.Errorf("%s: season = %q", f.MatchID, f.Season)
		}
	}
}

func TestGenerateFixturesDatesAndMatchdaysAdvanceOnly(t *testing.T) {
	fixtures, err := GenerateFixtures(seedClubs(6), "2022/23")
	if err != nil {
		t.Fatal(err)
	}

	if fixtures[0].Date.Year() != 2022 || fixtures[0].Date.Month() != 8 {
		t.Errorf("first fixture date = %v, want mid-August 2022", fixtures[0].Date)
	}

	for i := 1; i < len(fixtures); i++ {
		prev, cur := fixtures[i-1], fixtures[i]
		if cur.Matchday < prev.Matchday {
			t.Fatalf("matchday regressed at %s: %d -> %d", cur.MatchID, prev.Matchday, cur.Matchday)
		}
		if cur.Date.Before(prev.Date) {
			t.Fatalf("date regressed at %s: %v -> %v", cur.MatchID, prev.Date, cur.Date)
		}
	}
}

func TestGenerateFixturesInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		clubs  []ClubSeed
		season string
	}{
		{"no clubs", nil, "2024/25"},
		{"single club", seedClubs(1), "2024/25"},
		{"odd count", seedClubs(5), "2024/25"},
		{"bad season tag", seedClubs(4), "latest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateFixtures(tt.clubs, tt.season)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("got %v, want ErrInvalidInput", err)
			}
		})
	}
}
