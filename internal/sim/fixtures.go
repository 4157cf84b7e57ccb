package sim

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FixtureStatus tracks a fixture through its lifecycle. Fixtures are created
// scheduled and transitioned exactly once to completed by the simulator.
type FixtureStatus string

const (
	FixtureScheduled FixtureStatus = "scheduled"
	FixtureCompleted FixtureStatus = "completed"
)

// ClubSeed is the minimal club view the simulation operates on: identity and
// an aggregate strength derived from the club's roster.
type ClubSeed struct {
	ID       string
	Name     string
	Strength float64
}

// Fixture is a single match in the season schedule. HomeGoals and AwayGoals
// are nil until the match has been simulated.
type Fixture struct {
	MatchID      string        `json:"match_id"`
	Season       string        `json:"season"`
	Matchday     int           `json:"matchday"`
	Date         time.Time     `json:"date"`
	HomeClubID   string        `json:"home_club_id"`
	HomeClubName string        `json:"home_club_name"`
	AwayClubID   string        `json:"away_club_id"`
	AwayClubName string        `json:"away_club_name"`
	HomeGoals    *int          `json:"home_goals"`
	AwayGoals    *int          `json:"away_goals"`
	Status       FixtureStatus `json:"status"`
}

// GenerateFixtures builds the full double round-robin schedule for the given
// clubs: every unordered pair meets twice, once at each venue, so N clubs
// yield exactly N*(N-1) fixtures. Club ids must be unique; that is a caller
// contract and is not re-checked here.
func GenerateFixtures(clubs []ClubSeed, season string) ([]*Fixture, error) {
	n := len(clubs)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 clubs for a round-robin, got %d", ErrInvalidInput, n)
	}
	if n%2 != 0 {
		return nil, fmt.Errorf("%w: club count must be even, got %d", ErrInvalidInput, n)
	}

	startYear, err := SeasonStartYear(season)
	if err != nil {
		return nil, err
	}
	// Nominal weekly cadence from mid-August of the season's start year.
	kickoff := time.Date(startYear, time.August, 15, 0, 0, 0, 0, time.UTC)

	perMatchday := n / 2
	fixtures := make([]*Fixture, 0, n*(n-1))
	matchNum := 1

	for round := 0; round < 2; round++ {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				home, away := clubs[i], clubs[j]
				if round == 1 {
					// Reverse fixture with home advantage swapped.
					home, away = clubs[j], clubs[i]
				}

				matchday := len(fixtures)/perMatchday + 1
				fixtures = append(fixtures, &Fixture{
					MatchID:      fmt.Sprintf("MTH_%05d", matchNum),
					Season:       season,
					Matchday:     matchday,
					Date:         kickoff.AddDate(0, 0, 7*(matchday-1)),
					HomeClubID:   home.ID,
					HomeClubName: home.Name,
					AwayClubID:   away.ID,
					AwayClubName: away.Name,
					Status:       FixtureScheduled,
				})
				matchNum++
			}
		}
	}

	return fixtures, nil
}

// SeasonStartYear parses the starting year out of a season tag like "2024/25".
func SeasonStartYear(season string) (int, error) {
	first, _, ok := strings.Cut(season, "/")
	if !ok {
		return 0, fmt.Errorf("%w: season %q is not in YYYY/YY form", ErrInvalidInput, season)
	}
	year, err := strconv.Atoi(first)
	if err != nil {
		return 0, fmt.Errorf("%w: season %q has a non-numeric start year", ErrInvalidInput, season)
	}
	return year, nil
}
