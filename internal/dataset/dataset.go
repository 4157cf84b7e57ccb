// Package dataset assembles a complete synthetic league dataset: entity
// generation, fixture scheduling, season simulation and transfer history,
// in one deterministic pass over a single random stream.
package dataset

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/ironforge/footylab/internal/gen"
	"github.com/ironforge/footylab/internal/sim"
)

// League identity. The league itself is fixed; only its contents are random.
const (
	LeagueID        = "LG_001"
	LeagueName      = "Ironforge Premier League"
	LeagueShortName = "IPL"
	LeagueCountry   = "Aetheria"
)

// DefaultStrength stands in for a club whose roster produced no ratings.
// Generated squads are never empty, but the simulator must not divide by a
// zero strength if one slips through.
const DefaultStrength = 65.0

// Seasons covered by the dataset. Only the last one is simulated.
var Seasons = []string{"2020/21", "2021/22", "2022/23", "2023/24", "2024/25"}

// League describes the competition format.
type League struct {
	LeagueID        string `json:"league_id"`
	Name            string `json:"name"`
	ShortName       string `json:"short_name"`
	Country         string `json:"country"`
	NumTeams        int    `json:"num_teams"`
	PromotionSpots  int    `json:"promotion_spots"`
	RelegationSpots int    `json:"relegation_spots"`
	EuropeanSpots   int    `json:"european_spots"`
	SeasonFormat    string `json:"season_format"`
	PointsForWin    int    `json:"points_for_win"`
	PointsForDraw   int    `json:"points_for_draw"`
	PointsForLoss   int    `json:"points_for_loss"`
}

// SeasonInfo is one row of the seasons artifact.
type SeasonInfo struct {
	SeasonID     string `json:"season_id"`
	Season       string `json:"season"`
	StartYear    int    `json:"start_year"`
	EndYear      int    `json:"end_year"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	NumMatchdays int    `json:"num_matchdays"`
	IsCurrent    bool   `json:"is_current"`
}

// Dataset is everything one generation run produces.
type Dataset struct {
	RunID       string
	Seed        int64
	Season      string
	GeneratedAt time.Time

	League    League
	Seasons   []SeasonInfo
	Clubs     []gen.Club
	Staff     []gen.StaffMember
	Players   []gen.Player
	Youth     []gen.Player
	Fixtures  []*sim.Fixture
	Table     []*sim.TableRow
	Transfers []gen.Transfer
}

// Params are the generation knobs.
type Params struct {
	NumClubs int
	Season   string
	Seed     int64
}

// Generate builds a full dataset. The run either completes with a fully
// consistent table or fails; there are no partial results.
func Generate(p Params, rng *rand.Rand) (*Dataset, error) {
	if p.Season == "" {
		p.Season = Seasons[len(Seasons)-1]
	}
	startYear, err := sim.SeasonStartYear(p.Season)
	if err != nil {
		return nil, err
	}

	clubs, err := gen.GenerateClubs(rng, p.NumClubs)
	if err != nil {
		return nil, fmt.Errorf("generating clubs: %w", err)
	}

	staff := gen.GenerateStaff(rng, clubs)

	var players []gen.Player
	playerNum := 1
	for _, club := range clubs {
		squad := gen.GenerateSquad(rng, club, playerNum, startYear)
		playerNum += len(squad)
		players = append(players, squad...)
	}

	// Youth ids live in their own block so promoted prospects keep a
	// recognizable id range.
	var youth []gen.Player
	youthNum := 50000
	for _, club := range clubs {
		intake := gen.GenerateYouth(rng, club, youthNum, startYear)
		youthNum += len(intake)
		youth = append(youth, intake...)
	}

	seeds := ClubSeeds(clubs, players)

	fixtures, err := sim.GenerateFixtures(seeds, p.Season)
	if err != nil {
		return nil, fmt.Errorf("generating fixtures: %w", err)
	}

	table, err := sim.SimulateSeason(fixtures, seeds, sim.NewOutcomeModel(rng))
	if err != nil {
		return nil, fmt.Errorf("simulating season: %w", err)
	}

	transfers := gen.GenerateTransferHistory(rng, players, clubs, Seasons)

	return &Dataset{
		RunID:       uuid.NewString(),
		Seed:        p.Seed,
		Season:      p.Season,
		GeneratedAt: time.Now().UTC(),
		League:      leagueInfo(len(clubs)),
		Seasons:     seasonInfos(p.Season, 2*(len(clubs)-1)),
		Clubs:       clubs,
		Staff:       staff,
		Players:     players,
		Youth:       youth,
		Fixtures:    fixtures,
		Table:       table,
		Transfers:   transfers,
	}, nil
}

// ClubSeeds reduces the generated roster to the simulation's input: club
// identity plus mean overall rating. An empty roster falls back to
// DefaultStrength rather than collapsing to zero.
func ClubSeeds(clubs []gen.Club, players []gen.Player) []sim.ClubSeed {
	totals := make(map[string]float64, len(clubs))
	counts := make(map[string]int, len(clubs))
	for _, p := range players {
		totals[p.ClubID] += p.OverallRating
		counts[p.ClubID]++
	}

	seeds := make([]sim.ClubSeed, 0, len(clubs))
	for _, c := range clubs {
		strength := DefaultStrength
		if n := counts[c.ClubID]; n > 0 {
			strength = totals[c.ClubID] / float64(n)
		}
		seeds = append(seeds, sim.ClubSeed{ID: c.ClubID, Name: c.FullName, Strength: strength})
	}
	return seeds
}

func leagueInfo(numTeams int) League {
	return League{
		LeagueID:        LeagueID,
		Name:            LeagueName,
		ShortName:       LeagueShortName,
		Country:         LeagueCountry,
		NumTeams:        numTeams,
		PromotionSpots:  3,
		RelegationSpots: 3,
		EuropeanSpots:   4,
		SeasonFormat:    "double_round_robin",
		PointsForWin:    3,
		PointsForDraw:   1,
		PointsForLoss:   0,
	}
}

func seasonInfos(current string, numMatchdays int) []SeasonInfo {
	infos := make([]SeasonInfo, 0, len(Seasons))
	for i, season := range Seasons {
		startYear, err := sim.SeasonStartYear(season)
		if err != nil {
			continue
		}
		infos = append(infos, SeasonInfo{
			SeasonID:     fmt.Sprintf("S%02d", i+1),
			Season:       season,
			StartYear:    startYear,
			EndYear:      startYear + 1,
			StartDate:    fmt.Sprintf("%d-08-01", startYear),
			EndDate:      fmt.Sprintf("%d-05-31", startYear+1),
			NumMatchdays: numMatchdays,
			IsCurrent:    season == current,
		})
	}
	return infos
}
