package dataset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironforge/footylab/internal/gen"
	"github.com/ironforge/footylab/internal/sim"
)

func TestGenerateFullDataset(t *testing.T) {
	ds, err := Generate(Params{NumClubs: 6, Season: "2024/25", Seed: 42}, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	require.Len(t, ds.Clubs, 6)
	require.Len(t, ds.Fixtures, 6*5)
	require.Len(t, ds.Table, 6)
	require.Len(t, ds.Youth, 6*gen.YouthPlayersPerClub)
	require.Len(t, ds.Staff, 6*5)
	require.NotEmpty(t, ds.Players)
	require.NotEmpty(t, ds.RunID)
	require.Equal(t, "2024/25", ds.Season)

	for _, f := range ds.Fixtures {
		require.Equal(t, sim.FixtureCompleted, f.Status)
		require.NotNil(t, f.HomeGoals)
		require.NotNil(t, f.AwayGoals)
	}

	// Every club fields a legal squad and a consistent table row.
	squadSizes := make(map[string]int)
	for _, p := range ds.Players {
		squadSizes[p.ClubID]++
	}
	for _, c := range ds.Clubs {
		require.GreaterOrEqual(t, squadSizes[c.ClubID], 21, "club %s squad too small", c.ClubID)
	}
	for _, row := range ds.Table {
		require.Equal(t, 10, row.Played)
		require.Equal(t, 3*row.Won+row.Drawn, row.Points)
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	run := func() *Dataset {
		ds, err := Generate(Params{NumClubs: 4, Season: "2024/25", Seed: 7}, rand.New(rand.NewSource(7)))
		require.NoError(t, err)
		return ds
	}

	a, b := run(), run()

	require.Equal(t, len(a.Players), len(b.Players))
	for i := range a.Players {
		require.Equal(t, a.Players[i].FullName, b.Players[i].FullName)
		require.Equal(t, a.Players[i].OverallRating, b.Players[i].OverallRating)
	}
	for i := range a.Fixtures {
		require.Equal(t, *a.Fixtures[i].HomeGoals, *b.Fixtures[i].HomeGoals)
		require.Equal(t, *a.Fixtures[i].AwayGoals, *b.Fixtures[i].AwayGoals)
	}
	for i := range a.Table {
		require.Equal(t, a.Table[i].ClubID, b.Table[i].ClubID)
		require.Equal(t, a.Table[i].Position, b.Table[i].Position)
	}
}

func TestClubSeedsStrengthIsRosterMean(t *testing.T) {
	clubs := []gen.Club{{ClubID: "CLB_00001", FullName: "A"}, {ClubID: "CLB_00002", FullName: "B"}}
	players := []gen.Player{
		{ClubID: "CLB_00001", OverallRating: 70},
		{ClubID: "CLB_00001", OverallRating: 80},
	}

	seeds := ClubSeeds(clubs, players)
	require.Len(t, seeds, 2)
	require.InDelta(t, 75.0, seeds[0].Strength, 1e-9)
	// No roster: fall back rather than collapse to zero.
	require.InDelta(t, DefaultStrength, seeds[1].Strength, 1e-9)
}

func TestSeasonInfos(t *testing.T) {
	ds, err := Generate(Params{NumClubs: 4, Season: "2024/25", Seed: 1}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	require.Len(t, ds.Seasons, len(Seasons))
	current := 0
	for _, s := range ds.Seasons {
		if s.IsCurrent {
			current++
			require.Equal(t, "2024/25", s.Season)
		}
		require.Equal(t, s.StartYear+1, s.EndYear)
	}
	require.Equal(t, 1, current)
}
