package export

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironforge/footylab/internal/dataset"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteAllArtifacts(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ds, err := dataset.Generate(dataset.Params{NumClubs: 6, Season: "2024/25", Seed: 7}, rng)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, WriteAll(dir, ds))

	expected := []string{
		"league_info.csv", "seasons.csv", "clubs.csv", "staff.csv",
		"players.csv", "youth_academy.csv",
		"matches_2024_25.csv", "league_table_2024_25.csv",
		"transfer_history.csv",
	}
	for _, name := range expected {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "missing artifact %s", name)
	}

	clubs := readCSV(t, filepath.Join(dir, "clubs.csv"))
	require.Len(t, clubs, 1+len(ds.Clubs))
	require.Equal(t, "club_id", clubs[0][0])

	matches := readCSV(t, filepath.Join(dir, "matches_2024_25.csv"))
	require.Len(t, matches, 1+len(ds.Fixtures))
	for _, row := range matches[1:] {
		require.Equal(t, "completed", row[len(row)-1])
		require.NotEmpty(t, row[8])
		require.NotEmpty(t, row[9])
	}

	table := readCSV(t, filepath.Join(dir, "league_table_2024_25.csv"))
	require.Len(t, table, 1+len(ds.Table))
	for i, row := range table[1:] {
		require.Equal(t, fmt.Sprintf("%d", i+1), row[3], "positions should be written in order")
	}

	players := readCSV(t, filepath.Join(dir, "players.csv"))
	youth := readCSV(t, filepath.Join(dir, "youth_academy.csv"))
	require.Equal(t, players[0], youth[0], "players and youth share a schema")
	for _, row := range youth[1:] {
		require.Equal(t, "true", row[len(row)-2])
	}
	for _, row := range players[1:] {
		require.Equal(t, "false", row[len(row)-2])
	}
}

func TestWriteMatchesScheduledLeavesGoalsEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	ds, err := dataset.Generate(dataset.Params{NumClubs: 4, Season: "2023/24", Seed: 3}, rng)
	require.NoError(t, err)

	ds.Fixtures[0].HomeGoals = nil
	ds.Fixtures[0].AwayGoals = nil
	ds.Fixtures[0].Status = "scheduled"

	dir := t.TempDir()
	path := filepath.Join(dir, "matches.csv")
	require.NoError(t, WriteMatches(path, ds.Fixtures))

	rows := readCSV(t, path)
	require.Equal(t, "", rows[1][8])
	require.Equal(t, "", rows[1][9])
	require.Equal(t, "scheduled", rows[1][10])
}

func TestSeasonFileTag(t *testing.T) {
	require.Equal(t, "2024_25", seasonFileTag("2024/25"))
	require.Equal(t, "2020_21", seasonFileTag("2020_21"))
}
