package store

import (
	"database/sql"
	"time"
)

// Match is the database view of a fixture. Goal columns are NULL until the
// match has been simulated.
type Match struct {
	MatchID      string        `json:"match_id" db:"match_id"`
	Season       string        `json:"season" db:"season"`
	Matchday     int           `json:"matchday" db:"matchday"`
	Date         time.Time     `json:"date" db:"match_date"`
	HomeClubID   string        `json:"home_club_id" db:"home_club_id"`
	HomeClubName string        `json:"home_club_name" db:"home_club_name"`
	AwayClubID   string        `json:"away_club_id" db:"away_club_id"`
	AwayClubName string        `json:"away_club_name" db:"away_club_name"`
	HomeGoals    sql.NullInt32 `json:"home_goals,omitempty" db:"home_goals"`
	AwayGoals    sql.NullInt32 `json:"away_goals,omitempty" db:"away_goals"`
	Status       string        `json:"status" db:"status"`
}

// DatasetRun records one generation of the full dataset.
type DatasetRun struct {
	RunID       string    `json:"run_id" db:"run_id"`
	Seed        int64     `json:"seed" db:"seed"`
	Season      string    `json:"season" db:"season"`
	NumClubs    int       `json:"num_clubs" db:"num_clubs"`
	GeneratedAt time.Time `json:"generated_at" db:"generated_at"`
}
