package websocket

import (
	"encoding/json"
	"log"
	"time"

	"github.com/ironforge/footylab/internal/sim"
	"github.com/ironforge/footylab/internal/store"
)

// matchdayInterval paces the replay so dashboards can animate the table.
const matchdayInterval = 500 * time.Millisecond

// replayFrame is one matchday of the season replay.
type replayFrame struct {
	Type     string          `json:"type"`
	Season   string          `json:"season"`
	Matchday int             `json:"matchday"`
	Matches  []*store.Match  `json:"matches,omitempty"`
	Table    []*sim.TableRow `json:"table,omitempty"`
	Message  string          `json:"message,omitempty"`
}

// streamReplay sends the season to one client, matchday by matchday, with a
// running table snapshot after each round.
func (s *Server) streamReplay(client *Client, season string) {
	ctx, cancel := client.lifetimeContext()
	defer cancel()

	matches, err := s.matches.GetBySeason(ctx, season, 0)
	if err != nil {
		log.Printf("replay: loading %s: %v", season, err)
		s.sendFrame(client, replayFrame{Type: "error", Season: season, Message: "failed to load season"})
		return
	}
	if len(matches) == 0 {
		s.sendFrame(client, replayFrame{Type: "error", Season: season, Message: "unknown season"})
		return
	}

	table := sim.NewTable(clubSeedsFromMatches(matches), season)

	byMatchday := make(map[int][]*store.Match)
	lastMatchday := 0
	for _, m := range matches {
		byMatchday[m.Matchday] = append(byMatchday[m.Matchday], m)
		if m.Matchday > lastMatchday {
			lastMatchday = m.Matchday
		}
	}

	ticker := time.NewTicker(matchdayInterval)
	defer ticker.Stop()

	for matchday := 1; matchday <= lastMatchday; matchday++ {
		round := byMatchday[matchday]
		for _, m := range round {
			if !m.HomeGoals.Valid || !m.AwayGoals.Valid {
				continue
			}
			if err := table.ApplyResult(m.HomeClubID, m.AwayClubID,
				int(m.HomeGoals.Int32), int(m.AwayGoals.Int32)); err != nil {
				log.Printf("replay: applying %s: %v", m.MatchID, err)
			}
		}

		ok := s.sendFrame(client, replayFrame{
			Type:     "matchday",
			Season:   season,
			Matchday: matchday,
			Matches:  round,
			Table:    table.Finalize(),
		})
		if !ok {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}

	// Close with the persisted final table so clients end on the official
	// standings rather than the replayed reconstruction.
	final, err := s.standings.GetTable(ctx, season)
	if err != nil {
		log.Printf("replay: loading final table for %s: %v", season, err)
		final = table.Finalize()
	}
	s.sendFrame(client, replayFrame{Type: "complete", Season: season, Matchday: lastMatchday, Table: final})
}

func (s *Server) sendFrame(client *Client, frame replayFrame) bool {
	data, err := json.Marshal(frame)
	if err != nil {
		log.Printf("replay: encoding frame: %v", err)
		return false
	}
	return client.Send(data)
}

// clubSeedsFromMatches recovers the participating clubs from the fixture
// list. Strengths are irrelevant for replay accounting.
func clubSeedsFromMatches(matches []*store.Match) []sim.ClubSeed {
	seen := make(map[string]bool)
	var clubs []sim.ClubSeed
	for _, m := range matches {
		if !seen[m.HomeClubID] {
			seen[m.HomeClubID] = true
			clubs = append(clubs, sim.ClubSeed{ID: m.HomeClubID, Name: m.HomeClubName})
		}
		if !seen[m.AwayClubID] {
			seen[m.AwayClubID] = true
			clubs = append(clubs, sim.ClubSeed{ID: m.AwayClubID, Name: m.AwayClubName})
		}
	}
	return clubs
}
