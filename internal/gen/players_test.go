package gen

import (
	"math/rand"
	"testing"
)

func TestGenerateSquadComposition(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	club := Club{ClubID: "CLB_00001", Tier: TierMid}

	squad := GenerateSquad(rng, club, 1, 2024)

	counts := make(map[string]int)
	jerseys := make(map[int]bool)
	for _, p := range squad {
		counts[p.PositionGroup]++

		if p.ClubID != club.ClubID {
			t.Errorf("%s: wrong club %s", p.PlayerID, p.ClubID)
		}
		if p.OverallRating < 0 || p.OverallRating > 100 {
			t.Errorf("%s: overall rating %.1f off scale", p.PlayerID, p.OverallRating)
		}
		if p.Potential < 0 || p.Potential > 100 {
			t.Errorf("%s: potential %.1f off scale", p.PlayerID, p.Potential)
		}
		if p.Age < 16 || p.Age > 38 {
			t.Errorf("%s: age %d outside distribution", p.PlayerID, p.Age)
		}
		if p.JerseyNumber < 1 || p.JerseyNumber > 99 {
			t.Errorf("%s: jersey %d out of range", p.PlayerID, p.JerseyNumber)
		}
		if jerseys[p.JerseyNumber] {
			t.Errorf("duplicate jersey number %d", p.JerseyNumber)
		}
		jerseys[p.JerseyNumber] = true
		if p.MarketValue < 50000 {
			t.Errorf("%s: market value %d below floor", p.PlayerID, p.MarketValue)
		}
	}

	for _, group := range []string{GroupGK, GroupDEF, GroupMID, GroupFWD} {
		bounds := squadComposition[group]
		if counts[group] < bounds.min || counts[group] > bounds.optimal {
			t.Errorf("%s count %d outside [%d, %d]", group, counts[group], bounds.min, bounds.optimal)
		}
	}
}

func TestGeneratePlayerAttributesMatchGroup(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	gk := GeneratePlayer(rng, 1, "CLB_00001", GroupGK, 25, 2024)
	if gk.Technical.Diving == 0 || gk.Technical.Reflexes == 0 {
		t.Error("goalkeeper missing keeper attributes")
	}
	if gk.Technical.Finishing != 0 {
		t.Error("goalkeeper has a finishing rating")
	}

	fwd := GeneratePlayer(rng, 2, "CLB_00001", GroupFWD, 25, 2024)
	if fwd.Technical.Finishing == 0 || fwd.Technical.Shooting == 0 {
		t.Error("forward missing attacking attributes")
	}
	if fwd.Technical.Diving != 0 {
		t.Error("forward has a diving rating")
	}
}

func TestMarketValueMonotonicInRating(t *testing.T) {
	low := MarketValue(60, 25, 70, GroupMID)
	high := MarketValue(85, 25, 88, GroupMID)
	if high <= low {
		t.Errorf("value not monotonic in rating: 60 -> %d, 85 -> %d", low, high)
	}
}

func TestMarketValueVeteranDiscount(t *testing.T) {
	prime := MarketValue(80, 26, 82, GroupFWD)
	veteran := MarketValue(80, 35, 80, GroupFWD)
	if veteran >= prime {
		t.Errorf("veteran (%d) not discounted against prime (%d)", veteran, prime)
	}
}

func TestGenerateYouth(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	club := Club{ClubID: "CLB_00001", Tier: TierTop}

	youth := GenerateYouth(rng, club, 50000, 2024)
	if len(youth) != YouthPlayersPerClub {
		t.Fatalf("got %d youth players, want %d", len(youth), YouthPlayersPerClub)
	}

	for _, p := range youth {
		if p.Age < youthMinAge || p.Age > youthMaxAge {
			t.Errorf("%s: age %d outside academy range", p.PlayerID, p.Age)
		}
		if !p.IsYouth {
			t.Errorf("%s: not flagged as youth", p.PlayerID)
		}
		if p.YouthEntryYear != 2024 {
			t.Errorf("%s: entry year %d", p.PlayerID, p.YouthEntryYear)
		}
		if p.OverallRating < youthRatingFloor {
			t.Errorf("%s: rating %.1f below floor", p.PlayerID, p.OverallRating)
		}
		if p.Potential < 50 || p.Potential > 90 {
			t.Errorf("%s: potential %.1f outside category ranges", p.PlayerID, p.Potential)
		}
	}
}

func TestPromotionCandidates(t *testing.T) {
	youth := []Player{
		{PlayerID: "a", Age: 18, OverallRating: 60, Potential: 70},
		{PlayerID: "b", Age: 17, OverallRating: 60, Potential: 70}, // too young
		{PlayerID: "c", Age: 18, OverallRating: 50, Potential: 70}, // not able enough
		{PlayerID: "d", Age: 19, OverallRating: 58, Potential: 60}, // not enough headroom
	}

	got := PromotionCandidates(youth, 18, 55, 65)
	if len(got) != 1 || got[0].PlayerID != "a" {
		t.Errorf("candidates = %+v, want just player a", got)
	}
}

func TestGenerateTransferHistory(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	clubs, err := GenerateClubs(rng, 4)
	if err != nil {
		t.Fatal(err)
	}

	var players []Player
	num := 1
	for _, c := range clubs {
		squad := GenerateSquad(rng, c, num, 2024)
		num += len(squad)
		players = append(players, squad...)
	}

	seasons := []string{"2022/23", "2023/24", "2024/25"}
	transfers := GenerateTransferHistory(rng, players, clubs, seasons)

	want := int(float64(len(players)) * historicalTransferShare)
	if len(transfers) != want {
		t.Fatalf("got %d transfers, want %d", len(transfers), want)
	}

	for _, tr := range transfers {
		if tr.FromClub == tr.ToClub {
			t.Errorf("%s: transfer to the same club %s", tr.TransferID, tr.ToClub)
		}
		if tr.Season == "2024/25" {
			t.Errorf("%s: historical transfer in the current season", tr.TransferID)
		}
		switch tr.Type {
		case TransferPermanent:
			if tr.Fee <= 0 {
				t.Errorf("%s: permanent deal with no fee", tr.TransferID)
			}
		case TransferFree, TransferLoan:
			if tr.Fee != 0 {
				t.Errorf("%s: %s deal with fee %d", tr.TransferID, tr.Type, tr.Fee)
			}
		default:
			t.Errorf("%s: unknown type %q", tr.TransferID, tr.Type)
		}
	}
}
