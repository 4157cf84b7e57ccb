package gen

import (
	"math/rand"
	"testing"
)

func TestGenerateClubs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	clubs, err := GenerateClubs(rng, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(clubs) != 20 {
		t.Fatalf("got %d clubs, want 20", len(clubs))
	}

	ids := make(map[string]bool)
	cities := make(map[string]bool)
	tiers := make(map[string]int)

	for _, c := range clubs {
		if ids[c.ClubID] {
			t.Errorf("duplicate club id %s", c.ClubID)
		}
		ids[c.ClubID] = true

		if cities[c.City] {
			t.Errorf("duplicate city %s", c.City)
		}
		cities[c.City] = true
		tiers[c.Tier]++

		if c.Reputation < reputationByTier[c.Tier].min || c.Reputation > reputationByTier[c.Tier].max {
			t.Errorf("%s: reputation %d outside %s range", c.ClubID, c.Reputation, c.Tier)
		}
		if c.StadiumCapacity < stadiumCapacityByTier[c.Tier].min || c.StadiumCapacity > stadiumCapacityByTier[c.Tier].max {
			t.Errorf("%s: capacity %d outside %s range", c.ClubID, c.StadiumCapacity, c.Tier)
		}
		if c.FoundedYear < 1880 || c.FoundedYear > 2010 {
			t.Errorf("%s: founded year %d out of range", c.ClubID, c.FoundedYear)
		}
		if len(c.ShortName) == 0 || len(c.ShortName) > 4 {
			t.Errorf("%s: short name %q not 1-4 chars", c.ClubID, c.ShortName)
		}
	}

	// 20 clubs: 5 top, 9 mid, 6 lower by the slot brackets.
	if tiers[TierTop] != 5 || tiers[TierMid] != 9 || tiers[TierLower] != 6 {
		t.Errorf("tier distribution = %v, want 5/9/6", tiers)
	}

	// Sorted strongest-first.
	for i := 1; i < len(clubs); i++ {
		if clubs[i].Reputation > clubs[i-1].Reputation {
			t.Errorf("clubs not sorted by reputation at index %d", i)
		}
	}
}

func TestGenerateClubsRejectsBadCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{0, 1, len(fantasyCities) + 1} {
		if _, err := GenerateClubs(rng, n); err == nil {
			t.Errorf("GenerateClubs(%d) succeeded, want error", n)
		}
	}
}

func TestGenerateStaff(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	clubs, err := GenerateClubs(rng, 4)
	if err != nil {
		t.Fatal(err)
	}

	staff := GenerateStaff(rng, clubs)
	if len(staff) != 4*(1+len(coachRoles)) {
		t.Fatalf("got %d staff, want %d", len(staff), 4*(1+len(coachRoles)))
	}

	managers := 0
	for _, s := range staff {
		if s.Role == RoleManager {
			managers++
			if s.TacticalRating < 1 || s.TacticalRating > 20 {
				t.Errorf("%s: tactical rating %d off the 1-20 scale", s.StaffID, s.TacticalRating)
			}
		}
	}
	if managers != 4 {
		t.Errorf("got %d managers, want 4", managers)
	}
}
