package gen

import (
	"fmt"
	"math/rand"
	"sort"
)

// Club tiers. A club's tier drives its generated budget, reputation,
// facilities and squad quality.
const (
	TierTop   = "top_tier"
	TierMid   = "mid_tier"
	TierLower = "lower_tier"
)

// Club is a league club. Immutable once generated for a season.
type Club struct {
	ClubID                 string `json:"club_id"`
	FullName               string `json:"full_name"`
	ShortName              string `json:"short_name"`
	City                   string `json:"city"`
	Tier                   string `json:"tier"`
	FoundedYear            int    `json:"founded_year"`
	StadiumName            string `json:"stadium_name"`
	StadiumCapacity        int    `json:"stadium_capacity"`
	PrimaryColor           string `json:"primary_color"`
	SecondaryColor         string `json:"secondary_color"`
	AnnualBudgetMillions   int    `json:"annual_budget_millions"`
	Reputation             int    `json:"reputation"`
	TrainingFacilityRating int    `json:"training_facility_rating"`
	YouthAcademyRating     int    `json:"youth_academy_rating"`
	PreferredFormation     string `json:"preferred_formation"`
	PlayingStyle           string `json:"playing_style"`
}

type tierRange struct{ min, max int }

var (
	stadiumCapacityByTier = map[string]tierRange{
		TierTop:   {45000, 75000},
		TierMid:   {25000, 44999},
		TierLower: {15000, 24999},
	}
	budgetByTier = map[string]tierRange{
		TierTop:   {150, 300},
		TierMid:   {50, 149},
		TierLower: {20, 49},
	}
	reputationByTier = map[string]tierRange{
		TierTop:   {75, 95},
		TierMid:   {50, 74},
		TierLower: {30, 49},
	}
	facilityByTier = map[string]tierRange{
		TierTop:   {15, 20},
		TierMid:   {10, 14},
		TierLower: {5, 9},
	}
)

// assignTier brackets clubs by slot: the top quarter of slots are top tier,
// the next 45% mid tier, the rest lower tier.
func assignTier(slot, totalClubs int) string {
	switch {
	case float64(slot) <= float64(totalClubs)*0.25:
		return TierTop
	case float64(slot) <= float64(totalClubs)*0.70:
		return TierMid
	default:
		return TierLower
	}
}

// GenerateClubs produces numClubs clubs with unique cities, sorted by
// reputation so the strongest clubs come first.
func GenerateClubs(rng *rand.Rand, numClubs int) ([]Club, error) {
	if numClubs < 2 || numClubs > len(fantasyCities) {
		return nil, fmt.Errorf("club count %d out of range [2, %d]", numClubs, len(fantasyCities))
	}

	cities := append([]string(nil), fantasyCities...)
	rng.Shuffle(len(cities), func(i, j int) { cities[i], cities[j] = cities[j], cities[i] })

	clubs := make([]Club, 0, numClubs)
	for i := 0; i < numClubs; i++ {
		city := cities[i]
		suffix := clubSuffixes[rng.Intn(len(clubSuffixes))]
		tier := assignTier(i+1, numClubs)
		colors := clubColors[rng.Intn(len(clubColors))]

		var stadium string
		if rng.Float64() < 0.5 {
			stadium = city + " " + stadiumTypes[rng.Intn(len(stadiumTypes))]
		} else {
			stadium = stadiumDescriptors[rng.Intn(len(stadiumDescriptors))] + " " + stadiumTypes[rng.Intn(len(stadiumTypes))]
		}

		clubs = append(clubs, Club{
			ClubID:                 ID("CLB", i+1),
			FullName:               city + " " + suffix,
			ShortName:              shortName(city, suffix),
			City:                   city,
			Tier:                   tier,
			FoundedYear:            randRange(rng, 1880, 2010),
			StadiumName:            stadium,
			StadiumCapacity:        randRange(rng, stadiumCapacityByTier[tier].min, stadiumCapacityByTier[tier].max),
			PrimaryColor:           colors[0],
			SecondaryColor:         colors[1],
			AnnualBudgetMillions:   randRange(rng, budgetByTier[tier].min, budgetByTier[tier].max),
			Reputation:             randRange(rng, reputationByTier[tier].min, reputationByTier[tier].max),
			TrainingFacilityRating: randRange(rng, facilityByTier[tier].min, facilityByTier[tier].max),
			YouthAcademyRating:     randRange(rng, facilityByTier[tier].min, facilityByTier[tier].max),
			PreferredFormation:     formations[rng.Intn(len(formations))],
			PlayingStyle:           playingStyles[rng.Intn(len(playingStyles))],
		})
	}

	sort.SliceStable(clubs, func(i, j int) bool { return clubs[i].Reputation > clubs[j].Reputation })
	return clubs, nil
}
