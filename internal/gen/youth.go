package gen

import "math/rand"

// Youth academy parameters.
const (
	YouthPlayersPerClub = 5
	youthMinAge         = 16
	youthMaxAge         = 17
	youthRatingPenalty  = 15
	youthRatingFloor    = 40
)

var youthPotentialCategories = []struct {
	lo, hi int
	weight float64
}{
	{50, 59, 0.40}, // average
	{60, 69, 0.40}, // good
	{70, 79, 0.15}, // high
	{80, 90, 0.05}, // elite
}

// GenerateYouth creates a club's academy intake: teenagers with suppressed
// current ability and category-drawn potential, so a few clubs land elite
// prospects. nextPlayerNum advances by one per player, sharing the global
// player id space with first-team squads.
func GenerateYouth(rng *rand.Rand, club Club, nextPlayerNum int, seasonStartYear int) []Player {
	groups := []string{GroupGK, GroupDEF, GroupMID, GroupFWD}

	youth := make([]Player, 0, YouthPlayersPerClub)
	for i := 0; i < YouthPlayersPerClub; i++ {
		age := randRange(rng, youthMinAge, youthMaxAge)
		group := groups[rng.Intn(len(groups))]

		p := GeneratePlayer(rng, nextPlayerNum, club.ClubID, group, age, seasonStartYear)
		nextPlayerNum++

		p.OverallRating -= youthRatingPenalty
		if p.OverallRating < youthRatingFloor {
			p.OverallRating = youthRatingFloor
		}

		weights := make([]float64, len(youthPotentialCategories))
		for j, c := range youthPotentialCategories {
			weights[j] = c.weight
		}
		cat := youthPotentialCategories[weightedChoice(rng, weights)]
		p.Potential = float64(randRange(rng, cat.lo, cat.hi))

		p.MarketValue = MarketValue(p.OverallRating, p.Age, p.Potential, group)
		p.WeeklyWage = WeeklyWage(rng, p.MarketValue, p.OverallRating)
		p.IsYouth = true
		p.YouthEntryYear = seasonStartYear

		youth = append(youth, p)
	}

	return youth
}

// PromotionCandidates filters academy players ready for the first team:
// old enough, able enough, and with enough headroom to be worth a slot.
func PromotionCandidates(youth []Player, promotionAge int, minAbility, minPotential float64) []Player {
	var candidates []Player
	for _, p := range youth {
		if p.Age >= promotionAge && p.OverallRating >= minAbility && p.Potential >= minPotential {
			candidates = append(candidates, p)
		}
	}
	return candidates
}
