package gen

import (
	"fmt"
	"math/rand"
	"strings"
)

// ID builds a prefixed sequential identifier, e.g. ID("PLY", 7) == "PLY_00007".
func ID(prefix string, n int) string {
	return fmt.Sprintf("%s_%05d", prefix, n)
}

// randRange returns an int in [min, max].
func randRange(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

// weightedChoice picks an index in proportion to weights. Weights need not
// sum to one.
func weightedChoice(rng *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// clampRating keeps a rating on the 0-100 scale.
func clampRating(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// selectNationality draws a nationality according to the league's weights.
func selectNationality(rng *rand.Rand) nationality {
	weights := make([]float64, len(nationalities))
	for i, n := range nationalities {
		weights[i] = n.Weight
	}
	return nationalities[weightedChoice(rng, weights)]
}

// personName draws a first/last name pair from the nationality's pool.
func personName(rng *rand.Rand, nat nationality) (first, last string) {
	pool, ok := namePools[nat.Pool]
	if !ok {
		pool = namePools["anglo"]
	}
	return pool.First[rng.Intn(len(pool.First))], pool.Last[rng.Intn(len(pool.Last))]
}

// shortName derives a short code from a club's city and suffix, capped at
// four characters, e.g. "Stormwind United" -> "SUNI".
func shortName(city, suffix string) string {
	var b strings.Builder
	for _, word := range strings.Fields(city) {
		b.WriteByte(word[0])
	}
	b.WriteString(strings.ToUpper(suffix))
	s := b.String()
	if len(s) > 4 {
		s = s[:4]
	}
	return strings.ToUpper(s)
}

// dateOfBirth places a birthday so the player is the given age during the
// season's start year.
func dateOfBirth(rng *rand.Rand, age int, seasonStartYear int) string {
	month := randRange(rng, 1, 12)
	daysInMonth := [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	day := randRange(rng, 1, daysInMonth[month-1])
	return fmt.Sprintf("%04d-%02d-%02d", seasonStartYear-age, month, day)
}
