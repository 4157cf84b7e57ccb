package sim

import (
	"fmt"
	"math"
	"math/rand"
)

// Default league-wide tuning, matching the generated dataset's target
// statistics. Downstream consumers depend on the 2.7 goals-per-match budget.
const (
	DefaultHomeAdvantage = 0.15
	DefaultAvgGoals      = 2.7
)

// OutcomeModel turns two team strengths into a scoreline. It is stateless
// and memoryless by design: no momentum, no in-match events. All randomness
// comes from the single injected source so that a seeded run reproduces the
// whole dataset.
type OutcomeModel struct {
	rng *rand.Rand

	// HomeAdvantage is applied multiplicatively to the home strength.
	HomeAdvantage float64
	// AvgGoals is the total expected-goals budget split between the sides.
	AvgGoals float64
}

// NewOutcomeModel returns a model with league defaults.
func NewOutcomeModel(rng *rand.Rand) *OutcomeModel {
	return &OutcomeModel{
		rng:           rng,
		HomeAdvantage: DefaultHomeAdvantage,
		AvgGoals:      DefaultAvgGoals,
	}
}

// Simulate draws a scoreline for one fixture. Each side's goal count is an
// independent Poisson sample whose mean is its share of the goals budget:
//
//	adjHome = home * (1 + homeAdvantage)
//	homeXG  = adjHome / (adjHome + away) * avgGoals
//	awayXG  = away / (adjHome + away) * avgGoals
//
// Callers should guarantee at least one positive strength; a roster-derived
// strength never collapses to zero in practice, but the division is still
// guarded here.
func (m *OutcomeModel) Simulate(homeStrength, awayStrength float64) (homeGoals, awayGoals int, err error) {
	adjHome := homeStrength * (1 + m.HomeAdvantage)
	total := adjHome + awayStrength
	if total <= 0 {
		return 0, 0, fmt.Errorf("%w: both sides have non-positive strength (home=%.2f away=%.2f)",
			ErrConfigurationDefect, homeStrength, awayStrength)
	}

	homeXG := adjHome / total * m.AvgGoals
	awayXG := awayStrength / total * m.AvgGoals

	return m.poisson(homeXG), m.poisson(awayXG), nil
}

// poisson samples a Poisson-distributed count by Knuth's inversion method.
// Fine for the small lambdas a football scoreline needs.
func (m *OutcomeModel) poisson(lambda float64) int {
	limit := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		p *= m.rng.Float64()
		if p <= limit {
			return k
		}
		k++
	}
}
