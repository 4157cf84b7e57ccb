package sim

import (
	"errors"
	"math/rand"
	"testing"
)

func TestSimulateEqualStrengthsLongRunAverage(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	model := NewOutcomeModel(rng)
	model.HomeAdvantage = 0 // no edge: both means should converge on 1.35

	const draws = 50000
	var homeTotal, awayTotal int
	for i := 0; i < draws; i++ {
		hg, ag, err := model.Simulate(70, 70)
		if err != nil {
			t.Fatal(err)
		}
		if hg < 0 || ag < 0 {
			t.Fatalf("negative goals: %d-%d", hg, ag)
		}
		homeTotal += hg
		awayTotal += ag
	}

	homeAvg := float64(homeTotal) / draws
	awayAvg := float64(awayTotal) / draws
	want := DefaultAvgGoals / 2

	for side, avg := range map[string]float64{"home": homeAvg, "away": awayAvg} {
		if avg < want-0.05 || avg > want+0.05 {
			t.Errorf("%s average = %.3f, want %.2f within 0.05", side, avg, want)
		}
	}
}

func TestSimulateStrongerHomeSideIsFavored(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	model := NewOutcomeModel(rng)

	const draws = 10000
	var homeTotal, awayTotal int
	for i := 0; i < draws; i++ {
		hg, ag, err := model.Simulate(80, 40)
		if err != nil {
			t.Fatal(err)
		}
		homeTotal += hg
		awayTotal += ag
	}

	if homeTotal <= awayTotal {
		t.Errorf("home side not favored: home=%d away=%d over %d draws", homeTotal, awayTotal, draws)
	}
}

func TestSimulateZeroStrengthGuard(t *testing.T) {
	model := NewOutcomeModel(rand.New(rand.NewSource(1)))
	_, _, err := model.Simulate(0, 0)
	if !errors.Is(err, ErrConfigurationDefect) {
		t.Errorf("got %v, want ErrConfigurationDefect", err)
	}
}

func TestSimulateReproducibleWithSeed(t *testing.T) {
	run := func() [20][2]int {
		model := NewOutcomeModel(rand.New(rand.NewSource(99)))
		var out [20][2]int
		for i := range out {
			hg, ag, err := model.Simulate(75, 65)
			if err != nil {
				t.Fatal(err)
			}
			out[i] = [2]int{hg, ag}
		}
		return out
	}

	if run() != run() {
		t.Error("identical seeds produced different score sequences")
	}
}
