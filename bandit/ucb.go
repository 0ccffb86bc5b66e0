package bandit

import (
	"fmt"
	"math"

	"blackjack/utils"

	"golang.org/x/exp/rand"
)

type ucb struct {
	sampleAverage
	cSquared float64 // Exploration constant
	plays    int
}

// UCB plays every arm once, then the arm maximising the upper confidence
// bound Q + sqrt(c^2*ln(N)/n).
func UCB(cSquared float64) Strategy {
	return &ucb{cSquared: cSquared}
}

func (u *ucb) Name() string {
	return fmt.Sprintf("ucb-%.2f", u.cSquared)
}

func (u *ucb) reset(arms int) {
	u.sampleAverage.reset(arms)
	u.plays = 0
}

func (u *ucb) Select(rng *rand.Rand) int {
	if untried := utils.FindIndex(u.counts, 0); untried >= 0 {
		return untried
	}

	numerator := u.cSquared * math.Log(float64(u.plays))
	maxIndex := -1
	maxScore := math.Inf(-1)
	for arm, q := range u.estimates {
		score := q + math.Sqrt(numerator/float64(u.counts[arm]))
		if score > maxScore {
			maxScore = score
			maxIndex = arm
		}
	}
	return maxIndex
}

func (u *ucb) Update(arm int, reward float64) {
	u.plays++
	u.sampleAverage.Update(arm, reward)
}

func (u *ucb) validate(arms int) error {
	if u.cSquared < 0 {
		return fmt.Errorf("exploration constant must not be negative, got %g: %w", u.cSquared, ErrInvalidConfig)
	}
	return nil
}
