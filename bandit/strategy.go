package bandit

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// sampleAverage keeps the running mean reward of each arm.
type sampleAverage struct {
	estimates []float64
	counts    []int
}

func (s *sampleAverage) reset(arms int) {
	s.estimates = make([]float64, arms)
	s.counts = make([]int, arms)
}

func (s *sampleAverage) Update(arm int, reward float64) {
	s.counts[arm]++
	s.estimates[arm] += (reward - s.estimates[arm]) / float64(s.counts[arm])
}

type epsilonGreedy struct {
	sampleAverage
	epsilon float64
}

// Greedy always plays the arm with the highest estimate, lowest index first.
func Greedy() Strategy {
	return &epsilonGreedy{}
}

// EpsilonGreedy explores a uniformly random arm with probability epsilon.
func EpsilonGreedy(epsilon float64) Strategy {
	return &epsilonGreedy{epsilon: epsilon}
}

func (g *epsilonGreedy) Name() string {
	if g.epsilon == 0 {
		return "greedy"
	}
	return fmt.Sprintf("e-greedy-%.2f", g.epsilon)
}

func (g *epsilonGreedy) Select(rng *rand.Rand) int {
	if g.epsilon > 0 && rng.Float64() < g.epsilon {
		return rng.Intn(len(g.estimates))
	}
	return floats.MaxIdx(g.estimates)
}

func (g *epsilonGreedy) validate(arms int) error {
	if g.epsilon < 0 || g.epsilon > 1 {
		return fmt.Errorf("epsilon must be in [0,1], got %g: %w", g.epsilon, ErrInvalidConfig)
	}
	return nil
}

type softmax struct {
	sampleAverage
	temperature float64
}

// Softmax picks arms with Gibbs probabilities exp(Q/temperature).
func Softmax(temperature float64) Strategy {
	return &softmax{temperature: temperature}
}

func (s *softmax) Name() string {
	return fmt.Sprintf("softmax-%.2f", s.temperature)
}

func (s *softmax) Select(rng *rand.Rand) int {
	return sample(rng, gibbs(s.estimates, s.temperature))
}

func (s *softmax) validate(arms int) error {
	if s.temperature <= 0 {
		return fmt.Errorf("temperature must be > 0, got %g: %w", s.temperature, ErrInvalidConfig)
	}
	return nil
}

type gradient struct {
	alpha       float64
	baseline    bool
	preferences []float64
	average     float64
	plays       int
}

// Gradient learns action preferences by stochastic gradient ascent and
// selects with their softmax. With baseline the running mean reward is
// subtracted from each reward.
func Gradient(alpha float64, baseline bool) Strategy {
	return &gradient{alpha: alpha, baseline: baseline}
}

func (g *gradient) Name() string {
	if g.baseline {
		return fmt.Sprintf("gradient-%.2f-baseline", g.alpha)
	}
	return fmt.Sprintf("gradient-%.2f", g.alpha)
}

func (g *gradient) reset(arms int) {
	g.preferences = make([]float64, arms)
	g.average = 0
	g.plays = 0
}

func (g *gradient) Select(rng *rand.Rand) int {
	return sample(rng, gibbs(g.preferences, 1))
}

func (g *gradient) Update(arm int, reward float64) {
	pi := gibbs(g.preferences, 1)

	baseline := 0.0
	if g.baseline {
		g.plays++
		g.average += (reward - g.average) / float64(g.plays)
		baseline = g.average
	}

	adv := reward - baseline
	for a := range g.preferences {
		if a == arm {
			g.preferences[a] += g.alpha * adv * (1 - pi[a])
		} else {
			g.preferences[a] -= g.alpha * adv * pi[a]
		}
	}
}

func (g *gradient) validate(arms int) error {
	if g.alpha <= 0 {
		return fmt.Errorf("alpha must be > 0, got %g: %w", g.alpha, ErrInvalidConfig)
	}
	return nil
}

// gibbs returns softmax probabilities of values/temperature, shifted by the
// maximum for numerical stability.
func gibbs(values []float64, temperature float64) []float64 {
	top := floats.Max(values)
	probs := make([]float64, len(values))
	for i, v := range values {
		probs[i] = math.Exp((v - top) / temperature)
	}
	floats.Scale(1/floats.Sum(probs), probs)
	return probs
}

// sample draws an index from probs, falling back to the last index on
// rounding error.
func sample(rng *rand.Rand, probs []float64) int {
	sampled := rng.Float64()
	cumulative := 0.0
	for i, p := range probs {
		cumulative += p
		if sampled < cumulative {
			return i
		}
	}
	return len(probs) - 1
}
