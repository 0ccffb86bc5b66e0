package montecarlo

import (
	"fmt"

	"blackjack/engine"
	"blackjack/game"

	"github.com/rs/zerolog/log"
)

// MaxStick is the highest meaningful threshold: at 22 the player hits until
// bust.
const MaxStick = 22

// Evaluate estimates the state-value function of the policy that hits while
// the player total is below threshold. By default each episode credits its
// payoff to the first decision state only.
func Evaluate(threshold int, options ...Option) (*ValueTable, error) {
	if threshold < game.MinDecision || threshold > MaxStick {
		return nil, fmt.Errorf("threshold must be in [%d,%d], got %d: %w",
			game.MinDecision, MaxStick, threshold, ErrInvalidConfig)
	}
	r, err := newRunner(options...)
	if err != nil {
		return nil, err
	}

	sim := engine.NewSimulator(r.rules, r.metrics)
	policy := game.Threshold{Stick: threshold}
	values := NewValueTable()

	log.Debug().Msgf("evaluating stick-at-%d policy over %d episodes", threshold, r.episodes)
	r.metrics.Start(fmt.Sprintf("evaluate-%d", threshold), r.seed)
	for i := 0; i < r.episodes; i++ {
		ep := sim.Simulate(r.rng, policy)
		payoff := float64(ep.Payoff)

		if !r.everyVisit {
			values.Add(ep.Start().State, payoff)
		} else {
			for _, step := range ep.Steps {
				if step.State.Decision() {
					values.Add(step.State, payoff)
				}
			}
		}
		r.tick("evaluate", i)
	}

	return values, nil
}
