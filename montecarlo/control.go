package montecarlo

import (
	"blackjack/engine"
	"blackjack/game"

	"github.com/rs/zerolog/log"
)

// Control runs Monte Carlo control with exploring starts. Each episode picks
// its first action uniformly at random and follows the current policy after
// that; the payoff is credited to every non-bust state-action pair visited and
// each credited state is made greedy immediately.
func Control(options ...Option) (*ActionValueTable, game.Table, error) {
	r, err := newRunner(options...)
	if err != nil {
		return nil, nil, err
	}

	sim := engine.NewSimulator(r.rules, r.metrics)
	policy := game.NewTable()
	q := NewActionValueTable()

	log.Debug().Msgf("running exploring-starts control over %d episodes", r.episodes)
	r.metrics.Start("control", r.seed)
	for i := 0; i < r.episodes; i++ {
		deck := game.NewDeck(r.rng)
		first := game.Actions[r.rng.Intn(len(game.Actions))]
		ep := sim.Play(deck, game.ExploringStart(first, policy))

		credit(q, policy, ep)
		r.tick("control", i)
	}

	return q, policy, nil
}

func credit(q *ActionValueTable, policy game.Table, ep engine.Episode) {
	payoff := float64(ep.Payoff)
	for _, step := range ep.Steps {
		// Bust states are never valued
		if step.State.Player > game.MaxDecision {
			continue
		}
		q.Add(step.State, step.Action, payoff)
		policy[step.State] = q.Greedy(step.State)
	}
}
