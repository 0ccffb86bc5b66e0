package engine

import (
	"blackjack/game"

	"golang.org/x/exp/rand"
)

type Engine interface {
	// Play runs one episode from the given deck under the player's policy
	Play(deck *game.Deck, policy game.Policy) Episode
	// Simulate shuffles a fresh deck from rng and plays one episode
	Simulate(rng *rand.Rand, policy game.Policy) Episode
}

// Step is one decision point of the player: the state seen and the action
// taken there. A player bust is recorded as a final Stick step.
type Step struct {
	State  game.State
	Action game.Action
}

// Episode is the trajectory of one hand from deal to payoff.
type Episode struct {
	Steps  []Step
	Player game.Hand
	Dealer game.Hand
	Payoff int
}

// Start returns the first decision of the episode.
func (e Episode) Start() Step {
	return e.Steps[0]
}

func (e Episode) PlayerTotal() int {
	return e.Player.Total()
}

func (e Episode) DealerTotal() int {
	return e.Dealer.Total()
}

// Upcard is the dealer's visible card.
func (e Episode) Upcard() game.Rank {
	return e.Dealer[0]
}
