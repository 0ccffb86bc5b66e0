package engine

import (
	"blackjack/experiments/metrics"
	"blackjack/game"

	"golang.org/x/exp/rand"
)

type Simulator struct {
	rules   game.Rules
	metrics metrics.Collector
}

func NewSimulator(rules game.Rules, collector metrics.Collector) *Simulator {
	if rules == nil {
		rules = game.NewStandardRules()
	}
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	return &Simulator{rules: rules, metrics: collector}
}

func (s *Simulator) Simulate(rng *rand.Rand, policy game.Policy) Episode {
	return s.Play(game.NewDeck(rng), policy)
}

func (s *Simulator) Play(deck *game.Deck, policy game.Policy) Episode {
	player := game.Hand{deck.Draw(), deck.Draw()}
	dealer := game.Hand{deck.Draw(), deck.Draw()}
	upcard := dealer[0]

	// No decision below 12: the player always hits
	for player.Total() < game.MinDecision {
		player = append(player, deck.Draw())
	}

	steps := []Step{}
	state := game.NewState(player, upcard)
	action := policy.Act(state)
	steps = append(steps, Step{State: state, Action: action})

	for action == game.Hit {
		player = append(player, deck.Draw())
		state = game.NewState(player, upcard)
		if player.Bust() {
			steps = append(steps, Step{State: state, Action: game.Stick})
			break
		}
		action = policy.Act(state)
		steps = append(steps, Step{State: state, Action: action})
	}

	playerTotal := player.Total()
	for s.rules.DealerHits(dealer.Total(), playerTotal) {
		dealer = append(dealer, deck.Draw())
	}

	dealerTotal := dealer.Total()
	payoff := s.rules.Payoff(playerTotal, dealerTotal)
	s.metrics.AddEpisode(payoff, playerTotal > 21, dealerTotal > 21)

	return Episode{
		Steps:  steps,
		Player: player,
		Dealer: dealer,
		Payoff: payoff,
	}
}
