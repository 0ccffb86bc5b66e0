package game

// StandardRules stop the dealer at 17 or as soon as it reaches the player's
// final total, whichever comes first.
type StandardRules struct {
	Stand int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{Stand: DealerStand}
}

func (sr *StandardRules) DealerHits(dealer, player int) bool {
	return dealer < sr.Stand && dealer < player
}

func (sr *StandardRules) Payoff(player, dealer int) int {
	return Payoff(player, dealer)
}

// TextbookRules make the dealer hit below 17 regardless of the player.
type TextbookRules struct {
	Stand int
}

func NewTextbookRules() *TextbookRules {
	return &TextbookRules{Stand: DealerStand}
}

func (tr *TextbookRules) DealerHits(dealer, player int) bool {
	return dealer < tr.Stand
}

func (tr *TextbookRules) Payoff(player, dealer int) int {
	return Payoff(player, dealer)
}
