package game

// Rules decide the dealer's draws and the terminal payoff.
type Rules interface {
	DealerHits(dealer, player int) bool
	Payoff(player, dealer int) int
}

const DealerStand = 17

const (
	Loss = -1
	Draw = 0
	Win  = 1
)

// Payoff returns +1 when the player wins, -1 when the dealer wins and 0 on a
// tie. A busted player loses even if the dealer busts too.
func Payoff(player, dealer int) int {
	switch {
	case player > 21:
		return Loss
	case dealer > 21:
		return Win
	case player < dealer:
		return Loss
	case player == dealer:
		return Draw
	default:
		return Win
	}
}
