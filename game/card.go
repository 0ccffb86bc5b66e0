package game

import "fmt"

const (
	NumCards = 52
	NumRanks = 13
)

// Card identifies one of the 52 cards of a standard deck, numbered 1 to 52.
// Suits are laid out in blocks of 13 ranks; the suit never affects value.
type Card int

// Rank returns the card's rank in [1,13] (1=Ace, 11/12/13=J/Q/K).
func (c Card) Rank() Rank {
	return Rank((int(c)-1)%NumRanks + 1)
}

// Rank is a card rank in [1,13]. Face cards stay distinct so that a dealer
// upcard of J, Q or K is a different state from a 10.
type Rank int

const (
	Ace   Rank = 1
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// Value returns the blackjack value of the rank with an ace counted as 1.
func (r Rank) Value() int {
	return min(int(r), 10)
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}
