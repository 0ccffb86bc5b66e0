package game

import "strings"

// Hand is the ordered sequence of ranks held by the player or the dealer.
type Hand []Rank

// Value returns the hand total and whether an ace is being counted as 11.
// At most one ace is ever upgraded, and only when the total stays at 21 or
// below.
func (h Hand) Value() (total int, usableAce bool) {
	hasAce := false
	for _, r := range h {
		total += r.Value()
		if r == Ace {
			hasAce = true
		}
	}
	if hasAce && total <= 11 {
		return total + 10, true
	}
	return total, false
}

// Total returns the hand total without the usable ace flag.
func (h Hand) Total() int {
	total, _ := h.Value()
	return total
}

// Bust reports whether the hand is over 21.
func (h Hand) Bust() bool {
	return h.Total() > 21
}

func (h Hand) String() string {
	ranks := make([]string, len(h))
	for i, r := range h {
		ranks[i] = r.String()
	}
	return "[" + strings.Join(ranks, " ") + "]"
}
