package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Deck is a single 52-card deck consumed front to back. Cards are never
// returned to the deck within an episode.
type Deck struct {
	cards []Card
	next  int
}

// NewDeck returns a uniformly shuffled deck drawn from rng.
func NewDeck(rng *rand.Rand) *Deck {
	cards := make([]Card, NumCards)
	for i := range cards {
		cards[i] = Card(i + 1)
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{cards: cards}
}

// NewDeckFrom returns a deck that deals the given cards in order.
func NewDeckFrom(cards ...Card) *Deck {
	for _, c := range cards {
		if c < 1 || c > NumCards {
			panic(fmt.Sprintf("card %d out of range [1,%d]", c, NumCards))
		}
	}
	return &Deck{cards: append([]Card(nil), cards...)}
}

// NewDeckOfRanks returns a deck that deals cards of the given ranks in order,
// taking each from the first suit.
func NewDeckOfRanks(ranks ...Rank) *Deck {
	cards := make([]Card, len(ranks))
	for i, r := range ranks {
		cards[i] = Card(r)
	}
	return NewDeckFrom(cards...)
}

// Draw removes and returns the rank of the front card. Drawing from an
// exhausted deck is a programming error.
func (d *Deck) Draw() Rank {
	if d.next >= len(d.cards) {
		panic(fmt.Sprintf("invariant violation: draw from exhausted deck of %d cards", len(d.cards)))
	}
	c := d.cards[d.next]
	d.next++
	return c.Rank()
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}
