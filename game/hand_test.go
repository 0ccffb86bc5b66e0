package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandValue(t *testing.T) {
	tests := []struct {
		name   string
		hand   Hand
		total  int
		usable bool
	}{
		{"hard total", Hand{10, 7}, 17, false},
		{"face cards count ten", Hand{Jack, Queen}, 20, false},
		{"ace counts eleven", Hand{Ace, 6}, 17, true},
		{"natural", Hand{Ace, King}, 21, true},
		{"two aces upgrade only one", Hand{Ace, Ace}, 12, true},
		{"ace falls back to one", Hand{Ace, 6, 9}, 16, false},
		{"three aces", Hand{Ace, Ace, Ace}, 13, true},
		{"bust", Hand{10, 9, 5}, 24, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, usable := tt.hand.Value()

			require.Equal(t, tt.total, total, "Hand %s total", tt.hand)
			require.Equal(t, tt.usable, usable, "Hand %s usable ace", tt.hand)
		})
	}
}

func TestHandValueTwoCardAce(t *testing.T) {
	// Every two-card hand holding an ace with a naive sum of at most 11 has a
	// usable ace worth ten more than the naive sum
	for other := Ace; other <= King; other++ {
		hand := Hand{Ace, other}
		naive := 1 + other.Value()
		if naive > 11 {
			continue
		}

		total, usable := hand.Value()

		require.True(t, usable, "Hand %s should have a usable ace", hand)
		require.Equal(t, naive+10, total, "Hand %s should count the ace as 11", hand)
		require.LessOrEqual(t, total, 21, "Two-card usable totals never exceed 21")
	}
}

func TestHandBust(t *testing.T) {
	require.False(t, Hand{10, Ace, 10}.Bust(), "21 is not a bust")
	require.True(t, Hand{10, 2, King}.Bust(), "22 is a bust")
}
