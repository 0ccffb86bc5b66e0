package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPayoff(t *testing.T) {
	require.Equal(t, Loss, Payoff(22, 18), "Player bust loses")
	require.Equal(t, Loss, Payoff(23, 25), "Player bust loses even if the dealer busts")
	require.Equal(t, Win, Payoff(20, 22), "Dealer bust wins for the player")
	require.Equal(t, Draw, Payoff(20, 20), "Equal totals tie")
	require.Equal(t, Loss, Payoff(18, 20), "Lower total loses")
	require.Equal(t, Win, Payoff(20, 18), "Higher total wins")
}

func TestStandardRules(t *testing.T) {
	rules := NewStandardRules()

	t.Run("hits below seventeen and below the player", func(t *testing.T) {
		require.True(t, rules.DealerHits(12, 18))
		require.True(t, rules.DealerHits(16, 22), "Dealer keeps drawing against a busted player")
	})

	t.Run("stops at seventeen", func(t *testing.T) {
		require.False(t, rules.DealerHits(17, 20))
		require.False(t, rules.DealerHits(19, 20))
	})

	t.Run("stops once it reaches the player's total", func(t *testing.T) {
		require.False(t, rules.DealerHits(14, 14), "Dealer stops on a tie with a player who stuck low")
		require.False(t, rules.DealerHits(15, 13), "Dealer stops once ahead of the player")
	})

	t.Run("payoff delegates to Payoff", func(t *testing.T) {
		require.Equal(t, Payoff(19, 18), rules.Payoff(19, 18))
	})
}

func TestTextbookRules(t *testing.T) {
	rules := NewTextbookRules()

	require.True(t, rules.DealerHits(15, 13), "Dealer hits below 17 even when ahead")
	require.False(t, rules.DealerHits(17, 21))
	require.Equal(t, Win, rules.Payoff(21, 17))
}
