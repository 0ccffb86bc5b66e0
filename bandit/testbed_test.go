package bandit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunValidation(t *testing.T) {
	valid := Config{Bandits: 2, Arms: 3, Plays: 5, Seed: 1}

	testCases := []struct {
		name       string
		cfg        Config
		strategies []Strategy
	}{
		{"zero bandits", Config{Bandits: 0, Arms: 3, Plays: 5}, []Strategy{Greedy()}},
		{"zero arms", Config{Bandits: 2, Arms: 0, Plays: 5}, []Strategy{Greedy()}},
		{"zero plays", Config{Bandits: 2, Arms: 3, Plays: 0}, []Strategy{Greedy()}},
		{"no strategies", valid, nil},
		{"negative epsilon", valid, []Strategy{EpsilonGreedy(-0.1)}},
		{"epsilon above one", valid, []Strategy{EpsilonGreedy(1.5)}},
		{"zero temperature", valid, []Strategy{Softmax(0)}},
		{"zero alpha", valid, []Strategy{Gradient(0, true)}},
		{"automaton on three arms", valid, []Strategy{Supervised(0.1)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			results, err := Run(tc.cfg, tc.strategies...)
			require.ErrorIs(t, err, ErrInvalidConfig)
			require.Nil(t, results)
		})
	}
}

func TestRunShape(t *testing.T) {
	cfg := Config{Bandits: 20, Arms: 10, Plays: 50, Seed: 1}

	results, err := Run(cfg, Greedy(), EpsilonGreedy(0.1), Softmax(0.5), Gradient(0.1, true))
	require.NoError(t, err)
	require.Len(t, results, 4)

	for _, r := range results {
		require.Len(t, r.AvgReward, cfg.Plays, r.Name)
		require.Len(t, r.Optimal, cfg.Plays, r.Name)
		for _, o := range r.Optimal {
			require.GreaterOrEqual(t, o, 0.0)
			require.LessOrEqual(t, o, 1.0)
		}
	}
}

func TestRunDeterminism(t *testing.T) {
	cfg := Config{Bandits: 10, Arms: 5, Plays: 30, Seed: 42}

	first, err := Run(cfg, EpsilonGreedy(0.1), Softmax(0.3))
	require.NoError(t, err)
	second, err := Run(cfg, EpsilonGreedy(0.1), Softmax(0.3))
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestRunSingleArm(t *testing.T) {
	results, err := Run(Config{Bandits: 5, Arms: 1, Plays: 10, Seed: 1}, Greedy())
	require.NoError(t, err)

	for _, o := range results[0].Optimal {
		require.Equal(t, 1.0, o, "the only arm is always optimal")
	}
}

func TestRunExplorationPaysOff(t *testing.T) {
	if testing.Short() {
		t.Skip("long running testbed")
	}

	cfg := Config{Bandits: 500, Arms: 10, Plays: 1000, Seed: 1}
	results, err := Run(cfg, Greedy(), EpsilonGreedy(0.1))
	require.NoError(t, err)

	greedy, explore := results[0], results[1]
	require.Greater(t, tail(explore.Optimal), tail(greedy.Optimal))
	require.Greater(t, tail(explore.AvgReward), tail(greedy.AvgReward))
}

// tail averages the last hundred entries of a series.
func tail(series []float64) float64 {
	sum := 0.0
	for _, v := range series[len(series)-100:] {
		sum += v
	}
	return sum / 100
}
