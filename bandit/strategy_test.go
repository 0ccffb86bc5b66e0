package bandit

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

func TestSampleAverage(t *testing.T) {
	s := &sampleAverage{}
	s.reset(3)

	s.Update(1, 2)
	s.Update(1, 4)
	s.Update(2, -1)

	require.Equal(t, []float64{0, 3, -1}, s.estimates)
	require.Equal(t, []int{0, 2, 1}, s.counts)
}

func TestGreedySelect(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("highest estimate", func(t *testing.T) {
		g := Greedy().(*epsilonGreedy)
		g.reset(4)
		g.Update(2, 1.5)
		g.Update(3, 0.5)
		require.Equal(t, 2, g.Select(rng))
	})

	t.Run("ties pick lowest index", func(t *testing.T) {
		g := Greedy().(*epsilonGreedy)
		g.reset(4)
		require.Equal(t, 0, g.Select(rng))
	})
}

func TestEpsilonGreedyExplores(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := EpsilonGreedy(1).(*epsilonGreedy)
	g.reset(5)
	g.Update(0, 10)

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		seen[g.Select(rng)] = true
	}
	require.Len(t, seen, 5, "epsilon 1 should eventually pick every arm")
}

func TestGibbs(t *testing.T) {
	t.Run("uniform on equal values", func(t *testing.T) {
		probs := gibbs([]float64{1, 1, 1, 1}, 0.5)
		for _, p := range probs {
			require.InDelta(t, 0.25, p, 1e-12)
		}
	})

	t.Run("sums to one on large values", func(t *testing.T) {
		probs := gibbs([]float64{1000, 999, -1000}, 0.01)
		require.InDelta(t, 1, floats.Sum(probs), 1e-12)
		require.Equal(t, 0, floats.MaxIdx(probs))
	})
}

func TestSample(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	require.Equal(t, 1, sample(rng, []float64{0, 1, 0}))

	counts := make([]int, 2)
	for i := 0; i < 10000; i++ {
		counts[sample(rng, []float64{0.25, 0.75})]++
	}
	require.InDelta(t, 0.75, float64(counts[1])/10000, 0.03)
}

func TestGradientUpdate(t *testing.T) {
	g := Gradient(0.1, false).(*gradient)
	g.reset(2)

	g.Update(0, 1)

	require.InDelta(t, 0.05, g.preferences[0], 1e-12)
	require.InDelta(t, -0.05, g.preferences[1], 1e-12)
	require.InDelta(t, 0, floats.Sum(g.preferences), 1e-12, "preferences keep a zero sum")
}

func TestGradientBaseline(t *testing.T) {
	g := Gradient(0.1, true).(*gradient)
	g.reset(2)

	g.Update(0, 1)
	require.InDelta(t, 1, g.average, 1e-12)
	require.Equal(t, []float64{0, 0}, g.preferences, "reward equal to the baseline leaves preferences unchanged")

	g.Update(1, 3)
	require.InDelta(t, 2, g.average, 1e-12)
	require.Greater(t, g.preferences[1], g.preferences[0])
}

func TestLearningAutomaton(t *testing.T) {
	t.Run("supervised success", func(t *testing.T) {
		l := Supervised(0.1).(*learningAutomaton)
		l.reset(2)
		l.Update(0, 1)
		require.InDelta(t, 0.55, l.p, 1e-12)
	})

	t.Run("supervised failure moves to other arm", func(t *testing.T) {
		l := Supervised(0.1).(*learningAutomaton)
		l.reset(2)
		l.Update(0, 0)
		require.InDelta(t, 0.45, l.p, 1e-12)
	})

	t.Run("reward inaction ignores failure", func(t *testing.T) {
		l := RewardInaction(0.1).(*learningAutomaton)
		l.reset(2)
		l.Update(1, 0)
		require.InDelta(t, 0.5, l.p, 1e-12)
		l.Update(1, 1)
		require.InDelta(t, 0.45, l.p, 1e-12)
	})

	t.Run("probability stays in range", func(t *testing.T) {
		l := Supervised(1).(*learningAutomaton)
		l.reset(2)
		for i := 0; i < 10; i++ {
			l.Update(i%2, float64(i%3%2))
			require.GreaterOrEqual(t, l.p, 0.0)
			require.LessOrEqual(t, l.p, 1.0)
		}
	})
}

func TestNames(t *testing.T) {
	require.Equal(t, "greedy", Greedy().Name())
	require.Equal(t, "e-greedy-0.10", EpsilonGreedy(0.1).Name())
	require.Equal(t, "softmax-0.20", Softmax(0.2).Name())
	require.Equal(t, "gradient-0.10", Gradient(0.1, false).Name())
	require.Equal(t, "gradient-0.10-baseline", Gradient(0.1, true).Name())
	require.Equal(t, "supervised-0.10", Supervised(0.1).Name())
	require.Equal(t, "reward-inaction-0.01", RewardInaction(0.01).Name())
}
