package bandit

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Run plays every strategy on the same set of n-armed testbed tasks. Each
// task draws its true arm values from N(0,1), and a play pays the chosen
// arm's true value plus N(0,1) noise.
func Run(cfg Config, strategies ...Strategy) ([]Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := validateStrategies(cfg.Arms, strategies); err != nil {
		return nil, err
	}

	src := rand.NewSource(cfg.Seed)
	rng := rand.New(src)
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	values := make([][]float64, cfg.Bandits)
	for b := range values {
		values[b] = make([]float64, cfg.Arms)
		for a := range values[b] {
			values[b][a] = normal.Rand()
		}
	}

	results := make([]Result, 0, len(strategies))
	for _, s := range strategies {
		result := newResult(s.Name(), cfg.Plays)
		for _, arms := range values {
			s.reset(cfg.Arms)
			best := floats.MaxIdx(arms)
			for play := 0; play < cfg.Plays; play++ {
				arm := s.Select(rng)
				reward := arms[arm] + normal.Rand()
				s.Update(arm, reward)
				result.record(play, reward, arm == best)
			}
		}
		result.average(cfg.Bandits)
		log.Debug().Msgf("Strategy %s: final avg reward %.4f, optimal %.4f", result.Name, result.AvgReward[cfg.Plays-1], result.Optimal[cfg.Plays-1])
		results = append(results, result)
	}

	return results, nil
}

func newResult(name string, plays int) Result {
	return Result{
		Name:      name,
		AvgReward: make([]float64, plays),
		Optimal:   make([]float64, plays),
	}
}

func (r *Result) record(play int, reward float64, optimal bool) {
	r.AvgReward[play] += reward
	if optimal {
		r.Optimal[play]++
	}
}

func (r *Result) average(bandits int) {
	floats.Scale(1/float64(bandits), r.AvgReward)
	floats.Scale(1/float64(bandits), r.Optimal)
}
