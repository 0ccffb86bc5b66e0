package bandit

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// RunBinary plays every strategy on two-armed tasks whose rewards are 1 with
// the arm's success probability and 0 otherwise.
func RunBinary(cfg BinaryConfig, strategies ...Strategy) ([]Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := validateStrategies(len(cfg.Success), strategies); err != nil {
		return nil, err
	}

	src := rand.NewSource(cfg.Seed)
	rng := rand.New(src)
	arms := []distuv.Bernoulli{
		{P: cfg.Success[0], Src: src},
		{P: cfg.Success[1], Src: src},
	}
	best := floats.MaxIdx(cfg.Success[:])

	results := make([]Result, 0, len(strategies))
	for _, s := range strategies {
		result := newResult(s.Name(), cfg.Plays)
		for b := 0; b < cfg.Bandits; b++ {
			s.reset(len(arms))
			for play := 0; play < cfg.Plays; play++ {
				arm := s.Select(rng)
				reward := arms[arm].Rand()
				s.Update(arm, reward)
				result.record(play, reward, arm == best)
			}
		}
		result.average(cfg.Bandits)
		log.Debug().Msgf("Strategy %s: final success rate %.4f, optimal %.4f", result.Name, result.AvgReward[cfg.Plays-1], result.Optimal[cfg.Plays-1])
		results = append(results, result)
	}

	return results, nil
}

// learningAutomaton plays arm 0 with probability p and arm 1 otherwise.
// After each play it moves p toward the arm it believes correct: the played
// arm on success, the other arm on failure.
type learningAutomaton struct {
	name     string
	alpha    float64
	inaction bool
	p        float64
}

// Supervised is the linear reward-penalty automaton. Failures move the
// probability toward the arm that was not played.
func Supervised(alpha float64) Strategy {
	return &learningAutomaton{name: "supervised", alpha: alpha}
}

// RewardInaction is the linear reward-inaction automaton. Failures leave the
// probabilities unchanged.
func RewardInaction(alpha float64) Strategy {
	return &learningAutomaton{name: "reward-inaction", alpha: alpha, inaction: true}
}

func (l *learningAutomaton) Name() string {
	return fmt.Sprintf("%s-%.2f", l.name, l.alpha)
}

func (l *learningAutomaton) reset(arms int) {
	l.p = 0.5
}

func (l *learningAutomaton) Select(rng *rand.Rand) int {
	if rng.Float64() < l.p {
		return 0
	}
	return 1
}

func (l *learningAutomaton) Update(arm int, reward float64) {
	success := reward > 0
	if !success && l.inaction {
		return
	}

	target := arm
	if !success {
		target = 1 - arm
	}

	if target == 0 {
		l.p += l.alpha * (1 - l.p)
	} else {
		l.p -= l.alpha * l.p
	}
}

func (l *learningAutomaton) validate(arms int) error {
	if arms != 2 {
		return fmt.Errorf("%s needs exactly 2 arms, got %d: %w", l.name, arms, ErrInvalidConfig)
	}
	if l.alpha <= 0 || l.alpha > 1 {
		return fmt.Errorf("alpha must be in (0,1], got %g: %w", l.alpha, ErrInvalidConfig)
	}
	return nil
}
