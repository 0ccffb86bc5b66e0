package bandit

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
)

// ErrInvalidConfig is returned before any play when a run is misconfigured.
var ErrInvalidConfig = errors.New("invalid configuration")

// Strategy selects arms and learns from the rewards it receives. A strategy
// is reset before each bandit task, so one value serves a whole run.
type Strategy interface {
	Name() string
	Select(rng *rand.Rand) int
	Update(arm int, reward float64)
	reset(arms int)
	validate(arms int) error
}

// Result holds, for each play index, the reward averaged over all bandit
// tasks and the fraction of tasks that picked the optimal arm.
type Result struct {
	Name      string
	AvgReward []float64
	Optimal   []float64
}

type Config struct {
	Bandits int // Independent tasks averaged per play
	Arms    int
	Plays   int
	Seed    uint64
}

func (c Config) validate() error {
	if c.Bandits <= 0 {
		return fmt.Errorf("bandits must be > 0, got %d: %w", c.Bandits, ErrInvalidConfig)
	}
	if c.Arms <= 0 {
		return fmt.Errorf("arms must be > 0, got %d: %w", c.Arms, ErrInvalidConfig)
	}
	if c.Plays <= 0 {
		return fmt.Errorf("plays must be > 0, got %d: %w", c.Plays, ErrInvalidConfig)
	}
	return nil
}

type BinaryConfig struct {
	Bandits int
	Plays   int
	Success [2]float64 // Success probability of each arm
	Seed    uint64
}

func (c BinaryConfig) validate() error {
	if c.Bandits <= 0 {
		return fmt.Errorf("bandits must be > 0, got %d: %w", c.Bandits, ErrInvalidConfig)
	}
	if c.Plays <= 0 {
		return fmt.Errorf("plays must be > 0, got %d: %w", c.Plays, ErrInvalidConfig)
	}
	for i, p := range c.Success {
		if p < 0 || p > 1 {
			return fmt.Errorf("success probability of arm %d must be in [0,1], got %g: %w", i, p, ErrInvalidConfig)
		}
	}
	return nil
}

func validateStrategies(arms int, strategies []Strategy) error {
	if len(strategies) == 0 {
		return fmt.Errorf("no strategies given: %w", ErrInvalidConfig)
	}
	for _, s := range strategies {
		if s == nil {
			return fmt.Errorf("nil strategy: %w", ErrInvalidConfig)
		}
		if err := s.validate(arms); err != nil {
			return err
		}
	}
	return nil
}
