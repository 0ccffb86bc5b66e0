package montecarlo

import (
	"errors"
	"fmt"

	"blackjack/experiments/metrics"
	"blackjack/game"
	"blackjack/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// ErrInvalidConfig is returned before any episode runs when a run is
// misconfigured.
var ErrInvalidConfig = errors.New("invalid configuration")

type Option func(r *runner)

type runner struct {
	episodes   int
	seed       uint64
	rng        *rand.Rand
	rules      game.Rules
	metrics    metrics.Collector
	everyVisit bool
	progress   int
}

// WithEpisodes sets the number of episodes to simulate.
func WithEpisodes(episodes int) Option {
	return func(r *runner) {
		r.episodes = episodes
	}
}

// WithSeed seeds a fresh random stream for the run.
func WithSeed(seed uint64) Option {
	return func(r *runner) {
		r.seed = seed
		r.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects the random stream. The run consumes it in a fixed order:
// deck shuffle first, then any decision draws of that episode.
func WithRand(rng *rand.Rand) Option {
	return func(r *runner) {
		if rng != nil {
			r.rng = rng
		}
	}
}

func WithRules(rules game.Rules) Option {
	return func(r *runner) {
		if rules != nil {
			r.rules = rules
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(r *runner) {
		if collector != nil {
			r.metrics = collector
		}
	}
}

// WithEveryVisit credits every decision state of an episode instead of only
// its first one. Only affects Evaluate.
func WithEveryVisit() Option {
	return func(r *runner) {
		r.everyVisit = true
	}
}

// WithProgress logs a debug line every n episodes; 0 disables it.
func WithProgress(every int) Option {
	return func(r *runner) {
		r.progress = every
	}
}

func newRunner(options ...Option) (*runner, error) {
	r := &runner{ // Default values
		episodes: meta.EPISODES,
		seed:     meta.SEED,
		rules:    game.NewStandardRules(),
		metrics:  metrics.NewDummyCollector(),
		progress: meta.PROGRESS,
	}
	for _, option := range options {
		option(r)
	}
	if r.episodes <= 0 {
		return nil, fmt.Errorf("episodes must be positive, got %d: %w", r.episodes, ErrInvalidConfig)
	}
	if r.progress < 0 {
		return nil, fmt.Errorf("progress interval must not be negative, got %d: %w", r.progress, ErrInvalidConfig)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(r.seed))
	}
	return r, nil
}

func (r *runner) tick(name string, episode int) {
	if r.progress > 0 && (episode+1)%r.progress == 0 {
		log.Debug().Msgf("%s: completed %d of %d episodes", name, episode+1, r.episodes)
	}
}
