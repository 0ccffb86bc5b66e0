package experiments

import (
	"fmt"
	"io"

	"blackjack/bandit"
	"blackjack/experiments/metrics"
	"blackjack/game"
	"blackjack/montecarlo"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"
)

// Config parameterizes the blackjack experiments.
type Config struct {
	Episodes   int
	Seed       uint64
	Rules      game.Rules
	Threshold  int  // Evaluation only
	EveryVisit bool // Evaluation only
}

func (c Config) options(collector metrics.Collector) []montecarlo.Option {
	options := []montecarlo.Option{
		montecarlo.WithEpisodes(c.Episodes),
		montecarlo.WithSeed(c.Seed),
		montecarlo.WithRules(c.Rules),
		montecarlo.WithMetrics(collector),
	}
	if c.EveryVisit {
		options = append(options, montecarlo.WithEveryVisit())
	}
	return options
}

// RunEvaluation estimates the values of the threshold policy and writes the
// value table to out.
func RunEvaluation(out io.Writer, cfg Config) error {
	log.Info().Msgf("starting evaluation of stick-at-%d policy...", cfg.Threshold)

	collector := metrics.NewCollector()
	values, err := montecarlo.Evaluate(cfg.Threshold, cfg.options(collector)...)
	if err != nil {
		return fmt.Errorf("failed to evaluate policy: %w", err)
	}
	logRun(collector.Complete())

	ace, noAce := values.Split()
	log.Info().Msgf("estimated %d states: usable ace mean %.4f, no usable ace mean %.4f",
		values.Len(), mean(ace), mean(noAce))

	if err := metrics.NewWriter(out).WriteValues(values.Rows()); err != nil {
		return fmt.Errorf("failed to write value table: %w", err)
	}
	log.Info().Msg("completed evaluation")
	return nil
}

// RunControl learns a policy with exploring starts and writes the action
// values, then the greedy policy, to out.
func RunControl(out io.Writer, cfg Config) error {
	log.Info().Msg("starting exploring-starts control...")

	collector := metrics.NewCollector()
	q, policy, err := montecarlo.Control(cfg.options(collector)...)
	if err != nil {
		return fmt.Errorf("failed to run control: %w", err)
	}
	logRun(collector.Complete())

	hits := 0
	for _, a := range policy {
		if a == game.Hit {
			hits++
		}
	}
	log.Info().Msgf("estimated %d state-action pairs, policy hits in %d of %d states", q.Len(), hits, len(policy))

	writer := metrics.NewWriter(out)
	if err := writer.WriteActionValues(q.Rows(policy)); err != nil {
		return fmt.Errorf("failed to write action values: %w", err)
	}
	if err := writer.WritePolicy(policy); err != nil {
		return fmt.Errorf("failed to write policy: %w", err)
	}
	log.Info().Msg("completed control")
	return nil
}

// RunBandit compares strategies on the n-armed testbed and writes their
// per-play series to out.
func RunBandit(out io.Writer, cfg bandit.Config, strategies ...bandit.Strategy) error {
	log.Info().Msgf("starting %d-armed testbed with %d bandits of %d plays...", cfg.Arms, cfg.Bandits, cfg.Plays)

	results, err := bandit.Run(cfg, strategies...)
	if err != nil {
		return fmt.Errorf("failed to run testbed: %w", err)
	}
	return writeSeries(out, results)
}

// RunBinary compares strategies on two-armed Bernoulli tasks and writes their
// per-play series to out.
func RunBinary(out io.Writer, cfg bandit.BinaryConfig, strategies ...bandit.Strategy) error {
	log.Info().Msgf("starting binary bandit with success probabilities %v...", cfg.Success)

	results, err := bandit.RunBinary(cfg, strategies...)
	if err != nil {
		return fmt.Errorf("failed to run binary bandit: %w", err)
	}
	return writeSeries(out, results)
}

func writeSeries(out io.Writer, results []bandit.Result) error {
	series := make([]metrics.Series, len(results))
	for i, r := range results {
		log.Info().Msgf("strategy %s: mean reward %.4f, mean optimal %.4f", r.Name, stat.Mean(r.AvgReward, nil), stat.Mean(r.Optimal, nil))
		series[i] = metrics.Series{Name: r.Name, AvgReward: r.AvgReward, Optimal: r.Optimal}
	}

	if err := metrics.NewWriter(out).WriteSeries(series); err != nil {
		return fmt.Errorf("failed to write series: %w", err)
	}
	log.Info().Msg("completed bandit experiment")
	return nil
}

func logRun(run metrics.RunMetric) {
	log.Info().Msgf("completed %s run of %d episodes in %s: %d wins, %d draws, %d losses, mean payoff %.4f",
		run.Name, run.Episodes, run.Duration, run.Wins, run.Draws, run.Losses, run.MeanPayoff())
}

func mean(values map[game.State]float64) float64 {
	if len(values) == 0 {
		return 0
	}
	xs := make([]float64, 0, len(values))
	for _, v := range values {
		xs = append(xs, v)
	}
	return stat.Mean(xs, nil)
}
