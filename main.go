package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"blackjack/bandit"
	"blackjack/experiments"
	"blackjack/game"
	"blackjack/meta"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func main() {
	_ = godotenv.Load()

	mode := flag.String("mode", "evaluate", "Experiment to run: evaluate, control, bandit or binary")
	episodes := flag.Int("episodes", atoiDef(os.Getenv("BLACKJACK_EPISODES"), meta.EPISODES), "Number of blackjack episodes")
	seed := flag.Uint64("seed", uint64(atoiDef(os.Getenv("BLACKJACK_SEED"), meta.SEED)), "Seed of the random stream")
	threshold := flag.Int("threshold", meta.STICK, "Player total at which the evaluated policy sticks")
	rules := flag.String("rules", "standard", "Dealer rules: standard (stops once ahead) or textbook (stands on 17)")
	everyVisit := flag.Bool("every-visit", false, "Credit every decision state of an episode during evaluation")
	bandits := flag.Int("bandits", meta.BANDITS, "Number of independent bandit tasks")
	arms := flag.Int("arms", meta.ARMS, "Number of arms per bandit task")
	plays := flag.Int("plays", meta.PLAYS, "Number of plays per bandit task")
	epsilon := flag.Float64("epsilon", 0.1, "Exploration rate of the epsilon-greedy strategy")
	temperature := flag.Float64("temperature", 0.1, "Temperature of the softmax strategy")
	cSquared := flag.Float64("c2", 2, "Exploration constant of the UCB strategy")
	alpha := flag.Float64("alpha", 0.1, "Step size of the gradient and automaton strategies")
	p0 := flag.Float64("p0", 0.1, "Success probability of the first binary arm")
	p1 := flag.Float64("p1", 0.2, "Success probability of the second binary arm")
	level := flag.String("level", getenv("LOG_LEVEL", "info"), "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msgf("invalid log level %q", *level)
	}
	zerolog.SetGlobalLevel(lvl)

	cfg := experiments.Config{
		Episodes:   *episodes,
		Seed:       *seed,
		Threshold:  *threshold,
		EveryVisit: *everyVisit,
	}
	switch *rules {
	case "standard":
		cfg.Rules = game.NewStandardRules()
	case "textbook":
		cfg.Rules = game.NewTextbookRules()
	default:
		log.Fatal().Msgf("unknown rules %q", *rules)
	}

	switch *mode {
	case "evaluate":
		err = experiments.RunEvaluation(os.Stdout, cfg)
	case "control":
		err = experiments.RunControl(os.Stdout, cfg)
	case "bandit":
		err = experiments.RunBandit(os.Stdout,
			bandit.Config{Bandits: *bandits, Arms: *arms, Plays: *plays, Seed: *seed},
			bandit.Greedy(),
			bandit.EpsilonGreedy(*epsilon),
			bandit.Softmax(*temperature),
			bandit.Gradient(*alpha, true),
			bandit.UCB(*cSquared),
		)
	case "binary":
		err = experiments.RunBinary(os.Stdout,
			bandit.BinaryConfig{Bandits: *bandits, Plays: *plays, Success: [2]float64{*p0, *p1}, Seed: *seed},
			bandit.Supervised(*alpha),
			bandit.RewardInaction(*alpha),
			bandit.EpsilonGreedy(*epsilon),
		)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", *mode)
	}
}
