package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"blackjack/game"
	"blackjack/utils"
)

type ValueRow struct {
	State game.State
	Value float64
	Count int
}

type ActionRow struct {
	State  game.State
	Action game.Action
	Value  float64
	Count  int
	Greedy bool // Action is the policy's choice in State
}

// Series is the per-play output of one bandit strategy.
type Series struct {
	Name      string
	AvgReward []float64
	Optimal   []float64
}

// Writer tabulates results as CSV for a plotting or display collaborator.
type Writer struct {
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) WriteValues(rows []ValueRow) error {
	writer := csv.NewWriter(w.out)

	header := []string{"player", "upcard", "usable_ace", "value", "count"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write values header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.State.Player),
			row.State.Upcard.String(),
			strconv.FormatBool(row.State.UsableAce),
			formatFloat(row.Value),
			strconv.Itoa(row.Count),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write value row: %w", err)
		}
	}

	return flush(writer)
}

func (w *Writer) WriteActionValues(rows []ActionRow) error {
	writer := csv.NewWriter(w.out)

	header := []string{"player", "upcard", "usable_ace", "action", "value", "count", "greedy"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write action values header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.State.Player),
			row.State.Upcard.String(),
			strconv.FormatBool(row.State.UsableAce),
			row.Action.String(),
			formatFloat(row.Value),
			strconv.Itoa(row.Count),
			strconv.FormatBool(row.Greedy),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write action value row: %w", err)
		}
	}

	return flush(writer)
}

func (w *Writer) WritePolicy(policy game.Table) error {
	writer := csv.NewWriter(w.out)

	header := []string{"player", "upcard", "usable_ace", "action"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write policy header: %w", err)
	}

	for _, s := range utils.SortedKeys(policy, game.State.Compare) {
		record := []string{
			strconv.Itoa(s.Player),
			s.Upcard.String(),
			strconv.FormatBool(s.UsableAce),
			policy[s].String(),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write policy row: %w", err)
		}
	}

	return flush(writer)
}

// WriteSeries writes one row per play with a reward and an optimal-action
// column for each series.
func (w *Writer) WriteSeries(series []Series) error {
	writer := csv.NewWriter(w.out)

	header := []string{"play"}
	plays := 0
	for _, s := range series {
		if len(s.AvgReward) != len(s.Optimal) {
			return fmt.Errorf("series %s has %d rewards but %d optimal fractions", s.Name, len(s.AvgReward), len(s.Optimal))
		}
		header = append(header, s.Name+"_reward", s.Name+"_optimal")
		plays = max(plays, len(s.AvgReward))
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write series header: %w", err)
	}

	for i := 0; i < plays; i++ {
		record := []string{strconv.Itoa(i + 1)}
		for _, s := range series {
			if i < len(s.AvgReward) {
				record = append(record, formatFloat(s.AvgReward[i]), formatFloat(s.Optimal[i]))
			} else {
				record = append(record, "", "")
			}
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write series row: %w", err)
		}
	}

	return flush(writer)
}

func (w *Writer) WriteRunMetrics(runs []RunMetric) error {
	writer := csv.NewWriter(w.out)

	header := []string{"name", "seed", "duration", "episodes", "wins", "draws", "losses", "player_busts", "dealer_busts", "mean_payoff"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write run metrics header: %w", err)
	}

	for _, run := range runs {
		record := []string{
			run.Name,
			strconv.FormatUint(run.Seed, 10),
			run.Duration.String(),
			strconv.Itoa(run.Episodes),
			strconv.Itoa(run.Wins),
			strconv.Itoa(run.Draws),
			strconv.Itoa(run.Losses),
			strconv.Itoa(run.PlayerBusts),
			strconv.Itoa(run.DealerBusts),
			formatFloat(run.MeanPayoff()),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write run metric row: %w", err)
		}
	}

	return flush(writer)
}

func flush(writer *csv.Writer) error {
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
