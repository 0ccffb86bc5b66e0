package montecarlo

import (
	"fmt"

	"blackjack/experiments/metrics"
	"blackjack/game"
	"blackjack/utils"

	"gonum.org/v1/gonum/floats"
)

// Estimate is the running mean of the returns observed for one key.
type Estimate struct {
	Mean  float64
	Count int
}

// Add folds ret into the mean incrementally.
func (e *Estimate) Add(ret float64) {
	e.Count++
	e.Mean += (ret - e.Mean) / float64(e.Count)
}

// ValueTable estimates the state-value function of a fixed policy.
type ValueTable struct {
	estimates map[game.State]*Estimate
}

func NewValueTable() *ValueTable {
	return &ValueTable{estimates: make(map[game.State]*Estimate)}
}

func (v *ValueTable) Add(s game.State, ret float64) {
	e, ok := v.estimates[s]
	if !ok {
		e = &Estimate{}
		v.estimates[s] = e
	}
	e.Add(ret)
}

// Value returns the mean return of s and whether s was ever visited.
func (v *ValueTable) Value(s game.State) (float64, bool) {
	e, ok := v.estimates[s]
	if !ok {
		return 0, false
	}
	return e.Mean, true
}

func (v *ValueTable) Count(s game.State) int {
	if e, ok := v.estimates[s]; ok {
		return e.Count
	}
	return 0
}

func (v *ValueTable) Len() int {
	return len(v.estimates)
}

// States returns the visited states in ascending order.
func (v *ValueTable) States() []game.State {
	return utils.SortedKeys(v.estimates, game.State.Compare)
}

// Split partitions the table into usable-ace and no-usable-ace states. States
// with a total of 11 or less carry no decision and are left out of the
// no-ace half.
func (v *ValueTable) Split() (ace, noAce map[game.State]float64) {
	ace = make(map[game.State]float64)
	noAce = make(map[game.State]float64)
	for s, e := range v.estimates {
		switch {
		case s.UsableAce:
			ace[s] = e.Mean
		case s.Player > 11:
			noAce[s] = e.Mean
		}
	}
	return ace, noAce
}

func (v *ValueTable) Rows() []metrics.ValueRow {
	states := v.States()
	rows := make([]metrics.ValueRow, len(states))
	for i, s := range states {
		e := v.estimates[s]
		rows[i] = metrics.ValueRow{State: s, Value: e.Mean, Count: e.Count}
	}
	return rows
}

// ActionValueTable estimates the action-value function of the control run.
type ActionValueTable struct {
	estimates map[game.StateAction]*Estimate
}

func NewActionValueTable() *ActionValueTable {
	return &ActionValueTable{estimates: make(map[game.StateAction]*Estimate)}
}

func (q *ActionValueTable) Add(s game.State, a game.Action, ret float64) {
	key := game.StateAction{State: s, Action: a}
	e, ok := q.estimates[key]
	if !ok {
		e = &Estimate{}
		q.estimates[key] = e
	}
	e.Add(ret)
}

// Value returns the mean return of taking a in s; unvisited pairs are 0.
func (q *ActionValueTable) Value(s game.State, a game.Action) float64 {
	if e, ok := q.estimates[game.StateAction{State: s, Action: a}]; ok {
		return e.Mean
	}
	return 0
}

func (q *ActionValueTable) Count(s game.State, a game.Action) int {
	if e, ok := q.estimates[game.StateAction{State: s, Action: a}]; ok {
		return e.Count
	}
	return 0
}

func (q *ActionValueTable) Len() int {
	return len(q.estimates)
}

// Keys returns the visited state-action pairs in ascending order.
func (q *ActionValueTable) Keys() []game.StateAction {
	return utils.SortedKeys(q.estimates, game.StateAction.Compare)
}

// Greedy returns the action with the highest value in s. Ties go to Stick.
// The choice is computed twice, by direct comparison and by scanning the
// action values, and the two must agree.
func (q *ActionValueTable) Greedy(s game.State) game.Action {
	direct := game.Stick
	if q.Value(s, game.Hit) > q.Value(s, game.Stick) {
		direct = game.Hit
	}

	values := make([]float64, len(game.Actions))
	for i, a := range game.Actions {
		values[i] = q.Value(s, a)
	}
	scanned := game.Actions[floats.MaxIdx(values)]

	if direct != scanned {
		panic(fmt.Sprintf("invariant violation: greedy action for %s is %s by comparison but %s by scan (values %v)",
			s, direct, scanned, values))
	}
	return direct
}

func (q *ActionValueTable) Rows(policy game.Table) []metrics.ActionRow {
	keys := q.Keys()
	rows := make([]metrics.ActionRow, len(keys))
	for i, k := range keys {
		e := q.estimates[k]
		rows[i] = metrics.ActionRow{
			State:  k.State,
			Action: k.Action,
			Value:  e.Mean,
			Count:  e.Count,
			Greedy: policy.Act(k.State) == k.Action,
		}
	}
	return rows
}
