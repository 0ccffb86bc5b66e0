package game

// Threshold hits while the player total is below Stick.
type Threshold struct {
	Stick int
}

func (t Threshold) Act(s State) Action {
	if s.Player < t.Stick {
		return Hit
	}
	return Stick
}

// Table is a mutable policy with one entry per state. States without an
// entry stick.
type Table map[State]Action

// NewTable returns a table holding Stick for every decision state.
func NewTable() Table {
	t := make(Table, NumStates)
	for _, s := range States() {
		t[s] = Stick
	}
	return t
}

func (t Table) Act(s State) Action {
	return t[s]
}

type exploringStart struct {
	first  Action
	used   bool
	policy Policy
}

// ExploringStart overrides the first decision of an episode with first and
// follows policy afterwards. Use a fresh value per episode.
func ExploringStart(first Action, policy Policy) Policy {
	return &exploringStart{first: first, policy: policy}
}

func (e *exploringStart) Act(s State) Action {
	if !e.used {
		e.used = true
		return e.first
	}
	return e.policy.Act(s)
}
