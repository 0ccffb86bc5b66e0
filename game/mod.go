package game

// Policy maps a decision state to the player's action. The simulator queries
// a policy exactly once per decision state it visits.
type Policy interface {
	Act(State) Action
}

// PolicyFunc adapts a function to Policy.
type PolicyFunc func(State) Action

func (f PolicyFunc) Act(s State) Action { return f(s) }
