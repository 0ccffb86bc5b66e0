package game

// Action represents a player decision. The dealer never chooses actions; it
// follows the Rules.
type Action int

const (
	Stick Action = iota // 0
	Hit                 // 1
)

// Actions lists every action in tie-break order: when two actions have the
// same value the earlier one wins.
var Actions = []Action{Stick, Hit}

func (a Action) String() string {
	switch a {
	case Stick:
		return "stick"
	case Hit:
		return "hit"
	default:
		return "unknown"
	}
}
