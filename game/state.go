package game

import (
	"cmp"
	"fmt"
)

const (
	MinDecision = 12 // Below this the player always hits
	MaxDecision = 21
)

// NumStates is the size of the decision state space: 10 player totals,
// 13 upcards and the usable ace flag.
const NumStates = (MaxDecision - MinDecision + 1) * NumRanks * 2

// State is what the player sees at a decision point.
type State struct {
	Player    int  // Player hand total
	Upcard    Rank // Dealer's visible card
	UsableAce bool // Player counts an ace as 11
}

// NewState derives the player's state from their hand and the dealer upcard.
func NewState(hand Hand, upcard Rank) State {
	total, usable := hand.Value()
	return State{Player: total, Upcard: upcard, UsableAce: usable}
}

// Decision reports whether the state is one of the NumStates decision states.
func (s State) Decision() bool {
	return s.Player >= MinDecision && s.Player <= MaxDecision &&
		s.Upcard >= Ace && s.Upcard <= King
}

// Compare orders states by player total, then upcard, then usable ace
// (false first).
func (s State) Compare(o State) int {
	if c := cmp.Compare(s.Player, o.Player); c != 0 {
		return c
	}
	if c := cmp.Compare(s.Upcard, o.Upcard); c != 0 {
		return c
	}
	return cmp.Compare(boolInt(s.UsableAce), boolInt(o.UsableAce))
}

func (s State) String() string {
	return fmt.Sprintf("(%d, %s, %t)", s.Player, s.Upcard, s.UsableAce)
}

// States returns every decision state in Compare order.
func States() []State {
	states := make([]State, 0, NumStates)
	for player := MinDecision; player <= MaxDecision; player++ {
		for upcard := Ace; upcard <= King; upcard++ {
			states = append(states,
				State{Player: player, Upcard: upcard, UsableAce: false},
				State{Player: player, Upcard: upcard, UsableAce: true},
			)
		}
	}
	return states
}

// StateAction keys the action-value table.
type StateAction struct {
	State  State
	Action Action
}

// Compare orders by state, then action.
func (sa StateAction) Compare(o StateAction) int {
	if c := sa.State.Compare(o.State); c != 0 {
		return c
	}
	return cmp.Compare(sa.Action, o.Action)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
