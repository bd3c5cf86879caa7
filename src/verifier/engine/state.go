package engine

// State enumerates the workflow positions of a verification run.
type State int

const (
	StateStart State = iota
	StateValidating
	StateDeclined
	StateEnhancing
	StateRetrieving
	StateFusing
	StateClassifying
	StateDone
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateValidating:
		return "validating"
	case StateDeclined:
		return "declined"
	case StateEnhancing:
		return "enhancing"
	case StateRetrieving:
		return "retrieving"
	case StateFusing:
		return "fusing"
	case StateClassifying:
		return "classifying"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// Terminal reports whether the workflow stops in this state.
func (s State) Terminal() bool {
	return s == StateDeclined || s == StateDone
}

// NodeOutcome is the result of executing the node for the current state.
type NodeOutcome int

const (
	// OutcomeAdvance moves to the next state on the main path.
	OutcomeAdvance NodeOutcome = iota
	// OutcomeInvalid routes validation to the declined terminal.
	OutcomeInvalid
	// OutcomeRetry loops classification back to retrieval.
	OutcomeRetry
)

// Next is the pure transition function over (state, outcome). Terminal
// states map to themselves.
func Next(s State, o NodeOutcome) State {
	switch s {
	case StateStart:
		return StateValidating
	case StateValidating:
		if o == OutcomeInvalid {
			return StateDeclined
		}
		return StateEnhancing
	case StateEnhancing:
		return StateRetrieving
	case StateRetrieving:
		return StateFusing
	case StateFusing:
		return StateClassifying
	case StateClassifying:
		if o == OutcomeRetry {
			return StateRetrieving
		}
		return StateDone
	default:
		return s
	}
}
