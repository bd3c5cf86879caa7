package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextMainPath(t *testing.T) {
	st := StateStart
	path := []State{StateValidating, StateEnhancing, StateRetrieving, StateFusing, StateClassifying, StateDone}
	for _, want := range path {
		st = Next(st, OutcomeAdvance)
		assert.Equal(t, want, st)
	}
	assert.True(t, st.Terminal())
}

func TestNextDeclineEdge(t *testing.T) {
	st := Next(StateValidating, OutcomeInvalid)
	assert.Equal(t, StateDeclined, st)
	assert.True(t, st.Terminal())
}

func TestNextRetryEdge(t *testing.T) {
	assert.Equal(t, StateRetrieving, Next(StateClassifying, OutcomeRetry))
}

func TestTerminalStatesAbsorb(t *testing.T) {
	for _, st := range []State{StateDeclined, StateDone} {
		for _, o := range []NodeOutcome{OutcomeAdvance, OutcomeInvalid, OutcomeRetry} {
			assert.Equal(t, st, Next(st, o))
		}
	}
}

func TestOutcomeIgnoredOffItsNode(t *testing.T) {
	// Retry only means something on the classifying node; invalid only on
	// the validating node.
	assert.Equal(t, StateFusing, Next(StateRetrieving, OutcomeRetry))
	assert.Equal(t, StateClassifying, Next(StateFusing, OutcomeInvalid))
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "validating", StateValidating.String())
	assert.Equal(t, "done", StateDone.String())
	assert.Equal(t, "unknown", State(99).String())
}
