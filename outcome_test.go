package stophandle

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type terminationReason int

const (
	terminationReasonManual = terminationReason(iota)
)

func (r terminationReason) String() string {
	switch r {
	case terminationReasonManual:
		return "Manual"
	default:
		return fmt.Sprintf("terminationReason(%d)", int(r))
	}
}

func TestOutcomeString(t *testing.T) {
	require.Equal(t, "requested with reason `Manual`", Requested[terminationReason]{Reason: terminationReasonManual}.String())
	require.Equal(t, "requested with reason `42`", fmt.Sprint(Requested[int]{Reason: 42}))
	require.Equal(t, "handle lost", HandleLost[string]{}.String())

	var outcome Outcome[string] = HandleLost[string]{}
	require.Equal(t, "handle lost", fmt.Sprintf("%v", outcome))
}

func TestOutcomeEquality(t *testing.T) {
	var a, b Outcome[string] = Requested[string]{Reason: "x"}, Requested[string]{Reason: "x"}
	require.True(t, a == b)
	require.False(t, a == Outcome[string](Requested[string]{Reason: "y"}))
	require.False(t, a == Outcome[string](HandleLost[string]{}))
}

func TestReasonOf(t *testing.T) {
	reason, ok := ReasonOf[string](Requested[string]{Reason: "x"})
	require.True(t, ok)
	require.Equal(t, "x", reason)

	reason, ok = ReasonOf[string](HandleLost[string]{})
	require.False(t, ok)
	require.Zero(t, reason)

	var outcome Outcome[terminationReason] = Requested[terminationReason]{Reason: terminationReasonManual}
	manual, ok := ReasonOf(outcome)
	require.True(t, ok)
	require.Equal(t, terminationReasonManual, manual)

	outcome = HandleLost[terminationReason]{}
	_, ok = ReasonOf(outcome)
	require.False(t, ok)

	reason, ok = ReasonOf[string](nil)
	require.False(t, ok)
	require.Zero(t, reason)
}

func TestReasonTypeName(t *testing.T) {
	require.Equal(t, "string", reasonTypeName[string]())
	require.Equal(t, "error", reasonTypeName[error]())
	require.Equal(t, "fmt.Stringer", reasonTypeName[fmt.Stringer]())
}
