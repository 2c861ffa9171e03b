package stophandle

import (
	"fmt"
)

// Outcome is the result delivered to the waiter of a stop handle pair.
//
// The set of implementations is closed: Requested and HandleLost.
type Outcome[T any] interface {
	fmt.Stringer
	reason() (T, bool)
}

// Requested is an Outcome meaning that Stop was called with the given reason.
type Requested[T any] struct {
	Reason T
}

var _ Outcome[struct{}] = Requested[struct{}]{}

func (r Requested[T]) reason() (T, bool) {
	return r.Reason, true
}

func (r Requested[T]) String() string {
	return fmt.Sprintf("requested with reason `%v`", r.Reason)
}

// HandleLost is an Outcome meaning that every clone of the handle was
// released before anybody called Stop.
type HandleLost[T any] struct{}

var _ Outcome[struct{}] = HandleLost[struct{}]{}

func (HandleLost[T]) reason() (T, bool) {
	var zeroValue T
	return zeroValue, false
}

func (HandleLost[T]) String() string {
	return "handle lost"
}

// ReasonOf returns the reason carried by the outcome, and false if
// the outcome is not Requested.
func ReasonOf[T any](o Outcome[T]) (T, bool) {
	if o == nil {
		var zeroValue T
		return zeroValue, false
	}
	return o.reason()
}
