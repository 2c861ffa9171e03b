package stophandle

import (
	"context"
)

// triggerable is a context that gets closed by Trigger. It is used as
// a broadcast "this has happened" flag.
type triggerable struct {
	context.Context
	CancelFunc context.CancelFunc
}

func newTriggerable() *triggerable {
	ctx, cancelFn := context.WithCancel(context.Background())
	return &triggerable{
		Context:    ctx,
		CancelFunc: cancelFn,
	}
}

func (ctx *triggerable) Trigger() {
	ctx.CancelFunc()
}

func (ctx *triggerable) IsTriggered() bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
