package stophandle

import (
	"context"

	"github.com/facebookincubator/go-belt/tool/logger"
)

// Wait is the receiving side of a stop handle pair. It resolves exactly
// once, either to Requested or to HandleLost.
//
// Wait is meant to have a single waiter, but concurrent calls are safe:
// they are serialized and all observe the same outcome.
type Wait[T any] struct {
	locker   chanLocker
	receiver <-chan T
	outcome  Outcome[T]
	finished *triggerable
}

func newWait[T any](receiver <-chan T) *Wait[T] {
	return &Wait[T]{
		locker:   newChanLocker(),
		receiver: receiver,
		finished: newTriggerable(),
	}
}

// Wait blocks until the stop is requested or every handle is released.
//
// If ctx is done first, it returns ctx.Err() and the Wait stays pending,
// so it may be called again. Once resolved, it returns the same outcome
// without waiting.
func (w *Wait[T]) Wait(ctx context.Context) (_ret Outcome[T], _err error) {
	if isTraceEnabled(ctx) {
		logger.Tracef(ctx, "Wait[%T]", w)
		defer func() { logger.Tracef(ctx, "/Wait[%T]: %v %v", w, _ret, _err) }()
	}

	if w.finished.IsTriggered() {
		return w.outcome, nil
	}

	if !w.locker.Lock(ctx) {
		return nil, ctx.Err()
	}
	defer w.locker.Unlock()

	if w.finished.IsTriggered() {
		return w.outcome, nil
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case reason, ok := <-w.receiver:
		if ok {
			w.outcome = Requested[T]{Reason: reason}
		} else {
			w.outcome = HandleLost[T]{}
		}
	}
	w.receiver = nil
	w.finished.Trigger()
	return w.outcome, nil
}

// IsTerminated reports if the Wait has already resolved. After that,
// Wait never blocks again.
func (w *Wait[T]) IsTerminated() bool {
	return w.finished.IsTriggered()
}

// Done returns a channel closed once the Wait has resolved.
func (w *Wait[T]) Done() <-chan struct{} {
	return w.finished.Done()
}
