package stophandle

import (
	"context"

	"github.com/facebookincubator/go-belt/tool/logger"
)

// slot is the single-assignment container shared by all clones of a Handle.
//
// sender is the write side of a one-element buffered channel read by the
// Wait. Once taken (by a deposit or by abandonment) it is never restored.
type slot[T any] struct {
	ctx    context.Context
	locker chanLocker
	sender chan<- T
	refs   uint
	config
}

func newSlot[T any](
	ctx context.Context,
	sender chan<- T,
	cfg config,
) *slot[T] {
	return &slot[T]{
		ctx:    ctx,
		locker: newChanLocker(),
		sender: sender,
		refs:   1,
		config: cfg,
	}
}

// deposit transmits the reason if nobody did it before, and reports if
// it did. The channel is buffered, so it never blocks on the receiver.
func (s *slot[T]) deposit(reason T) (ok bool) {
	s.locker.Do(s.ctx, func() {
		if s.sender == nil {
			return
		}
		s.sender <- reason
		close(s.sender)
		s.sender = nil
		ok = true
	})
	return
}

// acquire registers one more clone. It fails if the last clone was
// already released.
func (s *slot[T]) acquire() (ok bool) {
	s.locker.Do(s.ctx, func() {
		if s.refs == 0 {
			return
		}
		s.refs++
		ok = true
	})
	return
}

// release unregisters a clone. Releasing the last one closes the sender
// unless a reason was already deposited, which the Wait sees as HandleLost.
func (s *slot[T]) release() {
	var abandoned bool
	s.locker.Do(s.ctx, func() {
		if s.refs == 0 {
			panic("released more times than acquired")
		}
		s.refs--
		if s.refs > 0 || s.sender == nil {
			return
		}
		close(s.sender)
		s.sender = nil
		abandoned = true
	})
	if abandoned && isTraceEnabled(s.ctx) {
		logger.Tracef(s.ctx, "the last handle is released without a stop request")
	}
}
