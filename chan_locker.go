package stophandle

import (
	"context"

	"github.com/facebookincubator/go-belt/tool/logger"
)

// chanLocker is a mutex that can be given up on when the context is done.
type chanLocker chan struct{}

func newChanLocker() chanLocker {
	return make(chanLocker, 1)
}

func (l chanLocker) Lock(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		if isTraceEnabled(ctx) {
			logger.Tracef(ctx, "context is closed")
		}
		return false
	case l <- struct{}{}:
		return true
	}
}

func (l chanLocker) Unlock() {
	select {
	case <-l:
	default:
		panic("not locked!")
	}
}

// Do runs fn under the lock. It returns false without calling fn if the
// context was closed before the lock was acquired.
func (l chanLocker) Do(ctx context.Context, fn func()) bool {
	if !l.Lock(ctx) {
		return false
	}
	defer l.Unlock()
	fn()
	return true
}
