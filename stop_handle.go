// Package stophandle provides a one-shot shutdown request: any number of
// producers may ask a single consumer to stop, with a reason, and only the
// first request is delivered.
//
// The consumer also learns when nobody is able to ask anymore, that is when
// every Handle was released (or garbage collected) without a Stop.
package stophandle

import (
	"context"

	"github.com/facebookincubator/go-belt/tool/logger"
)

// New returns a connected pair: Stop on the Handle (or on any of its
// clones) resolves the Wait.
//
// ctx is used only as the source of the logger; its cancellation has no
// effect on the pair.
func New[T any](
	ctx context.Context,
	opts ...Option,
) (*Handle[T], *Wait[T]) {
	ctx = detachedCtx[T](ctx)
	if isTraceEnabled(ctx) {
		logger.Tracef(ctx, "New")
	}
	ch := make(chan T, 1)
	return newHandle(newSlot[T](ctx, ch, Options(opts).Config())), newWait[T](ch)
}
