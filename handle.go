package stophandle

import (
	"runtime"
	"sync/atomic"

	"github.com/facebookincubator/go-belt/tool/logger"
)

// Handle requests the stop of whoever holds the paired Wait.
//
// A Handle may be cloned and the clones handed to any number of
// goroutines. Only the first Stop across all the clones has an effect.
// When every clone is released without a Stop, the Wait resolves to
// HandleLost.
type Handle[T any] struct {
	slot       *slot[T]
	ref        *handleRef[T]
	cleanup    runtime.Cleanup
	hasCleanup bool
}

// handleRef is the per-clone share of the slot. It is kept apart from
// Handle so that the GC cleanup of a Handle may refer to it.
type handleRef[T any] struct {
	slot     *slot[T]
	released atomic.Bool
}

func (ref *handleRef[T]) release() bool {
	if !ref.released.CompareAndSwap(false, true) {
		return false
	}
	ref.slot.release()
	return true
}

func releaseCollected[T any](ref *handleRef[T]) {
	if !ref.release() {
		return
	}
	if isTraceEnabled(ref.slot.ctx) {
		logger.Tracef(ref.slot.ctx, "a handle was garbage collected without Release")
	}
}

func newHandle[T any](s *slot[T]) *Handle[T] {
	h := &Handle[T]{
		slot: s,
		ref:  &handleRef[T]{slot: s},
	}
	if s.releaseOnGC {
		h.cleanup = runtime.AddCleanup(h, releaseCollected[T], h.ref)
		h.hasCleanup = true
	}
	return h
}

func newReleasedHandle[T any](s *slot[T]) *Handle[T] {
	h := &Handle[T]{
		slot: s,
		ref:  &handleRef[T]{slot: s},
	}
	h.ref.released.Store(true)
	return h
}

// Clone returns another handle sharing the same stop request.
//
// Cloning a released handle returns a released handle.
func (h *Handle[T]) Clone() *Handle[T] {
	defer runtime.KeepAlive(h)
	if h.ref.released.Load() || !h.slot.acquire() {
		if isTraceEnabled(h.slot.ctx) {
			logger.Tracef(h.slot.ctx, "cloning a released handle")
		}
		return newReleasedHandle(h.slot)
	}
	if isTraceEnabled(h.slot.ctx) {
		logger.Tracef(h.slot.ctx, "cloned a handle")
	}
	return newHandle(h.slot)
}

// Stop requests the stop with the given reason.
//
// Only the first call across all the clones is delivered; the rest are
// silently ignored. It never blocks. Calling it on a released handle
// does nothing.
func (h *Handle[T]) Stop(reason T) {
	defer runtime.KeepAlive(h)
	ctx := h.slot.ctx
	if h.ref.released.Load() {
		if isTraceEnabled(ctx) {
			logger.Tracef(ctx, "Stop on a released handle is ignored")
		}
		return
	}
	ok := h.slot.deposit(reason)
	if isTraceEnabled(ctx) {
		if ok {
			logger.Tracef(ctx, "stop requested with reason %v", reason)
		} else {
			logger.Tracef(ctx, "stop was already requested, ignoring reason %v", reason)
		}
	}
}

// Release gives up this clone. It is the explicit counterpart of the
// clone going out of scope; calling it again does nothing.
func (h *Handle[T]) Release() {
	if h.hasCleanup {
		h.cleanup.Stop()
	}
	if !h.ref.release() {
		return
	}
	if isTraceEnabled(h.slot.ctx) {
		logger.Tracef(h.slot.ctx, "released a handle")
	}
}

// IsReleased reports if Release was called on this clone.
func (h *Handle[T]) IsReleased() bool {
	return h.ref.released.Load()
}

func (h *Handle[T]) String() string {
	return "StopHandle"
}
