package stophandle

import (
	"context"
	"reflect"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/xcontext"
)

// LoggingEnabled enables trace logging through the logger found in the
// context passed to New and Wait.Wait.
var LoggingEnabled = false

func isTraceEnabled(ctx context.Context) bool {
	if !LoggingEnabled {
		return false
	}
	return logger.FromCtx(ctx).Level() >= logger.LevelTrace
}

// detachedCtx keeps the logger and fields of ctx but never gets done, so
// it is safe to store for the whole lifetime of a pair.
func detachedCtx[T any](ctx context.Context) context.Context {
	ctx = xcontext.DetachDone(ctx)
	if isTraceEnabled(ctx) {
		ctx = belt.WithField(ctx, "reason_type", reasonTypeName[T]())
	}
	return ctx
}

func reasonTypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
