package utils

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ContextKey string

const (
	UserCtxKey     ContextKey = "user_id"
	RequestBodyKey ContextKey = "request_body"
	RequestIDKey   ContextKey = "request_id"
	TimeKey        ContextKey = "time"
	PathKey        ContextKey = "path"
	MethodKey      ContextKey = "method"
)

// ContextKeys lists every key the request middleware may populate.
var ContextKeys = map[ContextKey]struct{}{
	UserCtxKey:     {},
	RequestBodyKey: {},
	RequestIDKey:   {},
	TimeKey:        {},
	PathKey:        {},
	MethodKey:      {},
}

func GetContextValue(ctx context.Context, key ContextKey) (any, bool) {
	val := ctx.Value(key)
	return val, val != nil
}

func SetUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, UserCtxKey, id)
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(UserCtxKey).(uuid.UUID)
	return id, ok
}

func SetRequestBody(ctx context.Context, body any) context.Context {
	return context.WithValue(ctx, RequestBodyKey, body)
}

func GetRequestBody(ctx context.Context) any {
	return ctx.Value(RequestBodyKey)
}

func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	return requestID, ok
}

func GetPath(ctx context.Context) (string, bool) {
	path, ok := ctx.Value(PathKey).(string)
	return path, ok
}

func GetMethod(ctx context.Context) (string, bool) {
	method, ok := ctx.Value(MethodKey).(string)
	return method, ok
}

func ElapsedTime(ctx context.Context) (time.Duration, bool) {
	start, ok := ctx.Value(TimeKey).(time.Time)
	if !ok {
		return 0, false
	}
	return time.Since(start), true
}
