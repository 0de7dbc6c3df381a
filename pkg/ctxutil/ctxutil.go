// Package ctxutil carries per-request identity through context: the
// authenticated student and the request id used to correlate logs.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	studentIDKey struct{}
	requestIDKey struct{}
)

// WithStudentID stores the authenticated student's id in the context.
func WithStudentID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, studentIDKey{}, id)
}

// StudentIDFromCtx extracts the student id from the context.
// Returns uuid.Nil and false if the value is missing or nil.
func StudentIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(studentIDKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
