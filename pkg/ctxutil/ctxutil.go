// Package ctxutil carries the authenticated owner identity through
// context.Context. Absence of the value is the unauthenticated state; there
// is no ambient global to consult.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const userIDKey ctxKey = "user_id"

// WithUserID stores the owner's user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the owner's user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
