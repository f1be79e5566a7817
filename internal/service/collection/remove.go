package collection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/openroam/wanderspin-backend/internal/adapter/notify"
	"github.com/openroam/wanderspin-backend/internal/domain"
	"github.com/openroam/wanderspin-backend/pkg/ctxutil"
)

// RemoveSaved deletes a previously saved destination by id.
//
// The delete predicate matches both the record id and the owner id, so a
// caller can never remove another user's record; a foreign or unknown id
// affects zero rows and comes back as domain.ErrNotFound. On success it
// notifies and reloads the saved snapshot; on failure it surfaces the
// store's message and leaves the snapshot untouched.
func (s *Service) RemoveSaved(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.destinations.Delete(ctx, userID, id); err != nil {
		s.notifier.Notify(ctx, notify.Notice{
			Title:       "Could not remove destination",
			Description: err.Error(),
			Severity:    notify.SeverityError,
		})
		return fmt.Errorf("remove saved destination: %w", err)
	}

	s.notifier.Notify(ctx, notify.Notice{
		Title:       "Destination removed",
		Description: "The destination was removed from your list.",
		Severity:    notify.SeveritySuccess,
	})

	// Reload failure keeps the stale snapshot; logged inside loadSaved.
	_ = s.loadSaved(ctx)

	s.log.InfoContext(ctx, "destination removed",
		slog.String("user_id", userID.String()),
		slog.String("destination_id", id.String()),
	)

	return nil
}
