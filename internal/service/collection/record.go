package collection

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/openroam/wanderspin-backend/internal/domain"
	"github.com/openroam/wanderspin-backend/pkg/ctxutil"
)

// RecordSpin appends a spin outcome to the user's history. Spins happen in
// the background of the browsing flow, so this path stays quiet: without a
// signed-in user it is a no-op, and a store failure is logged but never
// pushed to the notifier.
func (s *Service) RecordSpin(ctx context.Context, destinationName string, category *string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil
	}

	name := strings.TrimSpace(destinationName)
	if name == "" {
		return domain.NewValidationError("destination_name", "required")
	}

	rec := domain.SpinRecord{
		ID:              uuid.New(),
		UserID:          userID,
		DestinationName: name,
		Category:        trimOrNil(category),
		SpunAt:          time.Now().UTC(),
	}

	if _, err := s.spins.Insert(ctx, &rec); err != nil {
		s.log.WarnContext(ctx, "failed to record spin",
			slog.String("user_id", userID.String()),
			slog.String("destination_name", name),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("record spin: %w", err)
	}

	// History comes back from the store rather than being appended locally.
	_ = s.loadHistory(ctx)

	return nil
}
