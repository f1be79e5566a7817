package collection

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/openroam/wanderspin-backend/internal/adapter/notify"
	"github.com/openroam/wanderspin-backend/internal/domain"
	"github.com/openroam/wanderspin-backend/pkg/ctxutil"
)

// SaveDestination stores a destination in the owner's saved list.
//
// Without an owner id it notifies "sign in required" and returns
// domain.ErrUnauthorized without contacting the store. On success it
// notifies with the destination's name and reloads the saved snapshot from
// the store; the just-written record is never appended locally. On store
// failure the store's message is surfaced verbatim through the notifier and
// the snapshot is left untouched.
func (s *Service) SaveDestination(ctx context.Context, input SaveDestinationInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		s.notifier.Notify(ctx, notify.Notice{
			Title:       "Sign in required",
			Description: "Sign in to save destinations.",
			Severity:    notify.SeverityError,
		})
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	count, err := s.destinations.Count(ctx, userID)
	if err != nil {
		s.notifier.Notify(ctx, notify.Notice{
			Title:       "Could not save destination",
			Description: err.Error(),
			Severity:    notify.SeverityError,
		})
		return fmt.Errorf("count saved destinations: %w", err)
	}
	if count >= s.maxSaved {
		s.notifier.Notify(ctx, notify.Notice{
			Title:       "Could not save destination",
			Description: fmt.Sprintf("your saved list is full (max %d destinations)", s.maxSaved),
			Severity:    notify.SeverityError,
		})
		return domain.NewValidationError("saved", fmt.Sprintf("saved list is full (max %d destinations)", s.maxSaved))
	}

	dest := &domain.Destination{
		ID:                uuid.New(),
		UserID:            userID,
		Name:              strings.TrimSpace(input.Name),
		Country:           strings.TrimSpace(input.Country),
		City:              strings.TrimSpace(input.City),
		Latitude:          input.Latitude,
		Longitude:         input.Longitude,
		Tagline:           trimOrNil(input.Tagline),
		BudgetEstimate:    trimOrNil(input.BudgetEstimate),
		BestSeason:        trimOrNil(input.BestSeason),
		EntryRequirements: trimOrNil(input.EntryRequirements),
		Activities:        input.Activities,
		SavedAt:           time.Now().UTC(),
	}

	created, err := s.destinations.Insert(ctx, dest)
	if err != nil {
		s.notifier.Notify(ctx, notify.Notice{
			Title:       "Could not save destination",
			Description: err.Error(),
			Severity:    notify.SeverityError,
		})
		return fmt.Errorf("save destination: %w", err)
	}

	s.notifier.Notify(ctx, notify.Notice{
		Title:       "Destination saved",
		Description: fmt.Sprintf("%s is on your list.", created.Name),
		Severity:    notify.SeveritySuccess,
	})

	// Reload failure keeps the stale snapshot; logged inside loadSaved.
	_ = s.loadSaved(ctx)

	s.log.InfoContext(ctx, "destination saved",
		slog.String("user_id", userID.String()),
		slog.String("destination_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return nil
}
