package collection

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/openroam/wanderspin-backend/pkg/ctxutil"
)

// loadSaved replaces the saved-destinations snapshot wholesale with the
// store's current contents for the owner. No-op without an owner id. A
// failed load keeps the previous snapshot intact: callers tolerate stale
// data over a hard failure.
func (s *Service) loadSaved(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil
	}

	s.setLoading(true)
	defer s.setLoading(false)

	ctx, cancel := context.WithTimeout(ctx, s.loadTimeout)
	defer cancel()

	items, err := s.destinations.ListByUser(ctx, userID)
	if err != nil {
		s.log.WarnContext(ctx, "load saved destinations failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("load saved destinations: %w", err)
	}

	s.mu.Lock()
	s.saved = items
	s.mu.Unlock()

	return nil
}

// loadHistory replaces the spin-history snapshot. Same contract as
// loadSaved, but it does not toggle the loading flag: the saved-items
// indicator is deliberately decoupled from history loads.
func (s *Service) loadHistory(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.loadTimeout)
	defer cancel()

	records, err := s.spins.ListByUser(ctx, userID)
	if err != nil {
		s.log.WarnContext(ctx, "load spin history failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("load spin history: %w", err)
	}

	s.mu.Lock()
	s.history = records
	s.mu.Unlock()

	return nil
}

// Refetch reloads both snapshots from the store unconditionally. Callers
// invoke it when the owner signs in and whenever a forced resynchronization
// is needed outside the mutation-triggered refresh path. The two loads run
// concurrently and fail independently; a failure on one side does not stop
// the other.
func (s *Service) Refetch(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return s.loadSaved(ctx) })
	g.Go(func() error { return s.loadHistory(ctx) })
	return g.Wait()
}
