// Package collection keeps a per-user in-memory snapshot of saved
// destinations and wheel-spin history synchronized with the persistent store.
//
// The store is the sole source of truth: every successful mutation triggers a
// full reload of the affected snapshot instead of patching it in place, so
// the locally visible state always reflects what the store accepted,
// including store-side defaults. This is a deliberate policy choice
// (simplicity and correctness over latency), not an optimization target.
//
// Overlapping mutation+reload cycles are not serialized against each other;
// each snapshot replacement is atomic, but when two mutations race, the
// final snapshot reflects whichever reload resolved last. Single writer per
// user session is assumed.
package collection

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/openroam/wanderspin-backend/internal/adapter/notify"
	"github.com/openroam/wanderspin-backend/internal/domain"
)

// DefaultMaxSaved caps a user's saved list when no limit is configured.
const DefaultMaxSaved = 500

// DefaultLoadTimeout bounds a single snapshot load when no timeout is
// configured.
const DefaultLoadTimeout = 10 * time.Second

type destinationRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Destination, error)
	Count(ctx context.Context, userID uuid.UUID) (int, error)
	Insert(ctx context.Context, d *domain.Destination) (*domain.Destination, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type spinRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SpinRecord, error)
	Insert(ctx context.Context, rec *domain.SpinRecord) (*domain.SpinRecord, error)
}

type notifier interface {
	Notify(ctx context.Context, n notify.Notice)
}

// Service synchronizes the local snapshots with the store and surfaces
// success/failure feedback through the notifier.
type Service struct {
	destinations destinationRepo
	spins        spinRepo
	notifier     notifier
	log          *slog.Logger
	maxSaved     int
	loadTimeout  time.Duration

	mu      sync.Mutex
	saved   []domain.Destination
	history []domain.SpinRecord
	loading bool
}

// NewService creates a collection service. maxSaved <= 0 falls back to
// DefaultMaxSaved, loadTimeout <= 0 to DefaultLoadTimeout.
func NewService(
	log *slog.Logger,
	destinations destinationRepo,
	spins spinRepo,
	n notifier,
	maxSaved int,
	loadTimeout time.Duration,
) *Service {
	if maxSaved <= 0 {
		maxSaved = DefaultMaxSaved
	}
	if loadTimeout <= 0 {
		loadTimeout = DefaultLoadTimeout
	}
	return &Service{
		destinations: destinations,
		spins:        spins,
		notifier:     n,
		log:          log.With("service", "collection"),
		maxSaved:     maxSaved,
		loadTimeout:  loadTimeout,
	}
}

// Saved returns a copy of the saved-destinations snapshot, most recent
// first. Empty until the first successful load for the session's owner.
func (s *Service) Saved() []domain.Destination {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Destination, len(s.saved))
	copy(out, s.saved)
	return out
}

// History returns a copy of the spin-history snapshot, most recent first.
func (s *Service) History() []domain.SpinRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.SpinRecord, len(s.history))
	copy(out, s.history)
	return out
}

// Loading reports whether a saved-destinations load is in flight. Spin
// history loads do not toggle it.
func (s *Service) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// IsSaved reports whether a destination with the given name is present in
// the current snapshot. Purely local: it reflects the last completed load
// and can be stale relative to concurrent writes from another session.
// Names are not unique, so this is a best-effort heuristic.
func (s *Service) IsSaved(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.saved {
		if d.Name == name {
			return true
		}
	}
	return false
}

// Reset clears both snapshots and the loading flag. Called when the owner's
// session ends; the next sign-in repopulates via Refetch.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = nil
	s.history = nil
	s.loading = false
}

func (s *Service) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
