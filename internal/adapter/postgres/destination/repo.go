// Package destination implements the saved-destination repository using
// PostgreSQL. All queries are scoped by the owning user's id.
package destination

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/openroam/wanderspin-backend/internal/adapter/postgres"
	"github.com/openroam/wanderspin-backend/internal/domain"
)

const table = "saved_destinations"

var columns = []string{
	"id", "user_id", "name", "country", "city", "latitude", "longitude",
	"tagline", "budget_estimate", "best_season", "entry_requirements",
	"activities", "saved_at",
}

// row mirrors the saved_destinations table. Column names differ from the
// domain field names, so mapping is an explicit field-by-field projection.
type row struct {
	ID                uuid.UUID `db:"id"`
	UserID            uuid.UUID `db:"user_id"`
	Name              string    `db:"name"`
	Country           string    `db:"country"`
	City              string    `db:"city"`
	Latitude          float64   `db:"latitude"`
	Longitude         float64   `db:"longitude"`
	Tagline           *string   `db:"tagline"`
	BudgetEstimate    *string   `db:"budget_estimate"`
	BestSeason        *string   `db:"best_season"`
	EntryRequirements *string   `db:"entry_requirements"`
	Activities        []string  `db:"activities"`
	SavedAt           time.Time `db:"saved_at"`
}

// Repo provides saved-destination persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new saved-destination repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// ListByUser returns all destinations saved by the user, ordered by
// saved_at DESC. Returns an empty slice when the list is empty.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Destination, error) {
	sql, args, err := builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("saved_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list saved_destinations: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "destinations for user", userID)
	}

	items := make([]domain.Destination, len(rows))
	for i, rw := range rows {
		items[i] = rw.toDomain()
	}

	return items, nil
}

// Count returns the number of destinations saved by the user.
func (r *Repo) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	sql, args, err := builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count saved_destinations: %w", err)
	}

	var count int
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count saved_destinations: %w", err)
	}

	return count, nil
}

// Insert stores a new saved destination and returns the persisted record,
// including any store-side defaults.
func (r *Repo) Insert(ctx context.Context, d *domain.Destination) (*domain.Destination, error) {
	sql, args, err := builder().
		Insert(table).
		Columns(columns...).
		Values(
			d.ID, d.UserID, d.Name, d.Country, d.City, d.Latitude, d.Longitude,
			d.Tagline, d.BudgetEstimate, d.BestSeason, d.EntryRequirements,
			d.Activities, d.SavedAt,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert saved_destination: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, r.q, &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "destination", d.ID)
	}

	result := rw.toDomain()
	return &result, nil
}

// Delete removes a saved destination matching both the record id and the
// owner's user id. Ownership is enforced in the predicate, not trusted from
// the caller. Returns domain.ErrNotFound when no row matched.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	sql, args, err := builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete saved_destination: %w", err)
	}

	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "destination", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("destination %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (rw row) toDomain() domain.Destination {
	return domain.Destination{
		ID:                rw.ID,
		UserID:            rw.UserID,
		Name:              rw.Name,
		Country:           rw.Country,
		City:              rw.City,
		Latitude:          rw.Latitude,
		Longitude:         rw.Longitude,
		Tagline:           rw.Tagline,
		BudgetEstimate:    rw.BudgetEstimate,
		BestSeason:        rw.BestSeason,
		EntryRequirements: rw.EntryRequirements,
		Activities:        rw.Activities,
		SavedAt:           rw.SavedAt,
	}
}
