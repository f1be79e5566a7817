// Package spinlog implements the wheel-spin history repository using
// PostgreSQL. The history is append-only: the repository exposes no update
// or delete operation.
package spinlog

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/openroam/wanderspin-backend/internal/adapter/postgres"
	"github.com/openroam/wanderspin-backend/internal/domain"
)

const table = "spin_history"

var columns = []string{"id", "user_id", "destination_name", "category", "spun_at"}

// Repo provides spin-history persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new spin-history repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// ListByUser returns the user's spin history, ordered by spun_at DESC.
// Records scan straight into the domain shape; no projection step.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SpinRecord, error) {
	sql, args, err := builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("spun_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list spin_history: %w", err)
	}

	records := []domain.SpinRecord{}
	if err := pgxscan.Select(ctx, r.q, &records, sql, args...); err != nil {
		return nil, postgres.MapError(err, "spin history for user", userID)
	}

	return records, nil
}

// Insert appends one spin record and returns the persisted row.
func (r *Repo) Insert(ctx context.Context, rec *domain.SpinRecord) (*domain.SpinRecord, error) {
	sql, args, err := builder().
		Insert(table).
		Columns(columns...).
		Values(rec.ID, rec.UserID, rec.DestinationName, rec.Category, rec.SpunAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert spin_record: %w", err)
	}

	var out domain.SpinRecord
	if err := pgxscan.Get(ctx, r.q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "spin_record", rec.ID)
	}

	return &out, nil
}
