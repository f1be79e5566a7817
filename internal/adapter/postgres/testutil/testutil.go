// Package testutil provides helpers for repository tests backed by pgxmock.
package testutil

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/openroam/wanderspin-backend/internal/adapter/postgres"
)

// NewMockQuerier returns a postgres.Querier backed by a pgxmock pool, plus
// the mock itself for setting expectations. The pool is closed via t.Cleanup.
func NewMockQuerier(t *testing.T) (postgres.Querier, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("testutil: create pgxmock pool: %v", err)
	}
	t.Cleanup(mock.Close)

	return mock, mock
}

// ExpectationsWereMet fails the test if any mock expectation is unmet.
func ExpectationsWereMet(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet pgxmock expectations: %v", err)
	}
}
