package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openroam/wanderspin-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedDestination inserts one saved destination for the given user.
// Returns the filled domain.Destination.
func SeedDestination(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Destination {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	d := domain.Destination{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       "Destination " + suffix,
		Country:    "Japan",
		City:       "Kyoto",
		Latitude:   35.0116,
		Longitude:  135.7681,
		Activities: []string{"temples", "food"},
		SavedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO saved_destinations
		 (id, user_id, name, country, city, latitude, longitude, activities, saved_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		d.ID, d.UserID, d.Name, d.Country, d.City, d.Latitude, d.Longitude, d.Activities, d.SavedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: failed to seed destination: %v", err)
	}

	return d
}

// SeedSpin inserts one spin record for the given user.
// Returns the filled domain.SpinRecord.
func SeedSpin(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.SpinRecord {
	t.Helper()
	ctx := context.Background()

	rec := domain.SpinRecord{
		ID:              uuid.New(),
		UserID:          userID,
		DestinationName: "Destination " + uniqueSuffix(),
		SpunAt:          time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO spin_history (id, user_id, destination_name, category, spun_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		rec.ID, rec.UserID, rec.DestinationName, rec.Category, rec.SpunAt,
	)
	if err != nil {
		t.Fatalf("testhelper: failed to seed spin record: %v", err)
	}

	return rec
}
