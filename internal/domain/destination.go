package domain

import (
	"time"

	"github.com/google/uuid"
)

// Destination is a destination saved to a user's personal list.
//
// Uniqueness holds per (UserID, ID). Name carries no uniqueness guarantee;
// name-based membership checks are a best-effort heuristic, not an identity
// check.
type Destination struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Country   string
	City      string
	Latitude  float64
	Longitude float64

	Tagline           *string
	BudgetEstimate    *string
	BestSeason        *string
	EntryRequirements *string
	Activities        []string

	SavedAt time.Time
}
