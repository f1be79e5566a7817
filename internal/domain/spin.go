package domain

import (
	"time"

	"github.com/google/uuid"
)

// SpinRecord is one entry of the wheel-spin history for a user.
//
// The history is append-only: no update or delete surface exists anywhere in
// the module. Rows are stored and read as-is, so the struct carries db tags
// directly.
type SpinRecord struct {
	ID              uuid.UUID `db:"id"`
	UserID          uuid.UUID `db:"user_id"`
	DestinationName string    `db:"destination_name"`
	Category        *string   `db:"category"`
	SpunAt          time.Time `db:"spun_at"`
}
