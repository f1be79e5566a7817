package collection

import (
	"strings"

	"github.com/openroam/wanderspin-backend/internal/domain"
)

// SaveDestinationInput holds the parameters for saving a destination.
type SaveDestinationInput struct {
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
}

// Validate checks all fields and collects all errors.
func (i SaveDestinationInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	if len(strings.TrimSpace(i.Country)) > 100 {
		errs = append(errs, domain.FieldError{Field: "country", Message: "max 100 characters"})
	}
	if len(strings.TrimSpace(i.City)) > 100 {
		errs = append(errs, domain.FieldError{Field: "city", Message: "max 100 characters"})
	}

	if i.Latitude < -90 || i.Latitude > 90 {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "must be between -90 and 90"})
	}
	if i.Longitude < -180 || i.Longitude > 180 {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "must be between -180 and 180"})
	}

	if len(i.Activities) > 20 {
		errs = append(errs, domain.FieldError{Field: "activities", Message: "max 20 entries"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
