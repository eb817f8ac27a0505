package validation

import (
	"errors"
	"time"
)

var ErrInvalidMonth = errors.New("month must be in YYYY-MM format")

// ValidateMonth validates a YYYY-MM month string as used by targets and
// monthly evaluations.
func ValidateMonth(month string) error {
	if month == "" {
		return ErrInvalidMonth
	}

	_, err := time.Parse("2006-01", month)
	if err != nil {
		return ErrInvalidMonth
	}

	return nil
}
