package services

import (
	"time"

	"github.com/tbensalah/gestion_chantier_app/internal/apperrors"
)

const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD request field into a day-granularity time.
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewAppError(400, "invalid date, expected YYYY-MM-DD", apperrors.ErrValidation)
	}
	return t, nil
}
