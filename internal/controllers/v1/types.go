package v1

import (
	"time"

	ez_uuid "github.com/fintrack/backend/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// DateRangeQuery is the optional date range for the statistics
// endpoints, RFC3339 encoded.
type DateRangeQuery struct {
	StartDate time.Time `form:"startDate" example:"2024-01-01T00:00:00Z"` // Inclusive lower bound
	EndDate   time.Time `form:"endDate" example:"2024-12-31T23:59:59Z"`   // Inclusive upper bound
}

// bounds converts the zero values to nil so that absent bounds impose
// no constraint.
func (q DateRangeQuery) bounds() (startDate, endDate *time.Time) {
	if !q.StartDate.IsZero() {
		startDate = &q.StartDate
	}

	if !q.EndDate.IsZero() {
		endDate = &q.EndDate
	}

	return
}
