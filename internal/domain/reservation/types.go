package reservation

import "school-booking/internal/domain/schedule"

// Status vocabulary is shared with the scheduling engine so that a persisted
// reservation and its engine snapshot can never disagree on occupancy.
type Status = schedule.Status

const (
	StatusPending   = schedule.StatusPending
	StatusConfirmed = schedule.StatusConfirmed
	StatusCancelled = schedule.StatusCancelled
)

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}
