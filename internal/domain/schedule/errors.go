package schedule

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidInput rejects malformed candidates before any policy evaluation.
var ErrInvalidInput = errors.New("invalid booking input")

type ViolationReason string

const (
	ReasonClosedDay     ViolationReason = "closed_day"
	ReasonOutsideHours  ViolationReason = "outside_hours"
	ReasonAdvanceWindow ViolationReason = "advance_window"
)

// PolicyViolationError marks a candidate that breaks a static rule. The
// caller recovers by picking a different slot; it is never retried as-is.
type PolicyViolationError struct {
	Reason ViolationReason
}

func (e *PolicyViolationError) Error() string {
	return fmt.Sprintf("policy violation: %s", e.Reason)
}

// ConflictError marks a candidate that collides with an existing booking,
// buffer zone included. The caller must re-query availability and retry.
type ConflictError struct {
	ReservationID uuid.UUID
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicts with reservation %s", e.ReservationID)
}
