package reservation

import (
	"errors"
	"time"

	"school-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled     = errors.New("reservation is already cancelled")
	ErrNotPending           = errors.New("only pending reservations can be confirmed")
	ErrCancellationDeadline = errors.New("cancellation deadline has passed")
	ErrInvalidStatus        = errors.New("invalid reservation status")
)

// Reservation is one booked lesson slot. The scheduling engine never mutates
// it; lifecycle transitions (pending -> confirmed | cancelled) live here.
type Reservation struct {
	id          uuid.UUID
	resourceID  uuid.UUID
	userID      uuid.UUID
	startsAt    time.Time
	durationMin int
	status      Status
	note        Note
	createdAt   time.Time
	updatedAt   time.Time
}

func ReconstructReservation(
	id, resourceID, userID uuid.UUID,
	startsAt time.Time,
	durationMin int,
	status Status,
	note Note,
	createdAt, updatedAt time.Time,
) (*Reservation, error) {
	if !IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return &Reservation{
		id:          id,
		resourceID:  resourceID,
		userID:      userID,
		startsAt:    startsAt,
		durationMin: durationMin,
		status:      status,
		note:        note,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// Confirm moves a pending reservation to confirmed (staff approval flow).
func (r *Reservation) Confirm() error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusConfirmed
	return nil
}

// Cancel rejects the transition once the policy deadline before the start
// time has passed. Staff may bypass the deadline with force.
func (r *Reservation) Cancel(now time.Time, deadlineHours int, force bool) error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	deadline := r.startsAt.Add(-time.Duration(deadlineHours) * time.Hour)
	if !force && now.After(deadline) {
		return ErrCancellationDeadline
	}
	r.status = StatusCancelled
	return nil
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

// Snapshot converts the reservation to the engine's read-only view.
func (r *Reservation) Snapshot() schedule.Booking {
	return schedule.Booking{
		ID:          r.id,
		ResourceID:  r.resourceID,
		StartsAt:    r.startsAt,
		DurationMin: r.durationMin,
		Status:      r.status,
	}
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) ResourceID() uuid.UUID { return r.resourceID }
func (r *Reservation) UserID() uuid.UUID     { return r.userID }
func (r *Reservation) StartsAt() time.Time   { return r.startsAt }
func (r *Reservation) DurationMin() int      { return r.durationMin }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) Note() Note            { return r.note }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }
