package reservation

import (
	"school-booking/internal/domain/resource"
	"school-booking/internal/domain/schedule"
	"school-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

// Factory creates new reservations with the configured policy applied:
// auto-confirm skips the pending state, otherwise the reservation waits for
// staff approval. Slot validation against operating hours and existing
// bookings is the engine's job and happens before the factory is called.
type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

func (f *Factory) CreateReservation(
	res *resource.Resource,
	userID uuid.UUID,
	candidate schedule.Candidate,
	policy schedule.Policy,
	note Note,
) (*Reservation, error) {
	if err := res.EnsureBookable(); err != nil {
		return nil, err
	}

	status := StatusPending
	if policy.AutoConfirm || !policy.RequireApproval {
		status = StatusConfirmed
	}

	now := f.Clock.Now()
	return &Reservation{
		id:          uuid.New(),
		resourceID:  res.ID(),
		userID:      userID,
		startsAt:    candidate.StartsAt,
		durationMin: candidate.DurationMin,
		status:      status,
		note:        note,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}
