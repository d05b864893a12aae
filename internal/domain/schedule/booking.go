package schedule

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// DefaultDurationMin is assumed for bookings recorded without a duration.
const DefaultDurationMin = 60

// Booking is the engine's read-only view of one reservation. The list handed
// to the engine is a snapshot for a single day; lifecycle is owned elsewhere.
type Booking struct {
	ID          uuid.UUID
	ResourceID  uuid.UUID
	StartsAt    time.Time
	DurationMin int
	Status      Status
}

// Occupies reports whether the booking blocks time on the grid. Cancelled
// bookings never occupy; a booking without a start time is ignored entirely.
func (b Booking) Occupies() bool {
	return b.Status != StatusCancelled && !b.StartsAt.IsZero()
}

func (b Booking) durationMin() int {
	if b.DurationMin <= 0 {
		return DefaultDurationMin
	}
	return b.DurationMin
}

// Interval returns the occupied half-open interval [start, end). Seconds and
// finer are discarded from the start instant.
func (b Booking) Interval() (time.Time, time.Time) {
	start := b.StartsAt.Truncate(time.Minute)
	return start, start.Add(time.Duration(b.durationMin()) * time.Minute)
}
