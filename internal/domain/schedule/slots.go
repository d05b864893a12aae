// Package schedule computes time-slot availability for a single calendar
// day. Every function is a pure computation over the values it is handed:
// the day, the configured operating hours and policy, a snapshot of the
// day's bookings, and the current instant. The engine owns no state and
// performs no I/O; the authoritative conflict guarantee lives in the store
// that persists accepted bookings.
package schedule

import (
	"time"

	"github.com/google/uuid"
)

// GranularityMinutes is the width of one slot on the grid.
const GranularityMinutes = 5

// SlotLabel formats a slot boundary as its zero-padded "HH:MM" label.
func SlotLabel(t time.Time) string {
	return t.Format("15:04")
}

// BookedSlots returns the set of slot labels occupied by the given bookings
// on the given day. Each occupying booking marks every boundary in
// [start, start+duration) stepping by granularityMin; the boundary at the
// interval end stays free. Overlapping bookings mark idempotently.
func BookedSlots(day time.Time, granularityMin int, bookings []Booking) map[string]struct{} {
	booked := make(map[string]struct{})
	dayStart := startOfDay(day)
	dayEnd := dayStart.AddDate(0, 0, 1)
	step := time.Duration(granularityMin) * time.Minute

	for _, b := range bookings {
		if !b.Occupies() {
			continue
		}
		start, end := b.Interval()
		start = start.In(day.Location())
		end = end.In(day.Location())
		for t := start; t.Before(end); t = t.Add(step) {
			if t.Before(dayStart) || !t.Before(dayEnd) {
				continue
			}
			booked[SlotLabel(t)] = struct{}{}
		}
	}
	return booked
}

// OpenSlots enumerates every slot boundary inside the day's operating
// window, from opening (inclusive) to closing (exclusive), in ascending
// order. A closed day yields nothing. The result is re-derivable: identical
// inputs always produce the identical sequence.
func OpenSlots(day time.Time, week WeekSchedule, granularityMin int) []string {
	boundaries := openBoundaries(day, week, granularityMin)
	labels := make([]string, 0, len(boundaries))
	for _, t := range boundaries {
		labels = append(labels, SlotLabel(t))
	}
	return labels
}

// AvailableSlots is OpenSlots minus BookedSlots, minus the buffer zone
// around each booked interval, minus slots outside the advance-booking
// window relative to now. It is a live view: the same call repeated later
// may legitimately return a different result.
//
// Buffer zones are resource-scoped by contract; callers querying for one
// resource must pass a snapshot already filtered to that resource.
func AvailableSlots(day time.Time, week WeekSchedule, policy Policy, bookings []Booking, now time.Time) []string {
	boundaries := openBoundaries(day, week, GranularityMinutes)
	if len(boundaries) == 0 {
		return nil
	}

	type interval struct{ start, end time.Time }
	blocked := make([]interval, 0, len(bookings))
	buffer := time.Duration(policy.BufferTimeMin) * time.Minute
	for _, b := range bookings {
		if !b.Occupies() {
			continue
		}
		start, end := b.Interval()
		blocked = append(blocked, interval{start: start.Add(-buffer), end: end.Add(buffer)})
	}

	earliest := now.Add(time.Duration(policy.MinAdvanceHours) * time.Hour)
	lastDay := startOfDay(now.In(day.Location())).AddDate(0, 0, policy.MaxAdvanceDays)

	available := make([]string, 0, len(boundaries))
slots:
	for _, t := range boundaries {
		if t.Before(earliest) {
			continue
		}
		if startOfDay(t).After(lastDay) {
			continue
		}
		for _, iv := range blocked {
			if !t.Before(iv.start) && t.Before(iv.end) {
				continue slots
			}
		}
		available = append(available, SlotLabel(t))
	}
	return available
}

// Candidate is a proposed new booking to validate.
type Candidate struct {
	ResourceID  uuid.UUID
	StartsAt    time.Time
	DurationMin int
}

// ValidateBooking checks a candidate against operating hours, the
// reservation policy, and the existing bookings for the candidate's
// resource. Checks run in a fixed order and the first failure wins:
// malformed input, closed day, outside hours, advance window, then
// conflicts (candidate expanded by the buffer on both sides). It only
// validates; persisting an accepted candidate, with an atomic
// conflict-checked write, is the store's responsibility.
func ValidateBooking(c Candidate, existing []Booking, week WeekSchedule, policy Policy, now time.Time) error {
	if c.StartsAt.IsZero() || c.DurationMin <= 0 {
		return ErrInvalidInput
	}

	day := week.ForDay(c.StartsAt)
	if !day.IsOpen {
		return &PolicyViolationError{Reason: ReasonClosedDay}
	}

	open, err := ParseClock(day.Start)
	if err != nil {
		return &PolicyViolationError{Reason: ReasonClosedDay}
	}
	closing, err := ParseClock(day.End)
	if err != nil {
		return &PolicyViolationError{Reason: ReasonClosedDay}
	}

	candStart := c.StartsAt.Truncate(time.Minute)
	candEnd := candStart.Add(time.Duration(c.DurationMin) * time.Minute)
	if candStart.Before(open.On(c.StartsAt)) || candEnd.After(closing.On(c.StartsAt)) {
		return &PolicyViolationError{Reason: ReasonOutsideHours}
	}

	earliest := now.Add(time.Duration(policy.MinAdvanceHours) * time.Hour)
	lastDay := startOfDay(now.In(c.StartsAt.Location())).AddDate(0, 0, policy.MaxAdvanceDays)
	if candStart.Before(earliest) || startOfDay(candStart).After(lastDay) {
		return &PolicyViolationError{Reason: ReasonAdvanceWindow}
	}

	buffer := time.Duration(policy.BufferTimeMin) * time.Minute
	guardStart := candStart.Add(-buffer)
	guardEnd := candEnd.Add(buffer)
	for _, b := range existing {
		if !b.Occupies() || b.ResourceID != c.ResourceID {
			continue
		}
		start, end := b.Interval()
		if guardStart.Before(end) && start.Before(guardEnd) {
			return &ConflictError{ReservationID: b.ID}
		}
	}
	return nil
}

func openBoundaries(day time.Time, week WeekSchedule, granularityMin int) []time.Time {
	entry := week.ForDay(day)
	if !entry.IsOpen {
		return nil
	}
	open, err := ParseClock(entry.Start)
	if err != nil {
		return nil
	}
	closing, err := ParseClock(entry.End)
	if err != nil {
		return nil
	}

	step := time.Duration(granularityMin) * time.Minute
	end := closing.On(day)
	boundaries := make([]time.Time, 0, 12*24)
	for t := open.On(day); t.Before(end); t = t.Add(step) {
		boundaries = append(boundaries, t)
	}
	return boundaries
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
