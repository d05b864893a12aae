//go:build unit

package schedule_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"school-booking/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jst = time.FixedZone("JST", 9*60*60)

// monday is 2026-09-07, a Monday.
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, jst)

func at(hour, minute int) time.Time {
	return time.Date(2026, 9, 7, hour, minute, 0, 0, jst)
}

func booking(resourceID uuid.UUID, start time.Time, durationMin int, status schedule.Status) schedule.Booking {
	return schedule.Booking{
		ID:          uuid.New(),
		ResourceID:  resourceID,
		StartsAt:    start,
		DurationMin: durationMin,
		Status:      status,
	}
}

// labelRange enumerates every 5-minute label from first to last inclusive.
func labelRange(first, last string) []string {
	start, err := schedule.ParseClock(first)
	if err != nil {
		panic(err)
	}
	end, err := schedule.ParseClock(last)
	if err != nil {
		panic(err)
	}
	var labels []string
	for t := start.On(monday); !t.After(end.On(monday)); t = t.Add(5 * time.Minute) {
		labels = append(labels, schedule.SlotLabel(t))
	}
	return labels
}

func TestBookedSlots(t *testing.T) {
	teacher := uuid.New()

	t.Run("marks every slot in [start, start+duration)", func(t *testing.T) {
		got := schedule.BookedSlots(monday, schedule.GranularityMinutes, []schedule.Booking{
			booking(teacher, at(10, 0), 60, schedule.StatusConfirmed),
		})

		require.Len(t, got, 12)
		for _, label := range labelRange("10:00", "10:55") {
			assert.Contains(t, got, label)
		}
		assert.NotContains(t, got, "09:55")
		assert.NotContains(t, got, "11:00")
	})

	t.Run("empty reservation list yields empty set", func(t *testing.T) {
		assert.Empty(t, schedule.BookedSlots(monday, schedule.GranularityMinutes, nil))
	})

	t.Run("cancelled bookings never occupy", func(t *testing.T) {
		got := schedule.BookedSlots(monday, schedule.GranularityMinutes, []schedule.Booking{
			booking(teacher, at(10, 0), 60, schedule.StatusCancelled),
		})
		assert.Empty(t, got)
	})

	t.Run("pending bookings occupy", func(t *testing.T) {
		got := schedule.BookedSlots(monday, schedule.GranularityMinutes, []schedule.Booking{
			booking(teacher, at(10, 0), 30, schedule.StatusPending),
		})
		assert.Len(t, got, 6)
	})

	t.Run("missing start is skipped silently", func(t *testing.T) {
		got := schedule.BookedSlots(monday, schedule.GranularityMinutes, []schedule.Booking{
			{ID: uuid.New(), ResourceID: teacher, DurationMin: 60, Status: schedule.StatusConfirmed},
		})
		assert.Empty(t, got)
	})

	t.Run("missing duration defaults to 60 minutes", func(t *testing.T) {
		got := schedule.BookedSlots(monday, schedule.GranularityMinutes, []schedule.Booking{
			booking(teacher, at(14, 0), 0, schedule.StatusConfirmed),
		})
		assert.Len(t, got, 12)
		assert.Contains(t, got, "14:55")
		assert.NotContains(t, got, "15:00")
	})

	t.Run("overlapping bookings mark idempotently", func(t *testing.T) {
		got := schedule.BookedSlots(monday, schedule.GranularityMinutes, []schedule.Booking{
			booking(teacher, at(10, 0), 60, schedule.StatusConfirmed),
			booking(uuid.New(), at(10, 30), 60, schedule.StatusConfirmed),
		})
		// 10:00 through 11:25, one entry per boundary
		assert.Len(t, got, 18)
	})

	t.Run("seconds are discarded", func(t *testing.T) {
		start := time.Date(2026, 9, 7, 10, 0, 42, 0, jst)
		got := schedule.BookedSlots(monday, schedule.GranularityMinutes, []schedule.Booking{
			booking(teacher, start, 10, schedule.StatusConfirmed),
		})
		assert.Contains(t, got, "10:00")
		assert.Contains(t, got, "10:05")
		assert.Len(t, got, 2)
	})
}

func TestOpenSlots(t *testing.T) {
	week := schedule.DefaultWeekSchedule()

	t.Run("closed day yields empty sequence", func(t *testing.T) {
		sunday := monday.AddDate(0, 0, -1)
		assert.Empty(t, schedule.OpenSlots(sunday, week, schedule.GranularityMinutes))
	})

	t.Run("enumerates opening inclusive to closing exclusive", func(t *testing.T) {
		got := schedule.OpenSlots(monday, week, schedule.GranularityMinutes)
		require.NotEmpty(t, got)
		assert.Equal(t, "09:00", got[0])
		assert.Equal(t, "17:55", got[len(got)-1])
		assert.Len(t, got, 108)
	})

	t.Run("deterministic and restartable", func(t *testing.T) {
		first := schedule.OpenSlots(monday, week, schedule.GranularityMinutes)
		second := schedule.OpenSlots(monday, week, schedule.GranularityMinutes)
		assert.Empty(t, cmp.Diff(first, second))
	})
}

func TestAvailableSlots(t *testing.T) {
	week := schedule.DefaultWeekSchedule()
	policy := schedule.DefaultPolicy()
	teacher := uuid.New()
	now := monday // midnight, well before opening plus the advance window

	t.Run("spec example: booked range plus buffer excluded", func(t *testing.T) {
		bookings := []schedule.Booking{booking(teacher, at(10, 0), 60, schedule.StatusConfirmed)}
		got := schedule.AvailableSlots(monday, week, policy, bookings, now)

		set := make(map[string]struct{}, len(got))
		for _, label := range got {
			set[label] = struct{}{}
		}
		for _, label := range labelRange("09:45", "11:10") {
			assert.NotContains(t, set, label, "buffered slot %s must be excluded", label)
		}
		for _, label := range labelRange("09:00", "09:40") {
			assert.Contains(t, set, label)
		}
		for _, label := range labelRange("11:15", "17:55") {
			assert.Contains(t, set, label)
		}
		assert.Len(t, got, 108-18)
	})

	t.Run("available and booked partition disjointly", func(t *testing.T) {
		bookings := []schedule.Booking{
			booking(teacher, at(9, 30), 45, schedule.StatusConfirmed),
			booking(teacher, at(13, 0), 90, schedule.StatusPending),
		}
		available := schedule.AvailableSlots(monday, week, policy, bookings, now)
		booked := schedule.BookedSlots(monday, schedule.GranularityMinutes, bookings)
		for _, label := range available {
			assert.NotContains(t, booked, label)
		}
	})

	t.Run("idempotent under a fixed now", func(t *testing.T) {
		bookings := []schedule.Booking{booking(teacher, at(10, 0), 60, schedule.StatusConfirmed)}
		first := schedule.AvailableSlots(monday, week, policy, bookings, now)
		second := schedule.AvailableSlots(monday, week, policy, bookings, now)
		assert.Empty(t, cmp.Diff(first, second))
	})

	t.Run("min advance hours trims the morning", func(t *testing.T) {
		lateNow := at(8, 0) // 2h window pushes the floor to 10:00
		got := schedule.AvailableSlots(monday, week, policy, nil, lateNow)
		require.NotEmpty(t, got)
		assert.Equal(t, "10:00", got[0])
	})

	t.Run("days beyond max advance are empty", func(t *testing.T) {
		farFuture := monday.AddDate(0, 0, policy.MaxAdvanceDays+7)
		got := schedule.AvailableSlots(farFuture, week, policy, nil, now)
		assert.Empty(t, got)
	})

	t.Run("closed day is empty regardless of bookings", func(t *testing.T) {
		sunday := monday.AddDate(0, 0, -1)
		assert.Empty(t, schedule.AvailableSlots(sunday, week, policy, nil, now))
	})
}

func TestValidateBooking(t *testing.T) {
	week := schedule.DefaultWeekSchedule()
	policy := schedule.DefaultPolicy()
	resourceA := uuid.New()
	resourceB := uuid.New()
	now := monday

	existingID := uuid.New()
	existing := []schedule.Booking{{
		ID:          existingID,
		ResourceID:  resourceA,
		StartsAt:    at(10, 0),
		DurationMin: 60,
		Status:      schedule.StatusConfirmed,
	}}

	candidate := func(resource uuid.UUID, start time.Time, durationMin int) schedule.Candidate {
		return schedule.Candidate{ResourceID: resource, StartsAt: start, DurationMin: durationMin}
	}

	t.Run("malformed input fails fast", func(t *testing.T) {
		err := schedule.ValidateBooking(candidate(resourceA, time.Time{}, 60), existing, week, policy, now)
		assert.ErrorIs(t, err, schedule.ErrInvalidInput)

		err = schedule.ValidateBooking(candidate(resourceA, at(11, 30), -30), existing, week, policy, now)
		assert.ErrorIs(t, err, schedule.ErrInvalidInput)
	})

	t.Run("policy violations in check order", func(t *testing.T) {
		cases := []struct {
			name   string
			cand   schedule.Candidate
			now    time.Time
			reason schedule.ViolationReason
		}{
			{
				name:   "closed day",
				cand:   candidate(resourceA, at(10, 0).AddDate(0, 0, -1), 60), // Sunday
				now:    now,
				reason: schedule.ReasonClosedDay,
			},
			{
				name:   "before opening",
				cand:   candidate(resourceA, at(8, 0), 60),
				now:    now,
				reason: schedule.ReasonOutsideHours,
			},
			{
				name:   "runs past closing",
				cand:   candidate(resourceA, at(17, 30), 60),
				now:    now,
				reason: schedule.ReasonOutsideHours,
			},
			{
				name:   "one hour of lead time is not enough",
				cand:   candidate(resourceA, at(15, 0), 60),
				now:    at(14, 0),
				reason: schedule.ReasonAdvanceWindow,
			},
			{
				name:   "beyond max advance days",
				cand:   candidate(resourceA, at(11, 0).AddDate(0, 0, policy.MaxAdvanceDays+1), 60),
				now:    now,
				reason: schedule.ReasonAdvanceWindow,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				err := schedule.ValidateBooking(tc.cand, existing, week, policy, tc.now)
				var violation *schedule.PolicyViolationError
				require.ErrorAs(t, err, &violation)
				assert.Equal(t, tc.reason, violation.Reason)
			})
		}
	})

	t.Run("three hours of lead time passes", func(t *testing.T) {
		err := schedule.ValidateBooking(candidate(resourceB, at(15, 0), 60), existing, week, policy, at(12, 0))
		assert.NoError(t, err)
	})

	t.Run("buffer conflict on the same resource", func(t *testing.T) {
		// existing 10:00-11:00 on A with 15min buffer: 10:55-11:10 collides
		err := schedule.ValidateBooking(candidate(resourceA, at(10, 55), 15), existing, week, policy, now)
		var conflict *schedule.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, existingID, conflict.ReservationID)
	})

	t.Run("same slot on another resource is accepted", func(t *testing.T) {
		err := schedule.ValidateBooking(candidate(resourceB, at(10, 55), 15), existing, week, policy, now)
		assert.NoError(t, err)
	})

	t.Run("first slot clear of the buffer is accepted", func(t *testing.T) {
		err := schedule.ValidateBooking(candidate(resourceA, at(11, 15), 45), existing, week, policy, now)
		assert.NoError(t, err)
	})

	t.Run("cancelled bookings do not conflict", func(t *testing.T) {
		cancelled := []schedule.Booking{{
			ID:          uuid.New(),
			ResourceID:  resourceA,
			StartsAt:    at(10, 0),
			DurationMin: 60,
			Status:      schedule.StatusCancelled,
		}}
		err := schedule.ValidateBooking(candidate(resourceA, at(10, 0), 60), cancelled, week, policy, now)
		assert.NoError(t, err)
	})
}

func TestWeekScheduleValidate(t *testing.T) {
	t.Run("default schedule is valid", func(t *testing.T) {
		assert.NoError(t, schedule.DefaultWeekSchedule().Validate())
	})

	cases := []struct {
		name   string
		mutate func(*schedule.WeekSchedule)
		errIs  error
	}{
		{
			name:   "duplicate weekday",
			mutate: func(w *schedule.WeekSchedule) { w[1].Weekday = time.Tuesday },
			errIs:  schedule.ErrDuplicateDay,
		},
		{
			name:   "bad clock string",
			mutate: func(w *schedule.WeekSchedule) { w[1].Start = "9am" },
			errIs:  schedule.ErrInvalidClock,
		},
		{
			name:   "inverted hours",
			mutate: func(w *schedule.WeekSchedule) { w[1].Start, w[1].End = "18:00", "09:00" },
			errIs:  schedule.ErrInvertedHours,
		},
		{
			name:   "closed day skips clock validation",
			mutate: func(w *schedule.WeekSchedule) { w[0].Start = "garbage" },
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			week := schedule.DefaultWeekSchedule()
			tc.mutate(&week)
			err := week.Validate()
			if tc.errIs == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tc.errIs), fmt.Sprintf("got %v", err))
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		wantErr bool
		want    string
	}{
		{in: "09:00", want: "09:00"},
		{in: "00:00", want: "00:00"},
		{in: "23:55", want: "23:55"},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "1:05", wantErr: true},
		{in: "", wantErr: true},
		{in: "noon", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%q", tc.in), func(t *testing.T) {
			got, err := schedule.ParseClock(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, schedule.ErrInvalidClock)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}
