//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"school-booking/internal/domain/reservation"
	"school-booking/internal/domain/resource"
	"school-booking/internal/domain/schedule"
	"school-booking/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jst = time.FixedZone("JST", 9*60*60)

func fixedFactory(t *testing.T, now time.Time) *reservation.Factory {
	t.Helper()
	return reservation.NewFactory(clock.NewMockClock(now))
}

func bookableTeacher(t *testing.T) *resource.Resource {
	t.Helper()
	res, err := resource.NewResource(uuid.New(), "Tanaka", "math", true)
	require.NoError(t, err)
	return res
}

func TestFactoryCreateReservation(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, jst)
	candidate := schedule.Candidate{
		ResourceID:  uuid.New(),
		StartsAt:    time.Date(2026, 9, 7, 10, 0, 0, 0, jst),
		DurationMin: 60,
	}
	note, err := reservation.NewNote("first lesson")
	require.NoError(t, err)

	t.Run("requires approval by default", func(t *testing.T) {
		r, err := fixedFactory(t, now).CreateReservation(bookableTeacher(t), uuid.New(), candidate, schedule.DefaultPolicy(), note)
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusPending, r.Status())
		assert.Equal(t, now, r.CreatedAt())
		assert.Equal(t, candidate.StartsAt, r.StartsAt())
		assert.Equal(t, "first lesson", r.Note().String())
	})

	t.Run("auto-confirm skips pending", func(t *testing.T) {
		policy := schedule.DefaultPolicy()
		policy.AutoConfirm = true

		r, err := fixedFactory(t, now).CreateReservation(bookableTeacher(t), uuid.New(), candidate, policy, note)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
	})

	t.Run("no approval requirement confirms immediately", func(t *testing.T) {
		policy := schedule.DefaultPolicy()
		policy.RequireApproval = false

		r, err := fixedFactory(t, now).CreateReservation(bookableTeacher(t), uuid.New(), candidate, policy, note)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
	})

	t.Run("inactive resource is rejected", func(t *testing.T) {
		inactive, err := resource.NewResource(uuid.New(), "Suzuki", "english", false)
		require.NoError(t, err)

		_, err = fixedFactory(t, now).CreateReservation(inactive, uuid.New(), candidate, schedule.DefaultPolicy(), note)
		assert.ErrorIs(t, err, resource.ErrResourceInactive)
	})
}

func TestReservationLifecycle(t *testing.T) {
	startsAt := time.Date(2026, 9, 7, 10, 0, 0, 0, jst)
	owner := uuid.New()

	build := func(t *testing.T, status reservation.Status) *reservation.Reservation {
		t.Helper()
		r, err := reservation.ReconstructReservation(
			uuid.New(), uuid.New(), owner,
			startsAt, 60, status, reservation.Note{},
			startsAt.AddDate(0, 0, -10), startsAt.AddDate(0, 0, -10),
		)
		require.NoError(t, err)
		return r
	}

	t.Run("confirm from pending", func(t *testing.T) {
		r := build(t, reservation.StatusPending)
		require.NoError(t, r.Confirm())
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
	})

	t.Run("confirm rejects non-pending", func(t *testing.T) {
		r := build(t, reservation.StatusConfirmed)
		assert.ErrorIs(t, r.Confirm(), reservation.ErrNotPending)

		r = build(t, reservation.StatusCancelled)
		assert.ErrorIs(t, r.Confirm(), reservation.ErrNotPending)
	})

	t.Run("cancel before the deadline", func(t *testing.T) {
		r := build(t, reservation.StatusConfirmed)
		now := startsAt.Add(-25 * time.Hour)
		require.NoError(t, r.Cancel(now, 24, false))
		assert.Equal(t, reservation.StatusCancelled, r.Status())
	})

	t.Run("cancel past the deadline is rejected", func(t *testing.T) {
		r := build(t, reservation.StatusConfirmed)
		now := startsAt.Add(-23 * time.Hour)
		assert.ErrorIs(t, r.Cancel(now, 24, false), reservation.ErrCancellationDeadline)
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
	})

	t.Run("staff can force-cancel past the deadline", func(t *testing.T) {
		r := build(t, reservation.StatusConfirmed)
		now := startsAt.Add(-1 * time.Hour)
		require.NoError(t, r.Cancel(now, 24, true))
		assert.Equal(t, reservation.StatusCancelled, r.Status())
	})

	t.Run("cancel twice is rejected", func(t *testing.T) {
		r := build(t, reservation.StatusCancelled)
		assert.ErrorIs(t, r.Cancel(startsAt.Add(-48*time.Hour), 24, false), reservation.ErrAlreadyCancelled)
	})

	t.Run("ownership", func(t *testing.T) {
		r := build(t, reservation.StatusPending)
		assert.True(t, r.IsOwnedBy(owner))
		assert.False(t, r.IsOwnedBy(uuid.New()))
	})

	t.Run("invalid status is rejected on reconstruction", func(t *testing.T) {
		_, err := reservation.ReconstructReservation(
			uuid.New(), uuid.New(), owner,
			startsAt, 60, reservation.Status("teleported"), reservation.Note{},
			startsAt, startsAt,
		)
		assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})
}

func TestSnapshot(t *testing.T) {
	startsAt := time.Date(2026, 9, 7, 10, 0, 0, 0, jst)
	r, err := reservation.ReconstructReservation(
		uuid.New(), uuid.New(), uuid.New(),
		startsAt, 45, reservation.StatusConfirmed, reservation.Note{},
		startsAt, startsAt,
	)
	require.NoError(t, err)

	snap := r.Snapshot()
	assert.Equal(t, r.ID(), snap.ID)
	assert.Equal(t, r.ResourceID(), snap.ResourceID)
	assert.Equal(t, startsAt, snap.StartsAt)
	assert.Equal(t, 45, snap.DurationMin)
	assert.True(t, snap.Occupies())
}
