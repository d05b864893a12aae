package queries

import (
	"context"
	"sort"
	"time"

	"school-booking/internal/domain/schedule"
	"school-booking/internal/infra"
	"school-booking/internal/pkg/clock"
	"school-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// SettingsReadStore supplies the typed scheduling configuration; defaults
// are returned when nothing has been stored yet.
type SettingsReadStore interface {
	OperatingHours(ctx context.Context) (schedule.WeekSchedule, error)
	Policy(ctx context.Context) (schedule.Policy, error)
}

// BookingReadStore supplies the engine's snapshot: every non-cancelled
// reservation starting on the given day, optionally scoped to one resource.
type BookingReadStore interface {
	FindDayBookings(ctx context.Context, day time.Time, resourceID *uuid.UUID) ([]schedule.Booking, error)
}

type ResourceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	List(ctx context.Context) ([]*ResourceView, error)
}

type AvailabilityQueries interface {
	DaySchedule(ctx context.Context, date string, resourceID *uuid.UUID) (*DayAvailabilityView, error)
}

type availabilityQueriesImpl struct {
	settings  SettingsReadStore
	bookings  BookingReadStore
	resources ResourceReadStore
	clock     clock.Clock
	location  *time.Location
}

func NewAvailabilityQueries(
	settings SettingsReadStore,
	bookings BookingReadStore,
	resources ResourceReadStore,
	clock clock.Clock,
	location *time.Location,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		settings:  settings,
		bookings:  bookings,
		resources: resources,
		clock:     clock,
		location:  location,
	}
}

// DaySchedule recomputes the slot grid on every call; availability is a live
// view and is never cached across requests.
func (q *availabilityQueriesImpl) DaySchedule(ctx context.Context, date string, resourceID *uuid.UUID) (*DayAvailabilityView, error) {
	day, err := time.ParseInLocation("2006-01-02", date, q.location)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDate)
	}

	if resourceID != nil {
		if _, err := q.resources.FindByID(ctx, *resourceID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.ErrResourceNotFound
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	week, err := q.settings.OperatingHours(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	policy, err := q.settings.Policy(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	snapshot, err := q.bookings.FindDayBookings(ctx, day, resourceID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	bookedSet := schedule.BookedSlots(day, schedule.GranularityMinutes, snapshot)
	booked := make([]string, 0, len(bookedSet))
	for label := range bookedSet {
		booked = append(booked, label)
	}
	sort.Strings(booked)

	return &DayAvailabilityView{
		Date:           date,
		ResourceID:     resourceID,
		OpenSlots:      schedule.OpenSlots(day, week, schedule.GranularityMinutes),
		BookedSlots:    booked,
		AvailableSlots: schedule.AvailableSlots(day, week, policy, snapshot, q.clock.Now()),
	}, nil
}
