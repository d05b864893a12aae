package readstore

import (
	"context"
	"time"

	"school-booking/internal/domain/schedule"
	"school-booking/internal/infra"
	"school-booking/internal/infra/db"
	"school-booking/internal/pkg/pgconv"
	"school-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findReservationViewByIDSQL = `
SELECT r.id, r.resource_id, res.name AS resource_name, r.user_id,
       r.starts_at, r.duration_min, r.status, r.note, r.created_at, r.updated_at
FROM reservations r
JOIN resources res ON res.id = r.resource_id
WHERE r.id = $1`

const listReservationsByUserSQL = `
SELECT r.id, r.resource_id, res.name AS resource_name,
       r.starts_at, r.duration_min, r.status, r.created_at
FROM reservations r
JOIN resources res ON res.id = r.resource_id
WHERE r.user_id = $1
ORDER BY r.starts_at DESC, r.id DESC`

const findDayBookingsSQL = `
SELECT id, resource_id, starts_at, duration_min, status
FROM reservations
WHERE status <> 'cancelled'
  AND starts_at >= $1 AND starts_at < $2
  AND ($3::uuid IS NULL OR resource_id = $3)
ORDER BY starts_at`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var (
		view      queries.ReservationView
		note      pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, findReservationViewByIDSQL, id).Scan(
		&view.ID,
		&view.ResourceID,
		&view.ResourceName,
		&view.UserID,
		&view.StartsAt,
		&view.DurationMin,
		&view.Status,
		&note,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	view.Note = pgconv.StringPtrFromPgtype(note)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

func (r *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, listReservationsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}
	defer rows.Close()

	var result []*queries.ReservationListItem
	for rows.Next() {
		var (
			item      queries.ReservationListItem
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID,
			&item.ResourceID,
			&item.ResourceName,
			&item.StartsAt,
			&item.DurationMin,
			&item.Status,
			&createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}

	return result, nil
}

// FindDayBookings returns the engine snapshot for one calendar day: every
// reservation that is not cancelled and starts within [day, day+24h).
func (r *ReservationReadStore) FindDayBookings(ctx context.Context, day time.Time, resourceID *uuid.UUID) ([]schedule.Booking, error) {
	dayEnd := day.AddDate(0, 0, 1)

	rows, err := r.db.Query(ctx, findDayBookingsSQL, day, dayEnd, resourceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find day bookings", err)
	}
	defer rows.Close()

	var bookings []schedule.Booking
	for rows.Next() {
		var b schedule.Booking
		if err := rows.Scan(&b.ID, &b.ResourceID, &b.StartsAt, &b.DurationMin, &b.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}

	return bookings, nil
}
