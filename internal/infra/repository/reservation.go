package repository

import (
	"context"
	"errors"
	"time"

	"school-booking/internal/domain/reservation"
	"school-booking/internal/infra"
	"school-booking/internal/infra/db"
	"school-booking/internal/pkg/pgconv"
	"school-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const createReservationSQL = `
INSERT INTO reservations (id, resource_id, user_id, starts_at, duration_min, status, note, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

const findReservationByIDSQL = `
SELECT id, resource_id, user_id, starts_at, duration_min, status, note, created_at, updated_at
FROM reservations
WHERE id = $1`

const updateReservationStatusSQL = `
UPDATE reservations
SET status = $2, updated_at = $3
WHERE id = $1`

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Create relies on the exclusion constraint over the occupied time range to
// serialize racing bookings; a constraint violation surfaces as KindConflict.
func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	note := res.Note().String()
	var notePtr *string
	if note != "" {
		notePtr = &note
	}

	var resultID uuid.UUID
	err := tx.QueryRow(ctx, createReservationSQL,
		res.ID(),
		res.ResourceID(),
		res.UserID(),
		res.StartsAt(),
		res.DurationMin(),
		res.Status().String(),
		pgconv.TextToPgtype(notePtr),
		res.CreatedAt(),
		res.UpdatedAt(),
	).Scan(&resultID)
	if err != nil {
		if isExclusionViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("reservation slot already taken", err, infra.KindConflict)
		}
		if isForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("reservation references missing row", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return resultID, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.ReservationSnapshot, error) {
	var (
		snapshot  commands.ReservationSnapshot
		note      pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, findReservationByIDSQL, id).Scan(
		&snapshot.ID,
		&snapshot.ResourceID,
		&snapshot.UserID,
		&snapshot.StartsAt,
		&snapshot.DurationMin,
		&snapshot.Status,
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

	snapshot.Note = pgconv.StringPtrFromPgtype(note)
	snapshot.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snapshot.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &snapshot, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status string, updatedAt time.Time) error {
	tag, err := tx.Exec(ctx, updateReservationStatusSQL, id, status, updatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// 23P01 is exclusion_violation; 23505 covers a plain unique index on the
// exact same slot.
func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23P01" || pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
