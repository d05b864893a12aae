package commands

import (
	"context"
	"time"

	"school-booking/internal/domain/reservation"
	"school-booking/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type ResourceSnapshot struct {
	ID        uuid.UUID
	Name      string
	Subject   string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ReservationSnapshot struct {
	ID          uuid.UUID
	ResourceID  uuid.UUID
	UserID      uuid.UUID
	StartsAt    time.Time
	DurationMin int
	Status      string
	Note        *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status string, updatedAt time.Time) error
}

type ResourceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ResourceSnapshot, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
