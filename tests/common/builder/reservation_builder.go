//go:build unit || e2e

package builder

import (
	"time"

	reqdto "school-booking/internal/handler/dto/request"
	"school-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReservationBuilder produces consistent request DTOs and read views for
// handler tests. Defaults describe a valid one-hour booking three days out.
type ReservationBuilder struct {
	id          uuid.UUID
	resourceID  uuid.UUID
	userID      uuid.UUID
	startsAt    time.Time
	durationMin int
	status      string
	note        *string
}

func NewReservationBuilder() *ReservationBuilder {
	jst := time.FixedZone("JST", 9*60*60)
	start := time.Now().In(jst).AddDate(0, 0, 3)
	start = time.Date(start.Year(), start.Month(), start.Day(), 10, 0, 0, 0, jst)

	return &ReservationBuilder{
		id:          uuid.New(),
		resourceID:  uuid.New(),
		userID:      uuid.New(),
		startsAt:    start,
		durationMin: 60,
		status:      "pending",
	}
}

func (b *ReservationBuilder) WithID(id uuid.UUID) *ReservationBuilder {
	b.id = id
	return b
}

func (b *ReservationBuilder) WithResourceID(id uuid.UUID) *ReservationBuilder {
	b.resourceID = id
	return b
}

func (b *ReservationBuilder) WithUserID(id uuid.UUID) *ReservationBuilder {
	b.userID = id
	return b
}

func (b *ReservationBuilder) WithStartsAt(t time.Time) *ReservationBuilder {
	b.startsAt = t
	return b
}

func (b *ReservationBuilder) WithDuration(minutes int) *ReservationBuilder {
	b.durationMin = minutes
	return b
}

func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.status = status
	return b
}

func (b *ReservationBuilder) WithNote(note string) *ReservationBuilder {
	b.note = &note
	return b
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	duration := b.durationMin
	return reqdto.CreateReservationRequest{
		ResourceID:      b.resourceID,
		StartsAt:        b.startsAt,
		DurationMinutes: &duration,
		Note:            b.note,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	now := time.Now()
	return &queries.ReservationView{
		ID:           b.id,
		ResourceID:   b.resourceID,
		ResourceName: "Sato-sensei",
		UserID:       b.userID,
		StartsAt:     b.startsAt,
		DurationMin:  int32(b.durationMin),
		Status:       b.status,
		Note:         b.note,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:           b.id,
		ResourceID:   b.resourceID,
		ResourceName: "Sato-sensei",
		StartsAt:     b.startsAt,
		DurationMin:  int32(b.durationMin),
		Status:       b.status,
		CreatedAt:    time.Now(),
	}
}
