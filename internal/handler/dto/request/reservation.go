package request

import (
	"strings"
	"time"

	"school-booking/internal/domain/reservation"
	"school-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ResourceID      uuid.UUID `json:"resource_id" binding:"required"`
	StartsAt        time.Time `json:"starts_at" binding:"required"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	Note            *string   `json:"note,omitempty"`
}

func (r CreateReservationRequest) ToDomain() (schedule.Candidate, reservation.Note, error) {
	durationMin := schedule.DefaultDurationMin
	if r.DurationMinutes != nil {
		durationMin = *r.DurationMinutes
	}

	note := reservation.Note{}
	if r.Note != nil {
		parsed, err := reservation.NewNote(strings.TrimSpace(*r.Note))
		if err != nil {
			return schedule.Candidate{}, reservation.Note{}, err
		}
		note = parsed
	}

	candidate := schedule.Candidate{
		ResourceID:  r.ResourceID,
		StartsAt:    r.StartsAt,
		DurationMin: durationMin,
	}
	return candidate, note, nil
}
