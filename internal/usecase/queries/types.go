package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID           uuid.UUID `json:"id"`
	ResourceID   uuid.UUID `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	UserID       uuid.UUID `json:"user_id"`
	StartsAt     time.Time `json:"starts_at"`
	DurationMin  int32     `json:"duration_min"`
	Status       string    `json:"status"`
	Note         *string   `json:"note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ReservationListItem struct {
	ID           uuid.UUID `json:"id"`
	ResourceID   uuid.UUID `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	StartsAt     time.Time `json:"starts_at"`
	DurationMin  int32     `json:"duration_min"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type ResourceView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DayAvailabilityView is the live slot grid for one calendar day, optionally
// scoped to a single resource.
type DayAvailabilityView struct {
	Date           string     `json:"date"`
	ResourceID     *uuid.UUID `json:"resource_id,omitempty"`
	OpenSlots      []string   `json:"open_slots"`
	BookedSlots    []string   `json:"booked_slots"`
	AvailableSlots []string   `json:"available_slots"`
}
