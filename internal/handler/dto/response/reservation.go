package response

import (
	"time"

	"school-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID           uuid.UUID `json:"id"`
	ResourceID   uuid.UUID `json:"resourceId"`
	ResourceName string    `json:"resourceName"`
	UserID       uuid.UUID `json:"userId"`
	StartsAt     time.Time `json:"startsAt"`
	DurationMin  int32     `json:"durationMinutes"`
	Status       string    `json:"status"`
	Note         *string   `json:"note,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID           uuid.UUID `json:"id"`
	ResourceID   uuid.UUID `json:"resourceId"`
	ResourceName string    `json:"resourceName"`
	StartsAt     time.Time `json:"startsAt"`
	DurationMin  int32     `json:"durationMinutes"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromReservationListItems(rms []*queries.ReservationListItem) []*ReservationListResponse {
	result := make([]*ReservationListResponse, len(rms))
	for i, rm := range rms {
		var resp ReservationListResponse
		_ = copier.Copy(&resp, rm)
		result[i] = &resp
	}
	return result
}
