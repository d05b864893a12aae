package response

import (
	"school-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type DayAvailabilityResponse struct {
	Date           string     `json:"date"`
	ResourceID     *uuid.UUID `json:"resourceId,omitempty"`
	OpenSlots      []string   `json:"openSlots"`
	BookedSlots    []string   `json:"bookedSlots"`
	AvailableSlots []string   `json:"availableSlots"`
}

func FromDayAvailabilityView(view *queries.DayAvailabilityView) *DayAvailabilityResponse {
	return &DayAvailabilityResponse{
		Date:           view.Date,
		ResourceID:     view.ResourceID,
		OpenSlots:      emptyIfNil(view.OpenSlots),
		BookedSlots:    emptyIfNil(view.BookedSlots),
		AvailableSlots: emptyIfNil(view.AvailableSlots),
	}
}

// emptyIfNil keeps slot arrays as [] in JSON rather than null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
