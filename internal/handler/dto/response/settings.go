package response

import (
	"school-booking/internal/domain/schedule"
)

type DayHoursResponse struct {
	DayOfWeek int    `json:"dayOfWeek"`
	IsOpen    bool   `json:"isOpen"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}

type OperatingHoursResponse struct {
	Days []DayHoursResponse `json:"days"`
}

type PolicyResponse struct {
	BufferTimeMinutes         int  `json:"bufferTimeMinutes"`
	MaxAdvanceDays            int  `json:"maxAdvanceDays"`
	MinAdvanceHours           int  `json:"minAdvanceHours"`
	CancellationDeadlineHours int  `json:"cancellationDeadlineHours"`
	AutoConfirm               bool `json:"autoConfirm"`
	RequireApproval           bool `json:"requireApproval"`
}

func FromWeekSchedule(week schedule.WeekSchedule) *OperatingHoursResponse {
	days := make([]DayHoursResponse, len(week))
	for i, day := range week {
		days[i] = DayHoursResponse{
			DayOfWeek: int(day.Weekday),
			IsOpen:    day.IsOpen,
			StartTime: day.Start,
			EndTime:   day.End,
		}
	}
	return &OperatingHoursResponse{Days: days}
}

func FromPolicy(policy schedule.Policy) *PolicyResponse {
	return &PolicyResponse{
		BufferTimeMinutes:         policy.BufferTimeMin,
		MaxAdvanceDays:            policy.MaxAdvanceDays,
		MinAdvanceHours:           policy.MinAdvanceHours,
		CancellationDeadlineHours: policy.CancellationDeadlineHours,
		AutoConfirm:               policy.AutoConfirm,
		RequireApproval:           policy.RequireApproval,
	}
}
