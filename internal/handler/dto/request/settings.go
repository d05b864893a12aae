package request

import (
	"time"

	"school-booking/internal/domain/schedule"
)

type DayHoursRequest struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	IsOpen    bool   `json:"is_open"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type UpdateOperatingHoursRequest struct {
	Days []DayHoursRequest `json:"days" binding:"required,len=7"`
}

func (r UpdateOperatingHoursRequest) ToDomain() schedule.WeekSchedule {
	var week schedule.WeekSchedule
	for i, day := range r.Days {
		idx := day.DayOfWeek
		if idx < 0 || idx > 6 {
			idx = i % 7
		}
		week[idx] = schedule.DayHours{
			Weekday: time.Weekday(day.DayOfWeek),
			IsOpen:  day.IsOpen,
			Start:   day.StartTime,
			End:     day.EndTime,
		}
	}
	return week
}

type UpdatePolicyRequest struct {
	BufferTimeMinutes         int  `json:"buffer_time_minutes" binding:"min=0"`
	MaxAdvanceDays            int  `json:"max_advance_days" binding:"min=0"`
	MinAdvanceHours           int  `json:"min_advance_hours" binding:"min=0"`
	CancellationDeadlineHours int  `json:"cancellation_deadline_hours" binding:"min=0"`
	AutoConfirm               bool `json:"auto_confirm"`
	RequireApproval           bool `json:"require_approval"`
}

func (r UpdatePolicyRequest) ToDomain() schedule.Policy {
	return schedule.Policy{
		BufferTimeMin:             r.BufferTimeMinutes,
		MaxAdvanceDays:            r.MaxAdvanceDays,
		MinAdvanceHours:           r.MinAdvanceHours,
		CancellationDeadlineHours: r.CancellationDeadlineHours,
		AutoConfirm:               r.AutoConfirm,
		RequireApproval:           r.RequireApproval,
	}
}
