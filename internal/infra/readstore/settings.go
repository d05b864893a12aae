package readstore

import (
	"context"
	"time"

	"school-booking/internal/domain/schedule"
	"school-booking/internal/infra"
	"school-booking/internal/infra/db"
	"school-booking/internal/pkg/pgconv"
)

const selectOperatingHoursSQL = `
SELECT day_of_week, is_open, start_time, end_time
FROM operating_hours
ORDER BY day_of_week`

const selectPolicySQL = `
SELECT buffer_time_min, max_advance_days, min_advance_hours,
       cancellation_deadline_hours, auto_confirm, require_approval
FROM reservation_policy
WHERE singleton = TRUE`

type SettingsReadStore struct {
	db db.DBTX
}

func NewSettingsReadStore(db db.DBTX) *SettingsReadStore {
	return &SettingsReadStore{db: db}
}

// OperatingHours merges stored rows over the default week, so a partially
// configured schedule still covers all seven days.
func (s *SettingsReadStore) OperatingHours(ctx context.Context) (schedule.WeekSchedule, error) {
	week := schedule.DefaultWeekSchedule()

	rows, err := s.db.Query(ctx, selectOperatingHoursSQL)
	if err != nil {
		return schedule.WeekSchedule{}, infra.WrapRepoErr("failed to load operating hours", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			dayOfWeek int
			entry     schedule.DayHours
		)
		if err := rows.Scan(&dayOfWeek, &entry.IsOpen, &entry.Start, &entry.End); err != nil {
			return schedule.WeekSchedule{}, infra.WrapRepoErr("failed to scan operating hours row", err)
		}
		if dayOfWeek < 0 || dayOfWeek > 6 {
			continue
		}
		entry.Weekday = time.Weekday(dayOfWeek)
		week[dayOfWeek] = entry
	}
	if err := rows.Err(); err != nil {
		return schedule.WeekSchedule{}, infra.WrapRepoErr("failed to read operating hours rows", err)
	}

	return week, nil
}

// Policy falls back to the default policy when none has been stored yet.
func (s *SettingsReadStore) Policy(ctx context.Context) (schedule.Policy, error) {
	var policy schedule.Policy
	err := s.db.QueryRow(ctx, selectPolicySQL).Scan(
		&policy.BufferTimeMin,
		&policy.MaxAdvanceDays,
		&policy.MinAdvanceHours,
		&policy.CancellationDeadlineHours,
		&policy.AutoConfirm,
		&policy.RequireApproval,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return schedule.DefaultPolicy(), nil
		}
		return schedule.Policy{}, infra.WrapRepoErr("failed to load reservation policy", err)
	}

	return policy, nil
}
