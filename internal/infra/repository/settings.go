package repository

import (
	"context"

	"school-booking/internal/domain/schedule"
	"school-booking/internal/infra"
	"school-booking/internal/infra/db"
)

const upsertOperatingHoursSQL = `
INSERT INTO operating_hours (day_of_week, is_open, start_time, end_time, updated_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (day_of_week)
DO UPDATE SET is_open = EXCLUDED.is_open,
              start_time = EXCLUDED.start_time,
              end_time = EXCLUDED.end_time,
              updated_at = now()`

const upsertPolicySQL = `
INSERT INTO reservation_policy (singleton, buffer_time_min, max_advance_days, min_advance_hours,
                                cancellation_deadline_hours, auto_confirm, require_approval, updated_at)
VALUES (TRUE, $1, $2, $3, $4, $5, $6, now())
ON CONFLICT (singleton)
DO UPDATE SET buffer_time_min = EXCLUDED.buffer_time_min,
              max_advance_days = EXCLUDED.max_advance_days,
              min_advance_hours = EXCLUDED.min_advance_hours,
              cancellation_deadline_hours = EXCLUDED.cancellation_deadline_hours,
              auto_confirm = EXCLUDED.auto_confirm,
              require_approval = EXCLUDED.require_approval,
              updated_at = now()`

type SettingsRepository struct {
	db db.DBTX
}

func NewSettingsRepository(db db.DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (s *SettingsRepository) SaveOperatingHours(ctx context.Context, week schedule.WeekSchedule) error {
	for _, day := range week {
		start, end := day.Start, day.End
		if !day.IsOpen {
			start, end = "", ""
		}
		if _, err := s.db.Exec(ctx, upsertOperatingHoursSQL, int(day.Weekday), day.IsOpen, start, end); err != nil {
			return infra.WrapRepoErr("failed to save operating hours", err)
		}
	}
	return nil
}

func (s *SettingsRepository) SavePolicy(ctx context.Context, policy schedule.Policy) error {
	_, err := s.db.Exec(ctx, upsertPolicySQL,
		policy.BufferTimeMin,
		policy.MaxAdvanceDays,
		policy.MinAdvanceHours,
		policy.CancellationDeadlineHours,
		policy.AutoConfirm,
		policy.RequireApproval,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save reservation policy", err)
	}
	return nil
}
