package commands

import (
	"context"

	"school-booking/internal/domain/schedule"
	"school-booking/internal/pkg/errs"
)

type SettingsRepository interface {
	SaveOperatingHours(ctx context.Context, week schedule.WeekSchedule) error
	SavePolicy(ctx context.Context, policy schedule.Policy) error
}

type SettingsCommands interface {
	UpdateOperatingHours(ctx context.Context, week schedule.WeekSchedule) error
	UpdatePolicy(ctx context.Context, policy schedule.Policy) error
}

type settingsCommandsImpl struct {
	repo SettingsRepository
}

func NewSettingsCommands(repo SettingsRepository) SettingsCommands {
	return &settingsCommandsImpl{repo: repo}
}

func (s *settingsCommandsImpl) UpdateOperatingHours(ctx context.Context, week schedule.WeekSchedule) error {
	if err := week.Validate(); err != nil {
		return errs.Mark(err, errs.ErrInvalidOperatingHours)
	}
	if err := s.repo.SaveOperatingHours(ctx, week); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (s *settingsCommandsImpl) UpdatePolicy(ctx context.Context, policy schedule.Policy) error {
	if err := policy.Validate(); err != nil {
		return errs.Mark(err, errs.ErrInvalidReservationPolicy)
	}
	if err := s.repo.SavePolicy(ctx, policy); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
