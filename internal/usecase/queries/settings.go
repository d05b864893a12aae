package queries

import (
	"context"

	"school-booking/internal/domain/schedule"
	"school-booking/internal/pkg/errs"
)

type SettingsQueries interface {
	OperatingHours(ctx context.Context) (schedule.WeekSchedule, error)
	Policy(ctx context.Context) (schedule.Policy, error)
}

type settingsQueriesImpl struct {
	store SettingsReadStore
}

func NewSettingsQueries(store SettingsReadStore) SettingsQueries {
	return &settingsQueriesImpl{store: store}
}

func (q *settingsQueriesImpl) OperatingHours(ctx context.Context) (schedule.WeekSchedule, error) {
	week, err := q.store.OperatingHours(ctx)
	if err != nil {
		return schedule.WeekSchedule{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return week, nil
}

func (q *settingsQueriesImpl) Policy(ctx context.Context) (schedule.Policy, error) {
	policy, err := q.store.Policy(ctx)
	if err != nil {
		return schedule.Policy{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return policy, nil
}
