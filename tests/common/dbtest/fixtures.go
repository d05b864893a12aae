//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"school-booking/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is the minimal interface required for test DB operations.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func InsertResource(t *testing.T, db DBLike, name, subject string) uuid.UUID {
	t.Helper()

	resourceID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO resources (id, name, subject, active) VALUES ($1, $2, $3, TRUE)",
		resourceID, name, subject)
	require.NoError(t, err)

	return resourceID
}

func InsertReservation(t *testing.T, db DBLike, resourceID, userID uuid.UUID, startsAt time.Time, durationMin int, status string) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO reservations (id, resource_id, user_id, starts_at, duration_min, status) VALUES ($1, $2, $3, $4, $5, $6)",
		reservationID, resourceID, userID, startsAt, durationMin, status)
	require.NoError(t, err)

	return reservationID
}

func SaveOperatingHours(t *testing.T, db DBLike, week schedule.WeekSchedule) {
	t.Helper()

	ctx := context.Background()
	for _, day := range week {
		_, err := db.Exec(ctx, `
			INSERT INTO operating_hours (day_of_week, is_open, start_time, end_time, updated_at)
			VALUES ($1, $2, $3, $4, now())
			ON CONFLICT (day_of_week) DO UPDATE
			SET is_open = EXCLUDED.is_open, start_time = EXCLUDED.start_time,
			    end_time = EXCLUDED.end_time, updated_at = now()`,
			int(day.Weekday), day.IsOpen, day.Start, day.End)
		require.NoError(t, err)
	}
}

func SavePolicy(t *testing.T, db DBLike, policy schedule.Policy) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO reservation_policy (singleton, buffer_time_min, max_advance_days, min_advance_hours, cancellation_deadline_hours, auto_confirm, require_approval, updated_at)
		VALUES (TRUE, $1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (singleton) DO UPDATE
		SET buffer_time_min = EXCLUDED.buffer_time_min,
		    max_advance_days = EXCLUDED.max_advance_days,
		    min_advance_hours = EXCLUDED.min_advance_hours,
		    cancellation_deadline_hours = EXCLUDED.cancellation_deadline_hours,
		    auto_confirm = EXCLUDED.auto_confirm,
		    require_approval = EXCLUDED.require_approval,
		    updated_at = now()`,
		policy.BufferTimeMin, policy.MaxAdvanceDays, policy.MinAdvanceHours,
		policy.CancellationDeadlineHours, policy.AutoConfirm, policy.RequireApproval)
	require.NoError(t, err)
}

// OpenAllWeek returns operating hours with every day open for the given
// window, so flow tests do not depend on which weekday they run on.
func OpenAllWeek(start, end string) schedule.WeekSchedule {
	var week schedule.WeekSchedule
	for d := time.Sunday; d <= time.Saturday; d++ {
		week[d] = schedule.DayHours{Weekday: d, IsOpen: true, Start: start, End: end}
	}
	return week
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables so each subtest starts from a clean state.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var tbl string
			if err := rows.Scan(&tbl); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, tbl)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
