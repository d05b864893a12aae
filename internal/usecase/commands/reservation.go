package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"school-booking/internal/domain/reservation"
	"school-booking/internal/domain/resource"
	"school-booking/internal/domain/schedule"
	"school-booking/internal/domain/user"
	reqdto "school-booking/internal/handler/dto/request"
	"school-booking/internal/infra"
	"school-booking/internal/infra/db"
	"school-booking/internal/pkg/clock"
	"school-booking/internal/pkg/errs"
	"school-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationCommands interface {
	Create(ctx context.Context, req reqdto.CreateReservationRequest, userID uuid.UUID) (*queries.ReservationView, error)
	Cancel(ctx context.Context, id uuid.UUID, actorID uuid.UUID, role user.Role) error
	Confirm(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	reservationRepo    ReservationRepository
	resourceRepo       ResourceRepository
	notificationRepo   NotificationRepository
	settingsRead       queries.SettingsReadStore
	bookingRead        queries.BookingReadStore
	reservationFactory *reservation.Factory
	reservationQueries queries.ReservationQueries
	db                 *pgxpool.Pool
	clock              clock.Clock
	location           *time.Location
}

func NewReservationCommands(
	reservationRepo ReservationRepository,
	resourceRepo ResourceRepository,
	notificationRepo NotificationRepository,
	settingsRead queries.SettingsReadStore,
	bookingRead queries.BookingReadStore,
	reservationFactory *reservation.Factory,
	reservationQueries queries.ReservationQueries,
	db *pgxpool.Pool,
	clock clock.Clock,
	location *time.Location,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservationRepo:    reservationRepo,
		resourceRepo:       resourceRepo,
		notificationRepo:   notificationRepo,
		settingsRead:       settingsRead,
		bookingRead:        bookingRead,
		reservationFactory: reservationFactory,
		reservationQueries: reservationQueries,
		db:                 db,
		clock:              clock,
		location:           location,
	}
}

// Create validates the candidate slot against operating hours, the booking
// policy and the day's existing reservations, then persists it. The engine
// check is advisory; the exclusion constraint in the database is what makes
// two racing requests for the same slot impossible.
func (r *reservationCommandsImpl) Create(
	ctx context.Context,
	req reqdto.CreateReservationRequest,
	userID uuid.UUID,
) (*queries.ReservationView, error) {
	resourceEntity, err := r.loadResource(ctx, req.ResourceID)
	if err != nil {
		return nil, err
	}

	candidate, note, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, schedule.ErrInvalidInput)
	}

	week, err := r.settingsRead.OperatingHours(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	policy, err := r.settingsRead.Policy(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := r.checkCandidate(ctx, candidate, week, policy); err != nil {
		return nil, err
	}

	reservationEntity, err := r.reservationFactory.CreateReservation(
		resourceEntity,
		userID,
		candidate,
		policy,
		note,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	return r.executeCreateTransaction(ctx, reservationEntity, candidate, week, policy)
}

// Cancel applies the policy deadline for owners; staff and admins bypass it.
func (r *reservationCommandsImpl) Cancel(ctx context.Context, id uuid.UUID, actorID uuid.UUID, role user.Role) error {
	entity, err := r.loadReservation(ctx, id)
	if err != nil {
		return err
	}

	force := role == user.RoleStaff || role == user.RoleAdmin
	if !force && !entity.IsOwnedBy(actorID) {
		return errs.ErrNotReservationOwner
	}

	policy, err := r.settingsRead.Policy(ctx)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := entity.Cancel(r.clock.Now(), policy.CancellationDeadlineHours, force); err != nil {
		return err
	}

	return r.executeStatusTransaction(ctx, entity, "reservation_cancelled")
}

// Confirm is the staff approval step for pending reservations.
func (r *reservationCommandsImpl) Confirm(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	entity, err := r.loadReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := entity.Confirm(); err != nil {
		return nil, err
	}

	if err := r.executeStatusTransaction(ctx, entity, "reservation_confirmed"); err != nil {
		return nil, err
	}

	return r.reservationQueries.GetByIDSystem(ctx, entity.ID())
}

func (r *reservationCommandsImpl) checkCandidate(
	ctx context.Context,
	candidate schedule.Candidate,
	week schedule.WeekSchedule,
	policy schedule.Policy,
) error {
	snapshot, err := r.daySnapshot(ctx, candidate)
	if err != nil {
		return err
	}
	// Typed engine errors flow through to the handler unchanged.
	return schedule.ValidateBooking(candidate, snapshot, week, policy, r.clock.Now())
}

func (r *reservationCommandsImpl) executeCreateTransaction(
	ctx context.Context,
	reservationEntity *reservation.Reservation,
	candidate schedule.Candidate,
	week schedule.WeekSchedule,
	policy schedule.Policy,
) (*queries.ReservationView, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, context.Canceled) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	reservationID, err := r.reservationRepo.Create(ctx, tx, reservationEntity)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, r.conflictError(ctx, candidate, week, policy)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := r.createNotificationJob(ctx, tx, reservationID, "reservation_created"); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, errs.ErrDatabaseOperationFailed)
	}

	// Read-after-write: serve the response from the read store
	return r.reservationQueries.GetByIDSystem(ctx, reservationID)
}

func (r *reservationCommandsImpl) executeStatusTransaction(
	ctx context.Context,
	entity *reservation.Reservation,
	topic string,
) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, context.Canceled) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := r.reservationRepo.UpdateStatus(ctx, tx, entity.ID(), entity.Status().String(), r.clock.Now()); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := r.createNotificationJob(ctx, tx, entity.ID(), topic); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return errs.Mark(commitErr, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// conflictError re-reads the day after a constraint violation so the client
// learns which reservation won the race. The constraint fires for buffer
// overlaps too, so the engine re-check usually names the winner; a fallback
// sentinel covers the window where the winner was cancelled in between.
func (r *reservationCommandsImpl) conflictError(
	ctx context.Context,
	candidate schedule.Candidate,
	week schedule.WeekSchedule,
	policy schedule.Policy,
) error {
	snapshot, err := r.daySnapshot(ctx, candidate)
	if err != nil {
		return errs.ErrReservationConflict
	}

	validationErr := schedule.ValidateBooking(candidate, snapshot, week, policy, r.clock.Now())
	var conflict *schedule.ConflictError
	if errors.As(validationErr, &conflict) {
		return conflict
	}
	return errs.ErrReservationConflict
}

func (r *reservationCommandsImpl) daySnapshot(ctx context.Context, candidate schedule.Candidate) ([]schedule.Booking, error) {
	day := candidate.StartsAt.In(r.location)
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, r.location)

	snapshot, err := r.bookingRead.FindDayBookings(ctx, day, &candidate.ResourceID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snapshot, nil
}

func (r *reservationCommandsImpl) loadResource(ctx context.Context, resourceID uuid.UUID) (*resource.Resource, error) {
	snapshot, err := r.resourceRepo.FindByID(ctx, resourceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrResourceNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return resource.ReconstructResource(
		snapshot.ID,
		snapshot.Name,
		snapshot.Subject,
		snapshot.Active,
		snapshot.CreatedAt,
		snapshot.UpdatedAt,
	), nil
}

func (r *reservationCommandsImpl) loadReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	snapshot, err := r.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	note, err := reservation.NewNote(valueOrEmpty(snapshot.Note))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	entity, err := reservation.ReconstructReservation(
		snapshot.ID,
		snapshot.ResourceID,
		snapshot.UserID,
		snapshot.StartsAt,
		snapshot.DurationMin,
		reservation.Status(snapshot.Status),
		note,
		snapshot.CreatedAt,
		snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return entity, nil
}

func (r *reservationCommandsImpl) createNotificationJob(
	ctx context.Context,
	tx db.DBTX,
	reservationID uuid.UUID,
	topic string,
) error {
	payload, err := json.Marshal(map[string]any{
		"reservation_id": reservationID,
		"type":           topic,
	})
	if err != nil {
		return err
	}
	return r.notificationRepo.CreateJob(ctx, tx, "email", topic, payload, r.clock.Now())
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
