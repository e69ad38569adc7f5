package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"studio/infras/otel"
	"studio/infras/postgres"
	"studio/internal/domains/booking/model"
	"studio/shared/constant"
	gDto "studio/shared/dto"
	"studio/shared/failure"
	"studio/shared/logger"
	gRepo "studio/shared/repository"
	"studio/shared/schedule"
)

const msgSlotTaken = "This time slot is already booked"

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertIfVacant(ctx context.Context, booking model.Booking) error
	ActiveIntervals(ctx context.Context, roomID string, date time.Time) ([]schedule.Interval, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ActiveIntervals lists the time ranges still holding their slot for one room
// and date, i.e. bookings that are pending or confirmed.
func (repo *repositoryImpl) ActiveIntervals(ctx context.Context, roomID string, date time.Time) (intervals []schedule.Interval, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ActiveIntervals")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT %s, %s FROM %s WHERE %s = $1 AND %s = $2 AND %s IN ($3, $4)",
		model.FieldStartTime, model.FieldEndTime, model.TableName,
		model.FieldRoomID, model.FieldBookingDate, model.FieldStatus,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows := []struct {
		StartTime string `db:"start_time"`
		EndTime   string `db:"end_time"`
	}{}

	err = repo.db.Read.SelectContext(ctx, &rows, query, roomID, date, model.StatusPending, model.StatusConfirmed)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get active intervals (%s): %w", model.EntityName, err)
	}

	intervals = make([]schedule.Interval, len(rows))
	for i, row := range rows {
		intervals[i] = schedule.Interval{Start: row.StartTime, End: row.EndTime}
	}

	return intervals, nil
}

// InsertIfVacant inserts the booking only if its interval is free. The check
// and the insert run in one transaction with the room's rows for that date
// locked, so two concurrent submissions for the same slot cannot both pass.
// The exclusion constraint on the table backs this up; either path surfaces
// as a conflict failure.
func (repo *repositoryImpl) InsertIfVacant(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertIfVacant")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.ErrorWithStack(rbErr)
			}
		}
	}()

	query := fmt.Sprintf(
		"SELECT %s, %s FROM %s WHERE %s = $1 AND %s = $2 AND %s IN ($3, $4) FOR UPDATE",
		model.FieldStartTime, model.FieldEndTime, model.TableName,
		model.FieldRoomID, model.FieldBookingDate, model.FieldStatus,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows := []struct {
		StartTime string `db:"start_time"`
		EndTime   string `db:"end_time"`
	}{}

	err = tx.SelectContext(ctx, &rows, query, booking.RoomID, booking.BookingDate, model.StatusPending, model.StatusConfirmed)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to lock bookings (%s): %w", model.EntityName, err)
	}

	existing := make([]schedule.Interval, len(rows))
	for i, row := range rows {
		existing[i] = schedule.Interval{Start: row.StartTime, End: row.EndTime}
	}

	conflicts, err := schedule.Conflicts(booking.StartTime, booking.EndTime, existing)
	if err != nil {
		return failure.BadRequest(err) //nolint:wrapcheck
	}

	if conflicts {
		return failure.Conflict(msgSlotTaken) //nolint:wrapcheck
	}

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		if isSlotViolation(err) {
			return failure.Conflict(msgSlotTaken) //nolint:wrapcheck
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		if isSlotViolation(err) {
			return failure.Conflict(msgSlotTaken) //nolint:wrapcheck
		}

		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}

func isSlotViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	return string(pqErr.Code) == constant.PqErrorCodeExclusionViolation ||
		string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
}
