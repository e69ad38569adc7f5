package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"studio/config"
	"studio/infras/otel"
	"studio/infras/s3"
	classModel "studio/internal/domains/class/model"
	classRepo "studio/internal/domains/class/repository"
	"studio/internal/domains/classbooking/model"
	"studio/internal/domains/classbooking/model/dto"
	"studio/internal/domains/classbooking/repository"
	"studio/internal/events"
	"studio/shared"
	"studio/shared/base64"
	"studio/shared/cache"
	"studio/shared/constant"
	gDto "studio/shared/dto"
	"studio/shared/failure"
	"studio/shared/schedule"
	"studio/shared/timezone"
)

const (
	cacheGetClassBooking    = "class_booking:get"
	cacheGetAllClassBooking = "class_booking:gets"
	cacheCountClassBooking  = "class_booking:count"

	receiptDirectory = "receipts"

	minutesPerHour = 60
)

type ClassBooking interface {
	Create(ctx context.Context, req dto.CreateClassBookingRequest) (dto.ClassBookingResponse, error)
	ConfirmPayment(ctx context.Context, id string, req dto.PaymentRequest) (dto.ClassBookingResponse, error)
	Cancel(ctx context.Context, id string) error
	Availability(ctx context.Context, classID, date string) (dto.AvailabilityResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetClassBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ClassBookingResponse, error)
}

type serviceImpl struct {
	repo      repository.ClassBooking
	classRepo classRepo.Class
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	s3        s3.S3
	publisher events.Publisher
}

func New(repo repository.ClassBooking, classRepo classRepo.Class, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3, publisher events.Publisher) ClassBooking {
	return &serviceImpl{
		repo:      repo,
		classRepo: classRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		s3:        s3,
		publisher: publisher,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateClassBookingRequest) (res dto.ClassBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	class, err := s.classRepo.Get(ctx, shared.FilterByID(req.ClassID, classModel.FieldID, classModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get class for booking")

		return res, fmt.Errorf("failed to get class for booking: %w", err)
	}

	if class.ID == constant.Empty || !class.Active {
		return res, failure.BadRequestFromString("class does not exist") // nolint:wrapcheck
	}

	endTime, err := schedule.DerivedEnd(req.StartTime, class.DurationMinutes)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.checkOperatingHours(req.StartTime, endTime); err != nil {
		return res, err
	}

	price := math.Round(class.HourlyRate*float64(class.DurationMinutes)/minutesPerHour*100) / 100

	booking, err := req.ToModel(user, endTime, price)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse class booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.InsertIfVacant(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create class booking")

		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllClassBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountClassBooking)

		event := events.NewBookingEvent(events.TypeClassBookingCreated, booking.ID, booking.ClassID, user)
		if err := s.publisher.Publish(c, event); err != nil {
			log.Error().Err(err).Msg("failed to publish class booking created event")
		}
	}()

	return res, nil
}

// checkOperatingHours rejects sessions that would start before opening or
// run past closing.
func (s *serviceImpl) checkOperatingHours(startTime, endTime string) error {
	bookingCfg := s.cfg.App.Booking

	start, err := schedule.ParseClock(startTime)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	end, err := schedule.ParseClock(endTime)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	if start < bookingCfg.OpenHour*minutesPerHour || end > bookingCfg.CloseHour*minutesPerHour {
		return failure.BadRequestFromString("session falls outside operating hours") // nolint:wrapcheck
	}

	return nil
}

// ConfirmPayment mirrors the room booking flow: the booking is looked up by
// id and owner together so ownership failures read as not found.
func (s *serviceImpl) ConfirmPayment(ctx context.Context, id string, req dto.PaymentRequest) (res dto.ClassBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	booking, err := s.repo.Get(ctx, filterOwned(id, user))
	if err != nil {
		log.Error().Err(err).Msg("failed to get class booking")

		return res, fmt.Errorf("failed to get class booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("class booking not found") // nolint:wrapcheck
	}

	if booking.Status == model.StatusCancelled {
		return res, failure.Conflict("class booking has been cancelled") // nolint:wrapcheck
	}

	if booking.PaymentStatus == model.PaymentStatusPaid {
		return res, failure.Conflict("payment already confirmed") // nolint:wrapcheck
	}

	slipData, err := base64.GetData(req.PaymentSlip)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	contentType := base64.GetContentType(req.PaymentSlip)
	filename := uuid.NewString()

	if idx := strings.LastIndex(contentType, "/"); idx != -1 && idx < len(contentType)-1 {
		filename = fmt.Sprintf("%s.%s", filename, contentType[idx+1:])
	}

	bucketName := s.cfg.External.S3.BucketName

	slipURL, err := s.s3.UploadFileBytes(ctx, bucketName, receiptDirectory, filename, contentType, slipData)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload payment slip")

		return res, fmt.Errorf("failed to upload payment slip: %w", err)
	}

	updatedFields := map[string]any{
		model.FieldPaymentSlipURL: slipURL,
		model.FieldTermsAccepted:  req.TermsAccepted,
		model.FieldPaymentStatus:  model.PaymentStatusPaid,
		model.FieldStatus:         model.StatusConfirmed,
		constant.FieldModifiedAt:  timezone.Now(),
		constant.FieldModifiedBy:  user,
	}

	if err = s.repo.Update(ctx, updatedFields, filterOwned(id, user)); err != nil {
		log.Error().Err(err).Msg("failed to confirm class booking payment")

		if objectName := s.s3.GetObjectNameFromURL(bucketName, slipURL); objectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, receiptDirectory, objectName)
		}

		return res, fmt.Errorf("failed to confirm class booking payment: %w", err)
	}

	booking.PaymentSlipURL = slipURL
	booking.TermsAccepted = req.TermsAccepted
	booking.PaymentStatus = model.PaymentStatusPaid
	booking.Status = model.StatusConfirmed
	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetClassBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete class booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllClassBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountClassBooking)

		event := events.NewBookingEvent(events.TypeClassBookingPaid, booking.ID, booking.ClassID, user)
		if err := s.publisher.Publish(c, event); err != nil {
			log.Error().Err(err).Msg("failed to publish class booking payment event")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	if role != constant.RoleAdmin && role != constant.RoleSuperAdmin {
		filter = filterOwned(id, user)
	}

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get class booking")

		return fmt.Errorf("failed to get class booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("class booking not found") // nolint:wrapcheck
	}

	if booking.Status == model.StatusCancelled {
		return failure.Conflict("class booking already cancelled") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if booking.PaymentStatus == model.PaymentStatusPaid {
		updatedFields[model.FieldPaymentStatus] = model.PaymentStatusRefunded
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel class booking")

		return fmt.Errorf("failed to cancel class booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetClassBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete class booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllClassBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountClassBooking)

		event := events.NewBookingEvent(events.TypeClassBookingCancelled, booking.ID, booking.ClassID, user)
		if err := s.publisher.Publish(c, event); err != nil {
			log.Error().Err(err).Msg("failed to publish class booking cancelled event")
		}
	}()

	return nil
}

// Availability lists the starts whose derived session both fits inside
// operating hours and conflicts with nothing already booked.
func (s *serviceImpl) Availability(ctx context.Context, classID, date string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookingDate, err := time.Parse(constant.BookingDateFormat, date)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	class, err := s.classRepo.Get(ctx, shared.FilterByID(classID, classModel.FieldID, classModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get class")

		return res, fmt.Errorf("failed to get class: %w", err)
	}

	if class.ID == constant.Empty {
		return res, failure.NotFound("class not found") // nolint:wrapcheck
	}

	existing, err := s.repo.ActiveIntervals(ctx, classID, bookingDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booked intervals")

		return res, fmt.Errorf("failed to get booked intervals: %w", err)
	}

	bookingCfg := s.cfg.App.Booking
	slots := schedule.Slots(bookingCfg.OpenHour, bookingCfg.CloseHour, bookingCfg.StepMinutes)
	closing := bookingCfg.CloseHour * minutesPerHour

	starts := make([]string, 0, len(slots))

	for _, slot := range slots {
		endTime, err := schedule.DerivedEnd(slot, class.DurationMinutes)
		if err != nil {
			continue
		}

		end, err := schedule.ParseClock(endTime)
		if err != nil || end > closing {
			continue
		}

		conflicts, err := schedule.Conflicts(slot, endTime, existing)
		if err != nil || conflicts {
			continue
		}

		starts = append(starts, slot)
	}

	res.ClassID = classID
	res.Date = date
	res.DurationMinutes = class.DurationMinutes
	res.AvailableStarts = starts

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetClassBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllClassBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for class bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count class bookings")

		return res, fmt.Errorf("failed to count class bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get class bookings")

		return res, fmt.Errorf("failed to get class bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save class bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountClassBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for class booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count class bookings")

		return res, fmt.Errorf("failed to count class bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save class booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ClassBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetClassBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for class booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get class booking")

		return res, fmt.Errorf("failed to get class booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("class booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save class booking to cache")
		}
	}()

	return res, nil
}

func filterOwned(id, user string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCreatedBy,
				Value:    user,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
