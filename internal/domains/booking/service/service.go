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
	"studio/internal/domains/booking/model"
	"studio/internal/domains/booking/model/dto"
	"studio/internal/domains/booking/repository"
	roomModel "studio/internal/domains/room/model"
	roomRepo "studio/internal/domains/room/repository"
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
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	receiptDirectory = "receipts"

	minutesPerHour = 60
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	ConfirmPayment(ctx context.Context, id string, req dto.PaymentRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
	Availability(ctx context.Context, roomID, date, start string) (dto.AvailabilityResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	s3        s3.S3
	publisher events.Publisher
}

func New(repo repository.Booking, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3, publisher events.Publisher) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		s3:        s3,
		publisher: publisher,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	hours, err := schedule.Hours(req.StartTime, req.EndTime)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.checkOperatingHours(req.StartTime, req.EndTime); err != nil {
		return res, err
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room for booking")

		return res, fmt.Errorf("failed to get room for booking: %w", err)
	}

	if room.ID == constant.Empty || !room.Active {
		return res, failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	price := math.Round(hours*room.HourlyRate*100) / 100

	booking, err := req.ToModel(user, hours, price)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.InsertIfVacant(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)

		event := events.NewBookingEvent(events.TypeBookingCreated, booking.ID, booking.RoomID, user)
		if err := s.publisher.Publish(c, event); err != nil {
			log.Error().Err(err).Msg("failed to publish booking created event")
		}
	}()

	return res, nil
}

// checkOperatingHours rejects bookings that would start before opening or
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
		return failure.BadRequestFromString("booking falls outside operating hours") // nolint:wrapcheck
	}

	return nil
}

// ConfirmPayment stores the uploaded receipt and moves the booking to the
// confirmed status. The booking is looked up by id and owner together, so a
// booking belonging to someone else is indistinguishable from a missing one.
func (s *serviceImpl) ConfirmPayment(ctx context.Context, id string, req dto.PaymentRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	booking, err := s.repo.Get(ctx, filterOwned(id, user))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status == model.StatusCancelled {
		return res, failure.Conflict("booking has been cancelled") // nolint:wrapcheck
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
		log.Error().Err(err).Msg("failed to confirm payment")

		if objectName := s.s3.GetObjectNameFromURL(bucketName, slipURL); objectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, receiptDirectory, objectName)
		}

		return res, fmt.Errorf("failed to confirm payment: %w", err)
	}

	booking.PaymentSlipURL = slipURL
	booking.TermsAccepted = req.TermsAccepted
	booking.PaymentStatus = model.PaymentStatusPaid
	booking.Status = model.StatusConfirmed
	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)

		event := events.NewBookingEvent(events.TypeBookingPaymentPaid, booking.ID, booking.RoomID, user)
		if err := s.publisher.Publish(c, event); err != nil {
			log.Error().Err(err).Msg("failed to publish payment confirmed event")
		}
	}()

	return res, nil
}

// Cancel releases the booking's time slot. The row stays behind with the
// cancelled status; a paid booking is marked for refund.
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
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status == model.StatusCancelled {
		return failure.Conflict("booking already cancelled") // nolint:wrapcheck
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
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)

		event := events.NewBookingEvent(events.TypeBookingCancelled, booking.ID, booking.RoomID, user)
		if err := s.publisher.Publish(c, event); err != nil {
			log.Error().Err(err).Msg("failed to publish booking cancelled event")
		}
	}()

	return nil
}

// Availability reports the bookable slot boundaries of one room for one day.
// When a start is given the valid ends for that start come back as well.
func (s *serviceImpl) Availability(ctx context.Context, roomID, date, start string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookingDate, err := time.Parse(constant.BookingDateFormat, date)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	exist, err := s.roomRepo.Exist(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	existing, err := s.repo.ActiveIntervals(ctx, roomID, bookingDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booked intervals")

		return res, fmt.Errorf("failed to get booked intervals: %w", err)
	}

	bookingCfg := s.cfg.App.Booking
	slots := schedule.Slots(bookingCfg.OpenHour, bookingCfg.CloseHour, bookingCfg.StepMinutes)

	// The closing boundary can end a booking but never start one.
	startCandidates := slots
	if len(startCandidates) > 0 {
		startCandidates = startCandidates[:len(startCandidates)-1]
	}

	res.RoomID = roomID
	res.Date = date
	res.Slots = slots
	res.AvailableStarts = schedule.AvailableStarts(startCandidates, existing)

	if start != constant.Empty {
		if _, err := schedule.ParseClock(start); err != nil {
			return dto.AvailabilityResponse{}, failure.BadRequest(err) // nolint:wrapcheck
		}

		res.AvailableEnds = schedule.AvailableEnds(slots, start, existing)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
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
