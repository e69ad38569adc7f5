package classbooking

import (
	"net/http"
	"studio/infras/otel"
	"studio/internal/domains/classbooking/model"
	"studio/internal/domains/classbooking/model/dto"
	"studio/internal/domains/classbooking/service"
	"studio/shared/constant"
	gDto "studio/shared/dto"
	"studio/shared/failure"
	"studio/shared/validator"
	"studio/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.ClassBooking
	otel    otel.Otel
}

func New(service service.ClassBooking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/class-bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateClassBooking)
		routerGroup.Get("/", handler.GetClassBookings)
		routerGroup.Get("/mybookings", handler.GetMyClassBookings)
		routerGroup.Get("/{id}", handler.GetClassBookingByID)
		routerGroup.Post("/{id}/payment", handler.ConfirmPayment)
		routerGroup.Delete("/{id}", handler.CancelClassBooking)
	})
}

// CreateClassBooking handles the creation of a new class booking.
// @Summary Create a new class booking
// @Description Reserve a class session for a date and start time. The end time is derived from the class duration and the slot is checked and claimed atomically.
// @Tags ClassBooking
// @Accept json
// @Produce json
// @Param request body dto.CreateClassBookingRequest true "Create Class Booking Request"
// @Success 201 {object} response.Data[dto.ClassBookingResponse] "Created class booking"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/class-bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateClassBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateClassBooking")
	defer scope.End()

	req := dto.CreateClassBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create class booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Class booking created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// ConfirmPayment uploads a payment receipt and confirms the class booking.
// @Summary Confirm class booking payment
// @Description Attach a payment slip (base64 data URI) with accepted terms; the class booking becomes confirmed and paid.
// @Tags ClassBooking
// @Accept json
// @Produce json
// @Param id path string true "Class Booking ID"
// @Param request body dto.PaymentRequest true "Payment Request"
// @Success 200 {object} response.Data[dto.ClassBookingResponse] "Confirmed class booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/class-bookings/{id}/payment [post]
// @Security BearerAuth
func (handler *Handler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmPayment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.PaymentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.ConfirmPayment(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm class booking payment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Class booking payment confirmed by user " + user)

	response.WithJSON(w, http.StatusOK, booking)
}

// GetClassBookings retrieves all class bookings based on query parameters.
// @Summary Get all class bookings
// @Description Retrieve all class bookings with optional filtering and pagination.
// @Tags ClassBooking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param class_id query string false "Filter by class ID"
// @Param status query string false "Filter by status (pending, confirmed, cancelled, completed)"
// @Param booking_date query string false "Filter by booking date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetClassBookingsResponse] "List of class bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/class-bookings [get]
// @Security BearerAuth
func (handler *Handler) GetClassBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClassBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := classBookingFilters(r, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	})

	classID := r.URL.Query().Get(model.FieldClassID)
	if classID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldClassID,
			Operator: gDto.FilterOperatorEq,
			Value:    classID,
			Table:    model.TableName,
		})
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get class bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Class bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetMyClassBookings retrieves all class bookings for the currently authenticated user.
// @Summary Get my class bookings
// @Description Retrieve all class bookings for the currently authenticated user with optional filtering and pagination.
// @Tags ClassBooking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (pending, confirmed, cancelled, completed)"
// @Param booking_date query string false "Filter by booking date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetClassBookingsResponse] "List of user's class bookings"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/class-bookings/mybookings [get]
// @Security BearerAuth
func (handler *Handler) GetMyClassBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyClassBookings")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := classBookingFilters(r, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCreatedBy,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	})

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user class bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User class bookings retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetClassBookingByID retrieves a class booking by its ID.
// @Summary Get a class booking by ID
// @Description Retrieve a class booking by its unique identifier.
// @Tags ClassBooking
// @Accept json
// @Produce json
// @Param id path string true "Class Booking ID"
// @Success 200 {object} response.Data[dto.ClassBookingResponse] "Class booking details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/class-bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetClassBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClassBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get class booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Class booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// CancelClassBooking cancels a class booking by its ID.
// @Summary Cancel a class booking by ID
// @Description Cancel a class booking; the record is kept with the cancelled status and its slot is released.
// @Tags ClassBooking
// @Accept json
// @Produce json
// @Param id path string true "Class Booking ID"
// @Success 200 {object} response.Message "Class booking cancelled successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/class-bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) CancelClassBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelClassBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel class booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Class booking cancelled successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Class booking cancelled successfully")
}

// classBookingFilters appends the status and booking_date query filters shared
// by the list endpoints.
func classBookingFilters(r *http.Request, filterGroup gDto.FilterGroup) gDto.FilterGroup {
	status := r.URL.Query().Get(model.FieldStatus)
	bookingDate := r.URL.Query().Get(model.FieldBookingDate)

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if bookingDate != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBookingDate,
			Operator: gDto.FilterOperatorEq,
			Value:    bookingDate,
			Table:    model.TableName,
		})
	}

	return filterGroup
}
