package class

import (
	"net/http"
	"studio/infras/otel"
	"studio/internal/domains/class/model"
	"studio/internal/domains/class/model/dto"
	"studio/internal/domains/class/service"
	classBookingService "studio/internal/domains/classbooking/service"
	"studio/shared"
	"studio/shared/constant"
	gDto "studio/shared/dto"
	"studio/shared/validator"
	"studio/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service        service.Class
	bookingService classBookingService.ClassBooking
	otel           otel.Otel
}

func New(service service.Class, bookingService classBookingService.ClassBooking, otel otel.Otel) Handler {
	return Handler{
		service:        service,
		bookingService: bookingService,
		otel:           otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/classes", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateClass)
		routerGroup.Get("/", handler.GetClasses)
		routerGroup.Get("/{id}", handler.GetClassByID)
		routerGroup.Get("/{id}/availability", handler.GetAvailability)
		routerGroup.Patch("/{id}", handler.UpdateClass)
		routerGroup.Delete("/{id}", handler.DeleteClass)
	})
}

// CreateClass handles the creation of a new class.
// @Summary Create a new class
// @Description Create a new private class offering with the provided details.
// @Tags Class
// @Accept multipart/form-data
// @Produce json
// @Param instructor_name formData string true "Instructor name"
// @Param instrument formData string true "Instrument taught"
// @Param description formData string false "Class description"
// @Param hourly_rate formData number true "Hourly rate"
// @Param duration_minutes formData integer true "Session duration in minutes"
// @Param active formData boolean false "Class active status"
// @Param image formData file false "Class image"
// @Success 201 {object} response.Message "Class created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/classes [post]
// @Security BearerAuth
func (handler *Handler) CreateClass(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateClass")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.CreateClassRequest{
		InstructorName: request.FormValue("instructor_name"),
		Instrument:     request.FormValue("instrument"),
		Description:    request.FormValue("description"),
	}

	if rateStr := request.FormValue("hourly_rate"); rateStr != "" {
		if rate, err := shared.ConvertStringToFloat(rateStr); err == nil {
			req.HourlyRate = rate
		}
	}

	if durationStr := request.FormValue("duration_minutes"); durationStr != "" {
		if duration, err := shared.ConvertStringToInt(durationStr); err == nil {
			req.DurationMinutes = duration
		}
	}

	if activeStr := request.FormValue("active"); activeStr != "" {
		req.Active = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := request.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create class")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Class created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Class created successfully")
}

// GetClasses retrieves all class items based on query parameters.
// @Summary Get all classes
// @Description Retrieve all classes with optional filtering and pagination.
// @Tags Class
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param instructor_name query string false "Filter by instructor name"
// @Param instrument query string false "Filter by instrument"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.ClassResponse] "List of classes"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/classes [get]
func (handler *Handler) GetClasses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClasses")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldInstructorName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldInstructorName),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldInstrument,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldInstrument),
				Table:    model.TableName,
			},
		},
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	classes, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get classes")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Classes retrieved successfully")

	response.WithJSON(w, http.StatusOK, classes)
}

// GetClassByID retrieves a class by its ID.
// @Summary Get a class by ID
// @Description Retrieve a class by its unique identifier.
// @Tags Class
// @Accept json
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} response.Data[dto.ClassResponse] "Class details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/classes/{id} [get]
func (handler *Handler) GetClassByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClassByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	class, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get class by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Class retrieved successfully")

	response.WithJSON(w, http.StatusOK, class)
}

// GetAvailability lists open start slots for a class on a given date.
// @Summary Get class availability
// @Description Retrieve start slots where a full session of the class's fixed duration still fits.
// @Tags Class
// @Accept json
// @Produce json
// @Param id path string true "Class ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[classBookingDto.AvailabilityResponse] "Availability details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/classes/{id}/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	date := r.URL.Query().Get(constant.RequestParamDate)

	availability, err := handler.bookingService.Availability(ctx, id, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get class availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Class availability retrieved successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// UpdateClass updates an existing class by its ID.
// @Summary Update a class by ID
// @Description Update the details of an existing class.
// @Tags Class
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Class ID"
// @Param instructor_name formData string false "Instructor name"
// @Param instrument formData string false "Instrument taught"
// @Param description formData string false "Class description"
// @Param hourly_rate formData number false "Hourly rate"
// @Param duration_minutes formData integer false "Session duration in minutes"
// @Param active formData boolean false "Class active status"
// @Param image formData file false "Class image"
// @Success 200 {object} response.Message "Class updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/classes/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateClass(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateClass")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateClassRequest{
		InstructorName: r.FormValue("instructor_name"),
		Instrument:     r.FormValue("instrument"),
		Description:    r.FormValue("description"),
	}

	if rateStr := r.FormValue("hourly_rate"); rateStr != "" {
		if rate, err := shared.ConvertStringToFloat(rateStr); err == nil {
			req.HourlyRate = &rate
		}
	}

	if durationStr := r.FormValue("duration_minutes"); durationStr != "" {
		if duration, err := shared.ConvertStringToInt(durationStr); err == nil {
			req.DurationMinutes = &duration
		}
	}

	if activeStr := r.FormValue("active"); activeStr != "" {
		req.Active = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update class")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Class updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Class updated successfully")
}

// DeleteClass deletes a class by its ID.
// @Summary Delete a class by ID
// @Description Delete a class using its unique identifier.
// @Tags Class
// @Accept json
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} response.Message "Class deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/classes/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteClass(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteClass")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete class")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Class deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Class deleted successfully")
}
