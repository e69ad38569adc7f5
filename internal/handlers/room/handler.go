package room

import (
	"net/http"
	"studio/infras/otel"
	bookingService "studio/internal/domains/booking/service"
	"studio/internal/domains/room/model"
	"studio/internal/domains/room/model/dto"
	"studio/internal/domains/room/service"
	"studio/shared"
	"studio/shared/constant"
	gDto "studio/shared/dto"
	"studio/shared/validator"
	"studio/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/lib/pq"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service        service.Room
	bookingService bookingService.Booking
	otel           otel.Otel
}

func New(service service.Room, bookingService bookingService.Booking, otel otel.Otel) Handler {
	return Handler{
		service:        service,
		bookingService: bookingService,
		otel:           otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Get("/{id}/availability", handler.GetAvailability)
		routerGroup.Patch("/{id}", handler.UpdateRoom)
		routerGroup.Delete("/{id}", handler.DeleteRoom)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Description Create a new room with the provided details.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Room name"
// @Param type formData string true "Room type (practice, recording, rehearsal)"
// @Param description formData string false "Room description"
// @Param capacity formData integer false "Room capacity"
// @Param hourly_rate formData number true "Hourly rate"
// @Param amenities formData []string false "Room amenities" collectionFormat(multi)
// @Param active formData boolean false "Room active status"
// @Param image formData file false "Room image"
// @Success 201 {object} response.Message "Room created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.CreateRoomRequest{
		Name:        request.FormValue("name"),
		Type:        request.FormValue("type"),
		Description: request.FormValue("description"),
		Amenities:   request.Form["amenities"],
	}

	if capStr := request.FormValue("capacity"); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			req.Capacity = c
		}
	}

	if rateStr := request.FormValue("hourly_rate"); rateStr != "" {
		if rate, err := shared.ConvertStringToFloat(rateStr); err == nil {
			req.HourlyRate = rate
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
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Room created successfully")
}

// GetRooms retrieves all room items based on query parameters.
// @Summary Get all rooms
// @Description Retrieve all rooms with optional filtering and pagination.
// @Tags Room
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param type query string false "Filter by type"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.RoomResponse] "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    name,
				Table:    model.TableName,
			},
		},
	}

	if roomType := r.URL.Query().Get(model.FieldType); roomType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    roomType,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Description Retrieve a room by its unique identifier.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// GetAvailability lists open time slots for a room on a given date.
// @Summary Get room availability
// @Description Retrieve open start slots for a room on a date. When a start slot is provided, valid end slots are included.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start query string false "Chosen start time (HH:MM)"
// @Success 200 {object} response.Data[bookingDto.AvailabilityResponse] "Availability details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	date := r.URL.Query().Get(constant.RequestParamDate)
	start := r.URL.Query().Get(constant.RequestParamStart)

	availability, err := handler.bookingService.Availability(ctx, id, date, start)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room availability retrieved successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// UpdateRoom updates an existing room by its ID.
// @Summary Update a room by ID
// @Description Update the details of an existing room.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Room ID"
// @Param name formData string false "Room name"
// @Param type formData string false "Room type (practice, recording, rehearsal)"
// @Param description formData string false "Room description"
// @Param capacity formData integer false "Room capacity"
// @Param hourly_rate formData number false "Hourly rate"
// @Param amenities formData []string false "Room amenities" collectionFormat(multi)
// @Param active formData boolean false "Room active status"
// @Param image formData file false "Room image"
// @Success 200 {object} response.Message "Room updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateRoomRequest{
		Name:        r.FormValue("name"),
		Type:        r.FormValue("type"),
		Description: r.FormValue("description"),
		Amenities:   pq.StringArray(r.Form["amenities"]),
	}

	if capStr := r.FormValue("capacity"); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			req.Capacity = &c
		}
	}

	if rateStr := r.FormValue("hourly_rate"); rateStr != "" {
		if rate, err := shared.ConvertStringToFloat(rateStr); err == nil {
			req.HourlyRate = &rate
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
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// DeleteRoom deletes a room by its ID.
// @Summary Delete a room by ID
// @Description Delete a room using its unique identifier.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message "Room deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}
