package room

import (
	"net/http"
	"roomapi/infras/otel"
	"roomapi/internal/domains/room/model/dto"
	"roomapi/internal/domains/room/service"
	"roomapi/shared/constant"
	"roomapi/shared/failure"
	"roomapi/shared/validator"
	"roomapi/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/rooms", handler.GetRooms)
	router.Post("/room", handler.CreateRoom)
	router.Get("/room/{id}", handler.GetRoomByID)
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Description Validate the payload and persist a new room.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Create Room Request"
// @Success 201 {object} dto.CreateRoomResponse "Room created successfully"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Validation
// @Failure 500 {object} response.Error
// @Router /room [post]
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	var req dto.CreateRoomRequest
	if err := validator.Decode(request.Body, &req); err != nil {
		fail(writer, request, scope, err, "failed to decode request body")

		return
	}

	room, err := handler.service.Create(ctx, req)
	if err != nil {
		fail(writer, request, scope, err, "failed to create room")

		return
	}

	scope.AddEvent("Room created successfully")

	response.WithJSON(writer, http.StatusCreated, dto.CreateRoomResponse{
		Message: dto.MessageRoomCreated,
		Room:    room,
	})
}

// GetRooms lists every room.
// @Summary Get all rooms
// @Description Retrieve all rooms ordered by id.
// @Tags Room
// @Produce json
// @Success 200 {object} dto.GetRoomsResponse "List of rooms"
// @Failure 500 {object} response.Error
// @Router /rooms [get]
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	rooms, err := handler.service.GetAll(ctx)
	if err != nil {
		fail(writer, request, scope, err, "failed to get rooms")

		return
	}

	scope.SetAttribute("rooms.count", len(rooms.Rooms))

	response.WithJSON(writer, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Description Retrieve a room by its identifier. Unknown or malformed ids are not found.
// @Tags Room
// @Produce json
// @Param id path integer true "Room ID"
// @Success 200 {object} dto.RoomResponse "Room details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /room/{id} [get]
func (handler *Handler) GetRoomByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	rawID := chi.URLParam(request, constant.RequestParamID)

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		hlog.FromRequest(request).Debug().Str("id", rawID).Msg("non numeric room id")
		response.WithError(writer, service.ErrRoomNotFound)

		return
	}

	scope.SetAttribute("room.id", id)

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		fail(writer, request, scope, err, "failed to get room by ID")

		return
	}

	response.WithJSON(writer, http.StatusOK, room)
}

// fail traces and logs err, then writes it. Client errors log at warn, the rest at error.
func fail(writer http.ResponseWriter, request *http.Request, scope otel.Scope, err error, message string) {
	scope.TraceError(err)

	event := hlog.FromRequest(request).Error()
	if code := failure.GetCode(err); failure.IsFailure(err) && code < http.StatusInternalServerError {
		event = hlog.FromRequest(request).Warn()
	}

	event.Err(err).Msg(message)

	response.WithError(writer, err)
}
