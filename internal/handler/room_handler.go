package handler

import (
	"net/http"

	"cinemabackend/internal/dto"
	"cinemabackend/internal/models"
	"cinemabackend/internal/service"
	"github.com/labstack/echo/v4"
)

type RoomHandler struct {
	svc service.RoomService
}

func NewRoomHandler(svc service.RoomService) *RoomHandler {
	return &RoomHandler{svc: svc}
}

func (h *RoomHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateRoom)
	g.GET("", h.ListRooms)
	g.GET("/:id", h.GetRoom)
	g.PUT("/:id", h.UpdateRoom)
	g.DELETE("/:id", h.DeleteRoom)
}

func (h *RoomHandler) CreateRoom(c echo.Context) error {
	room, err := bindRoom(c)
	if err != nil {
		return err
	}

	if err := h.svc.CreateRoom(c.Request().Context(), room); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

func (h *RoomHandler) ListRooms(c echo.Context) error {
	rooms, err := h.svc.ListRooms(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.RoomResponse, len(rooms))
	for i, r := range rooms {
		resp[i] = dto.ToRoomResponse(&r)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *RoomHandler) GetRoom(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	room, err := h.svc.GetRoom(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

func (h *RoomHandler) UpdateRoom(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	room, err := bindRoom(c)
	if err != nil {
		return err
	}

	if err := h.svc.UpdateRoom(c.Request().Context(), id, room); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

func (h *RoomHandler) DeleteRoom(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.DeleteRoom(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func bindRoom(c echo.Context) (*models.Room, error) {
	var req dto.RoomRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.Number <= 0 || req.Capacity <= 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "number and capacity must be greater than zero")
	}

	return &models.Room{
		Number:   req.Number,
		Capacity: req.Capacity,
		Seats:    models.SeatMap(req.Seats),
	}, nil
}
