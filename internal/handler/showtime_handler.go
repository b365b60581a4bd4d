package handler

import (
	"net/http"

	"cinemabackend/internal/dto"
	"cinemabackend/internal/models"
	"cinemabackend/internal/service"
	"github.com/labstack/echo/v4"
)

type ShowtimeHandler struct {
	svc service.ShowtimeService
}

func NewShowtimeHandler(svc service.ShowtimeService) *ShowtimeHandler {
	return &ShowtimeHandler{svc: svc}
}

func (h *ShowtimeHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateShowtime)
	g.GET("", h.ListShowtimes)
	g.GET("/:id", h.GetShowtime)
	g.PUT("/:id", h.UpdateShowtime)
	g.DELETE("/:id", h.DeleteShowtime)
}

func (h *ShowtimeHandler) CreateShowtime(c echo.Context) error {
	showtime, err := bindShowtime(c)
	if err != nil {
		return err
	}

	if err := h.svc.CreateShowtime(c.Request().Context(), showtime); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToShowtimeResponse(showtime))
}

func (h *ShowtimeHandler) ListShowtimes(c echo.Context) error {
	showtimes, err := h.svc.ListShowtimes(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.ShowtimeResponse, len(showtimes))
	for i, s := range showtimes {
		resp[i] = dto.ToShowtimeResponse(&s)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *ShowtimeHandler) GetShowtime(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	showtime, err := h.svc.GetShowtime(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToShowtimeResponse(showtime))
}

func (h *ShowtimeHandler) UpdateShowtime(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	showtime, err := bindShowtime(c)
	if err != nil {
		return err
	}

	if err := h.svc.UpdateShowtime(c.Request().Context(), id, showtime); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToShowtimeResponse(showtime))
}

func (h *ShowtimeHandler) DeleteShowtime(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.DeleteShowtime(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func bindShowtime(c echo.Context) (*models.Showtime, error) {
	var req dto.ShowtimeRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.StartsAt.IsZero() {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "starts_at is required")
	}
	if req.MovieID == 0 || req.RoomID == 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "movie_id and room_id are required")
	}

	return &models.Showtime{
		StartsAt: req.StartsAt,
		MovieID:  req.MovieID,
		RoomID:   req.RoomID,
	}, nil
}
