package handler

import (
	"net/http"

	"cinemabackend/internal/dto"
	"cinemabackend/internal/models"
	"cinemabackend/internal/service"
	"github.com/labstack/echo/v4"
)

type TicketHandler struct {
	svc service.TicketService
}

func NewTicketHandler(svc service.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

func (h *TicketHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateTicket)
	g.GET("", h.ListTickets)
	g.GET("/:id", h.GetTicket)
	g.PUT("/:id", h.UpdateTicket)
	g.DELETE("/:id", h.DeleteTicket)
}

func (h *TicketHandler) CreateTicket(c echo.Context) error {
	ticket, err := bindTicket(c)
	if err != nil {
		return err
	}

	if err := h.svc.CreateTicket(c.Request().Context(), ticket); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToTicketResponse(ticket))
}

func (h *TicketHandler) ListTickets(c echo.Context) error {
	tickets, err := h.svc.ListTickets(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.TicketResponse, len(tickets))
	for i, t := range tickets {
		resp[i] = dto.ToTicketResponse(&t)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *TicketHandler) GetTicket(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	ticket, err := h.svc.GetTicket(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func (h *TicketHandler) UpdateTicket(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	ticket, err := bindTicket(c)
	if err != nil {
		return err
	}

	if err := h.svc.UpdateTicket(c.Request().Context(), id, ticket); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func (h *TicketHandler) DeleteTicket(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.DeleteTicket(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func bindTicket(c echo.Context) (*models.Ticket, error) {
	var req dto.TicketRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.FullPrice <= 0 || req.HalfPrice <= 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "full_price and half_price must be greater than zero")
	}
	if req.ShowtimeID == 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "showtime_id is required")
	}

	return &models.Ticket{
		FullPrice:  req.FullPrice,
		HalfPrice:  req.HalfPrice,
		ShowtimeID: req.ShowtimeID,
	}, nil
}
