package handler

import (
	"net/http"

	"cinemabackend/internal/dto"
	"cinemabackend/internal/models"
	"cinemabackend/internal/service"
	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	svc service.OrderService
}

func NewOrderHandler(svc service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateOrder)
	g.GET("", h.ListOrders)
	g.GET("/:id", h.GetOrder)
	g.PUT("/:id", h.UpdateOrder)
	g.DELETE("/:id", h.DeleteOrder)
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	order, comboIDs, err := bindOrder(c)
	if err != nil {
		return err
	}

	if err := h.svc.CreateOrder(c.Request().Context(), order, comboIDs); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.svc.ListOrders(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.OrderResponse, len(orders))
	for i, o := range orders {
		resp[i] = dto.ToOrderResponse(&o)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	order, err := h.svc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	order, comboIDs, err := bindOrder(c)
	if err != nil {
		return err
	}

	if err := h.svc.UpdateOrder(c.Request().Context(), id, order, comboIDs); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.DeleteOrder(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func bindOrder(c echo.Context) (*models.Order, []uint, error) {
	var req dto.OrderRequest
	if err := c.Bind(&req); err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.OrderedAt.IsZero() {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "ordered_at is required")
	}
	if req.TicketID == 0 {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "ticket_id is required")
	}
	if req.PaymentMethod == "" {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "payment_method is required")
	}
	if req.HalfTicketCount < 0 || req.FullTicketCount < 0 || req.Total < 0 {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "ticket counts and total must be positive")
	}

	order := &models.Order{
		OrderedAt:       req.OrderedAt,
		HalfTicketCount: req.HalfTicketCount,
		FullTicketCount: req.FullTicketCount,
		TicketID:        req.TicketID,
		Total:           req.Total,
		PaymentMethod:   req.PaymentMethod,
	}
	return order, req.ComboIDs, nil
}
