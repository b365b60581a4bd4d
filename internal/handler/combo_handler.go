package handler

import (
	"net/http"

	"cinemabackend/internal/dto"
	"cinemabackend/internal/models"
	"cinemabackend/internal/service"
	"github.com/labstack/echo/v4"
)

type ComboItemHandler struct {
	svc service.ComboItemService
}

func NewComboItemHandler(svc service.ComboItemService) *ComboItemHandler {
	return &ComboItemHandler{svc: svc}
}

func (h *ComboItemHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateComboItem)
	g.GET("", h.ListComboItems)
	g.GET("/:id", h.GetComboItem)
	g.PUT("/:id", h.UpdateComboItem)
	g.DELETE("/:id", h.DeleteComboItem)
}

func (h *ComboItemHandler) CreateComboItem(c echo.Context) error {
	combo, err := bindComboItem(c)
	if err != nil {
		return err
	}

	if err := h.svc.CreateComboItem(c.Request().Context(), combo); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToComboItemResponse(combo))
}

func (h *ComboItemHandler) ListComboItems(c echo.Context) error {
	combos, err := h.svc.ListComboItems(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.ComboItemResponse, len(combos))
	for i, combo := range combos {
		resp[i] = dto.ToComboItemResponse(&combo)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *ComboItemHandler) GetComboItem(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	combo, err := h.svc.GetComboItem(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToComboItemResponse(combo))
}

func (h *ComboItemHandler) UpdateComboItem(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	combo, err := bindComboItem(c)
	if err != nil {
		return err
	}

	if err := h.svc.UpdateComboItem(c.Request().Context(), id, combo); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToComboItemResponse(combo))
}

func (h *ComboItemHandler) DeleteComboItem(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.DeleteComboItem(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func bindComboItem(c echo.Context) (*models.ComboItem, error) {
	var req dto.ComboItemRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.Name == "" || req.Description == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "name and description are required")
	}
	if req.UnitPrice < 0 || req.Quantity <= 0 || req.Subtotal < 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unit_price, quantity and subtotal must be positive")
	}

	return &models.ComboItem{
		Name:        req.Name,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
		Quantity:    req.Quantity,
		Subtotal:    req.Subtotal,
	}, nil
}
