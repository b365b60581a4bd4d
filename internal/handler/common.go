package handler

import (
	"errors"
	"net/http"
	"strconv"

	"cinemabackend/internal/service"
	"github.com/labstack/echo/v4"
)

// toHTTPError maps service errors onto transport responses: denied deletions
// become 409, unresolved foreign keys in a write become 400, missing records
// become 404, anything else is a server fault.
func toHTTPError(err error) *echo.HTTPError {
	var denied *service.DeletionDeniedError
	var dangling *service.DanglingReferenceError

	switch {
	case errors.As(err, &denied):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.As(err, &dangling):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrMovieNotFound),
		errors.Is(err, service.ErrRoomNotFound),
		errors.Is(err, service.ErrShowtimeNotFound),
		errors.Is(err, service.ErrTicketNotFound),
		errors.Is(err, service.ErrComboNotFound),
		errors.Is(err, service.ErrOrderNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
