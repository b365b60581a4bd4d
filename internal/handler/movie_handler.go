package handler

import (
	"net/http"

	"cinemabackend/internal/dto"
	"cinemabackend/internal/models"
	"cinemabackend/internal/service"
	"github.com/labstack/echo/v4"
)

type MovieHandler struct {
	svc service.MovieService
}

func NewMovieHandler(svc service.MovieService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

func (h *MovieHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateMovie)
	g.GET("", h.ListMovies)
	g.GET("/:id", h.GetMovie)
	g.PUT("/:id", h.UpdateMovie)
	g.DELETE("/:id", h.DeleteMovie)
}

func (h *MovieHandler) CreateMovie(c echo.Context) error {
	movie, err := bindMovie(c)
	if err != nil {
		return err
	}

	if err := h.svc.CreateMovie(c.Request().Context(), movie); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToMovieResponse(movie))
}

func (h *MovieHandler) ListMovies(c echo.Context) error {
	movies, err := h.svc.ListMovies(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.MovieResponse, len(movies))
	for i, m := range movies {
		resp[i] = dto.ToMovieResponse(&m)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *MovieHandler) GetMovie(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	movie, err := h.svc.GetMovie(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToMovieResponse(movie))
}

func (h *MovieHandler) UpdateMovie(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	movie, err := bindMovie(c)
	if err != nil {
		return err
	}

	if err := h.svc.UpdateMovie(c.Request().Context(), id, movie); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToMovieResponse(movie))
}

func (h *MovieHandler) DeleteMovie(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.DeleteMovie(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func bindMovie(c echo.Context) (*models.Movie, error) {
	var req dto.MovieRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.Title == "" || req.Synopsis == "" || req.Rating == "" || req.Cast == "" || req.Genre == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "title, synopsis, rating, cast and genre are required")
	}
	if req.DurationMinutes <= 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "duration_minutes must be greater than zero")
	}
	if !req.ExhibitionEnd.After(req.ExhibitionStart) {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "exhibition_end must be after exhibition_start")
	}

	return &models.Movie{
		Title:           req.Title,
		Synopsis:        req.Synopsis,
		Rating:          req.Rating,
		DurationMinutes: req.DurationMinutes,
		Cast:            req.Cast,
		Genre:           req.Genre,
		ExhibitionStart: req.ExhibitionStart,
		ExhibitionEnd:   req.ExhibitionEnd,
	}, nil
}
