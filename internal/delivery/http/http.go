package http

import (
	"context"
	"errors"
	"net/http"

	"invest-assistant/internal/dto"
	"invest-assistant/internal/service"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type HttpAPIHandler struct {
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
}

func NewHttpAPIHandler(ctx context.Context, echo *echo.Echo, validator *goValidator.Validate, service *service.Service) *HttpAPIHandler {
	return &HttpAPIHandler{
		echo:      echo,
		validator: validator,
		service:   service,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	base := h.echo.Group("/api")
	h.SetupAnalysis(base)
	h.SetupRetirement(base)
	h.SetupReports(base)
}

// errorResponse maps the core failure taxonomy onto HTTP statuses.
// Every core failure is terminal for the request; nothing is retried.
func errorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, dto.ErrInvalidDateFormat):
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error()))
	case errors.Is(err, dto.ErrEmptyRange), errors.Is(err, dto.ErrInsufficientReturn):
		return c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, err.Error()))
	case errors.Is(err, dto.ErrDataUnavailable):
		return c.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error()))
	default:
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "internal error"))
	}
}
