package http

import (
	"net/http"

	"invest-assistant/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupRetirement(base *echo.Group) {
	base.POST("/retirement", h.runRetirement)
}

func (h *HttpAPIHandler) runRetirement(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.RetirementRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error()))
	}

	result, err := h.service.AnalyticsService.EstimateRetirement(ctx, *req)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("retirement estimate completed", result))
}
