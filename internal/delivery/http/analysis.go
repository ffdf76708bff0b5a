package http

import (
	"net/http"

	"invest-assistant/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupAnalysis(base *echo.Group) {
	base.POST("/analysis", h.runAnalysis)
}

func (h *HttpAPIHandler) runAnalysis(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.AnalyzeRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error()))
	}

	result, err := h.service.AnalyticsService.Analyze(ctx, *req)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("analysis completed", result))
}
