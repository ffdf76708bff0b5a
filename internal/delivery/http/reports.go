package http

import (
	"net/http"
	"strconv"

	"invest-assistant/internal/dto"
	"invest-assistant/internal/model"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupReports(base *echo.Group) {
	base.GET("/reports", h.listReports)
}

func (h *HttpAPIHandler) listReports(c echo.Context) error {
	ctx := c.Request().Context()

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "limit must be an integer"))
		}
		limit = parsed
	}

	reports, err := h.service.AnalyticsService.GetReports(ctx, model.GetPerformanceReportsParam{
		Ticker: c.QueryParam("ticker"),
		Limit:  limit,
	})
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("reports fetched", reports))
}
