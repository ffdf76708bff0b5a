package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"invest-assistant/internal/dto"
	"invest-assistant/internal/model"
	"invest-assistant/internal/service"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type stubAnalytics struct {
	analyzeErr error
}

func (s *stubAnalytics) Analyze(ctx context.Context, req dto.AnalyzeRequest) (*dto.AnalyzeResponse, error) {
	if s.analyzeErr != nil {
		return nil, s.analyzeErr
	}
	return &dto.AnalyzeResponse{Summary: dto.PerformanceSummary{Ticker: req.Symbol}}, nil
}

func (s *stubAnalytics) EstimateRetirement(ctx context.Context, req dto.RetirementRequest) (*dto.RetirementResponse, error) {
	if s.analyzeErr != nil {
		return nil, s.analyzeErr
	}
	return &dto.RetirementResponse{}, nil
}

func (s *stubAnalytics) GetReports(ctx context.Context, param model.GetPerformanceReportsParam) ([]model.PerformanceReport, error) {
	return nil, nil
}

func newTestHandler(stub *stubAnalytics) (*echo.Echo, *HttpAPIHandler) {
	e := echo.New()
	h := NewHttpAPIHandler(context.Background(), e, goValidator.New(), &service.Service{AnalyticsService: stub})
	h.SetupRoutes()
	return e, h
}

func TestRunAnalysisStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "success",
			body:       `{"symbol":"AAPL","market":"US"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing symbol fails validation",
			body:       `{"market":"US"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid date format",
			body:       `{"symbol":"AAPL"}`,
			serviceErr: dto.ErrInvalidDateFormat,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty range",
			body:       `{"symbol":"AAPL"}`,
			serviceErr: dto.ErrEmptyRange,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "data unavailable",
			body:       `{"symbol":"NOPE"}`,
			serviceErr: dto.ErrDataUnavailable,
			wantStatus: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestHandler(&stubAnalytics{analyzeErr: tt.serviceErr})

			req := httptest.NewRequest(http.MethodPost, "/api/analysis", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRunRetirementValidation(t *testing.T) {
	e, _ := newTestHandler(&stubAnalytics{})

	// annual expense must be positive
	req := httptest.NewRequest(http.MethodPost, "/api/retirement",
		strings.NewReader(`{"symbol":"AAPL","annual_expense":0}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRunRetirementInsufficientReturn(t *testing.T) {
	e, _ := newTestHandler(&stubAnalytics{analyzeErr: dto.ErrInsufficientReturn})

	req := httptest.NewRequest(http.MethodPost, "/api/retirement",
		strings.NewReader(`{"symbol":"AAPL","annual_expense":40000,"inflation_rate_pct":2}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
