package repository

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"invest-assistant/config"
	"invest-assistant/internal/dto"
	"invest-assistant/pkg/httpclient"
	"invest-assistant/pkg/logger"
	"invest-assistant/pkg/utils"

	"golang.org/x/time/rate"
)

type YahooFinanceRepository interface {
	GetPriceHistory(ctx context.Context, ticker string) (*dto.PriceSeries, error)
}

type yahooFinanceRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

// NewYahooFinanceRepository creates a chart-API client rate limited to
// the configured requests per minute.
func NewYahooFinanceRepository(cfg *config.Config, log *logger.Logger) YahooFinanceRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.YahooFinance.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &yahooFinanceRepository{
		httpClient:     httpclient.New(cfg.YahooFinance.BaseURL, cfg.YahooFinance.Timeout),
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
	}
}

// GetPriceHistory fetches the full available daily history for an
// already-normalized ticker and cleans it into a PriceSeries.
func (r *yahooFinanceRepository) GetPriceHistory(ctx context.Context, ticker string) (*dto.PriceSeries, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := "/" + ticker

	// period1=0 asks for the whole listed history; date bounds are
	// applied downstream so consecutive queries can share one fetch.
	queryParams := map[string]string{
		"period1":        "0",
		"period2":        fmt.Sprintf("%d", time.Now().Unix()),
		"interval":       "1d",
		"includePrePost": "false",
		"events":         "div,split",
	}

	headers := map[string]string{
		"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0.0.0 Safari/537.36",
		"Accept":          "application/json, text/plain, */*",
		"Accept-Language": "en-US,en;q=0.9",
		"Connection":      "keep-alive",
		"Referer":         "https://finance.yahoo.com/",
	}

	var chartResp dto.YahooChartResponse
	resp, err := r.httpClient.Get(ctx, endpoint, queryParams, headers, &chartResp)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch data from yahoo finance: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: unknown ticker %s", dto.ErrDataUnavailable, ticker)
	}
	if resp.StatusCode != http.StatusOK {
		r.logger.Error("Yahoo Finance API returned Non-OK status",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("body", string(resp.Body)))
		return nil, fmt.Errorf("yahoo finance api returned status: %d", resp.StatusCode)
	}

	if chartResp.Chart.Error != nil {
		return nil, fmt.Errorf("%w: %s (%s)", dto.ErrDataUnavailable,
			chartResp.Chart.Error.Description, chartResp.Chart.Error.Code)
	}

	result, err := flattenChart(&chartResp, ticker)
	if err != nil {
		return nil, err
	}

	points := cleanPricePoints(result)
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no valid rows for %s", dto.ErrDataUnavailable, ticker)
	}

	return &dto.PriceSeries{Ticker: ticker, Points: points}, nil
}

// flattenChart collapses the possibly multi-ticker result list to the
// single block for the requested symbol. Batch responses carry one
// block per ticker; single requests carry exactly one. Both shapes are
// resolved here once, never inspected again downstream.
func flattenChart(resp *dto.YahooChartResponse, ticker string) (*dto.YahooChartResult, error) {
	results := resp.Chart.Result
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: empty result for %s", dto.ErrDataUnavailable, ticker)
	}

	selected := &results[0]
	for i := range results {
		if results[i].Meta.Symbol == ticker {
			selected = &results[i]
			break
		}
	}

	if len(selected.Indicators.AdjClose) == 0 {
		return nil, fmt.Errorf("%w: missing adjusted close for %s", dto.ErrDataUnavailable, ticker)
	}

	return selected, nil
}

// cleanPricePoints pairs timestamps with adjusted closes, dropping rows
// with missing values and collapsing duplicate dates (Yahoo repeats the
// current day when queried intraday; the later row wins).
func cleanPricePoints(result *dto.YahooChartResult) []dto.PricePoint {
	adjCloses := result.Indicators.AdjClose[0].AdjClose

	var points []dto.PricePoint
	for i, ts := range result.Timestamp {
		if i >= len(adjCloses) {
			break
		}
		if adjCloses[i] <= 0 {
			continue
		}

		day := utils.DayFromUnix(ts)
		if n := len(points); n > 0 && points[n-1].Date.Equal(day) {
			points[n-1].AdjClose = adjCloses[i]
			continue
		}

		points = append(points, dto.PricePoint{Date: day, AdjClose: adjCloses[i]})
	}

	return points
}
