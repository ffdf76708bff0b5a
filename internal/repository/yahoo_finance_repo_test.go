package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"invest-assistant/config"
	"invest-assistant/internal/dto"
	"invest-assistant/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2020-01-01, 2020-01-02, 2020-01-03 UTC
const (
	ts1 = "1577836800"
	ts2 = "1577923200"
	ts3 = "1578009600"
)

const singleResultBody = `{
	"chart": {
		"result": [
			{
				"meta": {"symbol": "AAPL", "regularMarketPrice": 120},
				"timestamp": [` + ts1 + `,` + ts2 + `,` + ts3 + `],
				"indicators": {
					"quote": [{"open": [99,109,119], "high": [101,111,121], "low": [98,108,118], "close": [100,110,120], "volume": [1000,1100,1200]}],
					"adjclose": [{"adjclose": [100,110,120]}]
				}
			}
		],
		"error": null
	}
}`

// Same data for AAPL, wrapped in a batch response with a second ticker
// block in front of it.
const multiResultBody = `{
	"chart": {
		"result": [
			{
				"meta": {"symbol": "MSFT", "regularMarketPrice": 55},
				"timestamp": [` + ts1 + `,` + ts2 + `],
				"indicators": {
					"quote": [{"open": [49,54], "high": [51,56], "low": [48,53], "close": [50,55], "volume": [500,550]}],
					"adjclose": [{"adjclose": [50,55]}]
				}
			},
			{
				"meta": {"symbol": "AAPL", "regularMarketPrice": 120},
				"timestamp": [` + ts1 + `,` + ts2 + `,` + ts3 + `],
				"indicators": {
					"quote": [{"open": [99,109,119], "high": [101,111,121], "low": [98,108,118], "close": [100,110,120], "volume": [1000,1100,1200]}],
					"adjclose": [{"adjclose": [100,110,120]}]
				}
			}
		],
		"error": null
	}
}`

const missingAdjCloseBody = `{
	"chart": {
		"result": [
			{
				"meta": {"symbol": "AAPL"},
				"timestamp": [` + ts1 + `],
				"indicators": {
					"quote": [{"open": [99], "high": [101], "low": [98], "close": [100], "volume": [1000]}],
					"adjclose": []
				}
			}
		],
		"error": null
	}
}`

const sparseBody = `{
	"chart": {
		"result": [
			{
				"meta": {"symbol": "AAPL"},
				"timestamp": [` + ts1 + `,` + ts2 + `,` + ts3 + `],
				"indicators": {
					"quote": [{"open": [99,0,119], "high": [101,0,121], "low": [98,0,118], "close": [100,0,120], "volume": [1000,0,1200]}],
					"adjclose": [{"adjclose": [100,null,120]}]
				}
			}
		],
		"error": null
	}
}`

const notFoundBody = `{
	"chart": {
		"result": null,
		"error": {"code": "Not Found", "description": "No data found, symbol may be delisted"}
	}
}`

func newTestRepo(t *testing.T, handler http.HandlerFunc) YahooFinanceRepository {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.YahooFinance.BaseURL = server.URL
	cfg.YahooFinance.Timeout = 5 * time.Second
	cfg.YahooFinance.MaxRequestPerMinute = 600

	return NewYahooFinanceRepository(cfg, logger.NewNop())
}

func serveBody(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestGetPriceHistorySingleResult(t *testing.T) {
	repo := newTestRepo(t, serveBody(http.StatusOK, singleResultBody))

	series, err := repo.GetPriceHistory(context.Background(), "AAPL")
	require.NoError(t, err)

	require.Len(t, series.Points, 3)
	assert.Equal(t, "AAPL", series.Ticker)
	assert.Equal(t, time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), series.Points[0].Date)
	assert.InDelta(t, 100, series.Points[0].AdjClose, 1e-9)
	assert.InDelta(t, 120, series.Points[2].AdjClose, 1e-9)
}

func TestGetPriceHistoryFlattensBatchShape(t *testing.T) {
	single := newTestRepo(t, serveBody(http.StatusOK, singleResultBody))
	batch := newTestRepo(t, serveBody(http.StatusOK, multiResultBody))

	fromSingle, err := single.GetPriceHistory(context.Background(), "AAPL")
	require.NoError(t, err)
	fromBatch, err := batch.GetPriceHistory(context.Background(), "AAPL")
	require.NoError(t, err)

	// identical data through either response shape yields an identical
	// cleaned series, and therefore identical downstream statistics
	assert.Equal(t, fromSingle, fromBatch)
}

func TestGetPriceHistoryMissingAdjClose(t *testing.T) {
	repo := newTestRepo(t, serveBody(http.StatusOK, missingAdjCloseBody))

	_, err := repo.GetPriceHistory(context.Background(), "AAPL")
	assert.ErrorIs(t, err, dto.ErrDataUnavailable)
}

func TestGetPriceHistoryDropsMissingRows(t *testing.T) {
	repo := newTestRepo(t, serveBody(http.StatusOK, sparseBody))

	series, err := repo.GetPriceHistory(context.Background(), "AAPL")
	require.NoError(t, err)

	require.Len(t, series.Points, 2)
	assert.InDelta(t, 100, series.Points[0].AdjClose, 1e-9)
	assert.InDelta(t, 120, series.Points[1].AdjClose, 1e-9)
}

func TestGetPriceHistoryUnknownTicker(t *testing.T) {
	repo := newTestRepo(t, serveBody(http.StatusNotFound, notFoundBody))

	_, err := repo.GetPriceHistory(context.Background(), "NOPE")
	assert.ErrorIs(t, err, dto.ErrDataUnavailable)
}

func TestGetPriceHistoryChartError(t *testing.T) {
	repo := newTestRepo(t, serveBody(http.StatusOK, notFoundBody))

	_, err := repo.GetPriceHistory(context.Background(), "NOPE")
	assert.ErrorIs(t, err, dto.ErrDataUnavailable)
}

func TestCleanPricePointsCollapsesDuplicateDates(t *testing.T) {
	result := &dto.YahooChartResult{}
	// second timestamp is the same trading day, four hours later
	result.Timestamp = []int64{1577836800, 1577851200, 1577923200}
	result.Indicators.AdjClose = []struct {
		AdjClose []float64 `json:"adjclose"`
	}{
		{AdjClose: []float64{100, 102, 110}},
	}

	points := cleanPricePoints(result)

	require.Len(t, points, 2)
	assert.InDelta(t, 102, points[0].AdjClose, 1e-9)
	assert.InDelta(t, 110, points[1].AdjClose, 1e-9)
}
