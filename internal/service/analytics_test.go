package service

import (
	"context"
	"testing"
	"time"

	"invest-assistant/config"
	"invest-assistant/internal/dto"
	"invest-assistant/pkg/cache"
	"invest-assistant/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubYahooRepo struct {
	series *dto.PriceSeries
	err    error
	calls  int
}

func (s *stubYahooRepo) GetPriceHistory(ctx context.Context, ticker string) (*dto.PriceSeries, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &dto.PriceSeries{Ticker: ticker, Points: s.series.Points}, nil
}

func newTestService(repo *stubYahooRepo) AnalyticsService {
	cfg := &config.Config{}
	cfg.Cache.DefaultExpiration = time.Minute
	return NewAnalyticsService(cfg, logger.NewNop(), repo, nil,
		cache.NewCache(time.Minute, time.Minute))
}

func yearSpanSeries(ticker string) *dto.PriceSeries {
	// Ten monthly observations through 2020 with a dip in March.
	prices := []float64{100, 104, 96, 101, 105, 108, 107, 112, 115, 118}
	points := make([]dto.PricePoint, len(prices))
	for i, p := range prices {
		points[i] = dto.PricePoint{Date: day(2020, time.Month(i+1), 15), AdjClose: p}
	}
	return &dto.PriceSeries{Ticker: ticker, Points: points}
}

func TestAnalyze(t *testing.T) {
	repo := &stubYahooRepo{series: yearSpanSeries("AAA")}
	svc := newTestService(repo)

	resp, err := svc.Analyze(context.Background(), dto.AnalyzeRequest{Symbol: "aaa"})
	require.NoError(t, err)

	assert.Equal(t, "AAA", resp.Summary.Ticker)
	assert.Len(t, resp.Series, 9)
	assert.InDelta(t, 18.0, resp.Summary.CumulativeReturnPct, 1e-6)
	assert.Equal(t, day(2020, time.February, 15), resp.Summary.StartDate)
	assert.Equal(t, day(2020, time.October, 15), resp.Summary.EndDate)
}

func TestAnalyzeUsesCache(t *testing.T) {
	repo := &stubYahooRepo{series: yearSpanSeries("BBB")}
	svc := newTestService(repo)

	_, err := svc.Analyze(context.Background(), dto.AnalyzeRequest{Symbol: "BBB"})
	require.NoError(t, err)
	_, err = svc.Analyze(context.Background(), dto.AnalyzeRequest{Symbol: "BBB"})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
}

func TestAnalyzeDateFiltering(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
		wantErr   error
	}{
		{
			name:      "start after end",
			startDate: "2020-09-01",
			endDate:   "2020-02-01",
			wantErr:   dto.ErrEmptyRange,
		},
		{
			name:      "window after last trading day",
			startDate: "2021-01-01",
			wantErr:   dto.ErrEmptyRange,
		},
		{
			name:      "window keeps a single observation",
			startDate: "2020-10-01",
			wantErr:   dto.ErrEmptyRange,
		},
		{
			name:      "unparseable start date",
			startDate: "01/02/2020",
			wantErr:   dto.ErrInvalidDateFormat,
		},
		{
			name:    "unparseable end date",
			endDate: "2020-13-45",
			wantErr: dto.ErrInvalidDateFormat,
		},
		{
			name:      "valid sub-range",
			startDate: "2020-03-01",
			endDate:   "2020-08-31",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubYahooRepo{series: yearSpanSeries("CCC")}
			svc := newTestService(repo)

			resp, err := svc.Analyze(context.Background(), dto.AnalyzeRequest{
				Symbol:    "CCC",
				StartDate: tt.startDate,
				EndDate:   tt.endDate,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			// March through August keeps 6 points, so 5 returns.
			assert.Len(t, resp.Series, 5)
			assert.InDelta(t, (112.0/96.0-1)*100, resp.Summary.CumulativeReturnPct, 1e-6)
		})
	}
}

func TestAnalyzePropagatesProviderFailure(t *testing.T) {
	repo := &stubYahooRepo{err: dto.ErrDataUnavailable}
	svc := newTestService(repo)

	_, err := svc.Analyze(context.Background(), dto.AnalyzeRequest{Symbol: "DDD"})
	assert.ErrorIs(t, err, dto.ErrDataUnavailable)
}

func TestEstimateRetirement(t *testing.T) {
	repo := &stubYahooRepo{series: yearSpanSeries("EEE")}
	svc := newTestService(repo)

	resp, err := svc.EstimateRetirement(context.Background(), dto.RetirementRequest{
		Symbol:           "EEE",
		AnnualExpense:    40000,
		InflationRatePct: 2,
	})
	require.NoError(t, err)

	wantRate := resp.Summary.AnnualizedReturnPct - 2
	assert.InDelta(t, wantRate, resp.RealWithdrawalRatePct, 1e-9)
	assert.InDelta(t, 40000/(wantRate/100), resp.RequiredCapital, 1e-6)
	require.Len(t, resp.YearlySummary, 1)
	assert.Equal(t, 2020, resp.YearlySummary[0].Year)
	// retirement chart plots the adjusted close, not cumulative return
	assert.InDelta(t, 118.0, resp.Series[len(resp.Series)-1].Value, 1e-9)
}

func TestEstimateRetirementInsufficientReturn(t *testing.T) {
	repo := &stubYahooRepo{series: yearSpanSeries("FFF")}
	svc := newTestService(repo)

	_, err := svc.EstimateRetirement(context.Background(), dto.RetirementRequest{
		Symbol:           "FFF",
		AnnualExpense:    40000,
		InflationRatePct: 99,
	})
	assert.ErrorIs(t, err, dto.ErrInsufficientReturn)
}
