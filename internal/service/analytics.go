package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"invest-assistant/config"
	"invest-assistant/internal/dto"
	"invest-assistant/internal/model"
	"invest-assistant/internal/repository"
	"invest-assistant/pkg/cache"
	"invest-assistant/pkg/common"
	"invest-assistant/pkg/logger"
	"invest-assistant/pkg/utils"
)

type AnalyticsService interface {
	Analyze(ctx context.Context, req dto.AnalyzeRequest) (*dto.AnalyzeResponse, error)
	EstimateRetirement(ctx context.Context, req dto.RetirementRequest) (*dto.RetirementResponse, error)
	GetReports(ctx context.Context, param model.GetPerformanceReportsParam) ([]model.PerformanceReport, error)
}

type analyticsService struct {
	cfg           *config.Config
	log           *logger.Logger
	yahooRepo     repository.YahooFinanceRepository
	reportRepo    repository.PerformanceReportRepository
	inmemoryCache cache.Cache
}

func NewAnalyticsService(
	cfg *config.Config,
	log *logger.Logger,
	yahooRepo repository.YahooFinanceRepository,
	reportRepo repository.PerformanceReportRepository,
	inmemoryCache cache.Cache,
) AnalyticsService {
	return &analyticsService{
		cfg:           cfg,
		log:           log,
		yahooRepo:     yahooRepo,
		reportRepo:    reportRepo,
		inmemoryCache: inmemoryCache,
	}
}

// analysisResult carries everything one query derives; the delivery
// layer shapes it into whichever response it needs.
type analysisResult struct {
	summary dto.PerformanceSummary
	returns []dto.ReturnPoint
}

func (s *analyticsService) Analyze(ctx context.Context, req dto.AnalyzeRequest) (*dto.AnalyzeResponse, error) {
	result, err := s.analyze(ctx, req.Symbol, req.Market, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	series := make([]dto.ChartPoint, len(result.returns))
	for i, r := range result.returns {
		series[i] = dto.ChartPoint{Date: utils.FormatDate(r.Date), Value: r.CumulativeReturn * 100}
	}

	s.persistReport(ctx, req.Market, result.summary, series)

	return &dto.AnalyzeResponse{Summary: result.summary, Series: series}, nil
}

func (s *analyticsService) EstimateRetirement(ctx context.Context, req dto.RetirementRequest) (*dto.RetirementResponse, error) {
	result, err := s.analyze(ctx, req.Symbol, req.Market, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	inflation := req.InflationRatePct / 100
	realRate, capital, err := retirementEstimate(result.summary.AnnualizedReturnPct/100, inflation, req.AnnualExpense)
	if err != nil {
		return nil, err
	}

	series := make([]dto.ChartPoint, len(result.returns))
	for i, r := range result.returns {
		series[i] = dto.ChartPoint{Date: utils.FormatDate(r.Date), Value: r.AdjClose}
	}

	s.persistReport(ctx, req.Market, result.summary, series)

	return &dto.RetirementResponse{
		Summary:               result.summary,
		InflationRatePct:      req.InflationRatePct,
		RealWithdrawalRatePct: realRate * 100,
		AnnualExpense:         req.AnnualExpense,
		RequiredCapital:       capital,
		YearlySummary:         yearlySummary(result.returns),
		Series:                series,
	}, nil
}

func (s *analyticsService) GetReports(ctx context.Context, param model.GetPerformanceReportsParam) ([]model.PerformanceReport, error) {
	if s.reportRepo == nil {
		return nil, nil
	}
	return s.reportRepo.Find(ctx, param)
}

// analyze runs the full pipeline: normalize the ticker, load (or
// reuse) the provider history, apply the date window, compute.
func (s *analyticsService) analyze(ctx context.Context, symbol, market, startDate, endDate string) (*analysisResult, error) {
	ticker := NormalizeTicker(symbol, market)

	series, err := s.loadSeries(ctx, ticker)
	if err != nil {
		return nil, err
	}

	points, err := filterRange(series.Points, startDate, endDate)
	if err != nil {
		return nil, err
	}

	summary, returns := summarize(ticker, points)

	s.log.InfoContext(ctx, "Computed performance summary",
		logger.StringField("ticker", ticker),
		logger.TimeField("start", summary.StartDate),
		logger.TimeField("end", summary.EndDate),
		logger.Float64Field("annualized_return_pct", summary.AnnualizedReturnPct),
	)

	return &analysisResult{summary: summary, returns: returns}, nil
}

// loadSeries fetches the ticker's full history, serving repeat queries
// from the in-memory cache inside the configured TTL.
func (s *analyticsService) loadSeries(ctx context.Context, ticker string) (*dto.PriceSeries, error) {
	key := fmt.Sprintf(common.KEY_PRICE_HISTORY, ticker)
	if cached, found := s.inmemoryCache.Get(key); found {
		if series, ok := cached.(*dto.PriceSeries); ok {
			return series, nil
		}
	}

	series, err := s.yahooRepo.GetPriceHistory(ctx, ticker)
	if err != nil {
		return nil, err
	}

	s.inmemoryCache.Set(key, series, s.cfg.Cache.DefaultExpiration)
	return series, nil
}

// filterRange applies inclusive date bounds. Empty bound strings mean
// unbounded. Fewer than two surviving observations cannot produce a
// return series and fail as an empty range.
func filterRange(points []dto.PricePoint, startDate, endDate string) ([]dto.PricePoint, error) {
	start, end, err := parseBounds(startDate, endDate)
	if err != nil {
		return nil, err
	}

	lo := 0
	for lo < len(points) && !start.IsZero() && points[lo].Date.Before(start) {
		lo++
	}
	hi := len(points)
	for hi > lo && !end.IsZero() && points[hi-1].Date.After(end) {
		hi--
	}

	if hi-lo < 2 {
		return nil, fmt.Errorf("%w: %d observation(s) between %q and %q",
			dto.ErrEmptyRange, hi-lo, startDate, endDate)
	}
	return points[lo:hi], nil
}

func parseBounds(startDate, endDate string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if startDate != "" {
		if start, err = utils.ParseDate(startDate); err != nil {
			return start, end, fmt.Errorf("%w: start date %q", dto.ErrInvalidDateFormat, startDate)
		}
	}
	if endDate != "" {
		if end, err = utils.ParseDate(endDate); err != nil {
			return start, end, fmt.Errorf("%w: end date %q", dto.ErrInvalidDateFormat, endDate)
		}
	}
	return start, end, nil
}

// persistReport records a successful analysis. Saving is best effort:
// a storage failure is logged and never fails the request. reportRepo
// is nil for one-shot CLI runs.
func (s *analyticsService) persistReport(ctx context.Context, market string, summary dto.PerformanceSummary, series []dto.ChartPoint) {
	if s.reportRepo == nil {
		return
	}

	seriesJSON, err := json.Marshal(series)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to marshal chart series", logger.ErrorField(err))
		return
	}

	report := &model.PerformanceReport{
		Ticker:                  summary.Ticker,
		Market:                  market,
		StartDate:               summary.StartDate,
		EndDate:                 summary.EndDate,
		Years:                   summary.Years,
		CumulativeReturnPct:     summary.CumulativeReturnPct,
		AnnualizedReturnPct:     summary.AnnualizedReturnPct,
		AnnualizedVolatilityPct: summary.AnnualizedVolatilityPct,
		Sharpe:                  summary.Sharpe,
		Sortino:                 summary.Sortino,
		Series:                  seriesJSON,
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		s.log.ErrorContext(ctx, "Failed to persist performance report",
			logger.StringField("ticker", summary.Ticker),
			logger.ErrorField(err),
		)
	}
}
