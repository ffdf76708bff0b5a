package service

import (
	"math"

	"invest-assistant/internal/dto"
	"invest-assistant/pkg/common"
	"invest-assistant/pkg/utils"
)

// riskFreeRate is fixed at zero for Sharpe and Sortino. Not
// user-configurable.
const riskFreeRate = 0.0

// buildReturnSeries derives daily and cumulative compounded returns
// from a cleaned price series. The first observation carries no return
// and is dropped, so N prices yield N-1 entries. Requires len >= 2.
func buildReturnSeries(points []dto.PricePoint) []dto.ReturnPoint {
	returns := make([]dto.ReturnPoint, 0, len(points)-1)
	cumulative := 1.0
	for i := 1; i < len(points); i++ {
		daily := points[i].AdjClose/points[i-1].AdjClose - 1
		cumulative *= 1 + daily
		returns = append(returns, dto.ReturnPoint{
			Date:             points[i].Date,
			AdjClose:         points[i].AdjClose,
			DailyReturn:      daily,
			CumulativeReturn: cumulative - 1,
		})
	}
	return returns
}

// summarize computes the performance statistics for a filtered price
// series. The compounding baseline is the first retained price
// observation; the reported start date is the return series' first
// entry, one trading day later.
func summarize(ticker string, points []dto.PricePoint) (dto.PerformanceSummary, []dto.ReturnPoint) {
	returns := buildReturnSeries(points)

	first := points[0]
	last := points[len(points)-1]
	years := last.Date.Sub(first.Date).Hours() / 24 / common.DaysPerYear

	cumulative := last.AdjClose/first.AdjClose - 1
	cagr := math.Pow(last.AdjClose/first.AdjClose, 1/years) - 1

	dailyReturns := make([]float64, len(returns))
	downside := make([]float64, len(returns))
	for i, r := range returns {
		dailyReturns[i] = r.DailyReturn
		downside[i] = math.Min(r.DailyReturn, 0)
	}

	annualFactor := math.Sqrt(common.TradingDaysPerYear)
	volatility := sampleStdev(dailyReturns) * annualFactor
	downsideDev := sampleStdev(downside) * annualFactor

	var sharpe, sortino *float64
	if volatility > 0 {
		sharpe = utils.ToPointer((cagr - riskFreeRate) / volatility)
	}
	if downsideDev > 0 {
		sortino = utils.ToPointer((cagr - riskFreeRate) / downsideDev)
	}

	summary := dto.PerformanceSummary{
		Ticker:                  ticker,
		StartDate:               returns[0].Date,
		EndDate:                 last.Date,
		Years:                   years,
		CumulativeReturnPct:     cumulative * 100,
		AnnualizedReturnPct:     cagr * 100,
		AnnualizedVolatilityPct: volatility * 100,
		Sharpe:                  sharpe,
		Sortino:                 sortino,
	}
	return summary, returns
}

// sampleStdev is the standard deviation with Bessel's correction
// (ddof=1). Returns 0 when fewer than two values are available.
func sampleStdev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)

	sumSq := 0.0
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(n-1))
}

// yearlySummary produces one row per calendar year of the return
// series, ascending: last trading date in the year, its adjusted
// close, the year's simple return, and the cumulative return as of
// that date.
func yearlySummary(returns []dto.ReturnPoint) []dto.YearlySummaryRow {
	var rows []dto.YearlySummaryRow
	var yearFirstClose float64
	for _, r := range returns {
		year := r.Date.Year()
		if len(rows) == 0 || rows[len(rows)-1].Year != year {
			yearFirstClose = r.AdjClose
			rows = append(rows, dto.YearlySummaryRow{Year: year})
		}

		row := &rows[len(rows)-1]
		row.EndDate = r.Date
		row.EndAdjClose = r.AdjClose
		row.AnnualReturnPct = (r.AdjClose/yearFirstClose - 1) * 100
		row.CumulativeReturnPct = r.CumulativeReturn * 100
	}
	return rows
}
