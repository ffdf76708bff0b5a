package dto

import "time"

// ReturnPoint pairs a trading date with its simple daily return and the
// cumulative compounded return since the first retained observation.
type ReturnPoint struct {
	Date             time.Time `json:"date"`
	AdjClose         float64   `json:"adj_close"`
	DailyReturn      float64   `json:"daily_return"`
	CumulativeReturn float64   `json:"cumulative_return"`
}

// PerformanceSummary holds the descriptive statistics for one query.
// Sharpe is nil when volatility is zero and Sortino is nil when
// downside deviation is zero; an undefined ratio is not an error.
type PerformanceSummary struct {
	Ticker                  string    `json:"ticker"`
	StartDate               time.Time `json:"start_date"`
	EndDate                 time.Time `json:"end_date"`
	Years                   float64   `json:"years"`
	CumulativeReturnPct     float64   `json:"cumulative_return_pct"`
	AnnualizedReturnPct     float64   `json:"annualized_return_pct"`
	AnnualizedVolatilityPct float64   `json:"annualized_volatility_pct"`
	Sharpe                  *float64  `json:"sharpe"`
	Sortino                 *float64  `json:"sortino"`
}

// YearlySummaryRow is one calendar-year line of the retirement table.
type YearlySummaryRow struct {
	Year                int       `json:"year"`
	EndDate             time.Time `json:"end_date"`
	EndAdjClose         float64   `json:"end_adj_close"`
	AnnualReturnPct     float64   `json:"annual_return_pct"`
	CumulativeReturnPct float64   `json:"cumulative_return_pct"`
}

// ChartPoint is a (date, value) pair ready for plotting.
type ChartPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type AnalyzeRequest struct {
	Symbol    string `json:"symbol" validate:"required"`
	Market    string `json:"market"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type AnalyzeResponse struct {
	Summary PerformanceSummary `json:"summary"`
	// Series is the cumulative return in percent per trading date.
	Series []ChartPoint `json:"series"`
}

type RetirementRequest struct {
	Symbol           string  `json:"symbol" validate:"required"`
	Market           string  `json:"market"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	AnnualExpense    float64 `json:"annual_expense" validate:"required,gt=0"`
	InflationRatePct float64 `json:"inflation_rate_pct" validate:"gte=0"`
}

type RetirementResponse struct {
	Summary               PerformanceSummary `json:"summary"`
	InflationRatePct      float64            `json:"inflation_rate_pct"`
	RealWithdrawalRatePct float64            `json:"real_withdrawal_rate_pct"`
	AnnualExpense         float64            `json:"annual_expense"`
	RequiredCapital       float64            `json:"required_capital"`
	YearlySummary         []YearlySummaryRow `json:"yearly_summary"`
	// Series is the adjusted close per trading date.
	Series []ChartPoint `json:"series"`
}
