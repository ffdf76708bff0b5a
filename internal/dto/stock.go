package dto

import "time"

// PricePoint is one daily observation of the adjusted closing price.
type PricePoint struct {
	Date     time.Time `json:"date"`
	AdjClose float64   `json:"adj_close"`
}

// PriceSeries is the full cleaned history for one ticker, ascending by
// date with no duplicate dates and no missing adjusted closes.
type PriceSeries struct {
	Ticker string       `json:"ticker"`
	Points []PricePoint `json:"points"`
}

// Yahoo Finance chart API response. A batch request carries one result
// block per ticker; single requests carry exactly one.
type YahooChartResponse struct {
	Chart struct {
		Result []YahooChartResult `json:"result"`
		Error  *YahooChartError   `json:"error"`
	} `json:"chart"`
}

type YahooChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type YahooChartResult struct {
	Meta struct {
		Symbol             string  `json:"symbol"`
		RegularMarketPrice float64 `json:"regularMarketPrice"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Open   []float64 `json:"open"`
			High   []float64 `json:"high"`
			Low    []float64 `json:"low"`
			Close  []float64 `json:"close"`
			Volume []int64   `json:"volume"`
		} `json:"quote"`
		AdjClose []struct {
			AdjClose []float64 `json:"adjclose"`
		} `json:"adjclose"`
	} `json:"indicators"`
}
