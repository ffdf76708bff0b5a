package dto

import "errors"

// Failure taxonomy of the metrics engine. All four are terminal for the
// request that raised them; nothing is retried internally.
var (
	// ErrInvalidDateFormat means a start or end date bound could not be
	// parsed as YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrDataUnavailable means the provider returned nothing usable for
	// the ticker: unknown symbol, no adjusted close, or no valid rows.
	ErrDataUnavailable = errors.New("no usable price data for ticker")

	// ErrEmptyRange means the date bounds left fewer than two usable
	// observations, so no return series can be derived.
	ErrEmptyRange = errors.New("no trading data in requested range")

	// ErrInsufficientReturn means the annualized return does not outpace
	// the assumed inflation, so no finite capital estimate exists.
	ErrInsufficientReturn = errors.New("annualized return does not exceed inflation")
)
