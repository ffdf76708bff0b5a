package common

const (
	KEY_PRICE_HISTORY = "price_history:%s"
)

const (
	MARKET_US     = "US"
	MARKET_TAIWAN = "TW"
	MARKET_JAPAN  = "JP"
	MARKET_UK     = "UK"
)

func GetMarketList() []string {
	return []string{
		MARKET_US,
		MARKET_TAIWAN,
		MARKET_JAPAN,
		MARKET_UK,
	}
}

// TradingDaysPerYear is the annualization base for daily return series.
const TradingDaysPerYear = 252

// DaysPerYear converts calendar-day spans to fractional years.
const DaysPerYear = 365.25
