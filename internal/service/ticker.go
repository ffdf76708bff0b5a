package service

import (
	"strings"

	"invest-assistant/pkg/common"
)

var marketSuffixes = map[string]string{
	common.MARKET_TAIWAN: ".TW",
	common.MARKET_JAPAN:  ".T",
	common.MARKET_UK:     ".L",
}

// NormalizeTicker turns a raw user-entered symbol into the
// provider-specific ticker. The US market uses the bare symbol; an
// unrecognized market falls through to no suffix as well.
func NormalizeTicker(raw, market string) string {
	symbol := strings.ToUpper(strings.TrimSpace(raw))
	if market == common.MARKET_US {
		return symbol
	}
	return symbol + marketSuffixes[market]
}
