package service

import (
	"fmt"

	"invest-assistant/internal/dto"
)

// retirementEstimate sizes the capital whose real withdrawals cover an
// annual expense: capital = expense / (annualized return - inflation).
// Rates are fractions, not percentages. A real rate at or below zero
// means growth never outpaces inflation and no finite estimate exists.
func retirementEstimate(annualizedReturn, inflationRate, annualExpense float64) (realRate, requiredCapital float64, err error) {
	realRate = annualizedReturn - inflationRate
	if realRate <= 0 {
		return realRate, 0, fmt.Errorf("%w: real withdrawal rate %.4f", dto.ErrInsufficientReturn, realRate)
	}
	return realRate, annualExpense / realRate, nil
}
