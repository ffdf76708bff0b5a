package model

import (
	"time"

	"gorm.io/datatypes"
)

// PerformanceReport is one persisted analysis run. Sharpe and Sortino
// are nullable because either ratio can be undefined for a range.
type PerformanceReport struct {
	ID                      uint           `gorm:"primarykey"`
	Ticker                  string         `gorm:"not null;index"`
	Market                  string         `gorm:"not null"`
	StartDate               time.Time      `gorm:"not null"`
	EndDate                 time.Time      `gorm:"not null"`
	Years                   float64        `gorm:"not null"`
	CumulativeReturnPct     float64        `gorm:"not null"`
	AnnualizedReturnPct     float64        `gorm:"not null"`
	AnnualizedVolatilityPct float64        `gorm:"not null"`
	Sharpe                  *float64       `gorm:"null"`
	Sortino                 *float64       `gorm:"null"`
	Series                  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt               time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt               time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PerformanceReport) TableName() string {
	return "performance_reports"
}

type GetPerformanceReportsParam struct {
	Ticker string
	Limit  int
}
