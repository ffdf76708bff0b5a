package repository

import (
	"invest-assistant/config"
	"invest-assistant/pkg/logger"

	"gorm.io/gorm"
)

type Repository struct {
	YahooFinanceRepo      YahooFinanceRepository
	PerformanceReportRepo PerformanceReportRepository
}

// NewRepository wires all repositories. db may be nil for one-shot CLI
// runs, in which case the report repository is left unset.
func NewRepository(cfg *config.Config, db *gorm.DB, log *logger.Logger) *Repository {
	repo := &Repository{
		YahooFinanceRepo: NewYahooFinanceRepository(cfg, log),
	}
	if db != nil {
		repo.PerformanceReportRepo = NewPerformanceReportRepository(db)
	}
	return repo
}
