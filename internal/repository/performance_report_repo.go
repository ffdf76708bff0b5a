package repository

import (
	"context"

	"invest-assistant/internal/model"

	"gorm.io/gorm"
)

type PerformanceReportRepository interface {
	Create(ctx context.Context, report *model.PerformanceReport) error
	Find(ctx context.Context, param model.GetPerformanceReportsParam) ([]model.PerformanceReport, error)
}

type performanceReportRepository struct {
	db *gorm.DB
}

func NewPerformanceReportRepository(db *gorm.DB) PerformanceReportRepository {
	return &performanceReportRepository{db: db}
}

func (r *performanceReportRepository) Create(ctx context.Context, report *model.PerformanceReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *performanceReportRepository) Find(ctx context.Context, param model.GetPerformanceReportsParam) ([]model.PerformanceReport, error) {
	query := r.db.WithContext(ctx).Model(&model.PerformanceReport{})

	if param.Ticker != "" {
		query = query.Where("ticker = ?", param.Ticker)
	}

	limit := param.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var reports []model.PerformanceReport
	err := query.Order("created_at DESC").Limit(limit).Find(&reports).Error
	return reports, err
}
