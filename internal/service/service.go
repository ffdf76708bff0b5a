package service

import (
	"invest-assistant/config"
	"invest-assistant/internal/repository"
	"invest-assistant/pkg/cache"
	"invest-assistant/pkg/logger"
)

type Service struct {
	AnalyticsService AnalyticsService
	WatchlistService *WatchlistService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
) *Service {
	analyticsService := NewAnalyticsService(cfg, log, repo.YahooFinanceRepo, repo.PerformanceReportRepo, inmemoryCache)
	watchlistService := NewWatchlistService(cfg, log, analyticsService)

	return &Service{
		AnalyticsService: analyticsService,
		WatchlistService: watchlistService,
	}
}
