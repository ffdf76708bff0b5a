package service

import (
	"context"

	"invest-assistant/config"
	"invest-assistant/internal/dto"
	"invest-assistant/pkg/logger"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// WatchlistService periodically recomputes and persists performance
// summaries for the configured watchlist symbols.
type WatchlistService struct {
	cfg       *config.Config
	log       *logger.Logger
	analytics AnalyticsService
	cron      *cron.Cron
}

func NewWatchlistService(cfg *config.Config, log *logger.Logger, analytics AnalyticsService) *WatchlistService {
	return &WatchlistService{
		cfg:       cfg,
		log:       log,
		analytics: analytics,
		cron:      cron.New(),
	}
}

func (s *WatchlistService) Start(ctx context.Context) error {
	if !s.cfg.Watchlist.Enabled || len(s.cfg.Watchlist.Symbols) == 0 {
		s.log.Info("Watchlist scheduler disabled")
		return nil
	}

	_, err := s.cron.AddFunc(s.cfg.Watchlist.CronExpression, func() {
		s.Sweep(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info("Watchlist scheduler started",
		logger.StringField("cron", s.cfg.Watchlist.CronExpression),
		logger.IntField("symbols", len(s.cfg.Watchlist.Symbols)),
	)
	return nil
}

func (s *WatchlistService) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.log.Info("Watchlist scheduler stopped")
}

// Sweep refreshes every watchlist entry, bounded by the configured
// concurrency. A failing symbol is logged and does not stop the rest.
func (s *WatchlistService) Sweep(ctx context.Context) {
	limit := s.cfg.Watchlist.MaxConcurrency
	if limit <= 0 {
		limit = 1
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, item := range s.cfg.Watchlist.Symbols {
		item := item
		g.Go(func() error {
			_, err := s.analytics.Analyze(gCtx, dto.AnalyzeRequest{
				Symbol: item.Symbol,
				Market: item.Market,
			})
			if err != nil {
				s.log.ErrorContext(gCtx, "Watchlist refresh failed",
					logger.StringField("symbol", item.Symbol),
					logger.StringField("market", item.Market),
					logger.ErrorField(err),
				)
			}
			return nil
		})
	}

	_ = g.Wait()
	s.log.InfoContext(ctx, "Watchlist sweep completed",
		logger.IntField("symbols", len(s.cfg.Watchlist.Symbols)),
	)
}
