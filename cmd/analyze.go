package cmd

import (
	"context"
	"fmt"
	"log"

	"invest-assistant/config"
	"invest-assistant/internal/dto"
	"invest-assistant/internal/repository"
	"invest-assistant/internal/service"
	"invest-assistant/pkg/cache"
	"invest-assistant/pkg/common"
	"invest-assistant/pkg/logger"
	"invest-assistant/pkg/utils"

	"github.com/spf13/cobra"
)

var (
	analyzeMarket    string
	analyzeStart     string
	analyzeEnd       string
	analyzeExpense   float64
	analyzeInflation float64
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <symbol>",
	Short: "Fetch a ticker's history and print its performance summary",
	Args:  cobra.ExactArgs(1),
	Run:   Analyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeMarket, "market", common.MARKET_US, "market of the symbol (US, TW, JP, UK)")
	analyzeCmd.Flags().StringVar(&analyzeStart, "start", "", "start date bound (YYYY-MM-DD)")
	analyzeCmd.Flags().StringVar(&analyzeEnd, "end", "", "end date bound (YYYY-MM-DD)")
	analyzeCmd.Flags().Float64Var(&analyzeExpense, "expense", 0, "annual expense for the retirement estimate")
	analyzeCmd.Flags().Float64Var(&analyzeInflation, "inflation", 0, "assumed inflation rate in percent")
}

// Analyze runs a one-shot query without the database; nothing is
// persisted.
func Analyze(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	repo := repository.NewRepository(cfg, nil, logg)
	analytics := service.NewAnalyticsService(cfg, logg, repo.YahooFinanceRepo, nil,
		cache.NewCache(cfg.Cache.DefaultExpiration, cfg.Cache.CleanupInterval))

	if analyzeExpense > 0 {
		result, err := analytics.EstimateRetirement(ctx, dto.RetirementRequest{
			Symbol:           args[0],
			Market:           analyzeMarket,
			StartDate:        analyzeStart,
			EndDate:          analyzeEnd,
			AnnualExpense:    analyzeExpense,
			InflationRatePct: analyzeInflation,
		})
		if err != nil {
			log.Fatalf("Retirement estimate failed: %v", err)
		}
		printSummary(result.Summary)
		fmt.Printf("Assumed inflation:    %s\n", utils.FormatPercentage(result.InflationRatePct))
		fmt.Printf("Real withdrawal rate: %s\n", utils.FormatPercentage(result.RealWithdrawalRatePct))
		fmt.Printf("Annual expense:       %s\n", utils.FormatMoney(result.AnnualExpense))
		fmt.Printf("Required capital:     %s\n", utils.FormatMoney(result.RequiredCapital))
		fmt.Println()
		fmt.Println("Year    End date     Adj close    Year return    Cumulative")
		for _, row := range result.YearlySummary {
			fmt.Printf("%-7d %-12s %-12.2f %-14s %s\n",
				row.Year,
				utils.FormatDate(row.EndDate),
				row.EndAdjClose,
				utils.FormatPercentage(row.AnnualReturnPct),
				utils.FormatPercentage(row.CumulativeReturnPct),
			)
		}
		return
	}

	result, err := analytics.Analyze(ctx, dto.AnalyzeRequest{
		Symbol:    args[0],
		Market:    analyzeMarket,
		StartDate: analyzeStart,
		EndDate:   analyzeEnd,
	})
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}
	printSummary(result.Summary)
}

func printSummary(s dto.PerformanceSummary) {
	fmt.Printf("Ticker:               %s\n", s.Ticker)
	fmt.Printf("Period:               %s -> %s (%.2f years)\n",
		utils.FormatDate(s.StartDate), utils.FormatDate(s.EndDate), s.Years)
	fmt.Printf("Cumulative return:    %s\n", utils.FormatPercentage(s.CumulativeReturnPct))
	fmt.Printf("Annualized return:    %s\n", utils.FormatPercentage(s.AnnualizedReturnPct))
	fmt.Printf("Annualized volatility: %s\n", utils.FormatPercentage(s.AnnualizedVolatilityPct))
	fmt.Printf("Sharpe ratio:         %s\n", formatRatio(s.Sharpe))
	fmt.Printf("Sortino ratio:        %s\n", formatRatio(s.Sortino))
}

func formatRatio(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *v)
}
