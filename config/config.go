package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log          Logger             `mapstructure:"logger"`
	DB           Database           `mapstructure:"database"`
	API          API                `mapstructure:"api"`
	YahooFinance YahooFinanceConfig `mapstructure:"yahoo_finance"`
	Cache        Cache              `mapstructure:"cache"`
	Watchlist    Watchlist          `mapstructure:"watchlist"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type Database struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"name"`
	SSLMode         string `mapstructure:"ssl_mode"`
	TimeZone        string `mapstructure:"time_zone"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime string `mapstructure:"conn_max_lifetime"`
	LogLevel        string `mapstructure:"log_level"`
}

type API struct {
	Port               int     `mapstructure:"port"`
	RateLimitPerSecond float64 `mapstructure:"rate_limit_per_second"`
	RateLimitBurst     int     `mapstructure:"rate_limit_burst"`
}

type YahooFinanceConfig struct {
	BaseURL             string        `mapstructure:"base_url"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
}

type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

type Watchlist struct {
	Enabled        bool            `mapstructure:"enabled"`
	CronExpression string          `mapstructure:"cron_expression"`
	MaxConcurrency int             `mapstructure:"max_concurrency"`
	Symbols        []WatchlistItem `mapstructure:"symbols"`
}

type WatchlistItem struct {
	Symbol string `mapstructure:"symbol"`
	Market string `mapstructure:"market"`
}

func Load() (*Config, error) {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("api.port", 8080)
	viper.SetDefault("api.rate_limit_per_second", 10)
	viper.SetDefault("api.rate_limit_burst", 30)
	viper.SetDefault("yahoo_finance.base_url", "https://query1.finance.yahoo.com/v8/finance/chart")
	viper.SetDefault("yahoo_finance.timeout", 30*time.Second)
	viper.SetDefault("yahoo_finance.max_request_per_minute", 30)
	viper.SetDefault("cache.default_expiration", 15*time.Minute)
	viper.SetDefault("cache.cleanup_interval", 30*time.Minute)
	viper.SetDefault("watchlist.enabled", false)
	viper.SetDefault("watchlist.cron_expression", "0 18 * * 1-5")
	viper.SetDefault("watchlist.max_concurrency", 3)
}
