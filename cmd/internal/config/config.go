package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/shopspring/decimal"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/quote"
	"github.com/zhukovvlad/buildprice-go/cmd/pkg/logging"
)

const defaultConfigPath = "./cmd/config/config.yml"

type DatabaseConfig struct {
	Driver      string `yaml:"driver" env:"DB_DRIVER" env-default:"postgres"`
	Source      string `yaml:"source" env:"DB_SOURCE" env-required:"true"`
	AutoMigrate bool   `yaml:"auto_migrate" env:"DB_AUTO_MIGRATE" env-default:"true"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:","`
}

// RateLimitConfig ограничивает расчет и экспорт котировок.
type RateLimitConfig struct {
	RequestsPerSecond int `yaml:"requests_per_second" env-default:"20"`
	Burst             int `yaml:"burst" env-default:"40"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
}

// QuoteConfig - юрисдикция и валюты движка расчета.
type QuoteConfig struct {
	LocalCountryCode string `yaml:"local_country_code" env:"QUOTE_LOCAL_COUNTRY" env-default:"SZ"`
	LocalRegionName  string `yaml:"local_region_name" env-default:"Eswatini"`
	BaseCurrency     string `yaml:"base_currency" env:"QUOTE_BASE_CURRENCY" env-default:"ZAR"`
	LocalCurrency    string `yaml:"local_currency" env:"QUOTE_LOCAL_CURRENCY" env-default:"SZL"`
	// Паритет используется только для сравнения итогов, суммы не конвертируются
	ExchangeParity string `yaml:"exchange_parity" env:"QUOTE_EXCHANGE_PARITY" env-default:"1"`
}

type Config struct {
	IsDebug  *bool  `yaml:"is_debug" env:"IS_DEBUG" env-required:"true"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	Listen   struct {
		Type   string `yaml:"type" env-default:"port"`
		BindIP string `yaml:"bind_ip" env:"BIND_IP" env-default:"127.0.0.1"`
		Port   string `yaml:"port" env:"PORT" env-default:"8080"`
	} `yaml:"listen"`
	Database  DatabaseConfig  `yaml:"database"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Quote     QuoteConfig     `yaml:"quote"`
}

// EngineSettings переводит секцию quote в настройки движка.
func (q QuoteConfig) EngineSettings() (quote.Settings, error) {
	parity, err := decimal.NewFromString(q.ExchangeParity)
	if err != nil {
		return quote.Settings{}, fmt.Errorf("некорректный quote.exchange_parity %q: %w", q.ExchangeParity, err)
	}
	settings := quote.Settings{
		LocalCountryCode: q.LocalCountryCode,
		LocalRegionName:  q.LocalRegionName,
		BaseCurrency:     q.BaseCurrency,
		LocalCurrency:    q.LocalCurrency,
		ExchangeParity:   parity,
	}
	if err := settings.Validate(); err != nil {
		return quote.Settings{}, err
	}
	return settings, nil
}

// Load читает конфигурацию из файла и переменных окружения.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

var instance *Config
var once sync.Once

func GetConfig() *Config {
	once.Do(func() {
		logger := logging.GetLogger()
		logger.Info("read application configuration")

		path := os.Getenv("CONFIG_PATH")
		if path == "" {
			path = defaultConfigPath
		}

		cfg, err := Load(path)
		if err != nil {
			help, _ := cleanenv.GetDescription(&Config{}, nil)
			logger.Info(help)
			logger.Fatal(err)
		}
		instance = cfg
	})

	return instance
}
