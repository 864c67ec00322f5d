package main

import (
	"database/sql"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/zhukovvlad/buildprice-go/cmd/internal/config"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/db/migration"
	db "github.com/zhukovvlad/buildprice-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/metrics"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/quote"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/server"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/services/catalog"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/services/pricing"
	"github.com/zhukovvlad/buildprice-go/cmd/pkg/logging"

	_ "github.com/lib/pq"
)

func main() {
	logger := logging.GetLogger()
	logger.Info("Starting BuildPrice API...")

	// .env необязателен: в контейнере все приходит через окружение
	if err := godotenv.Load(); err != nil {
		logger.Warnf("error loading .env file: %v", err)
	}

	cfg := config.GetConfig()
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		logger.Warnf("unknown log_level %q, keeping default: %v", cfg.LogLevel, err)
	}

	conn, err := sql.Open(cfg.Database.Driver, cfg.Database.Source)
	if err != nil {
		logger.Fatalf("error connecting to database: %v", err)
	}
	defer conn.Close()

	if err = conn.Ping(); err != nil {
		logger.Fatalf("error pinging database: %v", err)
	}

	logger.Info("Database connection established")

	if cfg.Database.AutoMigrate {
		if err := migration.Up(conn); err != nil {
			logger.Fatalf("error applying migrations: %v", err)
		}
		version, _ := migration.Version(conn)
		logger.Infof("Database schema at version %d", version)
	}

	settings, err := cfg.Quote.EngineSettings()
	if err != nil {
		logger.Fatalf("invalid quote configuration: %v", err)
	}
	engine, err := quote.NewEngine(settings)
	if err != nil {
		logger.Fatalf("error creating quote engine: %v", err)
	}
	logger.Infof("Quote engine: local=%s base=%s/%s parity=%s",
		settings.LocalCountryCode, settings.BaseCurrency, settings.LocalCurrency, settings.ExchangeParity)

	var registry *metrics.Registry
	if cfg.Metrics.Enabled {
		registry = metrics.NewRegistry()
	}

	store := db.NewStore(conn)
	catalogService := catalog.NewCatalogService(store, logger)
	pricingService := pricing.NewPricingService(store, engine, registry, logger)
	server := server.NewServer(logger, catalogService, pricingService, registry, cfg)

	serverAddress := fmt.Sprintf("%s:%s", cfg.Listen.BindIP, cfg.Listen.Port)
	logger.Infof("Starting server on %s", serverAddress)

	err = server.Start(serverAddress)
	if err != nil {
		logger.Fatalf("error starting server: %v", err)
	}
}
