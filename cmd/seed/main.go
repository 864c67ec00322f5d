package main

import (
	"bufio"
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/zhukovvlad/buildprice-go/cmd/internal/config"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/db/migration"
	db "github.com/zhukovvlad/buildprice-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/services/seeding"
	"github.com/zhukovvlad/buildprice-go/cmd/pkg/logging"

	_ "github.com/lib/pq"
)

func main() {
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "seed генератора цен")
	dryRun := flag.Bool("dry-run", false, "только посчитать, ничего не записывать")
	yes := flag.Bool("yes", false, "не спрашивать подтверждение")
	flag.Parse()

	logger := logging.GetLogger()
	logger.Info("Seed Demo Catalog Tool")

	// Загружаем .env файл
	if err := godotenv.Load(); err != nil {
		logger.Warnf("Warning: error loading .env file: %v", err)
	}

	cfg := config.GetConfig()

	dataset := seeding.DemoDataset()
	opts := seeding.DefaultPriceOptions(time.Now(), *seed)
	opts.LocalCountry = cfg.Quote.LocalCountryCode
	opts.LocalCurrency = cfg.Quote.LocalCurrency
	opts.BaseCurrency = cfg.Quote.BaseCurrency

	if *dryRun {
		report := seeding.Plan(dataset, opts)
		logger.Infof("Dry run (seed %d): %d материалов, %d поставщиков, %d точек, %d цен",
			*seed, report.Materials, report.Suppliers, report.Locations, report.PricesGenerated)
		return
	}

	// Подключение к базе данных
	conn, err := sql.Open(cfg.Database.Driver, cfg.Database.Source)
	if err != nil {
		logger.Fatalf("error connecting to database: %v", err)
	}
	defer conn.Close()

	if err = conn.Ping(); err != nil {
		logger.Fatalf("error pinging database: %v", err)
	}

	logger.Info("Database connection established")

	if !*yes && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Printf("Seed demo catalog into %s? [y/N]: ", redactSource(cfg.Database.Source))
		answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			logger.Fatalf("failed to read answer: %v", err)
		}
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			logger.Info("Aborted")
			return
		}
	}

	if err := migration.Up(conn); err != nil {
		logger.Fatalf("error applying migrations: %v", err)
	}

	store := db.NewStore(conn)
	report, err := seeding.NewSeeder(store, logger).Run(context.Background(), dataset, opts)
	if err != nil {
		logger.Fatalf("failed to seed catalog: %v", err)
	}

	logger.Infof("✓ Demo catalog seeded (seed %d)", *seed)
	logger.Infof("  Materials: %d", report.Materials)
	logger.Infof("  Suppliers: %d", report.Suppliers)
	logger.Infof("  Locations: %d", report.Locations)
	logger.Infof("  Prices: %d inserted, %d already present", report.PricesInserted, report.PricesSkipped)
}

// redactSource прячет пароль в DSN для вопроса в терминале.
func redactSource(source string) string {
	at := strings.LastIndex(source, "@")
	scheme := strings.Index(source, "://")
	if at < 0 || scheme < 0 || at < scheme {
		return source
	}
	return source[:scheme+3] + "***" + source[at:]
}
