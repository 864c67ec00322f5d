//go:build integration

package seeding

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhukovvlad/buildprice-go/cmd/internal/api_models"
	db "github.com/zhukovvlad/buildprice-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/quote"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/services/pricing"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/testutil"
	"github.com/zhukovvlad/buildprice-go/cmd/pkg/logging"
)

func TestSeeder_Integration(t *testing.T) {
	conn, container, err := testutil.SetupTestDatabase(t)
	require.NoError(t, err)
	defer testutil.TeardownTestDatabase(t, conn, container)
	require.NoError(t, testutil.RunMigrations(t, conn))

	ctx := context.Background()
	store := db.NewStore(conn)
	logger := logging.GetLogger()
	opts := DefaultPriceOptions(time.Now(), 42)
	ds := DemoDataset()

	t.Run("первый запуск загружает весь каталог", func(t *testing.T) {
		report, err := NewSeeder(store, logger).Run(ctx, ds, opts)
		require.NoError(t, err)

		assert.Equal(t, 21, report.Materials)
		assert.Equal(t, 8, report.Suppliers)
		assert.Equal(t, 10, report.Locations)
		assert.Equal(t, int64(report.PricesGenerated), report.PricesInserted)

		stats, err := store.GetCatalogStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(21), stats.MaterialCount)
		assert.Equal(t, int64(report.PricesGenerated), stats.PriceCount)
	})

	t.Run("повторный запуск ничего не дублирует", func(t *testing.T) {
		report, err := NewSeeder(store, logger).Run(ctx, ds, opts)
		require.NoError(t, err)
		assert.Zero(t, report.PricesInserted)
		assert.Equal(t, int64(report.PricesGenerated), report.PricesSkipped)
	})

	t.Run("котировка по загруженному каталогу", func(t *testing.T) {
		cement, err := store.GetMaterialByName(ctx, ds.Materials[0].Name)
		require.NoError(t, err)

		engine, err := quote.NewEngine(quote.DefaultSettings())
		require.NoError(t, err)
		svc := pricing.NewPricingService(store, engine, nil, logger)

		result, err := svc.CalculateQuote(ctx, api_models.QuoteRequest{Items: []api_models.QuoteItemRequest{
			{MaterialID: cement.ID.String(), Quantity: decimal.NewFromInt(10)},
		}})
		require.NoError(t, err)
		require.Len(t, result.Options, 3)

		for _, plan := range result.Options {
			assert.Equal(t, quote.CoverageComplete, plan.Coverage, plan.Name)
			assert.True(t, plan.Total.IsPositive(), plan.Name)
		}
		single, _ := result.Plan(quote.StrategySingleSupplier)
		mix, _ := result.Plan(quote.StrategyOptimizedMix)
		assert.True(t, mix.Total.LessThanOrEqual(single.Total))
	})

	require.NoError(t, testutil.CleanupTables(t, conn))
}
