package seeding

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	db "github.com/zhukovvlad/buildprice-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/util"
)

// PriceOptions управляет генерацией цен.
type PriceOptions struct {
	// Now обрезается до суток (UTC): повторный запуск в тот же день
	// с тем же Seed дает те же подписи и ничего не дублирует.
	Now  time.Time
	Seed uint64

	LocalCountry    string
	LocalCurrency   string
	BaseCurrency    string
	LocalMultiplier decimal.Decimal

	CurrentVariance float64
	HistoryVariance float64
	TrendAmplitude  float64 // полный размах, 0.05 = +-2.5%
	HistoryStep     time.Duration
	HistoryDepth    time.Duration
	VerifiedShare   float64
}

func DefaultPriceOptions(now time.Time, seed uint64) PriceOptions {
	return PriceOptions{
		Now:             now,
		Seed:            seed,
		LocalCountry:    "SZ",
		LocalCurrency:   "SZL",
		BaseCurrency:    "ZAR",
		LocalMultiplier: decimal.RequireFromString("1.08"),
		CurrentVariance: 0.12,
		HistoryVariance: 0.08,
		TrendAmplitude:  0.05,
		HistoryStep:     7 * 24 * time.Hour,
		HistoryDepth:    30 * 24 * time.Hour,
		VerifiedShare:   0.7,
	}
}

// GeneratePrices строит текущую цену и историю для каждой пары (материал, точка продаж).
// Материалы без базовой цены пропускаются.
func GeneratePrices(
	materials []db.Material,
	locations []db.SupplierLocation,
	basePrices map[string]decimal.Decimal,
	opts PriceOptions,
) []db.CreatePriceIfAbsentParams {
	r := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	today := opts.Now.UTC().Truncate(24 * time.Hour)

	var prices []db.CreatePriceIfAbsentParams
	for _, m := range materials {
		base, ok := basePrices[m.Name]
		if !ok {
			continue
		}

		for _, loc := range locations {
			currency := opts.BaseCurrency
			locBase := base
			if strings.EqualFold(loc.Country, opts.LocalCountry) {
				currency = opts.LocalCurrency
				locBase = base.Mul(opts.LocalMultiplier)
			}

			current := varyPrice(r, locBase, opts.CurrentVariance)
			prices = append(prices, newPriceParams(m, loc, current, currency, today, r.Float64() < opts.VerifiedShare))

			for back := opts.HistoryStep; back <= opts.HistoryDepth; back += opts.HistoryStep {
				trend := 1 + (r.Float64()-0.5)*opts.TrendAmplitude
				historical := varyPrice(r, locBase.Mul(decimal.NewFromFloat(trend)), opts.HistoryVariance)
				prices = append(prices, newPriceParams(m, loc, historical, currency, today.Add(-back), true))
			}
		}
	}
	return prices
}

// varyPrice отклоняет цену на случайную величину в пределах +-variance.
func varyPrice(r *rand.Rand, base decimal.Decimal, variance float64) decimal.Decimal {
	variation := (r.Float64() - 0.5) * 2 * variance
	return base.Mul(decimal.NewFromFloat(1 + variation)).Round(2)
}

func newPriceParams(
	m db.Material,
	loc db.SupplierLocation,
	price decimal.Decimal,
	currency string,
	validFrom time.Time,
	verified bool,
) db.CreatePriceIfAbsentParams {
	amount := price.StringFixed(2)
	return db.CreatePriceIfAbsentParams{
		MaterialID: m.ID,
		SupplierID: loc.SupplierID,
		LocationID: uuid.NullUUID{UUID: loc.ID, Valid: true},
		Price:      amount,
		Currency:   currency,
		Unit:       m.Unit,
		ValidFrom:  validFrom,
		Verified:   verified,
		Signature: util.PriceSignature(
			m.ID.String(),
			loc.SupplierID.String(),
			loc.ID.String(),
			validFrom.Format(time.RFC3339),
			amount,
			currency,
		),
	}
}
