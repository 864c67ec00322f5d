package quote

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(materialID, qty string) LineItem {
	return LineItem{MaterialID: materialID, Quantity: dec(qty)}
}

func quotation(materialID, supplierID, price, country string, age time.Duration) PriceQuotation {
	currency := "ZAR"
	if country == "SZ" {
		currency = "SZL"
	}
	return PriceQuotation{
		MaterialID:      materialID,
		SupplierID:      supplierID,
		UnitPrice:       dec(price),
		Currency:        currency,
		MaterialName:    "name-" + materialID,
		MaterialUnit:    "each",
		SupplierName:    "Supplier " + supplierID,
		LocationCountry: country,
		ValidFrom:       baseTime.Add(-age),
		Verified:        true,
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultSettings())
	require.NoError(t, err)
	return engine
}

func assertMoney(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, expected, actual.StringFixed(2), msgAndArgs...)
}

func mustPlan(t *testing.T, r QuoteResult, kind StrategyKind) Plan {
	t.Helper()
	p, ok := r.Plan(kind)
	require.True(t, ok, "plan %s not found", kind)
	return p
}

func TestCalculate_ScenarioA_CheapestQuotationWins(t *testing.T) {
	// GIVEN: две котировки на цемент от разных поставщиков
	engine := newTestEngine(t)
	quotes := []PriceQuotation{
		quotation("cement-425n", "builders", "95.00", "ZA", 0),
		quotation("cement-425n", "cashbuild", "88.50", "ZA", 0),
	}

	// WHEN
	result, err := engine.Calculate([]LineItem{item("cement-425n", "10")}, quotes)

	// THEN: смешанный план берет 88.50
	require.NoError(t, err)
	mix := mustPlan(t, result, StrategyOptimizedMix)
	require.Len(t, mix.Items, 1)
	assert.Equal(t, "cashbuild", mix.Items[0].SupplierID)
	assertMoney(t, "885.00", mix.Items[0].Subtotal)
	assertMoney(t, "885.00", mix.Total)
	assert.Equal(t, CoverageComplete, mix.Coverage)
}

func TestCalculate_ScenarioB_CompleteSupplierPreferredOverCheaperPartial(t *testing.T) {
	engine := newTestEngine(t)
	quotes := []PriceQuotation{
		quotation("m1", "X", "50", "ZA", 0),
		quotation("m2", "X", "30", "ZA", 0),
		quotation("m1", "Y", "40", "ZA", 0),
	}
	items := []LineItem{item("m1", "2"), item("m2", "2")}

	result, err := engine.Calculate(items, quotes)
	require.NoError(t, err)

	single := mustPlan(t, result, StrategySingleSupplier)
	require.Len(t, single.Items, 2)
	for _, it := range single.Items {
		assert.Equal(t, "X", it.SupplierID)
	}
	assertMoney(t, "160.00", single.Total)
	assert.Equal(t, CoverageComplete, single.Coverage)

	mix := mustPlan(t, result, StrategyOptimizedMix)
	assertMoney(t, "140.00", mix.Total)
	require.NotNil(t, mix.Savings)
	assertMoney(t, "20.00", *mix.Savings)
}

func TestCalculate_ScenarioC_LocalPlanOmitsUnsourceableMaterial(t *testing.T) {
	engine := newTestEngine(t)
	quotes := []PriceQuotation{
		quotation("sand", "buildmart", "420", "SZ", 0),
		quotation("sand", "builders", "400", "ZA", 0),
		quotation("mesh", "builders", "385", "ZA", 0),
	}
	items := []LineItem{item("sand", "3"), item("mesh", "1")}

	result, err := engine.Calculate(items, quotes)
	require.NoError(t, err)

	local := mustPlan(t, result, StrategyLocalOnly)
	require.Len(t, local.Items, 1)
	assert.Equal(t, "sand", local.Items[0].MaterialID)
	assert.Equal(t, "buildmart", local.Items[0].SupplierID)
	assertMoney(t, "1260.00", local.Total)
	assert.Equal(t, CoveragePartial, local.Coverage)
	assert.Equal(t, "SZL", local.Currency)
}

func TestCalculate_FractionalQuantityTotalMatchesRoundedLines(t *testing.T) {
	engine := newTestEngine(t)
	quotes := []PriceQuotation{
		quotation("sand", "builders", "10.01", "ZA", 0),
		quotation("stone", "builders", "10.01", "ZA", 0),
	}
	items := []LineItem{item("sand", "2.5"), item("stone", "2.5")}

	result, err := engine.Calculate(items, quotes)
	require.NoError(t, err)

	for _, p := range result.Options[:2] {
		require.Len(t, p.Items, 2, p.Name)
		sum := decimal.Zero
		for _, it := range p.Items {
			// 2.5 * 10.01 = 25.025 -> 25.03
			assert.Equal(t, "25.03", it.Subtotal.String(), p.Name)
			sum = sum.Add(it.Subtotal)
		}
		assert.True(t, p.Total.Equal(sum), p.Name)
		assertMoney(t, "50.06", p.Total, p.Name)
	}
}

func TestCalculate_LocalPlanRequiresExactCountryCode(t *testing.T) {
	engine := newTestEngine(t)
	quotes := []PriceQuotation{
		quotation("brick", "lowercase", "2.00", "sz", 0),
		quotation("brick", "local-hw", "2.50", "SZ", 0),
	}

	result, err := engine.Calculate([]LineItem{item("brick", "10")}, quotes)
	require.NoError(t, err)

	local := mustPlan(t, result, StrategyLocalOnly)
	require.Len(t, local.Items, 1)
	assert.Equal(t, "local-hw", local.Items[0].SupplierID)
	for _, it := range local.Items {
		assert.Equal(t, "SZ", it.LocationCountry)
	}
}

func TestNewEngine_NormalizesLocalCountryCode(t *testing.T) {
	settings := DefaultSettings()
	settings.LocalCountryCode = " sz "

	engine, err := NewEngine(settings)
	require.NoError(t, err)
	assert.Equal(t, "SZ", engine.Settings().LocalCountryCode)
}

func TestCalculate_SingleQuotationConverges(t *testing.T) {
	engine := newTestEngine(t)
	quotes := []PriceQuotation{quotation("brick", "local-hw", "2.50", "SZ", 0)}

	result, err := engine.Calculate([]LineItem{item("brick", "1")}, quotes)
	require.NoError(t, err)
	require.Len(t, result.Options, 3)

	first := result.Options[0]
	for _, p := range result.Options {
		assertMoney(t, "2.50", p.Total, p.Name)
		require.Len(t, p.Items, 1)
		assert.Equal(t, first.Items[0].SupplierID, p.Items[0].SupplierID)
		assert.True(t, first.Items[0].Subtotal.Equal(p.Items[0].Subtotal))
		assert.Equal(t, CoverageComplete, p.Coverage)
	}
	assertMoney(t, "0.00", *result.Options[1].Savings)
	assertMoney(t, "0.00", *result.Options[2].Savings)
	assert.Empty(t, result.Options[2].Cons)
}

func TestCalculate_FixedOrderAndNames(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Calculate([]LineItem{item("m1", "1")}, nil)
	require.NoError(t, err)

	require.Len(t, result.Options, 3)
	assert.Equal(t, StrategySingleSupplier, result.Options[0].Strategy)
	assert.Equal(t, StrategyOptimizedMix, result.Options[1].Strategy)
	assert.Equal(t, StrategyLocalOnly, result.Options[2].Strategy)
	assert.Equal(t, "Single Supplier", result.Options[0].Name)
	assert.Equal(t, "Optimized Mix", result.Options[1].Name)
	assert.Equal(t, "All Local", result.Options[2].Name)
	assert.Equal(t, "Support Eswatini businesses", result.Options[2].Description)
	assert.Equal(t, "ZAR", result.Options[0].Currency)
	assert.Equal(t, "ZAR", result.Options[1].Currency)
}

func TestCalculate_NoQuotationsAtAll(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Calculate([]LineItem{item("ghost", "5")}, nil)
	require.NoError(t, err)

	for _, p := range result.Options {
		assert.Empty(t, p.Items, p.Name)
		assertMoney(t, "0.00", p.Total, p.Name)
		assert.Equal(t, CoveragePartial, p.Coverage, p.Name)
	}
	assert.Nil(t, result.Options[0].Savings, "single supplier plan has no savings figure")
}

func TestCalculate_SingleSupplierUsesLatestQuotationPerSupplier(t *testing.T) {
	// GIVEN: у поставщика A две цены на m1 - свежая 100 и устаревшая 80
	engine := newTestEngine(t)
	quotes := []PriceQuotation{
		quotation("m1", "A", "100", "ZA", 0),
		quotation("m1", "B", "110", "ZA", 0),
		quotation("m1", "A", "80", "ZA", 7*24*time.Hour),
	}

	result, err := engine.Calculate([]LineItem{item("m1", "3")}, quotes)
	require.NoError(t, err)

	// THEN: один поставщик не суммирует историю, берется только свежая цена
	single := mustPlan(t, result, StrategySingleSupplier)
	require.Len(t, single.Items, 1)
	assert.Equal(t, "A", single.Items[0].SupplierID)
	assertMoney(t, "100.00", single.Items[0].UnitPrice)
	assertMoney(t, "300.00", single.Total)

	// Смешанный план выбирает минимальную цену среди всех строк, включая устаревшие.
	mix := mustPlan(t, result, StrategyOptimizedMix)
	assertMoney(t, "80.00", mix.Items[0].UnitPrice)
	assertMoney(t, "240.00", mix.Total)
	assertMoney(t, "60.00", *mix.Savings)
}

func TestCalculate_SingleSupplierLatestIsChosenRegardlessOfCatalogOrder(t *testing.T) {
	engine := newTestEngine(t)
	quotes := []PriceQuotation{
		quotation("m1", "A", "80", "ZA", 14*24*time.Hour),
		quotation("m1", "A", "120", "ZA", 0),
	}

	result, err := engine.Calculate([]LineItem{item("m1", "1")}, quotes)
	require.NoError(t, err)

	single := mustPlan(t, result, StrategySingleSupplier)
	assertMoney(t, "120.00", single.Total)
}

func TestCalculate_SingleSupplierFallbackIsPartial(t *testing.T) {
	engine := newTestEngine(t)
	quotes := []PriceQuotation{
		quotation("m1", "A", "10", "ZA", 0),
		quotation("m2", "B", "20", "ZA", 0),
	}

	result, err := engine.Calculate([]LineItem{item("m1", "1"), item("m2", "1")}, quotes)
	require.NoError(t, err)

	single := mustPlan(t, result, StrategySingleSupplier)
	assert.Equal(t, CoveragePartial, single.Coverage)
	require.Len(t, single.Items, 1)
	assert.Equal(t, "A", single.Items[0].SupplierID, "first encountered supplier")
	assertMoney(t, "10.00", single.Total)

	// Смешанный план дороже частичного - экономия не бывает отрицательной.
	mix := mustPlan(t, result, StrategyOptimizedMix)
	assertMoney(t, "30.00", mix.Total)
	assertMoney(t, "0.00", *mix.Savings)
}

func TestCalculate_SingleSupplierTieGoesToFirstEncountered(t *testing.T) {
	engine := newTestEngine(t)
	quotes := []PriceQuotation{
		quotation("m1", "B", "10", "ZA", 0),
		quotation("m1", "A", "10", "ZA", 0),
	}

	result, err := engine.Calculate([]LineItem{item("m1", "4")}, quotes)
	require.NoError(t, err)

	single := mustPlan(t, result, StrategySingleSupplier)
	assert.Equal(t, "B", single.Items[0].SupplierID)
	mix := mustPlan(t, result, StrategyOptimizedMix)
	assert.Equal(t, "B", mix.Items[0].SupplierID, "strict less-than keeps the first occurrence")
}

func TestCalculate_LocalMoreExpensiveAddsCostNote(t *testing.T) {
	engine := newTestEngine(t)
	quotes := []PriceQuotation{
		quotation("m1", "za", "100", "ZA", 0),
		quotation("m1", "sz", "105", "SZ", 0),
	}

	result, err := engine.Calculate([]LineItem{item("m1", "2")}, quotes)
	require.NoError(t, err)

	local := mustPlan(t, result, StrategyLocalOnly)
	assertMoney(t, "210.00", local.Total)
	assert.Equal(t, []string{"Costs SZL 10.00 more"}, local.Cons)
	assertMoney(t, "0.00", *local.Savings)
}

func TestCalculate_LocalCheaperExposesSavings(t *testing.T) {
	engine := newTestEngine(t)
	quotes := []PriceQuotation{
		quotation("m1", "za", "100", "ZA", 0),
		quotation("m1", "sz", "90", "SZ", 0),
		quotation("m2", "za", "50", "ZA", 0),
	}
	items := []LineItem{item("m1", "1"), item("m2", "1")}

	result, err := engine.Calculate(items, quotes)
	require.NoError(t, err)

	// Локальный план без m2 дешевле смешанного: 90 против 140.
	local := mustPlan(t, result, StrategyLocalOnly)
	assertMoney(t, "90.00", local.Total)
	assert.Empty(t, local.Cons)
	assertMoney(t, "50.00", *local.Savings)
}

func TestCalculate_ExchangeParityAppliesToComparisonOnly(t *testing.T) {
	settings := DefaultSettings()
	settings.ExchangeParity = dec("2")
	engine, err := NewEngine(settings)
	require.NoError(t, err)

	quotes := []PriceQuotation{
		quotation("m1", "za", "60", "ZA", 0),
		quotation("m1", "sz", "100", "SZ", 0),
	}

	result, err := engine.Calculate([]LineItem{item("m1", "1")}, quotes)
	require.NoError(t, err)

	local := mustPlan(t, result, StrategyLocalOnly)
	// Итог плана не конвертируется.
	assertMoney(t, "100.00", local.Total)
	// 60 ZAR / 2 = 30 SZL, локальный план дороже на 70.
	assert.Equal(t, []string{"Costs SZL 70.00 more"}, local.Cons)
}

func TestCalculate_InvalidInput(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("пустой список", func(t *testing.T) {
		_, err := engine.Calculate(nil, nil)
		assert.ErrorIs(t, err, ErrNoLineItems)
	})

	t.Run("нулевое количество", func(t *testing.T) {
		_, err := engine.Calculate([]LineItem{item("m1", "0")}, nil)
		assert.ErrorIs(t, err, ErrInvalidLineItem)
	})

	t.Run("отрицательное количество", func(t *testing.T) {
		_, err := engine.Calculate([]LineItem{item("m1", "1"), item("m2", "-3")}, nil)
		assert.ErrorIs(t, err, ErrInvalidLineItem)
		assert.Contains(t, err.Error(), "item 1")
	})

	t.Run("пустой материал", func(t *testing.T) {
		_, err := engine.Calculate([]LineItem{item(" ", "1")}, nil)
		assert.ErrorIs(t, err, ErrInvalidLineItem)
	})

	t.Run("отрицательная цена в каталоге", func(t *testing.T) {
		quotes := []PriceQuotation{quotation("m1", "A", "-1", "ZA", 0)}
		_, err := engine.Calculate([]LineItem{item("m1", "1")}, quotes)
		assert.ErrorIs(t, err, ErrInvalidQuotation)
	})
}

func TestNewEngine_RejectsBadSettings(t *testing.T) {
	settings := DefaultSettings()
	settings.ExchangeParity = decimal.Zero
	_, err := NewEngine(settings)
	assert.Error(t, err)

	settings = DefaultSettings()
	settings.LocalCountryCode = ""
	_, err = NewEngine(settings)
	assert.Error(t, err)
}

func TestBuildPriceIndex_PreservesOrderAndDuplicates(t *testing.T) {
	quotes := []PriceQuotation{
		quotation("m1", "A", "10", "ZA", 0),
		quotation("m2", "A", "20", "ZA", 0),
		quotation("m1", "A", "9", "ZA", time.Hour),
		quotation("m1", "B", "11", "SZ", 2*time.Hour),
	}

	index := BuildPriceIndex(quotes)

	require.Len(t, index, 2)
	require.Len(t, index["m1"], 3)
	assertMoney(t, "10.00", index["m1"][0].UnitPrice)
	assertMoney(t, "9.00", index["m1"][1].UnitPrice)
	assert.Equal(t, "B", index["m1"][2].SupplierID)
	assert.Len(t, index["m2"], 1)
	assert.Empty(t, index["missing"])
}
