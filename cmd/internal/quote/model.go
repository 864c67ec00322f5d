package quote

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem - запрошенная позиция: материал и количество.
type LineItem struct {
	MaterialID string
	Quantity   decimal.Decimal
}

// PriceQuotation - одна цена поставщика на материал в конкретной точке и на конкретную дату.
// Снимок из каталога, не изменяется после загрузки.
type PriceQuotation struct {
	MaterialID      string
	SupplierID      string
	UnitPrice       decimal.Decimal
	Currency        string
	MaterialName    string
	MaterialUnit    string
	SupplierName    string
	LocationCountry string // пустая строка, если у цены нет точки продаж
	ValidFrom       time.Time
	Verified        bool
}

// PriceIndex группирует котировки по материалу.
// Порядок внутри списка совпадает с порядком каталога (сначала самые свежие).
type PriceIndex map[string][]PriceQuotation

// StrategyKind определяет стратегию закупки.
type StrategyKind string

const (
	StrategySingleSupplier StrategyKind = "single_supplier"
	StrategyOptimizedMix   StrategyKind = "optimized_mix"
	StrategyLocalOnly      StrategyKind = "local_only"
)

// Coverage показывает, все ли запрошенные позиции попали в план.
type Coverage string

const (
	CoverageComplete Coverage = "complete"
	CoveragePartial  Coverage = "partial"
)

// PlanLineItem - строка плана закупки. Subtotal = Quantity * UnitPrice, округленное до копеек:
// итог плана складывается из тех же сумм, что видит клиент.
type PlanLineItem struct {
	MaterialID      string
	MaterialName    string
	Quantity        decimal.Decimal
	Unit            string
	SupplierID      string
	SupplierName    string
	UnitPrice       decimal.Decimal
	Subtotal        decimal.Decimal
	Currency        string
	LocationCountry string
}

// Plan - результат одной стратегии.
type Plan struct {
	Strategy    StrategyKind
	Name        string
	Description string
	Total       decimal.Decimal
	Currency    string
	Savings     *decimal.Decimal
	Coverage    Coverage
	Items       []PlanLineItem
	Pros        []string
	Cons        []string
}

// QuoteResult содержит ровно три плана в порядке
// [SingleSupplier, OptimizedMix, LocalOnly].
type QuoteResult struct {
	Options []Plan
}

// Plan возвращает план по стратегии.
func (r QuoteResult) Plan(kind StrategyKind) (Plan, bool) {
	for _, p := range r.Options {
		if p.Strategy == kind {
			return p, true
		}
	}
	return Plan{}, false
}

// moneyScale - знаков после запятой в суммах строк.
const moneyScale = 2

func newPlanLineItem(item LineItem, q PriceQuotation) PlanLineItem {
	return PlanLineItem{
		MaterialID:      item.MaterialID,
		MaterialName:    q.MaterialName,
		Quantity:        item.Quantity,
		Unit:            q.MaterialUnit,
		SupplierID:      q.SupplierID,
		SupplierName:    q.SupplierName,
		UnitPrice:       q.UnitPrice,
		Subtotal:        q.UnitPrice.Mul(item.Quantity).Round(moneyScale),
		Currency:        q.Currency,
		LocationCountry: q.LocationCountry,
	}
}

// sumSubtotals считает итог плана строго как сумму строк.
func sumSubtotals(items []PlanLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}
	return total
}

func coverageOf(items []PlanLineItem, requested int) Coverage {
	if len(items) == requested {
		return CoverageComplete
	}
	return CoveragePartial
}
