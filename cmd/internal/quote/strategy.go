package quote

import (
	"github.com/shopspring/decimal"
)

// strategy - общий вид всех трех стратегий: позиции + индекс цен -> план.
// Экономия и сравнение между планами считаются отдельно, в annotate.
type strategy interface {
	kind() StrategyKind
	evaluate(items []LineItem, index PriceIndex) Plan
}

// singleSupplier закупает все у одного поставщика с минимальным итогом.
type singleSupplier struct {
	settings Settings
}

type supplierScore struct {
	total   decimal.Decimal
	covered int
	items   []PlanLineItem
}

func (s singleSupplier) kind() StrategyKind { return StrategySingleSupplier }

func (s singleSupplier) evaluate(items []LineItem, index PriceIndex) Plan {
	scores := make(map[string]*supplierScore)
	var order []string // порядок первого появления поставщика

	for _, item := range items {
		for _, q := range latestPerSupplier(index[item.MaterialID]) {
			score, ok := scores[q.SupplierID]
			if !ok {
				score = &supplierScore{total: decimal.Zero}
				scores[q.SupplierID] = score
				order = append(order, q.SupplierID)
			}
			line := newPlanLineItem(item, q)
			score.items = append(score.items, line)
			score.total = score.total.Add(line.Subtotal)
			score.covered++
		}
	}

	var best *supplierScore
	for _, supplierID := range order {
		score := scores[supplierID]
		if score.covered != len(items) {
			continue
		}
		if best == nil || score.total.LessThan(best.total) {
			best = score
		}
	}

	// Полного покрытия нет: берем первого встреченного поставщика,
	// план помечается как частичный через Coverage.
	if best == nil && len(order) > 0 {
		best = scores[order[0]]
	}

	plan := Plan{
		Strategy:    StrategySingleSupplier,
		Name:        "Single Supplier",
		Description: "Get everything from one supplier",
		Currency:    s.settings.BaseCurrency,
		Items:       []PlanLineItem{},
		Pros:        []string{"One delivery", "Simplest logistics", "Build supplier relationship"},
		Cons:        []string{"Not always cheapest", "Limited to their stock"},
	}
	if best != nil {
		plan.Items = best.items
	}
	plan.Total = sumSubtotals(plan.Items)
	plan.Coverage = coverageOf(plan.Items, len(items))
	return plan
}

// latestPerSupplier оставляет по одной котировке на поставщика - самую свежую.
// При одинаковой дате побеждает первая по порядку каталога.
// Результат упорядочен по первому появлению поставщика.
func latestPerSupplier(quotes []PriceQuotation) []PriceQuotation {
	if len(quotes) == 0 {
		return nil
	}
	pos := make(map[string]int, len(quotes))
	latest := make([]PriceQuotation, 0, len(quotes))
	for _, q := range quotes {
		i, seen := pos[q.SupplierID]
		if !seen {
			pos[q.SupplierID] = len(latest)
			latest = append(latest, q)
			continue
		}
		if q.ValidFrom.After(latest[i].ValidFrom) {
			latest[i] = q
		}
	}
	return latest
}

// optimizedMix берет самую дешевую цену по каждому материалу независимо от поставщика.
type optimizedMix struct {
	settings Settings
}

func (s optimizedMix) kind() StrategyKind { return StrategyOptimizedMix }

func (s optimizedMix) evaluate(items []LineItem, index PriceIndex) Plan {
	plan := Plan{
		Strategy:    StrategyOptimizedMix,
		Name:        "Optimized Mix",
		Description: "Best price for each material",
		Currency:    s.settings.BaseCurrency,
		Items:       pickCheapest(items, index, nil),
		Pros:        []string{"Lowest total cost", "Best value", "Maximize savings"},
		Cons:        []string{"Multiple deliveries", "More coordination needed"},
	}
	plan.Total = sumSubtotals(plan.Items)
	plan.Coverage = coverageOf(plan.Items, len(items))
	return plan
}

// localOnly - тот же жадный выбор, но только среди поставщиков из локальной страны.
// Код страны сравнивается точно: каталог отдает ISO-коды в верхнем регистре.
// Нелокальные цены не подставляются.
type localOnly struct {
	settings Settings
}

func (s localOnly) kind() StrategyKind { return StrategyLocalOnly }

func (s localOnly) evaluate(items []LineItem, index PriceIndex) Plan {
	isLocal := func(q PriceQuotation) bool {
		return q.LocationCountry != "" && q.LocationCountry == s.settings.LocalCountryCode
	}

	region := s.settings.LocalRegionName
	if region == "" {
		region = "local"
	}

	plan := Plan{
		Strategy:    StrategyLocalOnly,
		Name:        "All Local",
		Description: "Support " + region + " businesses",
		Currency:    s.settings.LocalCurrency,
		Items:       pickCheapest(items, index, isLocal),
		Pros:        []string{"No import hassle", "Support local economy", "Faster delivery"},
		Cons:        []string{},
	}
	plan.Total = sumSubtotals(plan.Items)
	plan.Coverage = coverageOf(plan.Items, len(items))
	return plan
}

func pickCheapest(items []LineItem, index PriceIndex, accept func(PriceQuotation) bool) []PlanLineItem {
	lines := make([]PlanLineItem, 0, len(items))
	for _, item := range items {
		best, ok := cheapest(index[item.MaterialID], accept)
		if !ok {
			continue
		}
		lines = append(lines, newPlanLineItem(item, best))
	}
	return lines
}
