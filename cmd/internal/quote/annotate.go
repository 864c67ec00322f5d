package quote

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// annotate проставляет экономию и ценовые минусы, сравнивая итоги планов.
//
// Итоги в разных валютах сравниваются через ExchangeParity. При паритете 1
// это просто разница чисел: ZAR и SZL считаются равными.
func annotate(settings Settings, single, optimized, local *Plan) {
	savings := single.Total.Sub(optimized.Total)
	if savings.IsNegative() {
		savings = decimal.Zero
	}
	optimized.Savings = &savings

	optimizedInLocal := fromBase(settings, optimized.Total)
	delta := local.Total.Sub(optimizedInLocal)

	localSavings := decimal.Zero
	switch {
	case delta.IsPositive():
		local.Cons = append(local.Cons,
			fmt.Sprintf("Costs %s %s more", settings.LocalCurrency, delta.StringFixed(2)))
	case delta.IsNegative():
		localSavings = delta.Abs()
	}
	local.Savings = &localSavings
}

func fromBase(settings Settings, amount decimal.Decimal) decimal.Decimal {
	if settings.ExchangeParity.Equal(one) {
		return amount
	}
	return amount.Div(settings.ExchangeParity)
}
