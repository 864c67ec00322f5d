package server

import (
	"github.com/zhukovvlad/buildprice-go/cmd/internal/api_models"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/quote"
)

// newQuoteResponse переводит результат движка в JSON. Деньги - строки с двумя знаками.
func newQuoteResponse(result quote.QuoteResult) api_models.QuoteResponse {
	options := make([]api_models.QuoteOption, 0, len(result.Options))
	for _, plan := range result.Options {
		options = append(options, newQuoteOption(plan))
	}
	return api_models.QuoteResponse{Options: options}
}

func newQuoteOption(plan quote.Plan) api_models.QuoteOption {
	var savings *string
	if plan.Savings != nil {
		v := plan.Savings.StringFixed(2)
		savings = &v
	}

	items := make([]api_models.QuoteLineItem, 0, len(plan.Items))
	for _, it := range plan.Items {
		items = append(items, api_models.QuoteLineItem{
			MaterialID:      it.MaterialID,
			MaterialName:    it.MaterialName,
			Quantity:        it.Quantity.String(),
			Unit:            it.Unit,
			SupplierID:      it.SupplierID,
			SupplierName:    it.SupplierName,
			UnitPrice:       it.UnitPrice.StringFixed(2),
			Subtotal:        it.Subtotal.StringFixed(2),
			Currency:        it.Currency,
			LocationCountry: it.LocationCountry,
		})
	}

	// nil-срезы превращаются в [] в JSON
	pros := append([]string{}, plan.Pros...)
	cons := append([]string{}, plan.Cons...)

	return api_models.QuoteOption{
		Strategy:    string(plan.Strategy),
		Name:        plan.Name,
		Description: plan.Description,
		Total:       plan.Total.StringFixed(2),
		Currency:    plan.Currency,
		Savings:     savings,
		Coverage:    string(plan.Coverage),
		Items:       items,
		Pros:        pros,
		Cons:        cons,
	}
}
