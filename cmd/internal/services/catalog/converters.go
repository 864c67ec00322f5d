package catalog

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sqlc-dev/pqtype"

	"github.com/zhukovvlad/buildprice-go/cmd/internal/api_models"
	db "github.com/zhukovvlad/buildprice-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/util"
	"github.com/zhukovvlad/buildprice-go/cmd/pkg/logging"
)

// parseBulkDiscount безопасно парсит pqtype.NullRawMessage в список скидок.
// NULL или битый JSON дают пустой список.
func parseBulkDiscount(p pqtype.NullRawMessage, logger *logging.Logger) []api_models.BulkDiscountTier {
	tiers := []api_models.BulkDiscountTier{}

	if !p.Valid || len(p.RawMessage) == 0 || string(p.RawMessage) == "null" {
		return tiers
	}

	var info api_models.BulkDiscountInfo
	if err := json.Unmarshal(p.RawMessage, &info); err != nil {
		logger.Warnf("не удалось распарсить bulk_discount_info: %v", err)
		return tiers
	}
	if info.Tiers != nil {
		tiers = info.Tiers
	}
	return tiers
}

// formatMoney приводит numeric из БД к двум знакам после запятой.
func formatMoney(raw string, logger *logging.Logger) string {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		logger.Warnf("некорректная сумма в каталоге: %q", raw)
		return raw
	}
	return d.StringFixed(2)
}

func newPriceResponse(row db.ListLatestPricesRow, logger *logging.Logger) api_models.PriceResponse {
	return api_models.PriceResponse{
		ID:               row.ID,
		MaterialID:       row.MaterialID.String(),
		MaterialName:     row.MaterialName,
		MaterialCategory: row.MaterialCategory,
		SupplierID:       row.SupplierID.String(),
		SupplierName:     row.SupplierName,
		Price:            formatMoney(row.Price, logger),
		Currency:         row.Currency,
		Unit:             row.Unit,
		LocationCity:     util.StringPtr(row.LocationCity),
		LocationCountry:  util.StringPtr(row.LocationCountry),
		ValidFrom:        row.ValidFrom.Format(time.RFC3339),
		Verified:         row.Verified,
	}
}

func newMaterialResponse(m db.Material) api_models.MaterialResponse {
	return api_models.MaterialResponse{
		ID:                 m.ID.String(),
		Name:               m.Name,
		Category:           m.Category,
		Unit:               m.Unit,
		Description:        util.StringPtr(m.Description),
		HsCode:             util.StringPtr(m.HsCode),
		TypicalApplication: util.StringPtr(m.TypicalApplication),
	}
}

func newSupplierResponse(s db.Supplier, logger *logging.Logger) api_models.SupplierResponse {
	countries := s.CountriesServed
	if countries == nil {
		countries = []string{}
	}
	return api_models.SupplierResponse{
		ID:               s.ID.String(),
		Name:             s.Name,
		Type:             s.Type,
		Website:          util.StringPtr(s.Website),
		ContactEmail:     util.StringPtr(s.ContactEmail),
		PaymentTerms:     util.StringPtr(s.PaymentTerms),
		CountriesServed:  countries,
		BulkDiscountInfo: parseBulkDiscount(s.BulkDiscountInfo, logger),
		Locations:        []api_models.SupplierLocationBrief{},
	}
}
