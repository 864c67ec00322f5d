package pricing

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zhukovvlad/buildprice-go/cmd/internal/api_models"
	mockdb "github.com/zhukovvlad/buildprice-go/cmd/internal/db/mock"
	db "github.com/zhukovvlad/buildprice-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/metrics"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/quote"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/services/apierrors"
	"github.com/zhukovvlad/buildprice-go/cmd/pkg/logging"
)

/*
BEHAVIORAL SCENARIOS FOR PRICING SERVICE (Unit Tests)

- GIVEN a request with valid materials and catalog rows
  WHEN the quote is calculated
  THEN three plans come back and the cheapest mix is priced from the rows

- GIVEN malformed input (no items, bad material id, non-positive quantity)
  WHEN the quote is calculated
  THEN a ValidationError is returned and the catalog is never queried

- GIVEN the catalog fails or returns an unparsable price
  WHEN the quote is calculated
  THEN a CatalogUnavailableError is returned and counted in metrics
*/

var (
	cementID   = uuid.MustParse("5b1c1b4e-8f2a-4a57-9d4e-0a1f0e6c2a01")
	steelID    = uuid.MustParse("5b1c1b4e-8f2a-4a57-9d4e-0a1f0e6c2a02")
	supplierX  = uuid.MustParse("9e0c7a52-1111-4c1e-8a7b-3f9b2b1d0001")
	supplierY  = uuid.MustParse("9e0c7a52-1111-4c1e-8a7b-3f9b2b1d0002")
	catalogNow = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
)

func priceRow(id int64, material, supplier uuid.UUID, price, country string) db.ListPricesForMaterialsRow {
	currency := "ZAR"
	if country == "SZ" {
		currency = "SZL"
	}
	return db.ListPricesForMaterialsRow{
		ID:              id,
		MaterialID:      material,
		SupplierID:      supplier,
		Price:           price,
		Currency:        currency,
		ValidFrom:       catalogNow,
		Verified:        true,
		MaterialName:    "PPC Cement 42.5N",
		MaterialUnit:    "50kg bag",
		SupplierName:    "Supplier " + supplier.String()[len(supplier.String())-1:],
		LocationCountry: sql.NullString{String: country, Valid: country != ""},
	}
}

func setupService(t *testing.T) (*PricingService, *mockdb.MockStore, *metrics.Registry) {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := mockdb.NewMockStore(ctrl)

	engine, err := quote.NewEngine(quote.DefaultSettings())
	require.NoError(t, err)

	reg := metrics.NewRegistry()
	return NewPricingService(store, engine, reg, logging.GetLogger()), store, reg
}

func request(items ...api_models.QuoteItemRequest) api_models.QuoteRequest {
	return api_models.QuoteRequest{Items: items}
}

func reqItem(id uuid.UUID, qty string) api_models.QuoteItemRequest {
	return api_models.QuoteItemRequest{MaterialID: id.String(), Quantity: decimal.RequireFromString(qty)}
}

func TestCalculateQuote_CheapestSupplierWins(t *testing.T) {
	svc, store, reg := setupService(t)

	store.EXPECT().
		ListPricesForMaterials(gomock.Any(), []uuid.UUID{cementID}).
		Return([]db.ListPricesForMaterialsRow{
			priceRow(1, cementID, supplierX, "95.00", "ZA"),
			priceRow(2, cementID, supplierY, "88.50", "ZA"),
		}, nil)

	result, err := svc.CalculateQuote(context.Background(), request(reqItem(cementID, "10")))
	require.NoError(t, err)
	require.Len(t, result.Options, 3)

	mix, ok := result.Plan(quote.StrategyOptimizedMix)
	require.True(t, ok)
	assert.Equal(t, "885.00", mix.Total.StringFixed(2))
	require.Len(t, mix.Items, 1)
	assert.Equal(t, supplierY.String(), mix.Items[0].SupplierID)

	local, _ := result.Plan(quote.StrategyLocalOnly)
	assert.Empty(t, local.Items, "no SZ quotation for the material")
	assert.Equal(t, quote.CoveragePartial, local.Coverage)

	assert.Equal(t, 1.0, testutil.ToFloat64(reg.QuotesCalculated.WithLabelValues(metrics.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.UnsourcedItems.WithLabelValues(string(quote.StrategyLocalOnly))))
}

func TestCalculateQuote_DeduplicatesMaterialIDs(t *testing.T) {
	svc, store, _ := setupService(t)

	store.EXPECT().
		ListPricesForMaterials(gomock.Any(), []uuid.UUID{cementID, steelID}).
		Return([]db.ListPricesForMaterialsRow{
			priceRow(1, cementID, supplierX, "95.00", "SZ"),
			priceRow(2, steelID, supplierX, "48.00", "SZ"),
		}, nil)

	result, err := svc.CalculateQuote(context.Background(), request(
		reqItem(cementID, "2"),
		reqItem(steelID, "3"),
		reqItem(cementID, "1"),
	))
	require.NoError(t, err)

	single := result.Options[0]
	assert.Len(t, single.Items, 3)
	assert.Equal(t, "429.00", single.Total.StringFixed(2))
}

func TestCalculateQuote_NormalizesMaterialID(t *testing.T) {
	svc, store, _ := setupService(t)

	store.EXPECT().
		ListPricesForMaterials(gomock.Any(), []uuid.UUID{cementID}).
		Return([]db.ListPricesForMaterialsRow{priceRow(1, cementID, supplierX, "95.00", "ZA")}, nil)

	req := request(api_models.QuoteItemRequest{
		MaterialID: strings.ToUpper(cementID.String()),
		Quantity:   decimal.NewFromInt(1),
	})

	result, err := svc.CalculateQuote(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, quote.CoverageComplete, result.Options[0].Coverage)
}

func TestCalculateQuote_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  api_models.QuoteRequest
		msg  string
	}{
		{name: "пустой список", req: request(), msg: "no items provided"},
		{
			name: "material_id не UUID",
			req:  request(api_models.QuoteItemRequest{MaterialID: "cement", Quantity: decimal.NewFromInt(1)}),
			msg:  "invalid material_id",
		},
		{name: "нулевое количество", req: request(reqItem(cementID, "0")), msg: "quantity must be positive"},
		{name: "отрицательное количество", req: request(reqItem(cementID, "-2")), msg: "quantity must be positive"},
		{name: "количество больше максимума", req: request(reqItem(cementID, "1000000.5")), msg: "quantity must not exceed 1000000"},
		{name: "огромная экспонента", req: request(reqItem(cementID, "1e5000000")), msg: "quantity must not exceed"},
		{name: "слишком много знаков", req: request(reqItem(cementID, "2.00001")), msg: "at most 4 decimal places"},
		{name: "крошечная экспонента", req: request(reqItem(cementID, "1e-200000000")), msg: "at most 4 decimal places"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Без EXPECT: любой вызов хранилища провалит тест
			svc, _, reg := setupService(t)

			_, err := svc.CalculateQuote(context.Background(), tt.req)

			var vErr *apierrors.ValidationError
			require.True(t, errors.As(err, &vErr), "got %v", err)
			assert.Contains(t, vErr.Message, tt.msg)
			assert.Equal(t, 1.0, testutil.ToFloat64(reg.QuotesCalculated.WithLabelValues(metrics.OutcomeInvalidInput)))
		})
	}
}

func TestCheckQuantity_AcceptsBoundaries(t *testing.T) {
	for _, qty := range []string{"0.0001", "2.50000", "1000000", "1e6", "999999.9999"} {
		assert.NoError(t, checkQuantity(decimal.RequireFromString(qty)), qty)
	}
}

func TestCalculateQuote_LowercaseCountryIsLocal(t *testing.T) {
	svc, store, _ := setupService(t)

	store.EXPECT().
		ListPricesForMaterials(gomock.Any(), []uuid.UUID{cementID}).
		Return([]db.ListPricesForMaterialsRow{priceRow(1, cementID, supplierX, "95.00", "sz")}, nil)

	result, err := svc.CalculateQuote(context.Background(), request(reqItem(cementID, "1")))
	require.NoError(t, err)

	local, _ := result.Plan(quote.StrategyLocalOnly)
	require.Len(t, local.Items, 1)
	assert.Equal(t, "SZ", local.Items[0].LocationCountry)
}

func TestCalculateQuote_TooManyItems(t *testing.T) {
	svc, _, _ := setupService(t)

	items := make([]api_models.QuoteItemRequest, MaxItems+1)
	for i := range items {
		items[i] = reqItem(cementID, "1")
	}

	_, err := svc.CalculateQuote(context.Background(), request(items...))

	var vErr *apierrors.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestCalculateQuote_CatalogFailure(t *testing.T) {
	svc, store, reg := setupService(t)

	store.EXPECT().
		ListPricesForMaterials(gomock.Any(), gomock.Any()).
		Return(nil, sql.ErrConnDone)

	_, err := svc.CalculateQuote(context.Background(), request(reqItem(cementID, "1")))

	var cErr *apierrors.CatalogUnavailableError
	require.True(t, errors.As(err, &cErr))
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.QuotesCalculated.WithLabelValues(metrics.OutcomeCatalogError)))
}

func TestCalculateQuote_MalformedCatalogRow(t *testing.T) {
	tests := []struct {
		name  string
		price string
	}{
		{name: "цена не число", price: "ninety"},
		{name: "отрицательная цена", price: "-1.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, _ := setupService(t)

			store.EXPECT().
				ListPricesForMaterials(gomock.Any(), gomock.Any()).
				Return([]db.ListPricesForMaterialsRow{
					priceRow(1, cementID, supplierX, "95.00", "ZA"),
					priceRow(2, cementID, supplierY, tt.price, "ZA"),
				}, nil)

			_, err := svc.CalculateQuote(context.Background(), request(reqItem(cementID, "1")))

			var cErr *apierrors.CatalogUnavailableError
			assert.True(t, errors.As(err, &cErr), "got %v", err)
		})
	}
}

func TestCalculateQuote_NilMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockStore(ctrl)
	engine, err := quote.NewEngine(quote.DefaultSettings())
	require.NoError(t, err)

	svc := NewPricingService(store, engine, nil, logging.GetLogger())
	store.EXPECT().
		ListPricesForMaterials(gomock.Any(), gomock.Any()).
		Return([]db.ListPricesForMaterialsRow{}, nil)

	result, err := svc.CalculateQuote(context.Background(), request(reqItem(cementID, "1")))
	require.NoError(t, err)
	for _, p := range result.Options {
		assert.True(t, p.Total.IsZero())
		assert.Equal(t, quote.CoveragePartial, p.Coverage)
	}
}
