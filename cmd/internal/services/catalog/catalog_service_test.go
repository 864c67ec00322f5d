package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zhukovvlad/buildprice-go/cmd/internal/api_models"
	mockdb "github.com/zhukovvlad/buildprice-go/cmd/internal/db/mock"
	db "github.com/zhukovvlad/buildprice-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/services/apierrors"
	"github.com/zhukovvlad/buildprice-go/cmd/pkg/logging"
)

func setupService(t *testing.T) (*CatalogService, *mockdb.MockStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockStore(ctrl)
	return NewCatalogService(store, logging.GetLogger()), store
}

func latestRow(id int64, category, price string) db.ListLatestPricesRow {
	return db.ListLatestPricesRow{
		ID:               id,
		MaterialID:       uuid.New(),
		SupplierID:       uuid.New(),
		Price:            price,
		Currency:         "SZL",
		Unit:             "50kg bag",
		ValidFrom:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		MaterialName:     "Material " + category,
		MaterialCategory: category,
		SupplierName:     "Cashbuild",
		LocationCity:     sql.NullString{String: "Manzini", Valid: true},
		LocationCountry:  sql.NullString{String: "SZ", Valid: true},
	}
}

func TestGetLatestPrices_Params(t *testing.T) {
	tests := []struct {
		name     string
		filter   api_models.PriceFilter
		expected db.ListLatestPricesParams
	}{
		{
			name:     "лимит по умолчанию",
			filter:   api_models.PriceFilter{},
			expected: db.ListLatestPricesParams{Limit: DefaultPriceLimit},
		},
		{
			name:     "категория all не фильтрует",
			filter:   api_models.PriceFilter{Category: "all", Limit: 10},
			expected: db.ListLatestPricesParams{Limit: 10},
		},
		{
			name:   "категория и поиск",
			filter: api_models.PriceFilter{Category: "cement", Search: "  ppc ", Limit: 500},
			expected: db.ListLatestPricesParams{
				Category: sql.NullString{String: "cement", Valid: true},
				Search:   sql.NullString{String: "ppc", Valid: true},
				Limit:    500,
			},
		},
		{
			name:   "метасимволы ILIKE экранируются",
			filter: api_models.PriceFilter{Search: `50%_off\`},
			expected: db.ListLatestPricesParams{
				Search: sql.NullString{String: `50\%\_off\\`, Valid: true},
				Limit:  DefaultPriceLimit,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := setupService(t)
			store.EXPECT().ListLatestPrices(gomock.Any(), tt.expected).Return([]db.ListLatestPricesRow{}, nil)

			prices, err := svc.GetLatestPrices(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.NotNil(t, prices)
		})
	}
}

func TestGetLatestPrices_InvalidLimit(t *testing.T) {
	for _, limit := range []int32{-1, MaxPriceLimit + 1} {
		svc, _ := setupService(t)

		_, err := svc.GetLatestPrices(context.Background(), api_models.PriceFilter{Limit: limit})

		var vErr *apierrors.ValidationError
		assert.True(t, errors.As(err, &vErr), "limit %d", limit)
	}
}

func TestGetLatestPrices_FormatsRows(t *testing.T) {
	svc, store := setupService(t)
	row := latestRow(7, "cement", "102.6")
	row.LocationCity = sql.NullString{}
	store.EXPECT().ListLatestPrices(gomock.Any(), gomock.Any()).Return([]db.ListLatestPricesRow{row}, nil)

	prices, err := svc.GetLatestPrices(context.Background(), api_models.PriceFilter{})
	require.NoError(t, err)
	require.Len(t, prices, 1)

	assert.Equal(t, "102.60", prices[0].Price)
	assert.Nil(t, prices[0].LocationCity)
	require.NotNil(t, prices[0].LocationCountry)
	assert.Equal(t, "SZ", *prices[0].LocationCountry)
	assert.Equal(t, "2025-03-01T00:00:00Z", prices[0].ValidFrom)
}

func TestGetDashboard(t *testing.T) {
	svc, store := setupService(t)

	store.EXPECT().GetCatalogStats(gomock.Any()).Return(db.GetCatalogStatsRow{
		MaterialCount: 21, SupplierCount: 8, PriceCount: 1050,
	}, nil)
	store.EXPECT().ListLatestPrices(gomock.Any(), gomock.Any()).Return([]db.ListLatestPricesRow{
		latestRow(3, "steel", "48.00"),
		latestRow(2, "cement", "95.00"),
		latestRow(1, "steel", "68.00"),
	}, nil)

	dash, err := svc.GetDashboard(context.Background(), api_models.PriceFilter{})
	require.NoError(t, err)

	assert.Equal(t, api_models.CatalogStatsResponse{Materials: 21, Suppliers: 8, PricePoints: 1050}, dash.Stats)
	assert.Len(t, dash.Prices, 3)
	assert.Equal(t, []string{"cement", "steel"}, dash.Categories)
}

func TestGetDashboard_StatsFailure(t *testing.T) {
	svc, store := setupService(t)

	store.EXPECT().GetCatalogStats(gomock.Any()).Return(db.GetCatalogStatsRow{}, sql.ErrConnDone)
	store.EXPECT().ListLatestPrices(gomock.Any(), gomock.Any()).Return([]db.ListLatestPricesRow{}, nil).AnyTimes()

	_, err := svc.GetDashboard(context.Background(), api_models.PriceFilter{})
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestListSuppliers_AttachesLocationsAndDiscounts(t *testing.T) {
	svc, store := setupService(t)

	cashbuild := uuid.New()
	local := uuid.New()
	tiers, err := json.Marshal(api_models.BulkDiscountInfo{Tiers: []api_models.BulkDiscountTier{
		{Quantity: 50, Discount: 3},
		{Quantity: 200, Discount: 8},
	}})
	require.NoError(t, err)

	store.EXPECT().ListSuppliers(gomock.Any()).Return([]db.Supplier{
		{
			ID:               cashbuild,
			Name:             "Cashbuild",
			Type:             "retailer",
			CountriesServed:  []string{"ZA", "SZ", "BW"},
			BulkDiscountInfo: pqtype.NullRawMessage{RawMessage: tiers, Valid: true},
		},
		{ID: local, Name: "Local Hardware Mbabane", Type: "retailer"},
	}, nil)
	store.EXPECT().ListSupplierLocations(gomock.Any()).Return([]db.SupplierLocation{
		{SupplierID: cashbuild, BranchName: "Nelspruit", City: "Nelspruit", Country: "ZA"},
		{SupplierID: cashbuild, BranchName: "Manzini", City: "Manzini", Country: "SZ", DeliveryAvailable: true},
	}, nil)

	suppliers, err := svc.ListSuppliers(context.Background())
	require.NoError(t, err)
	require.Len(t, suppliers, 2)

	assert.Len(t, suppliers[0].Locations, 2)
	assert.Equal(t, []api_models.BulkDiscountTier{{Quantity: 50, Discount: 3}, {Quantity: 200, Discount: 8}}, suppliers[0].BulkDiscountInfo)

	assert.Empty(t, suppliers[1].Locations)
	assert.NotNil(t, suppliers[1].Locations)
	assert.Equal(t, []string{}, suppliers[1].CountriesServed)
	assert.Equal(t, []api_models.BulkDiscountTier{}, suppliers[1].BulkDiscountInfo)
}

func TestParseBulkDiscount(t *testing.T) {
	logger := logging.GetLogger()

	t.Run("NULL", func(t *testing.T) {
		assert.Empty(t, parseBulkDiscount(pqtype.NullRawMessage{}, logger))
	})

	t.Run("JSON null", func(t *testing.T) {
		assert.Empty(t, parseBulkDiscount(pqtype.NullRawMessage{RawMessage: json.RawMessage("null"), Valid: true}, logger))
	})

	t.Run("битый JSON", func(t *testing.T) {
		assert.Empty(t, parseBulkDiscount(pqtype.NullRawMessage{RawMessage: json.RawMessage("{tiers"), Valid: true}, logger))
	})
}

func TestListMaterials(t *testing.T) {
	svc, store := setupService(t)

	store.EXPECT().ListMaterials(gomock.Any()).Return([]db.Material{
		{ID: uuid.New(), Name: "PPC Cement 42.5N", Category: "cement", Unit: "50kg bag",
			Description: sql.NullString{String: "High strength general purpose cement", Valid: true}},
	}, nil)

	materials, err := svc.ListMaterials(context.Background())
	require.NoError(t, err)
	require.Len(t, materials, 1)
	require.NotNil(t, materials[0].Description)
	assert.Nil(t, materials[0].HsCode)
}
