package testutil

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	db "github.com/zhukovvlad/buildprice-go/cmd/internal/db/sqlc"
)

// Фиксированные идентификаторы, чтобы ожидания gomock были стабильными
var (
	CementID    = uuid.MustParse("5b1c1b4e-8f2a-4a57-9d4e-0a1f0e6c2a01")
	SteelID     = uuid.MustParse("5b1c1b4e-8f2a-4a57-9d4e-0a1f0e6c2a02")
	SandID      = uuid.MustParse("5b1c1b4e-8f2a-4a57-9d4e-0a1f0e6c2a03")
	SupplierZA  = uuid.MustParse("9e0c7a52-1111-4c1e-8a7b-3f9b2b1d0001")
	SupplierSZ  = uuid.MustParse("9e0c7a52-1111-4c1e-8a7b-3f9b2b1d0002")
	CatalogTime = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
)

var materialNames = map[uuid.UUID]struct{ name, unit, category string }{
	CementID: {"PPC Cement 42.5N", "50kg bag", "Cement"},
	SteelID:  {"Y12 Rebar 6m", "length", "Steel"},
	SandID:   {"Building Sand", "m³", "Aggregates"},
}

var supplierNames = map[uuid.UUID]string{
	SupplierZA: "Builders Warehouse",
	SupplierSZ: "Buildmart Manzini",
}

// CreateTestPriceRow - строка ListPricesForMaterials. Страна SZ дает валюту SZL, иначе ZAR.
func CreateTestPriceRow(id int64, material, supplier uuid.UUID, price, country string) db.ListPricesForMaterialsRow {
	currency := "ZAR"
	if country == "SZ" {
		currency = "SZL"
	}
	m := materialNames[material]
	return db.ListPricesForMaterialsRow{
		ID:              id,
		MaterialID:      material,
		SupplierID:      supplier,
		Price:           price,
		Currency:        currency,
		ValidFrom:       CatalogTime,
		Verified:        true,
		MaterialName:    m.name,
		MaterialUnit:    m.unit,
		SupplierName:    supplierNames[supplier],
		LocationCity:    sql.NullString{String: "Mbabane", Valid: country == "SZ"},
		LocationCountry: sql.NullString{String: country, Valid: country != ""},
	}
}

// CreateTestLatestPriceRow - строка ListLatestPrices для дашборда.
func CreateTestLatestPriceRow(id int64, material uuid.UUID, price string) db.ListLatestPricesRow {
	m := materialNames[material]
	return db.ListLatestPricesRow{
		ID:               id,
		MaterialID:       material,
		SupplierID:       SupplierSZ,
		Price:            price,
		Currency:         "SZL",
		Unit:             m.unit,
		ValidFrom:        CatalogTime,
		Verified:         true,
		MaterialName:     m.name,
		MaterialCategory: m.category,
		SupplierName:     supplierNames[SupplierSZ],
		LocationCity:     sql.NullString{String: "Manzini", Valid: true},
		LocationCountry:  sql.NullString{String: "SZ", Valid: true},
	}
}

// CreateTestMaterial создает тестовый материал
func CreateTestMaterial(id uuid.UUID) db.Material {
	m := materialNames[id]
	return db.Material{
		ID:        id,
		Name:      m.name,
		Category:  m.category,
		Unit:      m.unit,
		CreatedAt: CatalogTime,
		UpdatedAt: CatalogTime,
	}
}

// CreateTestSupplier создает тестового поставщика
func CreateTestSupplier(id uuid.UUID, countries ...string) db.Supplier {
	return db.Supplier{
		ID:              id,
		Name:            supplierNames[id],
		Type:            "retailer",
		CountriesServed: countries,
		CreatedAt:       CatalogTime,
		UpdatedAt:       CatalogTime,
	}
}
