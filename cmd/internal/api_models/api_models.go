package api_models

import "github.com/shopspring/decimal"

// QuoteRequest - тело POST /api/v1/quotes/calculate и /api/v1/quotes/export.
type QuoteRequest struct {
	Items []QuoteItemRequest `json:"items"`
}

type QuoteItemRequest struct {
	MaterialID string          `json:"material_id"`
	Quantity   decimal.Decimal `json:"quantity"` // число или строка: 10, "2.5"
}

// QuoteResponse - три варианта закупки в фиксированном порядке.
type QuoteResponse struct {
	Options []QuoteOption `json:"options"`
}

type QuoteOption struct {
	Strategy    string          `json:"strategy"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Total       string          `json:"total"`
	Currency    string          `json:"currency"`
	Savings     *string         `json:"savings"` // null для Single Supplier
	Coverage    string          `json:"coverage"`
	Items       []QuoteLineItem `json:"items"`
	Pros        []string        `json:"pros"`
	Cons        []string        `json:"cons"`
}

type QuoteLineItem struct {
	MaterialID      string `json:"material_id"`
	MaterialName    string `json:"material_name"`
	Quantity        string `json:"quantity"`
	Unit            string `json:"unit"`
	SupplierID      string `json:"supplier_id"`
	SupplierName    string `json:"supplier_name"`
	UnitPrice       string `json:"unit_price"`
	Subtotal        string `json:"subtotal"`
	Currency        string `json:"currency"`
	LocationCountry string `json:"location_country,omitempty"`
}

// PriceFilter - параметры GET /api/v1/prices.
type PriceFilter struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Limit    int32  `form:"limit"`
}

type PriceResponse struct {
	ID               int64   `json:"id"`
	MaterialID       string  `json:"material_id"`
	MaterialName     string  `json:"material_name"`
	MaterialCategory string  `json:"material_category"`
	SupplierID       string  `json:"supplier_id"`
	SupplierName     string  `json:"supplier_name"`
	Price            string  `json:"price"`
	Currency         string  `json:"currency"`
	Unit             string  `json:"unit"`
	LocationCity     *string `json:"location_city"`
	LocationCountry  *string `json:"location_country"`
	ValidFrom        string  `json:"valid_from"`
	Verified         bool    `json:"verified"`
}

type CatalogStatsResponse struct {
	Materials   int64 `json:"materials"`
	Suppliers   int64 `json:"suppliers"`
	PricePoints int64 `json:"price_points"`
}

type DashboardResponse struct {
	Stats      CatalogStatsResponse `json:"stats"`
	Prices     []PriceResponse      `json:"prices"`
	Categories []string             `json:"categories"`
}

type MaterialResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Category           string  `json:"category"`
	Unit               string  `json:"unit"`
	Description        *string `json:"description"`
	HsCode             *string `json:"hs_code"`
	TypicalApplication *string `json:"typical_application"`
}

type SupplierResponse struct {
	ID               string                  `json:"id"`
	Name             string                  `json:"name"`
	Type             string                  `json:"type"`
	Website          *string                 `json:"website"`
	ContactEmail     *string                 `json:"contact_email"`
	PaymentTerms     *string                 `json:"payment_terms"`
	CountriesServed  []string                `json:"countries_served"`
	BulkDiscountInfo []BulkDiscountTier      `json:"bulk_discount_tiers"`
	Locations        []SupplierLocationBrief `json:"locations"`
}

// BulkDiscountTier - скидка в процентах от указанного количества.
type BulkDiscountTier struct {
	Quantity int     `json:"quantity"`
	Discount float64 `json:"discount"`
}

// BulkDiscountInfo - формат колонки suppliers.bulk_discount_info.
type BulkDiscountInfo struct {
	Tiers []BulkDiscountTier `json:"tiers"`
}

type SupplierLocationBrief struct {
	BranchName        string `json:"branch_name"`
	City              string `json:"city"`
	Country           string `json:"country"`
	DeliveryAvailable bool   `json:"delivery_available"`
}
