package seeding

import (
	"github.com/shopspring/decimal"

	"github.com/zhukovvlad/buildprice-go/cmd/internal/api_models"
)

// MaterialSeed - материал демо-каталога и его базовая цена в ZAR.
type MaterialSeed struct {
	Name               string
	Category           string
	Unit               string
	Description        string
	HsCode             string
	TypicalApplication string
	BasePrice          decimal.Decimal
}

type SupplierSeed struct {
	Name            string
	Type            string
	Website         string
	ContactEmail    string
	CountriesServed []string
	PaymentTerms    string
	BulkDiscount    *api_models.BulkDiscountInfo
}

type LocationSeed struct {
	SupplierName string
	BranchName   string
	City         string
	Country      string
	Latitude     float64
	Longitude    float64
}

// Dataset - полный набор демо-данных.
type Dataset struct {
	Materials []MaterialSeed
	Suppliers []SupplierSeed
	Locations []LocationSeed
}

func material(name, category, unit, description, hsCode, application, base string) MaterialSeed {
	return MaterialSeed{
		Name:               name,
		Category:           category,
		Unit:               unit,
		Description:        description,
		HsCode:             hsCode,
		TypicalApplication: application,
		BasePrice:          decimal.RequireFromString(base),
	}
}

func tiers(pairs ...float64) *api_models.BulkDiscountInfo {
	info := &api_models.BulkDiscountInfo{}
	for i := 0; i+1 < len(pairs); i += 2 {
		info.Tiers = append(info.Tiers, api_models.BulkDiscountTier{Quantity: int(pairs[i]), Discount: pairs[i+1]})
	}
	return info
}

// DemoDataset - строительные материалы и поставщики ЮАР и Эсватини.
func DemoDataset() Dataset {
	return Dataset{
		Materials: []MaterialSeed{
			material("PPC Cement 42.5N", "cement", "50kg bag", "High strength general purpose cement", "2523.29", "Foundations, columns, beams", "95"),
			material("PPC Cement 32.5R", "cement", "50kg bag", "Rapid hardening cement", "2523.29", "Plastering, brickwork", "88"),
			material("Sureflow Cement", "cement", "50kg bag", "Self-leveling cement", "2523.29", "Floor screeding", "105"),
			material("Surebuild Cement", "cement", "50kg bag", "Masonry cement", "2523.29", "General building", "82"),

			material("Y10 Steel Bar (10mm)", "steel", "6m bar", "Deformed reinforcing bar", "7214.20", "Slab reinforcement", "48"),
			material("Y12 Steel Bar (12mm)", "steel", "6m bar", "Deformed reinforcing bar", "7214.20", "Beams, columns", "68"),
			material("Y16 Steel Bar (16mm)", "steel", "6m bar", "Heavy duty reinforcing bar", "7214.20", "Heavy structures", "115"),
			material("BRC Mesh A193", "steel", "sheet", "6m x 2.4m mesh", "7314.20", "Slab reinforcement", "385"),

			material("Stock Brick (Standard)", "bricks", "each", "Clay stock brick", "6904.10", "Walls, general building", "2.50"),
			material("Face Brick (Smooth)", "bricks", "each", "Smooth face brick", "6904.10", "Exterior walls", "4.20"),
			material("Cement Block 190mm", "bricks", "each", "Hollow cement block", "6810.11", "Walls, partitions", "12.50"),

			material("Building Sand", "aggregates", "m³", "Washed building sand", "2505.10", "Concrete, mortar", "420"),
			material("Plaster Sand", "aggregates", "m³", "Fine plaster sand", "2505.10", "Plastering", "380"),
			material("13mm Stone", "aggregates", "m³", "Crushed stone aggregate", "2517.10", "Concrete", "340"),
			material("19mm Stone", "aggregates", "m³", "Crushed stone aggregate", "2517.10", "Concrete, drainage", "350"),

			material("Pine 38x114mm (3.6m)", "timber", "length", "Treated pine timber", "4407.11", "Roof trusses", "95"),
			material("Pine 38x152mm (3.6m)", "timber", "length", "Treated pine timber", "4407.11", "Roof rafters", "125"),

			material("IBR 0.5mm Galvanized", "roofing", "sheet", "Corrugated iron sheet", "7210.61", "Roof covering", "165"),
			material("Roof Tile (Concrete)", "roofing", "each", "Standard concrete tile", "6810.19", "Roof covering", "18"),

			material("Interior PVA Paint 20L", "paint", "20L", "White PVA paint", "3209.10", "Interior walls", "420"),
			material("Exterior Acrylic 20L", "paint", "20L", "Weather resistant paint", "3209.10", "Exterior walls", "580"),
		},
		Suppliers: []SupplierSeed{
			{Name: "Builders Warehouse", Type: "retailer", Website: "https://www.builderswarehouse.co.za", ContactEmail: "info@builderswarehouse.co.za",
				CountriesServed: []string{"ZA"}, PaymentTerms: "Cash, Card, Account (30 days)", BulkDiscount: tiers(100, 5, 500, 10)},
			{Name: "Cashbuild", Type: "retailer", Website: "https://www.cashbuild.co.za", ContactEmail: "info@cashbuild.co.za",
				CountriesServed: []string{"ZA", "SZ", "BW"}, PaymentTerms: "Cash, Card, Account (30 days)", BulkDiscount: tiers(50, 3, 200, 8)},
			{Name: "Build It", Type: "retailer", Website: "https://www.buildit.co.za", ContactEmail: "info@buildit.co.za",
				CountriesServed: []string{"ZA"}, PaymentTerms: "Cash, Card", BulkDiscount: tiers(100, 5)},
			{Name: "Buildmart Manzini", Type: "retailer", ContactEmail: "info@buildmart.sz",
				CountriesServed: []string{"SZ"}, PaymentTerms: "Cash, EFT", BulkDiscount: tiers(50, 5)},
			{Name: "Buildmart Mbabane", Type: "retailer", ContactEmail: "mbabane@buildmart.sz",
				CountriesServed: []string{"SZ"}, PaymentTerms: "Cash, EFT", BulkDiscount: tiers(50, 5)},
			{Name: "Swaziland Builders", Type: "wholesaler", ContactEmail: "info@swazbuilders.sz",
				CountriesServed: []string{"SZ"}, PaymentTerms: "Cash, Account (14 days)", BulkDiscount: tiers(100, 8)},
			{Name: "Builders Express JHB", Type: "wholesaler", ContactEmail: "sales@buildersexpress.co.za",
				CountriesServed: []string{"ZA", "SZ", "BW"}, PaymentTerms: "Account only (30 days)", BulkDiscount: tiers(200, 12, 1000, 18)},
			{Name: "Local Hardware Mbabane", Type: "retailer", ContactEmail: "info@localhardware.sz",
				CountriesServed: []string{"SZ"}, PaymentTerms: "Cash only"},
		},
		Locations: []LocationSeed{
			{SupplierName: "Builders Warehouse", BranchName: "Nelspruit", City: "Nelspruit", Country: "ZA", Latitude: -25.4653, Longitude: 30.9700},
			{SupplierName: "Builders Warehouse", BranchName: "Johannesburg North", City: "Johannesburg", Country: "ZA", Latitude: -26.0579, Longitude: 28.1097},
			{SupplierName: "Cashbuild", BranchName: "Nelspruit", City: "Nelspruit", Country: "ZA", Latitude: -25.4705, Longitude: 30.9812},
			{SupplierName: "Cashbuild", BranchName: "Manzini", City: "Manzini", Country: "SZ", Latitude: -26.4956, Longitude: 31.3712},
			{SupplierName: "Build It", BranchName: "Nelspruit", City: "Nelspruit", Country: "ZA", Latitude: -25.4602, Longitude: 30.9785},
			{SupplierName: "Buildmart Manzini", BranchName: "Main Branch", City: "Manzini", Country: "SZ", Latitude: -26.4879, Longitude: 31.3745},
			{SupplierName: "Buildmart Mbabane", BranchName: "Main Branch", City: "Mbabane", Country: "SZ", Latitude: -26.3208, Longitude: 31.1617},
			{SupplierName: "Swaziland Builders", BranchName: "Manzini", City: "Manzini", Country: "SZ", Latitude: -26.4920, Longitude: 31.3680},
			{SupplierName: "Builders Express JHB", BranchName: "Johannesburg", City: "Johannesburg", Country: "ZA", Latitude: -26.2041, Longitude: 28.0473},
			{SupplierName: "Local Hardware Mbabane", BranchName: "Main", City: "Mbabane", Country: "SZ", Latitude: -26.3186, Longitude: 31.1410},
		},
	}
}
