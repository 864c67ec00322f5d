package seeding

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	db "github.com/zhukovvlad/buildprice-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/util"
	"github.com/zhukovvlad/buildprice-go/cmd/pkg/logging"
)

// DefaultBatchSize - сколько цен вставляется в одной транзакции.
const DefaultBatchSize = 500

// Report - итог загрузки (или плана загрузки при dry-run).
type Report struct {
	Materials       int
	Suppliers       int
	Locations       int
	PricesGenerated int
	PricesInserted  int64
	PricesSkipped   int64
}

// Seeder идемпотентно загружает демо-каталог.
type Seeder struct {
	store     db.Store
	logger    *logging.Logger
	batchSize int
}

func NewSeeder(store db.Store, logger *logging.Logger) *Seeder {
	return &Seeder{
		store:     store,
		logger:    logger,
		batchSize: DefaultBatchSize,
	}
}

type seededCatalog struct {
	Materials []db.Material
	Suppliers []db.Supplier
	Locations []db.SupplierLocation
}

// BasePrices возвращает базовые цены по названию материала.
func (d Dataset) BasePrices() map[string]decimal.Decimal {
	prices := make(map[string]decimal.Decimal, len(d.Materials))
	for _, m := range d.Materials {
		prices[m.Name] = m.BasePrice
	}
	return prices
}

// Run загружает справочники одной транзакцией, затем цены пачками.
func (s *Seeder) Run(ctx context.Context, ds Dataset, opts PriceOptions) (Report, error) {
	var catalog seededCatalog
	err := s.store.ExecTx(ctx, func(q *db.Queries) error {
		var err error
		catalog, err = seedCatalog(ctx, q, ds, opts.LocalCountry)
		return err
	})
	if err != nil {
		return Report{}, fmt.Errorf("загрузка справочников: %w", err)
	}
	s.logger.Infof("Справочники загружены: %d материалов, %d поставщиков, %d точек",
		len(catalog.Materials), len(catalog.Suppliers), len(catalog.Locations))

	prices := GeneratePrices(catalog.Materials, catalog.Locations, ds.BasePrices(), opts)
	report := Report{
		Materials:       len(catalog.Materials),
		Suppliers:       len(catalog.Suppliers),
		Locations:       len(catalog.Locations),
		PricesGenerated: len(prices),
	}

	for start := 0; start < len(prices); start += s.batchSize {
		end := min(start+s.batchSize, len(prices))
		batch := prices[start:end]

		var inserted int64
		err := s.store.ExecTx(ctx, func(q *db.Queries) error {
			var err error
			inserted, err = insertPrices(ctx, q, batch)
			return err
		})
		if err != nil {
			return report, fmt.Errorf("пачка цен %d: %w", start/s.batchSize+1, err)
		}

		report.PricesInserted += inserted
		report.PricesSkipped += int64(len(batch)) - inserted
		s.logger.Infof("Пачка цен %d: вставлено %d из %d", start/s.batchSize+1, inserted, len(batch))
	}

	return report, nil
}

// Plan считает, что будет загружено, не обращаясь к БД.
func Plan(ds Dataset, opts PriceOptions) Report {
	catalog := syntheticCatalog(ds)
	prices := GeneratePrices(catalog.Materials, catalog.Locations, ds.BasePrices(), opts)
	return Report{
		Materials:       len(catalog.Materials),
		Suppliers:       len(catalog.Suppliers),
		Locations:       len(catalog.Locations),
		PricesGenerated: len(prices),
	}
}

func seedCatalog(ctx context.Context, q db.Querier, ds Dataset, localCountry string) (seededCatalog, error) {
	var out seededCatalog

	for _, m := range ds.Materials {
		want := materialParams(m)
		material, err := getOrCreateOrUpdate(
			func() (db.Material, error) { return q.GetMaterialByName(ctx, m.Name) },
			func() (db.Material, error) { return q.CreateMaterial(ctx, want) },
			func(existing db.Material) (bool, db.UpdateMaterialParams, error) { return materialDiff(existing, want) },
			func(p db.UpdateMaterialParams) (db.Material, error) { return q.UpdateMaterial(ctx, p) },
		)
		if err != nil {
			return out, fmt.Errorf("материал %q: %w", m.Name, err)
		}
		out.Materials = append(out.Materials, material)
	}

	suppliersByName := make(map[string]db.Supplier, len(ds.Suppliers))
	for _, sup := range ds.Suppliers {
		want, err := supplierParams(sup)
		if err != nil {
			return out, fmt.Errorf("поставщик %q: %w", sup.Name, err)
		}
		supplier, err := getOrCreateOrUpdate(
			func() (db.Supplier, error) { return q.GetSupplierByName(ctx, sup.Name) },
			func() (db.Supplier, error) { return q.CreateSupplier(ctx, want) },
			func(existing db.Supplier) (bool, db.UpdateSupplierParams, error) { return supplierDiff(existing, want) },
			func(p db.UpdateSupplierParams) (db.Supplier, error) { return q.UpdateSupplier(ctx, p) },
		)
		if err != nil {
			return out, fmt.Errorf("поставщик %q: %w", sup.Name, err)
		}
		suppliersByName[sup.Name] = supplier
		out.Suppliers = append(out.Suppliers, supplier)
	}

	for _, loc := range ds.Locations {
		supplier, ok := suppliersByName[loc.SupplierName]
		if !ok {
			return out, fmt.Errorf("точка %q: неизвестный поставщик %q", loc.BranchName, loc.SupplierName)
		}
		want := locationParams(supplier.ID, loc, localCountry)
		location, err := getOrCreateOrUpdate(
			func() (db.SupplierLocation, error) {
				return q.GetSupplierLocation(ctx, db.GetSupplierLocationParams{
					SupplierID: supplier.ID,
					BranchName: loc.BranchName,
					City:       loc.City,
				})
			},
			func() (db.SupplierLocation, error) { return q.CreateSupplierLocation(ctx, want) },
			func(existing db.SupplierLocation) (bool, db.UpdateSupplierLocationParams, error) {
				return locationDiff(existing, want)
			},
			func(p db.UpdateSupplierLocationParams) (db.SupplierLocation, error) {
				return q.UpdateSupplierLocation(ctx, p)
			},
		)
		if err != nil {
			return out, fmt.Errorf("точка %s/%s: %w", loc.SupplierName, loc.BranchName, err)
		}
		out.Locations = append(out.Locations, location)
	}

	return out, nil
}

func insertPrices(ctx context.Context, q db.Querier, batch []db.CreatePriceIfAbsentParams) (int64, error) {
	var inserted int64
	for _, p := range batch {
		n, err := q.CreatePriceIfAbsent(ctx, p)
		if err != nil {
			return inserted, err
		}
		inserted += n
	}
	return inserted, nil
}

func materialParams(m MaterialSeed) db.CreateMaterialParams {
	return db.CreateMaterialParams{
		Name:               m.Name,
		Category:           m.Category,
		Unit:               m.Unit,
		Description:        util.NullableString(&m.Description),
		HsCode:             util.NullableString(&m.HsCode),
		TypicalApplication: util.NullableString(&m.TypicalApplication),
	}
}

func supplierParams(s SupplierSeed) (db.CreateSupplierParams, error) {
	discount, err := bulkDiscountJSON(s.BulkDiscount)
	if err != nil {
		return db.CreateSupplierParams{}, err
	}
	countries := s.CountriesServed
	if countries == nil {
		countries = []string{}
	}
	return db.CreateSupplierParams{
		Name:             s.Name,
		Type:             s.Type,
		Website:          util.NullableString(&s.Website),
		ContactEmail:     util.NullableString(&s.ContactEmail),
		CountriesServed:  countries,
		PaymentTerms:     util.NullableString(&s.PaymentTerms),
		BulkDiscountInfo: discount,
	}, nil
}

func locationParams(supplierID uuid.UUID, l LocationSeed, localCountry string) db.CreateSupplierLocationParams {
	address := fmt.Sprintf("%s, %s", l.BranchName, l.City)
	// Местные точки развозят ближе
	radius := 100
	if strings.EqualFold(l.Country, localCountry) {
		radius = 50
	}
	return db.CreateSupplierLocationParams{
		SupplierID:        supplierID,
		BranchName:        l.BranchName,
		Address:           util.NullableString(&address),
		City:              l.City,
		Country:           l.Country,
		Latitude:          util.NullableFloat64(&l.Latitude),
		Longitude:         util.NullableFloat64(&l.Longitude),
		DeliveryAvailable: true,
		DeliveryRadiusKm:  util.NullableInt32(&radius),
	}
}

var seedNamespace = uuid.MustParse("3f1d2a8e-6c4b-4f0e-9a51-7d2c8b9e0f11")

// syntheticCatalog строит справочники с детерминированными ID для dry-run.
func syntheticCatalog(ds Dataset) seededCatalog {
	var out seededCatalog
	for _, m := range ds.Materials {
		out.Materials = append(out.Materials, db.Material{
			ID:       uuid.NewSHA1(seedNamespace, []byte("material:"+m.Name)),
			Name:     m.Name,
			Category: m.Category,
			Unit:     m.Unit,
		})
	}
	ids := make(map[string]uuid.UUID, len(ds.Suppliers))
	for _, s := range ds.Suppliers {
		id := uuid.NewSHA1(seedNamespace, []byte("supplier:"+s.Name))
		ids[s.Name] = id
		out.Suppliers = append(out.Suppliers, db.Supplier{ID: id, Name: s.Name, Type: s.Type, CountriesServed: s.CountriesServed})
	}
	for _, l := range ds.Locations {
		out.Locations = append(out.Locations, db.SupplierLocation{
			ID:         uuid.NewSHA1(seedNamespace, []byte("location:"+l.SupplierName+"/"+l.BranchName+"/"+l.City)),
			SupplierID: ids[l.SupplierName],
			BranchName: l.BranchName,
			City:       l.City,
			Country:    l.Country,
		})
	}
	return out
}
