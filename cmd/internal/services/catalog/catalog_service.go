package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/zhukovvlad/buildprice-go/cmd/internal/api_models"
	db "github.com/zhukovvlad/buildprice-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/services/apierrors"
	"github.com/zhukovvlad/buildprice-go/cmd/pkg/logging"
)

const (
	DefaultPriceLimit = 100
	MaxPriceLimit     = 500
)

// CatalogService - чтение каталога для дашборда и конструктора котировок.
type CatalogService struct {
	store  db.Store
	logger *logging.Logger
}

// NewCatalogService создает новый экземпляр CatalogService
func NewCatalogService(store db.Store, logger *logging.Logger) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: logger,
	}
}

// GetLatestPrices реализует GET /api/v1/prices
func (s *CatalogService) GetLatestPrices(
	ctx context.Context,
	filter api_models.PriceFilter,
) ([]api_models.PriceResponse, error) {
	params, err := latestPricesParams(filter)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.ListLatestPrices(ctx, params)
	if err != nil {
		s.logger.Errorf("Ошибка ListLatestPrices: %v", err)
		return nil, fmt.Errorf("ошибка БД: %w", err)
	}

	response := make([]api_models.PriceResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, newPriceResponse(row, s.logger))
	}
	return response, nil
}

// GetStats реализует GET /api/stats
func (s *CatalogService) GetStats(ctx context.Context) (api_models.CatalogStatsResponse, error) {
	stats, err := s.store.GetCatalogStats(ctx)
	if err != nil {
		s.logger.Errorf("Ошибка GetCatalogStats: %v", err)
		return api_models.CatalogStatsResponse{}, fmt.Errorf("ошибка БД: %w", err)
	}
	return api_models.CatalogStatsResponse{
		Materials:   stats.MaterialCount,
		Suppliers:   stats.SupplierCount,
		PricePoints: stats.PriceCount,
	}, nil
}

// GetDashboard реализует GET /api/v1/dashboard: статистика и последние цены параллельно.
func (s *CatalogService) GetDashboard(
	ctx context.Context,
	filter api_models.PriceFilter,
) (api_models.DashboardResponse, error) {
	var (
		stats  api_models.CatalogStatsResponse
		prices []api_models.PriceResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.GetStats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		prices, err = s.GetLatestPrices(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return api_models.DashboardResponse{}, err
	}

	return api_models.DashboardResponse{
		Stats:      stats,
		Prices:     prices,
		Categories: categoriesOf(prices),
	}, nil
}

// ListMaterials реализует GET /api/v1/materials (порядок: категория, название).
func (s *CatalogService) ListMaterials(ctx context.Context) ([]api_models.MaterialResponse, error) {
	materials, err := s.store.ListMaterials(ctx)
	if err != nil {
		s.logger.Errorf("Ошибка ListMaterials: %v", err)
		return nil, fmt.Errorf("ошибка БД: %w", err)
	}

	response := make([]api_models.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		response = append(response, newMaterialResponse(m))
	}
	return response, nil
}

// ListSuppliers реализует GET /api/v1/suppliers вместе с точками продаж.
func (s *CatalogService) ListSuppliers(ctx context.Context) ([]api_models.SupplierResponse, error) {
	var (
		suppliers []db.Supplier
		locations []db.SupplierLocation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		suppliers, err = s.store.ListSuppliers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		locations, err = s.store.ListSupplierLocations(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Errorf("Ошибка ListSuppliers: %v", err)
		return nil, fmt.Errorf("ошибка БД: %w", err)
	}

	bySupplier := make(map[string][]api_models.SupplierLocationBrief, len(suppliers))
	for _, l := range locations {
		key := l.SupplierID.String()
		bySupplier[key] = append(bySupplier[key], api_models.SupplierLocationBrief{
			BranchName:        l.BranchName,
			City:              l.City,
			Country:           l.Country,
			DeliveryAvailable: l.DeliveryAvailable,
		})
	}

	response := make([]api_models.SupplierResponse, 0, len(suppliers))
	for _, sup := range suppliers {
		resp := newSupplierResponse(sup, s.logger)
		if locs, ok := bySupplier[resp.ID]; ok {
			resp.Locations = locs
		}
		response = append(response, resp)
	}
	return response, nil
}

// likeEscaper экранирует метасимволы ILIKE: поиск идет по подстроке, а не по шаблону.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func latestPricesParams(filter api_models.PriceFilter) (db.ListLatestPricesParams, error) {
	limit := filter.Limit
	switch {
	case limit < 0:
		return db.ListLatestPricesParams{}, apierrors.NewValidationError("limit must not be negative")
	case limit == 0:
		limit = DefaultPriceLimit
	case limit > MaxPriceLimit:
		return db.ListLatestPricesParams{}, apierrors.NewValidationError("limit must be at most %d", MaxPriceLimit)
	}

	params := db.ListLatestPricesParams{Limit: limit}
	if c := strings.TrimSpace(filter.Category); c != "" && c != "all" {
		params.Category = sql.NullString{String: c, Valid: true}
	}
	if q := strings.TrimSpace(filter.Search); q != "" {
		params.Search = sql.NullString{String: likeEscaper.Replace(q), Valid: true}
	}
	return params, nil
}

// categoriesOf возвращает отсортированный список категорий без повторов.
func categoriesOf(prices []api_models.PriceResponse) []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, p := range prices {
		if _, ok := seen[p.MaterialCategory]; ok {
			continue
		}
		seen[p.MaterialCategory] = struct{}{}
		categories = append(categories, p.MaterialCategory)
	}
	sort.Strings(categories)
	return categories
}
