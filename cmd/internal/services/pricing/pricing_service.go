package pricing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/zhukovvlad/buildprice-go/cmd/internal/api_models"
	db "github.com/zhukovvlad/buildprice-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/metrics"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/quote"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/services/apierrors"
	"github.com/zhukovvlad/buildprice-go/cmd/pkg/logging"
)

const (
	// MaxItems - верхняя граница позиций в одном запросе.
	MaxItems = 200
	// MaxQuantity - верхняя граница количества в одной позиции.
	MaxQuantity = 1_000_000
	// MaxQuantityScale - сколько знаков после запятой допускается в количестве.
	MaxQuantityScale = 4
)

var maxQuantity = decimal.NewFromInt(MaxQuantity)

// PricingService собирает котировки из каталога и передает их движку расчета.
type PricingService struct {
	store   db.Store
	engine  *quote.Engine
	metrics *metrics.Registry
	logger  *logging.Logger
}

// NewPricingService создает новый экземпляр PricingService.
// metrics может быть nil.
func NewPricingService(store db.Store, engine *quote.Engine, m *metrics.Registry, logger *logging.Logger) *PricingService {
	return &PricingService{
		store:   store,
		engine:  engine,
		metrics: m,
		logger:  logger,
	}
}

// CalculateQuote реализует POST /api/v1/quotes/calculate.
//
// Ошибки: *apierrors.ValidationError (расчет не начинался),
// *apierrors.CatalogUnavailableError (каталог недоступен или вернул мусор).
func (s *PricingService) CalculateQuote(ctx context.Context, req api_models.QuoteRequest) (quote.QuoteResult, error) {
	started := time.Now()

	items, materialIDs, err := lineItemsFromRequest(req)
	if err != nil {
		s.metrics.ObserveCalculation(metrics.OutcomeInvalidInput, started)
		return quote.QuoteResult{}, err
	}

	rows, err := s.store.ListPricesForMaterials(ctx, materialIDs)
	if err != nil {
		s.logger.Errorf("Ошибка ListPricesForMaterials (%d материалов): %v", len(materialIDs), err)
		s.metrics.ObserveCalculation(metrics.OutcomeCatalogError, started)
		return quote.QuoteResult{}, apierrors.NewCatalogUnavailableError(err)
	}
	s.metrics.ObserveCatalogRows(len(rows))

	quotes := make([]quote.PriceQuotation, 0, len(rows))
	for _, row := range rows {
		q, err := quotationFromRow(row)
		if err != nil {
			s.logger.Errorf("Некорректная строка каталога prices.id=%d: %v", row.ID, err)
			s.metrics.ObserveCalculation(metrics.OutcomeCatalogError, started)
			return quote.QuoteResult{}, apierrors.NewCatalogUnavailableError(err)
		}
		quotes = append(quotes, q)
	}

	result, err := s.engine.Calculate(items, quotes)
	if err != nil {
		if errors.Is(err, quote.ErrNoLineItems) || errors.Is(err, quote.ErrInvalidLineItem) {
			s.metrics.ObserveCalculation(metrics.OutcomeInvalidInput, started)
			return quote.QuoteResult{}, apierrors.NewValidationError("%v", err)
		}
		s.metrics.ObserveCalculation(metrics.OutcomeCatalogError, started)
		return quote.QuoteResult{}, apierrors.NewCatalogUnavailableError(err)
	}

	for _, plan := range result.Options {
		s.metrics.AddUnsourced(string(plan.Strategy), len(items)-len(plan.Items))
	}
	s.metrics.ObserveCalculation(metrics.OutcomeOK, started)

	s.logger.WithFields(logrus.Fields{
		"items":      len(items),
		"quotations": len(quotes),
		"elapsed":    time.Since(started).String(),
	}).Info("Котировка рассчитана")

	return result, nil
}

// lineItemsFromRequest проверяет запрос и возвращает позиции для движка
// и уникальные ID материалов в порядке первого появления.
func lineItemsFromRequest(req api_models.QuoteRequest) ([]quote.LineItem, []uuid.UUID, error) {
	if len(req.Items) == 0 {
		return nil, nil, apierrors.NewValidationError("no items provided")
	}
	if len(req.Items) > MaxItems {
		return nil, nil, apierrors.NewValidationError("too many items: %d (max %d)", len(req.Items), MaxItems)
	}

	items := make([]quote.LineItem, 0, len(req.Items))
	ids := make([]uuid.UUID, 0, len(req.Items))
	seen := make(map[uuid.UUID]struct{}, len(req.Items))

	for i, it := range req.Items {
		id, err := uuid.Parse(it.MaterialID)
		if err != nil {
			return nil, nil, apierrors.NewValidationError("item %d: invalid material_id %q", i, it.MaterialID)
		}
		if err := checkQuantity(it.Quantity); err != nil {
			return nil, nil, apierrors.NewValidationError("item %d: %v", i, err)
		}

		// Канонический вид UUID, чтобы совпадать с material_id из каталога
		items = append(items, quote.LineItem{MaterialID: id.String(), Quantity: it.Quantity})
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	if err := quote.ValidateLineItems(items); err != nil {
		return nil, nil, apierrors.NewValidationError("%v", err)
	}
	return items, ids, nil
}

// checkQuantity ограничивает величину и точность количества. Экспонента
// проверяется до любых сравнений: decimal с экспонентой 1e8 при приведении
// к общему масштабу строит огромное целое.
func checkQuantity(q decimal.Decimal) error {
	if !q.IsPositive() {
		return errors.New("quantity must be positive")
	}
	// коэффициент >= 1, значит при экспоненте > 6 значение уже больше 10^6
	if q.Exponent() > 6 || q.GreaterThan(maxQuantity) {
		return fmt.Errorf("quantity must not exceed %d", MaxQuantity)
	}
	// 2.50000 допустимо, 2.00001 нет
	if q.Exponent() < -18 || !q.Equal(q.Truncate(MaxQuantityScale)) {
		return fmt.Errorf("quantity must have at most %d decimal places", MaxQuantityScale)
	}
	return nil
}

func quotationFromRow(row db.ListPricesForMaterialsRow) (quote.PriceQuotation, error) {
	price, err := decimal.NewFromString(row.Price)
	if err != nil {
		return quote.PriceQuotation{}, fmt.Errorf("цена %q: %w", row.Price, err)
	}

	q := quote.PriceQuotation{
		MaterialID:   row.MaterialID.String(),
		SupplierID:   row.SupplierID.String(),
		UnitPrice:    price,
		Currency:     row.Currency,
		MaterialName: row.MaterialName,
		MaterialUnit: row.MaterialUnit,
		SupplierName: row.SupplierName,
		ValidFrom:    row.ValidFrom,
		Verified:     row.Verified,
	}
	if row.LocationCountry.Valid {
		// char(2) в каталоге; регистр выравнивается здесь, движок сравнивает точно
		q.LocationCountry = strings.ToUpper(strings.TrimSpace(row.LocationCountry.String))
	}

	if err := quote.ValidateQuotation(q); err != nil {
		return quote.PriceQuotation{}, err
	}
	return q, nil
}
