// Package quote рассчитывает три варианта закупки по списку материалов
// и снимку каталога цен. Пакет не делает I/O и не хранит состояние между вызовами.
package quote

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoLineItems      = errors.New("no items provided")
	ErrInvalidLineItem  = errors.New("invalid line item")
	ErrInvalidQuotation = errors.New("invalid price quotation")
)

// Engine - движок расчета. Безопасен для параллельного использования.
type Engine struct {
	settings   Settings
	strategies []strategy
}

// NewEngine создает движок с заданной юрисдикцией и валютами.
func NewEngine(settings Settings) (*Engine, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid quote settings: %w", err)
	}
	settings.LocalCountryCode = strings.ToUpper(strings.TrimSpace(settings.LocalCountryCode))
	return &Engine{
		settings: settings,
		strategies: []strategy{
			singleSupplier{settings: settings},
			optimizedMix{settings: settings},
			localOnly{settings: settings},
		},
	}, nil
}

// Settings возвращает настройки, с которыми создан движок.
func (e *Engine) Settings() Settings {
	return e.settings
}

// Calculate проверяет позиции, строит индекс цен и считает три плана.
func (e *Engine) Calculate(items []LineItem, quotes []PriceQuotation) (QuoteResult, error) {
	if err := ValidateLineItems(items); err != nil {
		return QuoteResult{}, err
	}
	for i, q := range quotes {
		if err := ValidateQuotation(q); err != nil {
			return QuoteResult{}, fmt.Errorf("quotation %d: %w", i, err)
		}
	}
	return e.evaluate(items, BuildPriceIndex(quotes)), nil
}

func (e *Engine) evaluate(items []LineItem, index PriceIndex) QuoteResult {
	plans := make(map[StrategyKind]*Plan, len(e.strategies))
	options := make([]Plan, len(e.strategies))
	for i, s := range e.strategies {
		options[i] = s.evaluate(items, index)
		plans[s.kind()] = &options[i]
	}

	annotate(e.settings,
		plans[StrategySingleSupplier],
		plans[StrategyOptimizedMix],
		plans[StrategyLocalOnly],
	)

	return QuoteResult{Options: options}
}

// ValidateLineItems отклоняет пустой запрос, пустой материал и неположительное количество.
func ValidateLineItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrNoLineItems
	}
	for i, item := range items {
		if strings.TrimSpace(item.MaterialID) == "" {
			return fmt.Errorf("%w: item %d: material id is required", ErrInvalidLineItem, i)
		}
		if !item.Quantity.IsPositive() {
			return fmt.Errorf("%w: item %d: quantity must be positive, got %s", ErrInvalidLineItem, i, item.Quantity)
		}
	}
	return nil
}

// ValidateQuotation проверяет котировку на границе с каталогом.
func ValidateQuotation(q PriceQuotation) error {
	switch {
	case strings.TrimSpace(q.MaterialID) == "":
		return fmt.Errorf("%w: material id is empty", ErrInvalidQuotation)
	case strings.TrimSpace(q.SupplierID) == "":
		return fmt.Errorf("%w: supplier id is empty for material %s", ErrInvalidQuotation, q.MaterialID)
	case q.UnitPrice.IsNegative():
		return fmt.Errorf("%w: negative unit price %s for material %s", ErrInvalidQuotation, q.UnitPrice, q.MaterialID)
	}
	return nil
}
