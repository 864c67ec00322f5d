package quote

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Settings задает юрисдикцию и валюты, в которых работает движок.
type Settings struct {
	// LocalCountryCode - ISO-код страны для стратегии "только местные поставщики".
	LocalCountryCode string
	// LocalRegionName используется только в описании локального плана.
	LocalRegionName string
	// BaseCurrency - валюта каталога, в ней показываются SingleSupplier и OptimizedMix.
	BaseCurrency string
	// LocalCurrency - валюта отображения локального плана. Суммы не конвертируются.
	LocalCurrency string
	// ExchangeParity - сколько единиц базовой валюты стоит единица локальной валюты.
	// Применяется только при сравнении итогов между планами; 1 означает сравнение "как есть".
	ExchangeParity decimal.Decimal
}

// DefaultSettings возвращает настройки для Эсватини (SZ, ZAR/SZL по паритету).
func DefaultSettings() Settings {
	return Settings{
		LocalCountryCode: "SZ",
		LocalRegionName:  "Eswatini",
		BaseCurrency:     "ZAR",
		LocalCurrency:    "SZL",
		ExchangeParity:   decimal.NewFromInt(1),
	}
}

// Validate проверяет, что настройки пригодны для расчета.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.LocalCountryCode) == "" {
		return fmt.Errorf("local country code is required")
	}
	if strings.TrimSpace(s.BaseCurrency) == "" {
		return fmt.Errorf("base currency is required")
	}
	if strings.TrimSpace(s.LocalCurrency) == "" {
		return fmt.Errorf("local currency is required")
	}
	if !s.ExchangeParity.IsPositive() {
		return fmt.Errorf("exchange parity must be positive, got %s", s.ExchangeParity)
	}
	return nil
}
