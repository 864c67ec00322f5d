package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
is_debug: false
database:
  source: postgres://u:p@localhost:5432/db?sslmode=disable
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.IsDebug)
	assert.False(t, *cfg.IsDebug)
	assert.Equal(t, "8080", cfg.Listen.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 20, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, "SZ", cfg.Quote.LocalCountryCode)
	assert.Equal(t, "ZAR", cfg.Quote.BaseCurrency)
	assert.Equal(t, "SZL", cfg.Quote.LocalCurrency)
	assert.Equal(t, "1", cfg.Quote.ExchangeParity)
}

func TestLoad_MissingRequiredField(t *testing.T) {
	path := writeConfig(t, `
database:
  source: postgres://u:p@localhost:5432/db
`)

	_, err := Load(path)
	assert.Error(t, err, "is_debug is required")
}

func TestQuoteConfig_EngineSettings(t *testing.T) {
	t.Run("валидная секция", func(t *testing.T) {
		q := QuoteConfig{
			LocalCountryCode: "BW",
			LocalRegionName:  "Botswana",
			BaseCurrency:     "ZAR",
			LocalCurrency:    "BWP",
			ExchangeParity:   "1.25",
		}

		settings, err := q.EngineSettings()
		require.NoError(t, err)

		assert.Equal(t, "BW", settings.LocalCountryCode)
		assert.Equal(t, "BWP", settings.LocalCurrency)
		assert.Equal(t, "1.25", settings.ExchangeParity.String())
	})

	t.Run("паритет не число", func(t *testing.T) {
		q := QuoteConfig{LocalCountryCode: "SZ", BaseCurrency: "ZAR", LocalCurrency: "SZL", ExchangeParity: "par"}
		_, err := q.EngineSettings()
		assert.Error(t, err)
	})

	t.Run("нулевой паритет", func(t *testing.T) {
		q := QuoteConfig{LocalCountryCode: "SZ", BaseCurrency: "ZAR", LocalCurrency: "SZL", ExchangeParity: "0"}
		_, err := q.EngineSettings()
		assert.Error(t, err)
	})
}
