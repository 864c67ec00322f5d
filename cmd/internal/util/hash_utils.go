package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// GetSHA256Hash вычисляет хеш SHA-256 для входной строки.
func GetSHA256Hash(text string) string {
	hash := sha256.Sum256([]byte(text))
	return hex.EncodeToString(hash[:])
}

// PriceSignature - стабильный ключ котировки для prices.signature.
// Повторная загрузка тех же данных дает тот же ключ и не создает дублей.
func PriceSignature(parts ...string) string {
	return GetSHA256Hash(strings.Join(parts, "|"))
}
