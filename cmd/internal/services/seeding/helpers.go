package seeding

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/sqlc-dev/pqtype"

	"github.com/zhukovvlad/buildprice-go/cmd/internal/api_models"
	db "github.com/zhukovvlad/buildprice-go/cmd/internal/db/sqlc"
)

func getOrCreateOrUpdate[T any, P any](
	// Функция для получения существующей сущности
	getFn func() (T, error),
	// Функция для создания новой сущности
	createFn func() (T, error),
	// Функция, которая проверяет, нужно ли обновление.
	// Возвращает:
	// 1. bool - нужно ли обновление.
	// 2. P - параметры для обновления.
	// 3. error - если ошибка.
	diffFn func(existing T) (bool, P, error),
	// Функция для выполнения обновления
	updateFn func(params P) (T, error),
) (T, error) {
	existing, err := getFn()
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Сущность не найдена, создаем новую
			return createFn()
		}

		var zero T
		return zero, err
	}

	needsUpdate, updateParams, err := diffFn(existing)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("ошибка при проверке необходимости обновления: %w", err)
	}

	if needsUpdate {
		return updateFn(updateParams)
	}

	return existing, nil
}

func bulkDiscountJSON(info *api_models.BulkDiscountInfo) (pqtype.NullRawMessage, error) {
	if info == nil {
		return pqtype.NullRawMessage{}, nil
	}
	raw, err := json.Marshal(info)
	if err != nil {
		return pqtype.NullRawMessage{}, err
	}
	return pqtype.NullRawMessage{RawMessage: raw, Valid: true}, nil
}

// sameBulkDiscount сравнивает JSONB по содержимому: postgres меняет порядок ключей и пробелы.
func sameBulkDiscount(a, b pqtype.NullRawMessage) (bool, error) {
	if a.Valid != b.Valid {
		return false, nil
	}
	if !a.Valid {
		return true, nil
	}
	var da, dbi api_models.BulkDiscountInfo
	if err := json.Unmarshal(a.RawMessage, &da); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b.RawMessage, &dbi); err != nil {
		return false, err
	}
	return reflect.DeepEqual(da, dbi), nil
}

func materialDiff(existing db.Material, want db.CreateMaterialParams) (bool, db.UpdateMaterialParams, error) {
	params := db.UpdateMaterialParams{
		ID:                 existing.ID,
		Category:           want.Category,
		Unit:               want.Unit,
		Description:        want.Description,
		HsCode:             want.HsCode,
		TypicalApplication: want.TypicalApplication,
	}
	changed := existing.Category != want.Category ||
		existing.Unit != want.Unit ||
		existing.Description != want.Description ||
		existing.HsCode != want.HsCode ||
		existing.TypicalApplication != want.TypicalApplication
	return changed, params, nil
}

func supplierDiff(existing db.Supplier, want db.CreateSupplierParams) (bool, db.UpdateSupplierParams, error) {
	params := db.UpdateSupplierParams{
		ID:               existing.ID,
		Type:             want.Type,
		Website:          want.Website,
		ContactEmail:     want.ContactEmail,
		CountriesServed:  want.CountriesServed,
		PaymentTerms:     want.PaymentTerms,
		BulkDiscountInfo: want.BulkDiscountInfo,
	}
	sameDiscount, err := sameBulkDiscount(existing.BulkDiscountInfo, want.BulkDiscountInfo)
	if err != nil {
		return false, params, err
	}
	changed := existing.Type != want.Type ||
		existing.Website != want.Website ||
		existing.ContactEmail != want.ContactEmail ||
		!slices.Equal(existing.CountriesServed, want.CountriesServed) ||
		existing.PaymentTerms != want.PaymentTerms ||
		!sameDiscount
	return changed, params, nil
}

func locationDiff(existing db.SupplierLocation, want db.CreateSupplierLocationParams) (bool, db.UpdateSupplierLocationParams, error) {
	params := db.UpdateSupplierLocationParams{
		ID:                existing.ID,
		Address:           want.Address,
		Country:           want.Country,
		Latitude:          want.Latitude,
		Longitude:         want.Longitude,
		DeliveryAvailable: want.DeliveryAvailable,
		DeliveryRadiusKm:  want.DeliveryRadiusKm,
	}
	changed := existing.Address != want.Address ||
		existing.Country != want.Country ||
		existing.Latitude != want.Latitude ||
		existing.Longitude != want.Longitude ||
		existing.DeliveryAvailable != want.DeliveryAvailable ||
		existing.DeliveryRadiusKm != want.DeliveryRadiusKm
	return changed, params, nil
}
