package quote

// BuildPriceIndex группирует плоский список котировок по материалу.
// Порядок каталога сохраняется, дубликаты и устаревшие цены не отбрасываются.
func BuildPriceIndex(quotes []PriceQuotation) PriceIndex {
	index := make(PriceIndex)
	for _, q := range quotes {
		index[q.MaterialID] = append(index[q.MaterialID], q)
	}
	return index
}

// cheapest возвращает котировку со строго минимальной ценой.
// При равенстве цен выигрывает первая по порядку каталога.
func cheapest(quotes []PriceQuotation, accept func(PriceQuotation) bool) (PriceQuotation, bool) {
	var (
		best  PriceQuotation
		found bool
	)
	for _, q := range quotes {
		if accept != nil && !accept(q) {
			continue
		}
		if !found || q.UnitPrice.LessThan(best.UnitPrice) {
			best = q
			found = true
		}
	}
	return best, found
}
