package report

import (
	"sort"

	"github.com/gemstore/analytics-manager/internal/entity"
	"github.com/shopspring/decimal"
)

// TopProducts ranks catalog products by revenue across the line items of
// orders, highest first, keeping at most limit entries (all when limit <= 0).
// Ties keep first-seen order. Line items whose product is not in the catalog
// are skipped; their number is returned alongside the ranking.
func TopProducts(orders []entity.Order, catalog entity.Catalog, limit int) ([]entity.ProductMetric, int) {
	idx := make(map[string]int)
	ranked := []entity.ProductMetric{}
	unresolved := 0

	for _, o := range orders {
		for _, it := range o.Items {
			p, ok := catalog[it.ProductID]
			if !ok {
				unresolved++
				continue
			}
			i, seen := idx[p.ID]
			if !seen {
				i = len(ranked)
				idx[p.ID] = i
				ranked = append(ranked, entity.ProductMetric{
					ProductID: p.ID,
					Title:     p.Title,
					Price:     p.Price,
					Revenue:   decimal.Zero,
				})
			}
			ranked[i].Revenue = ranked[i].Revenue.Add(it.LineTotal())
			ranked[i].UnitsSold += it.Quantity
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, unresolved
}
