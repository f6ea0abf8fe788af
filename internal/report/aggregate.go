package report

import (
	"github.com/gemstore/analytics-manager/internal/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Aggregate reduces a window's orders to scalar sales metrics. The result does
// not depend on the order of the input.
func Aggregate(orders []entity.Order) entity.SalesMetrics {
	m := entity.SalesMetrics{
		Revenue:             decimal.Zero,
		AverageOrderValue:   decimal.Zero,
		CancellationRatePct: decimal.Zero,
		PeakHour:            entity.NoPeakHour,
	}

	var hours [24]int
	for _, o := range orders {
		m.Revenue = m.Revenue.Add(o.TotalPrice)
		m.OrderCount++
		m.ItemsSold += o.ItemsCount()
		switch o.Status {
		case entity.Delivered:
			m.CompletedCount++
		case entity.Cancelled:
			m.CancelledCount++
		}
		hours[o.Placed.Hour()]++
	}

	if m.OrderCount == 0 {
		return m
	}

	n := decimal.NewFromInt(int64(m.OrderCount))
	m.AverageOrderValue = m.Revenue.Div(n)
	m.CancellationRatePct = decimal.NewFromInt(int64(m.CancelledCount)).Mul(hundred).Div(n).Round(1)
	m.PeakHour = peakHour(hours)
	return m
}

// peakHour returns the busiest hour, the earliest one on ties.
func peakHour(hours [24]int) int {
	peak := 0
	for h := 1; h < len(hours); h++ {
		if hours[h] > hours[peak] {
			peak = h
		}
	}
	return peak
}

// CountByStatus counts orders per status in lifecycle order. Statuses without
// orders are included with a zero count.
func CountByStatus(orders []entity.Order) []entity.StatusCount {
	counts := make(map[entity.OrderStatusName]int, len(entity.OrderStatusNames))
	for _, o := range orders {
		counts[o.Status]++
	}
	out := make([]entity.StatusCount, 0, len(entity.OrderStatusNames))
	for _, st := range entity.OrderStatusNames {
		out = append(out, entity.StatusCount{Status: st, Count: counts[st]})
	}
	return out
}
