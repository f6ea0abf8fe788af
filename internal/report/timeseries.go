package report

import (
	"fmt"

	"github.com/gemstore/analytics-manager/internal/entity"
	"github.com/shopspring/decimal"
)

// maxDayBuckets caps the number of points of a day-based series; longer
// windows are grouped into multi-day buckets.
const maxDayBuckets = 30

// BuildSeries buckets the revenue of orders placed inside window for charting.
// Yearly reports get twelve month buckets; every other kind gets one bucket
// per day, or groups of consecutive days when the window spans more than
// maxDayBuckets days. Every bucket is present even when empty, so the bucket
// revenues always add up to the revenue of the window.
func BuildSeries(orders []entity.Order, window entity.TimeRange, kind entity.ReportKind) []entity.TimeSeriesPoint {
	if kind == entity.ReportYearly {
		return monthSeries(orders, window)
	}
	return daySeries(orders, window)
}

func monthSeries(orders []entity.Order, window entity.TimeRange) []entity.TimeSeriesPoint {
	start := window.From
	points := make([]entity.TimeSeriesPoint, 12)
	for i := range points {
		from := start.AddDate(0, i, 0)
		points[i] = entity.TimeSeriesPoint{
			Label:   from.Month().String()[:3],
			From:    from,
			Revenue: decimal.Zero,
		}
	}

	for _, o := range orders {
		if !window.Contains(o.Placed) {
			continue
		}
		t := o.Placed.In(start.Location())
		i := (t.Year()-start.Year())*12 + int(t.Month()) - int(start.Month())
		if i < 0 || i >= len(points) {
			continue
		}
		points[i].Revenue = points[i].Revenue.Add(o.TotalPrice)
		points[i].Orders++
	}
	return points
}

func daySeries(orders []entity.Order, window entity.TimeRange) []entity.TimeSeriesPoint {
	days := calendarDays(window.From, window.To)
	if days < 1 {
		days = 1
	}
	step := (days + maxDayBuckets - 1) / maxDayBuckets
	n := (days + step - 1) / step

	points := make([]entity.TimeSeriesPoint, n)
	for i := range points {
		from := window.From.AddDate(0, 0, i*step)
		points[i] = entity.TimeSeriesPoint{
			Label:   fmt.Sprintf("%d/%d", from.Day(), int(from.Month())),
			From:    from,
			Revenue: decimal.Zero,
		}
	}

	for _, o := range orders {
		if !window.Contains(o.Placed) {
			continue
		}
		i := calendarDays(window.From, o.Placed.In(window.From.Location())) / step
		if i >= n {
			i = n - 1
		}
		points[i].Revenue = points[i].Revenue.Add(o.TotalPrice)
		points[i].Orders++
	}
	return points
}
