package dto

import (
	"strconv"
	"time"

	"github.com/gemstore/analytics-manager/internal/currency"
	"github.com/gemstore/analytics-manager/internal/entity"
	"github.com/shopspring/decimal"
)

// Report is the JSON shape of a computed report. Money is rendered as
// strings rounded to the currency's minor units.
type Report struct {
	Kind                string            `json:"kind"`
	Anchor              string            `json:"anchor"`
	Currency            string            `json:"currency"`
	Period              TimeRange         `json:"period"`
	ComparePeriod       TimeRange         `json:"compare_period"`
	Revenue             Metric            `json:"revenue"`
	OrdersCount         Metric            `json:"orders_count"`
	AvgOrderValue       Metric            `json:"avg_order_value"`
	CompletedOrders     Metric            `json:"completed_orders"`
	CancelledOrders     Metric            `json:"cancelled_orders"`
	NewCustomers        Metric            `json:"new_customers"`
	CancellationRatePct string            `json:"cancellation_rate_pct"`
	ItemsSold           int               `json:"items_sold"`
	PeakHour            *int              `json:"peak_hour"`
	TopProducts         []ProductMetric   `json:"top_products"`
	Series              []TimeSeriesPoint `json:"series"`
	OrdersByStatus      []StatusCount     `json:"orders_by_status"`
	UnresolvedLineItems int               `json:"unresolved_line_items"`
	GeneratedAt         time.Time         `json:"generated_at"`
}

type TimeRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type Metric struct {
	Value        string `json:"value"`
	CompareValue string `json:"compare_value"`
	ChangePct    string `json:"change_pct"`
	IsUp         bool   `json:"is_up"`
}

type ProductMetric struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	Revenue   string `json:"revenue"`
	UnitsSold int    `json:"units_sold"`
}

type TimeSeriesPoint struct {
	Label   string    `json:"label"`
	From    time.Time `json:"from"`
	Revenue string    `json:"revenue"`
	Orders  int       `json:"orders"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// ConvertEntityReportToDto converts a report for JSON output; cur selects the
// rounding of monetary values.
func ConvertEntityReportToDto(r *entity.Report, cur string) *Report {
	if r == nil {
		return nil
	}
	amount := func(d decimal.Decimal) string {
		return currency.Round(d, cur).StringFixed(currency.DecimalPlaces(cur))
	}
	money := func(cv, pv decimal.Decimal, g entity.Growth) Metric {
		return Metric{Value: amount(cv), CompareValue: amount(pv), ChangePct: g.Pct.StringFixed(1), IsUp: g.IsUp}
	}
	count := func(cv, pv int, g entity.Growth) Metric {
		return Metric{Value: strconv.Itoa(cv), CompareValue: strconv.Itoa(pv), ChangePct: g.Pct.StringFixed(1), IsUp: g.IsUp}
	}

	c, p := r.Current, r.Previous
	out := &Report{
		Kind:            string(r.Period.Kind),
		Anchor:          r.Period.Anchor,
		Currency:        cur,
		Period:          TimeRange{From: r.Period.Current.From, To: r.Period.Current.To},
		ComparePeriod:   TimeRange{From: r.Period.Previous.From, To: r.Period.Previous.To},
		Revenue:         money(c.Revenue, p.Revenue, r.Growth.Revenue),
		OrdersCount:     count(c.OrderCount, p.OrderCount, r.Growth.OrderCount),
		CompletedOrders: count(c.CompletedCount, p.CompletedCount, r.Growth.CompletedCount),
		CancelledOrders: count(c.CancelledCount, p.CancelledCount, r.Growth.CancelledCount),
		AvgOrderValue:   money(c.AverageOrderValue, p.AverageOrderValue, r.Growth.AverageOrderValue),
		NewCustomers: Metric{
			Value:        r.NewCustomers.Value.String(),
			CompareValue: r.NewCustomers.CompareValue.String(),
			ChangePct:    r.NewCustomers.Growth.Pct.StringFixed(1),
			IsUp:         r.NewCustomers.Growth.IsUp,
		},
		CancellationRatePct: c.CancellationRatePct.StringFixed(1),
		ItemsSold:           c.ItemsSold,
		TopProducts:         make([]ProductMetric, 0, len(r.TopProducts)),
		Series:              make([]TimeSeriesPoint, 0, len(r.Series)),
		OrdersByStatus:      make([]StatusCount, 0, len(r.OrdersByStatus)),
		UnresolvedLineItems: r.UnresolvedLineItems,
		GeneratedAt:         r.GeneratedAt,
	}
	if c.PeakHour != entity.NoPeakHour {
		h := c.PeakHour
		out.PeakHour = &h
	}

	for _, pm := range r.TopProducts {
		out.TopProducts = append(out.TopProducts, ProductMetric{
			ProductID: pm.ProductID,
			Title:     pm.Title,
			Price:     amount(pm.Price),
			Revenue:   amount(pm.Revenue),
			UnitsSold: pm.UnitsSold,
		})
	}
	for _, pt := range r.Series {
		out.Series = append(out.Series, TimeSeriesPoint{
			Label:   pt.Label,
			From:    pt.From,
			Revenue: amount(pt.Revenue),
			Orders:  pt.Orders,
		})
	}
	for _, sc := range r.OrdersByStatus {
		out.OrdersByStatus = append(out.OrdersByStatus, StatusCount{Status: sc.Status.String(), Count: sc.Count})
	}
	return out
}
