package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportKind selects how a reporting period is derived from its anchor.
type ReportKind string

const (
	ReportDaily   ReportKind = "daily"
	ReportMonthly ReportKind = "monthly"
	ReportYearly  ReportKind = "yearly"
	ReportCustom  ReportKind = "custom"
)

// ValidReportKinds is a set of valid report kinds
var ValidReportKinds = map[ReportKind]bool{
	ReportDaily:   true,
	ReportMonthly: true,
	ReportYearly:  true,
	ReportCustom:  true,
}

// TimeRange is a half-open interval [From, To).
type TimeRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t lies in [From, To).
func (tr TimeRange) Contains(t time.Time) bool {
	return !t.Before(tr.From) && t.Before(tr.To)
}

// Duration returns To - From.
func (tr TimeRange) Duration() time.Duration {
	return tr.To.Sub(tr.From)
}

// Period is the current reporting window plus the window it is compared to.
// It is derived per request and never persisted.
type Period struct {
	Kind     ReportKind
	Anchor   string
	Current  TimeRange
	Previous TimeRange
}

// ReportRequest selects the report to compute. Empty anchors default to the
// period containing the current time.
type ReportRequest struct {
	Kind      ReportKind
	Anchor    string
	EndAnchor string
}

// NoPeakHour marks an empty order set in SalesMetrics.PeakHour.
const NoPeakHour = -1

// SalesMetrics contains scalar metrics reduced from one window's orders.
type SalesMetrics struct {
	Revenue             decimal.Decimal
	OrderCount          int
	AverageOrderValue   decimal.Decimal
	CompletedCount      int
	CancelledCount      int
	CancellationRatePct decimal.Decimal
	ItemsSold           int
	PeakHour            int
}

// Growth is a period-over-period change. Pct is always non-negative; the
// direction is carried by IsUp only.
type Growth struct {
	Pct  decimal.Decimal
	IsUp bool
}

type MetricWithComparison struct {
	Value        decimal.Decimal
	CompareValue decimal.Decimal
	Growth       Growth
}

// SalesGrowth holds growth per comparable sales metric.
type SalesGrowth struct {
	Revenue           Growth
	OrderCount        Growth
	AverageOrderValue Growth
	CompletedCount    Growth
	CancelledCount    Growth
}

type ProductMetric struct {
	ProductID string
	Title     string
	Price     decimal.Decimal
	Revenue   decimal.Decimal
	UnitsSold int
}

type StatusCount struct {
	Status OrderStatusName
	Count  int
}

// TimeSeriesPoint is one chart bucket starting at From.
type TimeSeriesPoint struct {
	Label   string
	From    time.Time
	Revenue decimal.Decimal
	Orders  int
}

// Report contains all computed analytics for a reporting period. A new Report
// is computed per request and not modified afterwards.
type Report struct {
	Period              Period
	Current             SalesMetrics
	Previous            SalesMetrics
	Growth              SalesGrowth
	NewCustomers        MetricWithComparison
	TopProducts         []ProductMetric
	Series              []TimeSeriesPoint
	OrdersByStatus      []StatusCount
	FilteredOrderCount  int
	UnresolvedLineItems int
	GeneratedAt         time.Time
}

// ReportExport is a serialized order table ready to be downloaded or archived.
type ReportExport struct {
	Filename    string
	ContentType string
	Content     []byte
	Rows        int
}

// ArchivedReport is an export stored in object storage.
type ArchivedReport struct {
	Key          string
	URL          string
	Size         int64
	LastModified time.Time
}
