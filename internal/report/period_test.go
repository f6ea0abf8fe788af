package report

import (
	"testing"
	"time"

	"github.com/gemstore/analytics-manager/internal/entity"
	gerr "github.com/gemstore/analytics-manager/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriod(t *testing.T) {
	now := at("2024-06-15 10:30")

	tests := []struct {
		name      string
		kind      entity.ReportKind
		anchor    string
		end       string
		anchorOut string
		current   entity.TimeRange
		previous  entity.TimeRange
	}{
		{
			name:      "daily",
			kind:      entity.ReportDaily,
			anchor:    "2024-03-01",
			anchorOut: "2024-03-01",
			current:   entity.TimeRange{From: at("2024-03-01 00:00"), To: at("2024-03-02 00:00")},
			previous:  entity.TimeRange{From: at("2024-02-29 00:00"), To: at("2024-03-01 00:00")},
		},
		{
			name:      "monthly",
			kind:      entity.ReportMonthly,
			anchor:    "2024-03",
			anchorOut: "2024-03",
			current:   entity.TimeRange{From: at("2024-03-01 00:00"), To: at("2024-04-01 00:00")},
			previous:  entity.TimeRange{From: at("2024-02-01 00:00"), To: at("2024-03-01 00:00")},
		},
		{
			name:      "monthly january rolls back a year",
			kind:      entity.ReportMonthly,
			anchor:    "2024-01",
			anchorOut: "2024-01",
			current:   entity.TimeRange{From: at("2024-01-01 00:00"), To: at("2024-02-01 00:00")},
			previous:  entity.TimeRange{From: at("2023-12-01 00:00"), To: at("2024-01-01 00:00")},
		},
		{
			name:      "yearly",
			kind:      entity.ReportYearly,
			anchor:    "2024",
			anchorOut: "2024",
			current:   entity.TimeRange{From: at("2024-01-01 00:00"), To: at("2025-01-01 00:00")},
			previous:  entity.TimeRange{From: at("2023-01-01 00:00"), To: at("2024-01-01 00:00")},
		},
		{
			name:      "custom single day",
			kind:      entity.ReportCustom,
			anchor:    "2024-03-10",
			anchorOut: "2024-03-10",
			current:   entity.TimeRange{From: at("2024-03-10 00:00"), To: at("2024-03-11 00:00")},
			previous:  entity.TimeRange{From: at("2024-03-09 00:00"), To: at("2024-03-10 00:00")},
		},
		{
			name:      "custom range uses equal length baseline",
			kind:      entity.ReportCustom,
			anchor:    "2024-03-01",
			end:       "2024-03-15",
			anchorOut: "2024-03-01_2024-03-15",
			current:   entity.TimeRange{From: at("2024-03-01 00:00"), To: at("2024-03-16 00:00")},
			previous:  entity.TimeRange{From: at("2024-02-15 00:00"), To: at("2024-03-01 00:00")},
		},
		{
			name:      "empty anchor defaults to now",
			kind:      entity.ReportMonthly,
			anchorOut: "2024-06",
			current:   entity.TimeRange{From: at("2024-06-01 00:00"), To: at("2024-07-01 00:00")},
			previous:  entity.TimeRange{From: at("2024-05-01 00:00"), To: at("2024-06-01 00:00")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ResolvePeriod(tt.kind, tt.anchor, tt.end, now, time.UTC)
			require.NoError(t, err)

			assert.Equal(t, tt.kind, p.Kind)
			assert.Equal(t, tt.anchorOut, p.Anchor)
			assert.True(t, tt.current.From.Equal(p.Current.From), "current from %s", p.Current.From)
			assert.True(t, tt.current.To.Equal(p.Current.To), "current to %s", p.Current.To)
			assert.True(t, tt.previous.From.Equal(p.Previous.From), "previous from %s", p.Previous.From)
			assert.True(t, tt.previous.To.Equal(p.Previous.To), "previous to %s", p.Previous.To)

			// the comparison window ends where the current one starts
			assert.True(t, p.Previous.To.Equal(p.Current.From))
			assert.True(t, p.Current.From.Before(p.Current.To))
		})
	}
}

func TestResolvePeriodInvalid(t *testing.T) {
	now := at("2024-06-15 10:30")

	tests := []struct {
		name   string
		kind   entity.ReportKind
		anchor string
		end    string
		want   error
	}{
		{name: "month for daily", kind: entity.ReportDaily, anchor: "2024-03", want: gerr.InvalidPeriodAnchor},
		{name: "garbage", kind: entity.ReportDaily, anchor: "yesterday", want: gerr.InvalidPeriodAnchor},
		{name: "month out of range", kind: entity.ReportMonthly, anchor: "2024-13", want: gerr.InvalidPeriodAnchor},
		{name: "single digit month", kind: entity.ReportMonthly, anchor: "2024-3", want: gerr.InvalidPeriodAnchor},
		{name: "short year", kind: entity.ReportYearly, anchor: "24", want: gerr.InvalidPeriodAnchor},
		{name: "no february 30", kind: entity.ReportDaily, anchor: "2024-02-30", want: gerr.InvalidPeriodAnchor},
		{name: "custom end before start", kind: entity.ReportCustom, anchor: "2024-03-10", end: "2024-03-01", want: gerr.InvalidPeriodAnchor},
		{name: "custom bad end", kind: entity.ReportCustom, anchor: "2024-03-10", end: "2024-03", want: gerr.InvalidPeriodAnchor},
		{name: "unknown kind", kind: entity.ReportKind("weekly"), anchor: "2024-03-10", want: gerr.InvalidReportRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolvePeriod(tt.kind, tt.anchor, tt.end, now, time.UTC)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestResolvePeriodLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)

	p, err := ResolvePeriod(entity.ReportDaily, "2024-03-01", "", time.Now(), loc)
	require.NoError(t, err)

	assert.True(t, p.Current.From.Equal(at("2024-02-29 22:00")))
	assert.True(t, p.Current.To.Equal(at("2024-03-01 22:00")))
}

func TestPreviousAnchor(t *testing.T) {
	now := at("2024-01-01 03:00")

	assert.Equal(t, "2023-12-31", PreviousAnchor(entity.ReportDaily, now))
	assert.Equal(t, "2023-12", PreviousAnchor(entity.ReportMonthly, now))
	assert.Equal(t, "2023", PreviousAnchor(entity.ReportYearly, now))
	assert.Equal(t, "2023-12-31", PreviousAnchor(entity.ReportCustom, now))
}

func TestAnchorRange(t *testing.T) {
	got, err := AnchorRange(entity.ReportMonthly, "2023-11", "2024-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"2023-11", "2023-12", "2024-01", "2024-02"}, got)

	got, err = AnchorRange(entity.ReportDaily, "2024-02-28", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-02-28", "2024-02-29", "2024-03-01"}, got)

	got, err = AnchorRange(entity.ReportYearly, "2024", "2024")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024"}, got)

	_, err = AnchorRange(entity.ReportCustom, "2024-01-01", "2024-01-02")
	assert.ErrorIs(t, err, gerr.InvalidReportRequest)

	_, err = AnchorRange(entity.ReportMonthly, "2024-03", "2024-01")
	assert.ErrorIs(t, err, gerr.InvalidPeriodAnchor)

	_, err = AnchorRange(entity.ReportDaily, "2020-01-01", "2024-01-01")
	assert.ErrorIs(t, err, gerr.InvalidPeriodAnchor)
}
