package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/gemstore/analytics-manager/internal/entity"
	gerr "github.com/gemstore/analytics-manager/internal/errors"
)

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
	yearLayout  = "2006"
)

// ResolvePeriod computes the current and comparison windows for a report.
//
// Anchors are a day (YYYY-MM-DD) for daily and custom reports, a month
// (YYYY-MM) for monthly and a year (YYYY) for yearly. An empty anchor defaults
// to the period containing now. For custom reports endAnchor is an inclusive
// end day; without it the window is the single start day. The comparison
// window of a custom report is the equal-length window immediately preceding
// its start.
func ResolvePeriod(kind entity.ReportKind, anchor, endAnchor string, now time.Time, loc *time.Location) (entity.Period, error) {
	if loc == nil {
		loc = time.UTC
	}
	if !entity.ValidReportKinds[kind] {
		return entity.Period{}, fmt.Errorf("%w: unknown report kind %q", gerr.InvalidReportRequest, kind)
	}

	anchor = strings.TrimSpace(anchor)
	endAnchor = strings.TrimSpace(endAnchor)
	if anchor == "" {
		anchor = defaultAnchor(kind, now.In(loc))
	}

	p := entity.Period{
		Kind:   kind,
		Anchor: anchor,
	}

	switch kind {
	case entity.ReportDaily:
		d, err := parseAnchor(dayLayout, anchor, loc)
		if err != nil {
			return entity.Period{}, err
		}
		p.Current = entity.TimeRange{From: d, To: d.AddDate(0, 0, 1)}
		p.Previous = entity.TimeRange{From: d.AddDate(0, 0, -1), To: d}

	case entity.ReportMonthly:
		m, err := parseAnchor(monthLayout, anchor, loc)
		if err != nil {
			return entity.Period{}, err
		}
		p.Current = entity.TimeRange{From: m, To: m.AddDate(0, 1, 0)}
		p.Previous = entity.TimeRange{From: m.AddDate(0, -1, 0), To: m}

	case entity.ReportYearly:
		y, err := parseAnchor(yearLayout, anchor, loc)
		if err != nil {
			return entity.Period{}, err
		}
		p.Current = entity.TimeRange{From: y, To: y.AddDate(1, 0, 0)}
		p.Previous = entity.TimeRange{From: y.AddDate(-1, 0, 0), To: y}

	case entity.ReportCustom:
		start, err := parseAnchor(dayLayout, anchor, loc)
		if err != nil {
			return entity.Period{}, err
		}
		end := start.AddDate(0, 0, 1)
		if endAnchor != "" {
			e, err := parseAnchor(dayLayout, endAnchor, loc)
			if err != nil {
				return entity.Period{}, err
			}
			if e.Before(start) {
				return entity.Period{}, fmt.Errorf("%w: end %s is before start %s", gerr.InvalidPeriodAnchor, endAnchor, anchor)
			}
			end = e.AddDate(0, 0, 1)
			p.Anchor = anchor + "_" + endAnchor
		}
		days := calendarDays(start, end)
		p.Current = entity.TimeRange{From: start, To: end}
		p.Previous = entity.TimeRange{From: start.AddDate(0, 0, -days), To: start}
	}

	return p, nil
}

func parseAnchor(layout, anchor string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(layout, anchor, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q does not match %s", gerr.InvalidPeriodAnchor, anchor, layout)
	}
	return t, nil
}

func defaultAnchor(kind entity.ReportKind, now time.Time) string {
	switch kind {
	case entity.ReportMonthly:
		return now.Format(monthLayout)
	case entity.ReportYearly:
		return now.Format(yearLayout)
	default:
		return now.Format(dayLayout)
	}
}

// maxAnchorRange bounds the number of periods AnchorRange yields.
const maxAnchorRange = 1000

// AnchorRange lists the anchors of consecutive daily, monthly or yearly
// periods from from to to, both inclusive.
func AnchorRange(kind entity.ReportKind, from, to string) ([]string, error) {
	var layout string
	var step func(time.Time) time.Time
	switch kind {
	case entity.ReportDaily:
		layout, step = dayLayout, func(t time.Time) time.Time { return t.AddDate(0, 0, 1) }
	case entity.ReportMonthly:
		layout, step = monthLayout, func(t time.Time) time.Time { return t.AddDate(0, 1, 0) }
	case entity.ReportYearly:
		layout, step = yearLayout, func(t time.Time) time.Time { return t.AddDate(1, 0, 0) }
	default:
		return nil, fmt.Errorf("%w: no anchor range for %q reports", gerr.InvalidReportRequest, kind)
	}

	start, err := parseAnchor(layout, strings.TrimSpace(from), time.UTC)
	if err != nil {
		return nil, err
	}
	end, err := parseAnchor(layout, strings.TrimSpace(to), time.UTC)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s is before %s", gerr.InvalidPeriodAnchor, to, from)
	}

	anchors := []string{}
	for t := start; !t.After(end); t = step(t) {
		if len(anchors) == maxAnchorRange {
			return nil, fmt.Errorf("%w: more than %d periods between %s and %s", gerr.InvalidPeriodAnchor, maxAnchorRange, from, to)
		}
		anchors = append(anchors, t.Format(layout))
	}
	return anchors, nil
}

// PreviousAnchor returns the anchor of the last complete period of the given
// kind before now. Custom reports fall back to the previous day.
func PreviousAnchor(kind entity.ReportKind, now time.Time) string {
	switch kind {
	case entity.ReportMonthly:
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return m.AddDate(0, -1, 0).Format(monthLayout)
	case entity.ReportYearly:
		return fmt.Sprintf("%04d", now.Year()-1)
	default:
		d := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return d.AddDate(0, 0, -1).Format(dayLayout)
	}
}

// calendarDays returns the number of calendar days from the date of a to the
// date of b, ignoring the wall clock and DST shifts.
func calendarDays(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}
