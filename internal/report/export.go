package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/gemstore/analytics-manager/internal/currency"
	"github.com/gemstore/analytics-manager/internal/entity"
	gerr "github.com/gemstore/analytics-manager/internal/errors"
)

const (
	exportDateLayout  = "2006-01-02 15:04"
	exportContentType = "text/csv"
)

var exportHeader = []string{
	"Order ID",
	"Date",
	"Customer ID",
	"Customer Name",
	"Status",
	"Payment Status",
	"Amount",
	"Items Count",
}

// ExportCSV writes orders as a CSV table, one row per order in input order.
// Dates are formatted in loc, or in each timestamp's own location when loc is
// nil. Amounts are rounded to the minor units of cur. Fields are quoted as
// needed, so names containing commas or quotes keep the column count intact.
func ExportCSV(orders []entity.Order, cur string, loc *time.Location) ([]byte, error) {
	if len(orders) == 0 {
		return nil, gerr.NoDataForPeriod
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("can't write csv header: %w", err)
	}

	places := currency.DecimalPlaces(cur)
	for _, o := range orders {
		placed := o.Placed
		if loc != nil {
			placed = placed.In(loc)
		}
		row := []string{
			o.ID,
			placed.Format(exportDateLayout),
			o.CustomerID,
			o.CustomerName,
			o.Status.String(),
			string(o.PaymentStatus),
			currency.Round(o.TotalPrice, cur).StringFixed(places),
			strconv.Itoa(o.ItemsCount()),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("can't write csv row for order %s: %w", o.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("can't flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportFilename returns the download name of an export:
// {store}_analytics_{anchor}_{kind}.csv.
func ExportFilename(store, anchor string, kind entity.ReportKind) string {
	return fmt.Sprintf("%s_analytics_%s_%s.csv", slug(store), anchor, kind)
}

func slug(s string) string {
	var b strings.Builder
	underscore := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			underscore = false
			continue
		}
		if !underscore && b.Len() > 0 {
			b.WriteByte('_')
			underscore = true
		}
	}
	out := strings.TrimSuffix(b.String(), "_")
	if out == "" {
		return "store"
	}
	return out
}
