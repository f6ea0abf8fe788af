package mail

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/gemstore/analytics-manager/internal/currency"
	"github.com/gemstore/analytics-manager/internal/entity"
	gerr "github.com/gemstore/analytics-manager/internal/errors"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shopspring/decimal"
)

const ReportDigest = "report_digest.gohtml"

const mailDateLayout = "2 Jan 2006"

type metricRow struct {
	Label   string
	Value   string
	Compare string
	Change  string
	Up      bool
}

type productRow struct {
	Rank    int
	Title   string
	Units   int
	Revenue string
}

type reportData struct {
	StoreName        string
	Title            string
	Period           string
	ComparePeriod    string
	Metrics          []metricRow
	CancellationRate string
	ItemsSold        int
	PeakHour         string
	TopProducts      []productRow
	Unresolved       int
	Attachment       string
}

// SendReport mails the report to every recipient in to. The CSV export is
// attached when export is not nil.
func (m *Mailer) SendReport(ctx context.Context, to []string, rep *entity.Report, export *entity.ReportExport) error {
	if rep == nil || len(to) == 0 {
		return gerr.BadMailRequest
	}

	data := m.reportData(rep, export)
	html, err := m.render(ReportDigest, data)
	if err != nil {
		return err
	}

	msg := mail.NewV3Mail()
	msg.SetFrom(m.from)
	msg.Subject = fmt.Sprintf("%s: %s", m.storeName, data.Title)

	p := mail.NewPersonalization()
	for _, addr := range to {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			continue
		}
		p.AddTos(mail.NewEmail("", addr))
	}
	if len(p.To) == 0 {
		return gerr.BadMailRequest
	}
	msg.AddPersonalizations(p)
	msg.AddContent(mail.NewContent("text/html", html))

	if m.c.ReplyTo != "" {
		msg.SetReplyTo(mail.NewEmail("", m.c.ReplyTo))
	}

	if export != nil && len(export.Content) > 0 {
		a := mail.NewAttachment()
		a.SetContent(base64.StdEncoding.EncodeToString(export.Content))
		a.SetType(export.ContentType)
		a.SetFilename(export.Filename)
		a.SetDisposition("attachment")
		msg.AddAttachment(a)
	}

	return m.send(ctx, msg)
}

func (m *Mailer) reportData(rep *entity.Report, export *entity.ReportExport) reportData {
	money := func(d decimal.Decimal) string { return currency.Format(d, m.currency) }
	count := func(n int) string { return strconv.Itoa(n) }
	row := func(label, value, compare string, g entity.Growth) metricRow {
		return metricRow{Label: label, Value: value, Compare: compare, Change: currency.FormatPct(g.Pct), Up: g.IsUp}
	}

	c, p, g := rep.Current, rep.Previous, rep.Growth
	d := reportData{
		StoreName:     m.storeName,
		Title:         reportTitle(rep.Period),
		Period:        formatRange(rep.Period.Current),
		ComparePeriod: formatRange(rep.Period.Previous),
		Metrics: []metricRow{
			row("Revenue", money(c.Revenue), money(p.Revenue), g.Revenue),
			row("Orders", count(c.OrderCount), count(p.OrderCount), g.OrderCount),
			row("Average order value", money(c.AverageOrderValue), money(p.AverageOrderValue), g.AverageOrderValue),
			row("Completed orders", count(c.CompletedCount), count(p.CompletedCount), g.CompletedCount),
			row("Cancelled orders", count(c.CancelledCount), count(p.CancelledCount), g.CancelledCount),
			row("New customers", rep.NewCustomers.Value.String(), rep.NewCustomers.CompareValue.String(), rep.NewCustomers.Growth),
		},
		CancellationRate: currency.FormatPct(c.CancellationRatePct),
		ItemsSold:        c.ItemsSold,
		PeakHour:         "n/a",
		Unresolved:       rep.UnresolvedLineItems,
	}
	if c.PeakHour != entity.NoPeakHour {
		d.PeakHour = fmt.Sprintf("%02d:00", c.PeakHour)
	}
	for i, pm := range rep.TopProducts {
		d.TopProducts = append(d.TopProducts, productRow{
			Rank:    i + 1,
			Title:   pm.Title,
			Units:   pm.UnitsSold,
			Revenue: money(pm.Revenue),
		})
	}
	if export != nil && len(export.Content) > 0 {
		d.Attachment = export.Filename
	}
	return d
}

func reportTitle(p entity.Period) string {
	kind := string(p.Kind)
	if kind == "" {
		kind = "custom"
	}
	return fmt.Sprintf("%s%s report %s", strings.ToUpper(kind[:1]), kind[1:], p.Anchor)
}

// formatRange renders the half-open window as an inclusive date range.
func formatRange(tr entity.TimeRange) string {
	last := tr.To.AddDate(0, 0, -1)
	if !last.After(tr.From) {
		return tr.From.Format(mailDateLayout)
	}
	return fmt.Sprintf("%s to %s", tr.From.Format(mailDateLayout), last.Format(mailDateLayout))
}
