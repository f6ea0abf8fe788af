package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/gemstore/analytics-manager/internal/entity"
	gerr "github.com/gemstore/analytics-manager/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV(t *testing.T) {
	o1 := order("A-1", "2024-03-05 09:07", "1000", entity.Delivered, item("p1", 2, "300"), item("p2", 1, "400"))
	o1.CustomerID = "u1"
	o1.CustomerName = `Doe, Jane "JD"`
	o2 := order("A-2", "2024-03-06 18:30", "19.999", entity.Cancelled)
	o2.PaymentStatus = entity.PaymentRefunded

	content, err := ExportCSV([]entity.Order{o1, o2}, "EUR", nil)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, exportHeader, rows[0])
	assert.Equal(t, []string{"A-1", "2024-03-05 09:07", "u1", `Doe, Jane "JD"`, "Delivered", "paid", "1000.00", "3"}, rows[1])
	assert.Equal(t, []string{"A-2", "2024-03-06 18:30", "", "Guest", "Cancelled", "refunded", "20.00", "0"}, rows[2])
}

func TestExportCSVZeroDecimalCurrency(t *testing.T) {
	content, err := ExportCSV([]entity.Order{order("1", "2024-03-05 09:07", "1500.4", entity.Pending)}, "JPY", nil)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "1500", rows[1][6])
}

func TestExportCSVLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	content, err := ExportCSV([]entity.Order{order("1", "2024-03-05 15:00", "10", entity.Pending)}, "EUR", loc)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05 10:00", rows[1][1])
}

func TestExportCSVEmpty(t *testing.T) {
	content, err := ExportCSV(nil, "EUR", time.UTC)
	assert.ErrorIs(t, err, gerr.NoDataForPeriod)
	assert.Nil(t, content)
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "my_shop_analytics_2024-03_monthly.csv", ExportFilename("My Shop", "2024-03", entity.ReportMonthly))
	assert.Equal(t, "gems_co_analytics_2024_yearly.csv", ExportFilename(" Gems & Co. ", "2024", entity.ReportYearly))
	assert.Equal(t, "store_analytics_2024-03-01_daily.csv", ExportFilename("", "2024-03-01", entity.ReportDaily))
}
