package report

import (
	"testing"
	"time"

	"github.com/gemstore/analytics-manager/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumSeries(points []entity.TimeSeriesPoint) (decimal.Decimal, int) {
	sum, n := decimal.Zero, 0
	for _, p := range points {
		sum = sum.Add(p.Revenue)
		n += p.Orders
	}
	return sum, n
}

func TestBuildSeriesYearly(t *testing.T) {
	p, err := ResolvePeriod(entity.ReportYearly, "2024", "", time.Now(), time.UTC)
	require.NoError(t, err)

	orders := []entity.Order{
		order("1", "2024-01-31 23:59", "10", entity.Delivered),
		order("2", "2024-03-15 12:00", "20", entity.Delivered),
		order("3", "2024-12-31 23:00", "30", entity.Delivered),
	}

	points := BuildSeries(orders, p.Current, p.Kind)
	require.Len(t, points, 12)
	assert.Equal(t, "Jan", points[0].Label)
	assert.Equal(t, "Dec", points[11].Label)
	assert.Equal(t, "10", points[0].Revenue.String())
	assert.True(t, points[1].Revenue.IsZero())
	assert.Equal(t, "20", points[2].Revenue.String())
	assert.Equal(t, 1, points[11].Orders)

	sum, n := sumSeries(points)
	assert.True(t, sum.Equal(Aggregate(orders).Revenue))
	assert.Equal(t, 3, n)
}

func TestBuildSeriesMonthly(t *testing.T) {
	p, err := ResolvePeriod(entity.ReportMonthly, "2024-03", "", time.Now(), time.UTC)
	require.NoError(t, err)

	orders := []entity.Order{
		order("1", "2024-03-01 00:00", "1000", entity.Delivered),
		order("2", "2024-03-02 09:00", "2000", entity.Cancelled),
		order("3", "2024-03-31 23:59", "3000", entity.Delivered),
	}

	points := BuildSeries(orders, p.Current, p.Kind)

	// 31 days grouped by two
	require.Len(t, points, 16)
	assert.Equal(t, "1/3", points[0].Label)
	assert.Equal(t, "3/3", points[1].Label)
	assert.Equal(t, "31/3", points[15].Label)
	assert.Equal(t, "3000", points[0].Revenue.String())
	assert.Equal(t, 2, points[0].Orders)
	assert.Equal(t, "3000", points[15].Revenue.String())

	sum, _ := sumSeries(points)
	assert.True(t, sum.Equal(Aggregate(orders).Revenue))
}

func TestBuildSeriesShortWindow(t *testing.T) {
	p, err := ResolvePeriod(entity.ReportCustom, "2024-02-01", "2024-02-29", time.Now(), time.UTC)
	require.NoError(t, err)

	points := BuildSeries(nil, p.Current, p.Kind)
	require.Len(t, points, 29)
	assert.Equal(t, "29/2", points[28].Label)
	for _, pt := range points {
		assert.True(t, pt.Revenue.IsZero())
	}

	daily, err := ResolvePeriod(entity.ReportDaily, "2024-02-10", "", time.Now(), time.UTC)
	require.NoError(t, err)
	assert.Len(t, BuildSeries(nil, daily.Current, daily.Kind), 1)
}

func TestBuildSeriesBucketCap(t *testing.T) {
	p, err := ResolvePeriod(entity.ReportCustom, "2024-01-01", "2024-12-31", time.Now(), time.UTC)
	require.NoError(t, err)

	orders := []entity.Order{
		order("1", "2024-01-01 00:00", "1", entity.Delivered),
		order("2", "2024-06-30 12:00", "2", entity.Delivered),
		order("3", "2024-12-31 23:59", "4", entity.Delivered),
	}

	points := BuildSeries(orders, p.Current, p.Kind)
	assert.LessOrEqual(t, len(points), maxDayBuckets)

	sum, n := sumSeries(points)
	assert.Equal(t, "7", sum.String())
	assert.Equal(t, 3, n)
}
