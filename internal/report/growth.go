package report

import (
	"github.com/gemstore/analytics-manager/internal/entity"
	"github.com/shopspring/decimal"
)

// Growth computes the period-over-period change from previous to current.
// A zero previous value yields 100% up for a positive current value and 0%
// when both are zero. Pct is the magnitude rounded to one decimal place.
func Growth(current, previous decimal.Decimal) entity.Growth {
	if previous.IsZero() {
		switch current.Sign() {
		case 0:
			return entity.Growth{Pct: decimal.Zero, IsUp: true}
		case 1:
			return entity.Growth{Pct: hundred, IsUp: true}
		default:
			return entity.Growth{Pct: hundred, IsUp: false}
		}
	}
	g := current.Sub(previous).Div(previous.Abs()).Mul(hundred)
	return entity.Growth{
		Pct:  g.Abs().Round(1),
		IsUp: g.Sign() >= 0,
	}
}

// GrowthInt is Growth for counters.
func GrowthInt(current, previous int) entity.Growth {
	return Growth(decimal.NewFromInt(int64(current)), decimal.NewFromInt(int64(previous)))
}
