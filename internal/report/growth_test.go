package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrowth(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		previous string
		pct      string
		up       bool
	}{
		{name: "halved", current: "100", previous: "200", pct: "50", up: false},
		{name: "increase", current: "150", previous: "100", pct: "50", up: true},
		{name: "unchanged", current: "100", previous: "100", pct: "0", up: true},
		{name: "from zero", current: "5", previous: "0", pct: "100", up: true},
		{name: "both zero", current: "0", previous: "0", pct: "0", up: true},
		{name: "to zero", current: "0", previous: "40", pct: "100", up: false},
		{name: "rounded", current: "1", previous: "3", pct: "66.7", up: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Growth(dec(tt.current), dec(tt.previous))
			assert.Equal(t, tt.pct, g.Pct.String())
			assert.Equal(t, tt.up, g.IsUp)
			assert.False(t, g.Pct.IsNegative())
		})
	}
}

func TestGrowthInt(t *testing.T) {
	g := GrowthInt(3, 4)
	assert.Equal(t, "25", g.Pct.String())
	assert.False(t, g.IsUp)
}
