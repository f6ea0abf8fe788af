package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewLimiter(ctx, time.Minute, 2)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("1.1.1.1"))
	assert.Equal(t, 1, l.GetRemaining("1.1.1.1"))
	assert.True(t, l.Allow("1.1.1.1"))
	assert.False(t, l.Allow("1.1.1.1"))
	assert.Equal(t, 0, l.GetRemaining("1.1.1.1"))

	assert.True(t, l.Allow("2.2.2.2"))

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 2, l.GetRemaining("1.1.1.1"))
	assert.True(t, l.Allow("1.1.1.1"))

	l.sweep()
	assert.Len(t, l.counters, 1)
}

func TestMultiKeyLimiter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewMultiKeyLimiter(ctx, Config{ExportMax: 1, ArchiveMax: 1})

	assert.NoError(t, m.CheckExport("ip"))
	assert.Error(t, m.CheckExport("ip"))
	assert.NoError(t, m.CheckArchive("ip"))
	assert.Error(t, m.CheckArchive("ip"))

	exp, arc := m.GetExportLimits("other")
	assert.Equal(t, 1, exp)
	assert.Equal(t, 1, arc)
}
