package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewWithWriter(buf, Config{Level: 4})

	l.Info("dropped")
	assert.Zero(t, buf.Len())

	l.Warn("kept", "anchor", "2024-03")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "2024-03", rec["anchor"])
	assert.NotContains(t, rec, "source")

	buf.Reset()
	NewWithWriter(buf, Config{AddSource: true}).Info("with source")
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Contains(t, rec, "source")
}
