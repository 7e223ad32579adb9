package base

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessingLogAppendAndSnapshot(t *testing.T) {
	plog := NewProcessingLog(0)
	plog.Append("registered transformation %s", "normalizeText")
	plog.Append("processed batch of %d records", 3)

	entries := plog.Snapshot()
	assert.Len(t, entries, 2)
	assert.Equal(t, "registered transformation normalizeText", entries[0].Message)
	assert.Equal(t, "processed batch of 3 records", entries[1].Message)
	assert.False(t, entries[0].Time.IsZero())

	plog.Clear()
	assert.Equal(t, 0, plog.Length())
}

func TestProcessingLogSizeCap(t *testing.T) {
	plog := NewProcessingLog(20)
	plog.Append("0123456789") // 10 bytes
	plog.Append("0123456789") // reaches cap
	plog.Append("dropped")
	plog.Append("dropped too")
	assert.Equal(t, 2, plog.Length())

	builder := &strings.Builder{}
	_, err := plog.WriteTo(builder)
	assert.NoError(t, err)
	assert.Contains(t, builder.String(), "2 more entries dropped over size cap")
}

func TestProcessingLogWriteTo(t *testing.T) {
	plog := NewProcessingLog(0)
	plog.Append("one")
	plog.Append("two")

	builder := &strings.Builder{}
	written, err := plog.WriteTo(builder)
	assert.NoError(t, err)
	assert.Equal(t, int64(builder.Len()), written)

	lines := strings.Split(strings.TrimRight(builder.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], " one"))
	assert.True(t, strings.HasSuffix(lines[1], " two"))
}
