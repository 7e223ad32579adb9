package base

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeepCopyRecord(t *testing.T) {
	source := Record{
		"name": "Tester",
		"metadata": map[string]any{
			"source": "import",
			"tags":   []any{"a", "b"},
		},
	}
	copied := DeepCopyRecord(source)
	assert.Equal(t, source, copied)

	copied["name"] = "Changed"
	copied["metadata"].(map[string]any)["source"] = "changed"
	copied["metadata"].(map[string]any)["tags"].([]any)[0] = "z"

	assert.Equal(t, "Tester", source["name"])
	assert.Equal(t, "import", source["metadata"].(map[string]any)["source"])
	assert.Equal(t, "a", source["metadata"].(map[string]any)["tags"].([]any)[0])
}

func TestRenderString(t *testing.T) {
	assert.Equal(t, "", RenderString(nil))
	assert.Equal(t, "hello", RenderString("hello"))
	assert.Equal(t, "true", RenderString(true))
	assert.Equal(t, "1234.5", RenderString(1234.5))
	assert.Equal(t, "42", RenderString(42))
	assert.Equal(t, "2023-06-15T00:00:00Z", RenderString(time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)))
}

func TestToFloat(t *testing.T) {
	value, ok := ToFloat(1234.5)
	assert.True(t, ok)
	assert.Equal(t, 1234.5, value)

	value, ok = ToFloat("12.5")
	assert.True(t, ok)
	assert.Equal(t, 12.5, value)

	_, ok = ToFloat("not a number")
	assert.False(t, ok)
	_, ok = ToFloat(nil)
	assert.False(t, ok)
}
