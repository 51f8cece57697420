package audits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPruneEmptyRemovesEmptyValues(t *testing.T) {
	in := map[string]any{
		"keep":   "value",
		"nil":    nil,
		"empty":  "",
		"zero":   0.0,
		"list":   []any{"a", "", nil, []any{}},
		"nested": map[string]any{"inner": map[string]any{"gone": ""}},
	}

	out, ok := PruneEmpty(in).(map[string]any)
	require.True(t, ok)

	assert.Equal(t, "value", out["keep"])
	assert.Equal(t, 0.0, out["zero"], "numeric zero is not empty")
	assert.NotContains(t, out, "nil")
	assert.NotContains(t, out, "empty")
	assert.NotContains(t, out, "nested", "map emptied by pruning is removed")
	assert.Equal(t, []any{"a"}, out["list"])
}

func TestPruneEmptyIdempotent(t *testing.T) {
	in := map[string]any{
		"a": []any{map[string]any{"x": nil, "y": "v"}, ""},
		"b": map[string]any{"c": []any{}},
	}
	once := PruneEmpty(in)
	twice := PruneEmpty(once)
	assert.Equal(t, once, twice)
}

func TestPruneEmptyWholeValueGone(t *testing.T) {
	assert.Nil(t, PruneEmpty(map[string]any{"a": "", "b": nil}))
	assert.Nil(t, PruneEmpty([]any{nil, ""}))
	assert.Nil(t, PruneEmpty(""))
}

func TestPruneEmptyPreservesSequenceOrder(t *testing.T) {
	in := []any{"first", nil, "second", "", "third"}
	assert.Equal(t, []any{"first", "second", "third"}, PruneEmpty(in))
}

func TestPruneEmptyDoesNotMutateInput(t *testing.T) {
	in := map[string]any{"a": "", "b": "keep"}
	PruneEmpty(in)
	assert.Contains(t, in, "a")
}

func TestStripKeyAtEveryDepth(t *testing.T) {
	in := map[string]any{
		"description": "top",
		"child": map[string]any{
			"description": "mid",
			"list": []any{
				map[string]any{"description": "deep", "keep": 1},
			},
		},
	}

	out, ok := StripKey(in, "description").(map[string]any)
	require.True(t, ok)

	assert.NotContains(t, out, "description")
	child := out["child"].(map[string]any)
	assert.NotContains(t, child, "description")
	item := child["list"].([]any)[0].(map[string]any)
	assert.NotContains(t, item, "description")
	assert.Equal(t, 1, item["keep"])

	// input untouched
	assert.Contains(t, in, "description")
}

func TestStripKeysSet(t *testing.T) {
	in := map[string]any{
		"details":  map[string]any{"items": []any{1, 2}},
		"warnings": []any{"w"},
		"title":    "t",
	}
	out := StripKeys(in, []string{"details", "warnings"}).(map[string]any)
	assert.Equal(t, map[string]any{"title": "t"}, out)
}
