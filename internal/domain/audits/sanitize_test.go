package audits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sanitizeFixture() RawReport {
	imageAlt := check("Image elements do not have alt attributes", 0.0, ModeBinary, evidenceItems(7))
	imageAlt["description"] = "Informative text with [links](https://example.com)."
	return RawReport{
		"finalUrl": "https://example.com",
		"i18n":     map[string]any{"rendererFormattedStrings": map[string]any{"varianceDisclaimer": "x"}},
		"timing":   map[string]any{"total": 1234.5},
		"audits": map[string]any{
			"screenshot-thumbnails": check("Thumbnails", 0.0, ModeBinary, evidenceItems(2)),
			"passing-check":         check("Passing", 1.0, ModeBinary, nil),
			"image-alt":             imageAlt,
			"unscoreable":           check("Unscoreable", nil, ModeBinary, nil),
		},
		"categories": map[string]any{
			"accessibility": map[string]any{
				"title":     "Accessibility",
				"auditRefs": []any{map[string]any{"id": "image-alt"}},
			},
			"performance": map[string]any{"title": "Performance", "score": 0.4},
		},
	}
}

func TestSanitizeTree(t *testing.T) {
	raw := sanitizeFixture()
	out := SanitizeTree(raw)

	assert.NotContains(t, out, "i18n")
	assert.NotContains(t, out, "timing")
	assert.Equal(t, "https://example.com", out["finalUrl"])

	checks, ok := asMap(out["audits"])
	require.True(t, ok)
	assert.NotContains(t, checks, "screenshot-thumbnails")
	assert.NotContains(t, checks, "passing-check")
	assert.Contains(t, checks, "unscoreable")

	entry, ok := asMap(checks["image-alt"])
	require.True(t, ok)
	assert.NotContains(t, entry, "description")

	det, ok := asMap(entry["details"])
	require.True(t, ok)
	items, ok := det["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 5)
	first, ok := asMap(items[0])
	require.True(t, ok)
	assert.Equal(t, "node-0", first["node"])
	assert.Equal(t, "#el-0", first["selector"])

	cats, ok := asMap(out["categories"])
	require.True(t, ok)
	assert.NotContains(t, cats, "performance")
	assert.Contains(t, cats, "accessibility")
}

func TestSanitizeTreeDoesNotMutateInput(t *testing.T) {
	raw := sanitizeFixture()
	SanitizeTree(raw)

	assert.Contains(t, raw, "i18n")
	assert.Contains(t, raw, "timing")

	checks, _ := asMap(raw["audits"])
	assert.Contains(t, checks, "screenshot-thumbnails")
	assert.Contains(t, checks, "passing-check")

	rec, ok := raw.Check("image-alt")
	require.True(t, ok)
	assert.Len(t, rec.Details.Items, 7, "original evidence list stays full length")
	assert.NotEmpty(t, rec.Description)

	cats, _ := asMap(raw["categories"])
	assert.Contains(t, cats, "performance")
}

func TestFilteredTree(t *testing.T) {
	pruned := SanitizeTree(sanitizeFixture())
	out := FilteredTree(pruned)

	checks, ok := asMap(out["audits"])
	require.True(t, ok)
	entry, ok := asMap(checks["image-alt"])
	require.True(t, ok)
	assert.NotContains(t, entry, "details")
	assert.Equal(t, "Image elements do not have alt attributes", entry["title"])

	// the sanitized original keeps its evidence
	prunedChecks, _ := asMap(pruned["audits"])
	prunedEntry, _ := asMap(prunedChecks["image-alt"])
	assert.Contains(t, prunedEntry, "details")
}
