package audits

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRaw assembles a minimal raw tree with one accessibility category.
func buildRaw(refs []string, checks map[string]any) RawReport {
	auditRefs := make([]any, 0, len(refs))
	for _, id := range refs {
		auditRefs = append(auditRefs, map[string]any{"id": id})
	}
	return RawReport{
		"categories": map[string]any{
			"accessibility": map[string]any{"auditRefs": auditRefs},
		},
		"audits": checks,
	}
}

func check(title string, score any, mode string, items []any) map[string]any {
	m := map[string]any{
		"title":            title,
		"score":            score,
		"scoreDisplayMode": mode,
	}
	if items != nil {
		m["details"] = map[string]any{"type": "table", "items": items}
	}
	return m
}

func evidenceItems(n int) []any {
	items := make([]any, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, map[string]any{
			"node": map[string]any{
				"nodeLabel": fmt.Sprintf("node-%d", i),
				"selector":  fmt.Sprintf("#el-%d", i),
			},
		})
	}
	return items
}

func TestReduceFailuresSkipsPassingAndTruncatesEvidence(t *testing.T) {
	raw := buildRaw([]string{"a", "b"}, map[string]any{
		"a": check("Passing check", 1.0, ModeBinary, nil),
		"b": check("Failing check", 0.0, ModeBinary, evidenceItems(6)),
	})

	failed := ReduceFailures(raw, CategoryAccessibility)
	require.Len(t, failed, 1)

	fc := failed[0]
	assert.Equal(t, "b", fc.CheckID)
	assert.Equal(t, "Failing check", fc.Title)
	assert.Equal(t, 6, fc.FailCount, "fail count reflects all items before truncation")
	require.Len(t, fc.Evidence, 5)
	for i, ev := range fc.Evidence {
		assert.Equal(t, fmt.Sprintf("node-%d", i), ev.Node, "items keep original order")
	}
}

func TestReduceFailuresSkipRules(t *testing.T) {
	raw := buildRaw(
		[]string{"manual", "na", "info", "null-score", "missing", "fail"},
		map[string]any{
			"manual":     check("Manual", 0.0, ModeManual, nil),
			"na":         check("NA", 0.0, ModeNotApplicable, nil),
			"info":       check("Info", 0.0, ModeInformative, nil),
			"null-score": check("Unscoreable", nil, ModeBinary, nil),
			"fail":       check("Real failure", 0.0, ModeBinary, nil),
		},
	)

	failed := ReduceFailures(raw, CategoryAccessibility)
	require.Len(t, failed, 1)
	assert.Equal(t, "fail", failed[0].CheckID)
	assert.Equal(t, 0, failed[0].FailCount, "no details means zero failures counted")
}

func TestReduceFailuresOrderMatchesReferences(t *testing.T) {
	raw := buildRaw([]string{"z", "a", "m"}, map[string]any{
		"z": check("Z", 0.0, ModeBinary, nil),
		"a": check("A", 0.5, ModeNumeric, nil),
		"m": check("M", 0.0, ModeBinary, nil),
	})

	failed := ReduceFailures(raw, CategoryAccessibility)
	require.Len(t, failed, 3)
	assert.Equal(t, "z", failed[0].CheckID)
	assert.Equal(t, "a", failed[1].CheckID)
	assert.Equal(t, "m", failed[2].CheckID)
}

func TestReduceFailuresDoesNotMutateRawTree(t *testing.T) {
	items := evidenceItems(6)
	raw := buildRaw([]string{"b"}, map[string]any{
		"b": check("Failing", 0.0, ModeBinary, items),
	})

	ReduceFailures(raw, CategoryAccessibility)

	rec, ok := raw.Check("b")
	require.True(t, ok)
	assert.Len(t, rec.Details.Items, 6, "raw evidence list must stay intact")
}

func TestSimplifyItems(t *testing.T) {
	items := []map[string]any{
		{
			"node":        map[string]any{"nodeLabel": "Submit", "selector": "button.submit"},
			"explanation": "missing accessible name",
		},
		{
			"node":          map[string]any{"selector": "#x"},
			"failureReason": "contrast too low",
		},
		{},
	}

	out := SimplifyItems(items, 5)
	require.Len(t, out, 3)
	assert.Equal(t, EvidenceItem{Node: "Submit", Selector: "button.submit", Explanation: "missing accessible name"}, out[0])
	assert.Equal(t, EvidenceItem{Node: "unknown", Selector: "#x", Explanation: "contrast too low"}, out[1])
	assert.Equal(t, EvidenceItem{Node: "unknown"}, out[2])
}

func TestCountRelevantChecks(t *testing.T) {
	raw := buildRaw(
		[]string{"pass", "fail", "manual", "null-score", "missing"},
		map[string]any{
			"pass":       check("P", 1.0, ModeBinary, nil),
			"fail":       check("F", 0.0, ModeBinary, nil),
			"manual":     check("M", 1.0, ModeManual, nil),
			"null-score": check("N", nil, ModeBinary, nil),
		},
	)
	assert.Equal(t, 2, CountRelevantChecks(raw, CategoryAccessibility))
}

func TestCategorizeChecks(t *testing.T) {
	raw := buildRaw(
		[]string{"pass", "fail", "manual", "info", "na", "null-score"},
		map[string]any{
			"pass":       check("P", 1.0, ModeBinary, nil),
			"fail":       check("F", 0.0, ModeBinary, evidenceItems(7)),
			"manual":     check("M", nil, ModeManual, nil),
			"info":       check("I", nil, ModeInformative, nil),
			"na":         check("NA", nil, ModeNotApplicable, nil),
			"null-score": check("NS", nil, ModeBinary, nil),
		},
	)

	groups := CategorizeChecks(raw, CategoryAccessibility)
	require.Len(t, groups.Failed, 1)
	require.Len(t, groups.Passed, 1)
	require.Len(t, groups.Manual, 3, "manual, informative and unscoreable checks")

	assert.Equal(t, "fail", groups.Failed[0].ID)
	assert.Len(t, groups.Failed[0].Evidence, 5, "same truncation as the failure path")
	assert.Equal(t, "pass", groups.Passed[0].ID)
}
