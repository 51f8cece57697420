package audits

// Checks dropped entirely from the outgoing tree: heavy, noisy, or of no
// use to either audience.
var excludedChecks = map[string]struct{}{
	"screenshot-thumbnails": {},
	"final-screenshot":      {},
	"errors-in-console":     {},
}

// Top-level sections cut for size before pruning.
var droppedSections = []string{
	"i18n",
	"categoryGroups",
	"entities",
	"timing",
	"fullPageScreenshot",
}

// Keys deep-stripped for the filtered (evidence-free) subset.
var evidenceKeys = []string{"details", "stackPacks", "warnings"}

// SanitizeTree builds the pruned passthrough tree for the report: heavy
// sections and excluded/passing checks dropped, evidence truncated,
// long-form descriptions stripped at every depth, then empty values
// pruned. The input tree is left untouched.
func SanitizeTree(raw RawReport) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[k] = v
	}
	for _, k := range droppedSections {
		delete(out, k)
	}

	if checks, ok := asMap(out["audits"]); ok {
		kept := make(map[string]any, len(checks))
		for id := range checks {
			if _, drop := excludedChecks[id]; drop {
				continue
			}
			rec, ok := raw.Check(id)
			if !ok {
				continue
			}
			if rec.Score != nil && *rec.Score == 1 {
				continue
			}
			kept[id] = simplifiedCheck(checks[id], rec)
		}
		out["audits"] = kept
	}

	// The audit is constrained to accessibility; a leftover performance
	// category would only bloat the stored document.
	if cats, ok := asMap(out["categories"]); ok {
		copied := make(map[string]any, len(cats))
		for k, v := range cats {
			if k == "performance" {
				continue
			}
			copied[k] = v
		}
		out["categories"] = copied
	}

	// StripKey and PruneEmpty both deep-copy, so nothing in the result
	// aliases the raw tree.
	stripped := StripKey(out, "description")
	pruned, _ := PruneEmpty(stripped).(map[string]any)
	if pruned == nil {
		pruned = map[string]any{}
	}
	return pruned
}

// FilteredTree deep-strips the heavy per-item evidence from an already
// sanitized tree, for the lightweight download variant.
func FilteredTree(pruned map[string]any) map[string]any {
	stripped := StripKeys(pruned, evidenceKeys)
	out, _ := PruneEmpty(stripped).(map[string]any)
	if out == nil {
		out = map[string]any{}
	}
	return out
}

// simplifiedCheck rebuilds one check entry with its evidence items
// replaced by the truncated simplified form.
func simplifiedCheck(orig any, rec CheckRecord) map[string]any {
	m, ok := asMap(orig)
	if !ok {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	if rec.Details != nil && len(rec.Details.Items) > 0 {
		items := SimplifyItems(rec.Details.Items, maxEvidenceItems)
		generic := make([]any, 0, len(items))
		for _, it := range items {
			entry := map[string]any{"node": it.Node}
			if it.Selector != "" {
				entry["selector"] = it.Selector
			}
			if it.Explanation != "" {
				entry["explanation"] = it.Explanation
			}
			generic = append(generic, entry)
		}
		det := map[string]any{"items": generic}
		if rec.Details.Type != "" {
			det["type"] = rec.Details.Type
		}
		out["details"] = det
	}
	return out
}
