package audits

// maxEvidenceItems bounds the simplified evidence kept per check.
const maxEvidenceItems = 5

// ReduceFailures walks the category's check references and extracts one
// FailedCheck per failing check, in reference order. Skipped: missing ids,
// passing checks (score == 1), unscoreable checks (score == null), and
// checks whose display mode is manual, notApplicable or informative.
// FailCount is the full evidence item count before truncation.
func ReduceFailures(raw RawReport, category string) []FailedCheck {
	var out []FailedCheck
	for _, id := range raw.CheckRefs(category) {
		rec, ok := raw.Check(id)
		if !ok {
			continue
		}
		if !isFailing(rec) {
			continue
		}
		fc := FailedCheck{CheckID: rec.ID, Title: rec.Title}
		if rec.Details != nil {
			fc.FailCount = len(rec.Details.Items)
			fc.Evidence = SimplifyItems(rec.Details.Items, maxEvidenceItems)
		}
		out = append(out, fc)
	}
	return out
}

// CountRelevantChecks counts the checks the pass-rate score is computed
// over: scoreable checks not excluded by display mode.
func CountRelevantChecks(raw RawReport, category string) int {
	total := 0
	for _, id := range raw.CheckRefs(category) {
		rec, ok := raw.Check(id)
		if !ok {
			continue
		}
		if rec.Score == nil || skippedMode(rec.ScoreDisplayMode) {
			continue
		}
		total++
	}
	return total
}

// CategorizeChecks classifies every referenced check into failed, passed
// or manual, keeping full detail with the same evidence truncation. Used
// by the developer-facing text path only. notApplicable checks are
// dropped entirely.
func CategorizeChecks(raw RawReport, category string) CheckGroups {
	var groups CheckGroups
	for _, id := range raw.CheckRefs(category) {
		rec, ok := raw.Check(id)
		if !ok {
			continue
		}
		if rec.ScoreDisplayMode == ModeNotApplicable {
			continue
		}
		sum := summarize(rec)
		switch {
		case rec.ScoreDisplayMode == ModeManual || rec.ScoreDisplayMode == ModeInformative:
			groups.Manual = append(groups.Manual, sum)
		case rec.Score == nil:
			// not scoreable, needs a human
			groups.Manual = append(groups.Manual, sum)
		case *rec.Score == 1:
			groups.Passed = append(groups.Passed, sum)
		default:
			groups.Failed = append(groups.Failed, sum)
		}
	}
	return groups
}

// SimplifyItems maps raw evidence items to the compact form, keeping at
// most limit items in their original order.
func SimplifyItems(items []map[string]any, limit int) []EvidenceItem {
	if len(items) == 0 {
		return nil
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	out := make([]EvidenceItem, 0, len(items))
	for _, item := range items {
		ev := EvidenceItem{Node: "unknown"}
		if node, ok := asMap(item["node"]); ok {
			if label, ok := node["nodeLabel"].(string); ok && label != "" {
				ev.Node = label
			}
			ev.Selector, _ = node["selector"].(string)
		}
		if expl, ok := item["explanation"].(string); ok && expl != "" {
			ev.Explanation = expl
		} else if reason, ok := item["failureReason"].(string); ok {
			ev.Explanation = reason
		}
		out = append(out, ev)
	}
	return out
}

func isFailing(rec CheckRecord) bool {
	if rec.Score == nil || *rec.Score == 1 {
		return false
	}
	return !skippedMode(rec.ScoreDisplayMode)
}

func skippedMode(mode string) bool {
	switch mode {
	case ModeManual, ModeNotApplicable, ModeInformative:
		return true
	}
	return false
}

func summarize(rec CheckRecord) CheckSummary {
	sum := CheckSummary{
		ID:               rec.ID,
		Title:            rec.Title,
		Description:      rec.Description,
		Score:            rec.Score,
		ScoreDisplayMode: rec.ScoreDisplayMode,
	}
	if rec.Details != nil {
		sum.Evidence = SimplifyItems(rec.Details.Items, maxEvidenceItems)
	}
	return sum
}
