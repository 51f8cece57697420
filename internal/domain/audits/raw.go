package audits

// RawReport is the diagnostic tree produced by the automation runner,
// decoded from JSON. It is treated as read-only by the whole pipeline:
// every transform builds a derived copy.
type RawReport map[string]any

// CategoryAccessibility is the only category this service reduces.
const CategoryAccessibility = "accessibility"

// Score display modes used by the reducer's skip rules.
const (
	ModeBinary        = "binary"
	ModeManual        = "manual"
	ModeNotApplicable = "notApplicable"
	ModeInformative   = "informative"
	ModeNumeric       = "numeric"
)

// CheckDetails is the structured evidence attached to a check.
type CheckDetails struct {
	Type  string
	Items []map[string]any
}

// CheckRecord is a typed view over one entry of the raw tree's checks map.
type CheckRecord struct {
	ID               string
	Title            string
	Description      string
	Score            *float64 // nil means not scoreable
	ScoreDisplayMode string
	Details          *CheckDetails
}

// CheckRefs returns the ordered check ids referenced by a category.
func (r RawReport) CheckRefs(category string) []string {
	cats, ok := asMap(r["categories"])
	if !ok {
		return nil
	}
	cat, ok := asMap(cats[category])
	if !ok {
		return nil
	}
	refs, _ := cat["auditRefs"].([]any)
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		m, ok := asMap(ref)
		if !ok {
			continue
		}
		if id, ok := m["id"].(string); ok && id != "" {
			out = append(out, id)
		}
	}
	return out
}

// Check looks up one check record by id. The second return is false when
// the id is absent from the tree.
func (r RawReport) Check(id string) (CheckRecord, bool) {
	checks, ok := asMap(r["audits"])
	if !ok {
		return CheckRecord{}, false
	}
	m, ok := asMap(checks[id])
	if !ok {
		return CheckRecord{}, false
	}
	rec := CheckRecord{ID: id}
	rec.Title, _ = m["title"].(string)
	rec.Description, _ = m["description"].(string)
	rec.ScoreDisplayMode, _ = m["scoreDisplayMode"].(string)
	if f, ok := asFloat(m["score"]); ok {
		rec.Score = &f
	}
	if d, ok := asMap(m["details"]); ok {
		det := &CheckDetails{}
		det.Type, _ = d["type"].(string)
		if items, ok := d["items"].([]any); ok {
			for _, it := range items {
				if im, ok := asMap(it); ok {
					det.Items = append(det.Items, im)
				}
			}
		}
		rec.Details = det
	}
	return rec, true
}

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
