package audits

// Static rule metadata keyed by check id. Hand-curated from the Lighthouse
// accessibility audit set; guideline references point at WCAG 2.1 clauses.
// Read-only after init, safe for concurrent lookups.
var ruleMetadata = map[string]RuleMeta{
	"image-alt": {
		Guideline: "WCAG 1.1.1",
		Severity:  SeverityCritical,
		Impact:    "Screen reader users cannot tell what an image shows.",
		AutoFix:   AutoFixHigh,
	},
	"input-image-alt": {
		Guideline: "WCAG 1.1.1",
		Severity:  SeverityCritical,
		Impact:    "Image buttons are announced without any purpose.",
		AutoFix:   AutoFixHigh,
	},
	"color-contrast": {
		Guideline: "WCAG 1.4.3",
		Severity:  SeveritySerious,
		Impact:    "Text is hard or impossible to read for low-vision users.",
		AutoFix:   AutoFixMedium,
	},
	"link-in-text-block": {
		Guideline: "WCAG 1.4.1",
		Severity:  SeveritySerious,
		Impact:    "Links that rely on color alone are invisible to colorblind users.",
		AutoFix:   AutoFixMedium,
	},
	"label": {
		Guideline: "WCAG 4.1.2",
		Severity:  SeverityCritical,
		Impact:    "Form fields are announced without a name, so users cannot tell what to enter.",
		AutoFix:   AutoFixMedium,
	},
	"select-name": {
		Guideline: "WCAG 4.1.2",
		Severity:  SeverityCritical,
		Impact:    "Dropdown controls have no accessible name.",
		AutoFix:   AutoFixMedium,
	},
	"form-field-multiple-labels": {
		Guideline: "WCAG 3.3.2",
		Severity:  SeverityModerate,
		Impact:    "Conflicting labels make screen readers announce the wrong one.",
		AutoFix:   AutoFixMedium,
	},
	"link-name": {
		Guideline: "WCAG 4.1.2",
		Severity:  SeveritySerious,
		Impact:    "Links read as \"link\" with no destination for screen reader users.",
		AutoFix:   AutoFixHigh,
	},
	"button-name": {
		Guideline: "WCAG 4.1.2",
		Severity:  SeverityCritical,
		Impact:    "Buttons cannot be identified or activated confidently.",
		AutoFix:   AutoFixHigh,
	},
	"document-title": {
		Guideline: "WCAG 2.4.2",
		Severity:  SeveritySerious,
		Impact:    "The page cannot be identified in tabs, history or screen readers.",
		AutoFix:   AutoFixHigh,
	},
	"html-has-lang": {
		Guideline: "WCAG 3.1.1",
		Severity:  SeveritySerious,
		Impact:    "Screen readers may pick the wrong pronunciation rules for the page.",
		AutoFix:   AutoFixHigh,
	},
	"html-lang-valid": {
		Guideline: "WCAG 3.1.1",
		Severity:  SeveritySerious,
		Impact:    "An invalid language code breaks pronunciation for assistive tech.",
		AutoFix:   AutoFixHigh,
	},
	"valid-lang": {
		Guideline: "WCAG 3.1.2",
		Severity:  SeverityModerate,
		Impact:    "Passages in another language are read with the wrong voice.",
		AutoFix:   AutoFixHigh,
	},
	"meta-viewport": {
		Guideline: "WCAG 1.4.4",
		Severity:  SeverityCritical,
		Impact:    "Users cannot zoom, locking out people who need magnification.",
		AutoFix:   AutoFixHigh,
	},
	"target-size": {
		Guideline: "WCAG 2.5.8",
		Severity:  SeverityModerate,
		Impact:    "Small touch targets are hard to hit for users with motor impairments.",
		AutoFix:   AutoFixMedium,
	},
	"duplicate-id-aria": {
		Guideline: "WCAG 4.1.1",
		Severity:  SeveritySerious,
		Impact:    "Duplicate ids break the relationships assistive tech relies on.",
		AutoFix:   AutoFixMedium,
	},
	"aria-allowed-attr": {
		Guideline: "WCAG 4.1.2",
		Severity:  SeveritySerious,
		Impact:    "Disallowed ARIA attributes are ignored or misread by screen readers.",
		AutoFix:   AutoFixMedium,
	},
	"aria-hidden-body": {
		Guideline: "WCAG 4.1.2",
		Severity:  SeverityCritical,
		Impact:    "The entire page is hidden from assistive technology.",
		AutoFix:   AutoFixHigh,
	},
	"aria-hidden-focus": {
		Guideline: "WCAG 4.1.2",
		Severity:  SeveritySerious,
		Impact:    "Focusable elements inside hidden regions trap keyboard users.",
		AutoFix:   AutoFixMedium,
	},
	"aria-required-attr": {
		Guideline: "WCAG 4.1.2",
		Severity:  SeveritySerious,
		Impact:    "Roles missing required attributes are announced incompletely.",
		AutoFix:   AutoFixMedium,
	},
	"aria-roles": {
		Guideline: "WCAG 4.1.2",
		Severity:  SeveritySerious,
		Impact:    "Invalid roles strip semantics assistive tech depends on.",
		AutoFix:   AutoFixMedium,
	},
	"aria-valid-attr": {
		Guideline: "WCAG 4.1.2",
		Severity:  SeveritySerious,
		Impact:    "Misspelled ARIA attributes silently do nothing.",
		AutoFix:   AutoFixMedium,
	},
	"aria-valid-attr-value": {
		Guideline: "WCAG 4.1.2",
		Severity:  SeveritySerious,
		Impact:    "Broken ARIA references leave controls without names or states.",
		AutoFix:   AutoFixMedium,
	},
	"aria-command-name": {
		Guideline: "WCAG 4.1.2",
		Severity:  SeveritySerious,
		Impact:    "Custom controls are announced without any label.",
		AutoFix:   AutoFixMedium,
	},
	"bypass": {
		Guideline: "WCAG 2.4.1",
		Severity:  SeveritySerious,
		Impact:    "Keyboard users must tab through every header link on every page.",
		AutoFix:   AutoFixMedium,
	},
	"heading-order": {
		Guideline: "WCAG 1.3.1",
		Severity:  SeverityModerate,
		Impact:    "Skipped heading levels make the page outline confusing to navigate.",
		AutoFix:   AutoFixMedium,
	},
	"list": {
		Guideline: "WCAG 1.3.1",
		Severity:  SeverityModerate,
		Impact:    "Malformed lists lose their item count and structure announcements.",
		AutoFix:   AutoFixMedium,
	},
	"listitem": {
		Guideline: "WCAG 1.3.1",
		Severity:  SeverityModerate,
		Impact:    "Orphaned list items are not announced as part of a list.",
		AutoFix:   AutoFixMedium,
	},
	"frame-title": {
		Guideline: "WCAG 4.1.2",
		Severity:  SeveritySerious,
		Impact:    "Frames without titles cannot be told apart when navigating.",
		AutoFix:   AutoFixHigh,
	},
	"tabindex": {
		Guideline: "WCAG 2.4.3",
		Severity:  SeveritySerious,
		Impact:    "Positive tabindex values scramble the keyboard focus order.",
		AutoFix:   AutoFixLow,
	},
	"td-headers-attr": {
		Guideline: "WCAG 1.3.1",
		Severity:  SeveritySerious,
		Impact:    "Table cells lose their association with headers.",
		AutoFix:   AutoFixLow,
	},
	"th-has-data-cells": {
		Guideline: "WCAG 1.3.1",
		Severity:  SeveritySerious,
		Impact:    "Header cells that describe nothing confuse table navigation.",
		AutoFix:   AutoFixLow,
	},
	"video-caption": {
		Guideline: "WCAG 1.2.2",
		Severity:  SeverityCritical,
		Impact:    "Deaf and hard-of-hearing users get no access to video content.",
		AutoFix:   AutoFixLow,
	},
	"accesskeys": {
		Guideline: "WCAG 4.1.1",
		Severity:  SeverityModerate,
		Impact:    "Duplicate access keys trigger the wrong shortcut.",
		AutoFix:   AutoFixMedium,
	},
}

// fallbackRule applies to any check id absent from the table.
var fallbackRule = RuleMeta{
	Guideline: "unmapped",
	Severity:  SeverityModerate,
	Impact:    "May create barriers for users with disabilities.",
	AutoFix:   AutoFixMedium,
}

// RuleFor returns the metadata for a check id, falling back to the
// defined defaults for unmapped ids. Total over any string.
func RuleFor(checkID string) RuleMeta {
	if meta, ok := ruleMetadata[checkID]; ok {
		return meta
	}
	return fallbackRule
}

// Classify turns one FailedCheck into an EnrichedIssue.
func Classify(fc FailedCheck) EnrichedIssue {
	meta := RuleFor(fc.CheckID)
	return EnrichedIssue{
		Rule:           fc.Title,
		Guideline:      meta.Guideline,
		Severity:       meta.Severity,
		FailedElements: fc.FailCount,
		Impact:         meta.Impact,
		AutoFix:        meta.AutoFix,
	}
}

// ClassifyAll maps a FailedCheck list in order.
func ClassifyAll(failed []FailedCheck) []EnrichedIssue {
	out := make([]EnrichedIssue, 0, len(failed))
	for _, fc := range failed {
		out = append(out, Classify(fc))
	}
	return out
}
