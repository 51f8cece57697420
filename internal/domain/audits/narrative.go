package audits

import (
	"fmt"
	"math"
	"strings"
)

// NoIssuesNarrative is returned when no failing checks were found.
const NoIssuesNarrative = "No accessibility issues were detected by the automated checks. Manual review is still recommended for aspects automation cannot cover."

const maxPriorityBlocks = 3

// Canned human-impact sentences per bucket name. Read-only after init.
var impactSentences = map[string]string{
	BucketImagesMedia:   "Visitors who use screen readers or captions cannot access your visual and media content.",
	BucketFormsLabels:   "Visitors using assistive technology cannot tell what your form fields are for, which blocks sign-ups and purchases.",
	BucketColorContrast: "Visitors with low vision or color blindness struggle to read your content.",
	BucketLinksButtons:  "Visitors cannot tell where links lead or what buttons do, making the site hard to operate.",
	BucketStructureNav:  "Visitors navigating by keyboard or screen reader get lost in the page structure.",
	BucketARIA:          "Assistive technology receives broken or misleading information about your interface.",
	BucketLanguageSetup: "Screen readers may mispronounce your content or fail to identify your pages.",
}

const defaultImpactSentence = "These issues create barriers for visitors with disabilities."

// PriorityBlock is one top-bucket entry of the template narrative.
type PriorityBlock struct {
	Bucket           string      `json:"bucket"`
	AffectedElements int         `json:"affected_elements"`
	Impact           string      `json:"impact"`
	Automation       string      `json:"automation"`
	Severity         Severity    `json:"severity"`
	AutoFixable      AutoFixable `json:"auto_fixable"`
}

// Narrative is the deterministic, template-based risk narrative.
type Narrative struct {
	RiskLevel    RiskLevel       `json:"risk_level"`
	TotalIssues  int             `json:"total_issues"`
	TotalBuckets int             `json:"total_buckets"`
	Priorities   []PriorityBlock `json:"priorities"`
}

// RiskOf classifies overall risk from the sorted bucket list. Rules are
// checked in order: any critical bucket -> high; >=3 serious buckets ->
// high; >=1 serious bucket -> moderate; otherwise low.
func RiskOf(report BucketReport) RiskLevel {
	serious := 0
	for _, b := range report.Buckets {
		switch b.HighestSeverity {
		case SeverityCritical:
			return RiskHigh
		case SeveritySerious:
			serious++
		}
	}
	if serious >= 3 {
		return RiskHigh
	}
	if serious >= 1 {
		return RiskModerate
	}
	return RiskLow
}

// Score is the pass-rate percentage: 100 when no relevant checks exist,
// otherwise round(100 * passed / total). Not severity-weighted.
func Score(totalChecks, failedChecks int) int {
	if totalChecks == 0 {
		return 100
	}
	return int(math.Round(100 * float64(totalChecks-failedChecks) / float64(totalChecks)))
}

// BuildNarrative derives the structured narrative from an already-sorted
// bucket report.
func BuildNarrative(report BucketReport) Narrative {
	n := Narrative{
		RiskLevel:    RiskOf(report),
		TotalIssues:  report.TotalFailures(),
		TotalBuckets: len(report.Buckets),
	}
	top := report.Buckets
	if len(top) > maxPriorityBlocks {
		top = top[:maxPriorityBlocks]
	}
	for _, b := range top {
		impact, ok := impactSentences[b.Name]
		if !ok {
			impact = defaultImpactSentence
		}
		n.Priorities = append(n.Priorities, PriorityBlock{
			Bucket:           b.Name,
			AffectedElements: b.TotalFailures,
			Impact:           impact,
			Automation:       automationStatement(b.AutoFixable),
			Severity:         b.HighestSeverity,
			AutoFixable:      b.AutoFixable,
		})
	}
	return n
}

// Render writes the narrative as plain text for the report.
func (n Narrative) Render() string {
	if n.TotalBuckets == 0 {
		return NoIssuesNarrative
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Overall accessibility risk: %s. %d issue(s) across %d problem area(s).\n",
		n.RiskLevel, n.TotalIssues, n.TotalBuckets)
	for i, p := range n.Priorities {
		fmt.Fprintf(&sb, "Priority %d: %s (%d affected element(s), worst severity %s). %s %s\n",
			i+1, p.Bucket, p.AffectedElements, p.Severity, p.Impact, p.Automation)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func automationStatement(a AutoFixable) string {
	switch a {
	case AutoFixableYes:
		return "These fixes can largely be applied automatically."
	case AutoFixableNo:
		return "These fixes require manual remediation by a developer."
	}
	return "Some of these fixes can be automated; the rest need manual work."
}
