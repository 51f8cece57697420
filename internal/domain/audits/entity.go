package audits

import (
	"time"
)

// ID tipe untuk Audit
type AuditID string

// Severity enum, ordered critical > serious > moderate > minor
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeveritySerious  Severity = "serious"
	SeverityModerate Severity = "moderate"
	SeverityMinor    Severity = "minor"
)

// Rank returns the ordinal position of a severity (higher is worse).
// Unknown values rank below minor.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeveritySerious:
		return 3
	case SeverityModerate:
		return 2
	case SeverityMinor:
		return 1
	}
	return 0
}

// AutoFixPotential enum: how mechanical the fix for a single rule is
type AutoFixPotential string

const (
	AutoFixHigh   AutoFixPotential = "high"
	AutoFixMedium AutoFixPotential = "medium"
	AutoFixLow    AutoFixPotential = "low"
)

// AutoFixable enum: aggregate automatability of a bucket
type AutoFixable string

const (
	AutoFixableYes     AutoFixable = "yes"
	AutoFixableNo      AutoFixable = "no"
	AutoFixablePartial AutoFixable = "partial"
)

// RiskLevel enum
type RiskLevel string

const (
	RiskHigh     RiskLevel = "high"
	RiskModerate RiskLevel = "moderate"
	RiskLow      RiskLevel = "low"
)

// Status enum
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// EvidenceItem is one simplified piece of evidence for a failed check:
// a DOM node label, its selector, and an optional explanation.
type EvidenceItem struct {
	Node        string `json:"node"`
	Selector    string `json:"selector,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

// FailedCheck is one failing accessibility check extracted from the raw
// report, with evidence already truncated to maxEvidenceItems.
type FailedCheck struct {
	CheckID   string         `json:"check_id"`
	Title     string         `json:"title"`
	FailCount int            `json:"fail_count"`
	Evidence  []EvidenceItem `json:"evidence,omitempty"`
}

// RuleMeta is static, hand-curated metadata for one check id.
type RuleMeta struct {
	Guideline string
	Severity  Severity
	Impact    string
	AutoFix   AutoFixPotential
}

// EnrichedIssue = FailedCheck + RuleMeta lookup
type EnrichedIssue struct {
	Rule           string           `json:"rule"`
	Guideline      string           `json:"guideline"`
	Severity       Severity         `json:"severity"`
	FailedElements int              `json:"failed_elements"`
	Impact         string           `json:"impact"`
	AutoFix        AutoFixPotential `json:"auto_fix_potential"`
}

// Bucket groups failed checks sharing a remediation strategy
type Bucket struct {
	Name            string      `json:"bucket"`
	RelatedRules    []string    `json:"related_rules"`
	TotalFailures   int         `json:"total_failures"`
	HighestSeverity Severity    `json:"highest_severity"`
	AutoFixable     AutoFixable `json:"auto_fixable"`
}

// BucketReport wraps the sorted bucket list
type BucketReport struct {
	Buckets []Bucket `json:"buckets"`
}

// TotalFailures sums failure counts across all buckets.
func (b BucketReport) TotalFailures() int {
	total := 0
	for _, bk := range b.Buckets {
		total += bk.TotalFailures
	}
	return total
}

// CheckSummary keeps full check detail (with simplified evidence) for the
// developer-facing categorization.
type CheckSummary struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Description      string         `json:"description,omitempty"`
	Score            *float64       `json:"score,omitempty"`
	ScoreDisplayMode string         `json:"score_display_mode,omitempty"`
	Evidence         []EvidenceItem `json:"evidence,omitempty"`
}

// CheckGroups categorizes every check into failed/passed/manual
type CheckGroups struct {
	Failed []CheckSummary `json:"failed"`
	Passed []CheckSummary `json:"passed"`
	Manual []CheckSummary `json:"manual"`
}

// Aggregate Root: Report
type Report struct {
	ID           AuditID         `json:"id"`
	URLHash      string          `json:"url_hash"`
	URL          string          `json:"url"`
	Status       Status          `json:"status"`
	Score        int             `json:"score"`
	RiskLevel    RiskLevel       `json:"risk_level"`
	PrunedTree   map[string]any  `json:"pruned_tree,omitempty"`
	Issues       []EnrichedIssue `json:"issues"`
	Buckets      BucketReport    `json:"buckets"`
	Narrative    string          `json:"narrative"`
	OwnerSummary string          `json:"owner_summary,omitempty"`
	ExpertGuide  string          `json:"expert_guide,omitempty"`
	CheckGroups  *CheckGroups    `json:"check_groups,omitempty"`
	ArtifactURL  string          `json:"artifact_url,omitempty"`
	DurationMS   int64           `json:"duration_ms"`
	CreatedAt    time.Time       `json:"created_at"`
}
