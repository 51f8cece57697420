package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/plainweb/plainaudit/internal/domain/audits"
)

func TestOwnerSummaryIncludesFindings(t *testing.T) {
	buckets := domain.BucketReport{Buckets: []domain.Bucket{
		{Name: "Images & media", RelatedRules: []string{"Image alt"}, TotalFailures: 3, HighestSeverity: domain.SeverityCritical, AutoFixable: domain.AutoFixableYes},
	}}

	p := OwnerSummary("https://example.com", "Overall accessibility risk: high.", buckets)

	assert.Contains(t, p, "https://example.com")
	assert.Contains(t, p, "Overall accessibility risk: high.")
	assert.Contains(t, p, "Images & media")
	assert.Contains(t, p, "not technical")
}

func TestExpertGuideIncludesGroups(t *testing.T) {
	groups := domain.CheckGroups{
		Failed: []domain.CheckSummary{{ID: "image-alt", Title: "Image alt", Evidence: []domain.EvidenceItem{{Node: "img", Selector: "img.hero"}}}},
		Manual: []domain.CheckSummary{{ID: "focus-traps", Title: "Focus traps"}},
	}

	p := ExpertGuide("https://example.com", groups)

	assert.Contains(t, p, "https://example.com")
	assert.Contains(t, p, "image-alt")
	assert.Contains(t, p, "img.hero")
	assert.Contains(t, p, "focus-traps")
}

func TestFallbacksReadAsContent(t *testing.T) {
	for _, s := range []string{OwnerSummaryFallback, ExpertGuideFallback} {
		assert.NotContains(t, s, "error")
		assert.NotContains(t, s, "Error")
		assert.NotEmpty(t, s)
	}
}
