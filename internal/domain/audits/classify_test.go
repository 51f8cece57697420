package audits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyMappedRule(t *testing.T) {
	issue := Classify(FailedCheck{CheckID: "image-alt", Title: "Images lack alt text", FailCount: 4})

	assert.Equal(t, "Images lack alt text", issue.Rule)
	assert.Equal(t, "WCAG 1.1.1", issue.Guideline)
	assert.Equal(t, SeverityCritical, issue.Severity)
	assert.Equal(t, 4, issue.FailedElements)
	assert.Equal(t, AutoFixHigh, issue.AutoFix)
	assert.NotEmpty(t, issue.Impact)
}

func TestClassifyUnmappedRuleFallback(t *testing.T) {
	issue := Classify(FailedCheck{CheckID: "xyz-unknown-rule", Title: "Mystery rule", FailCount: 1})

	assert.Equal(t, "unmapped", issue.Guideline)
	assert.Equal(t, SeverityModerate, issue.Severity)
	assert.Equal(t, AutoFixMedium, issue.AutoFix)
	assert.NotEmpty(t, issue.Impact)
}

func TestClassifyAllPreservesOrder(t *testing.T) {
	failed := []FailedCheck{
		{CheckID: "color-contrast", Title: "Contrast", FailCount: 2},
		{CheckID: "image-alt", Title: "Alt", FailCount: 1},
	}
	issues := ClassifyAll(failed)
	require.Len(t, issues, 2)
	assert.Equal(t, "Contrast", issues[0].Rule)
	assert.Equal(t, "Alt", issues[1].Rule)
}

func TestRuleMetadataSeverityValues(t *testing.T) {
	for id, meta := range ruleMetadata {
		assert.NotZero(t, meta.Severity.Rank(), "rule %s has an unknown severity", id)
		assert.NotEmpty(t, meta.Guideline, "rule %s has no guideline", id)
	}
}

func TestSeverityRankOrdering(t *testing.T) {
	assert.Greater(t, SeverityCritical.Rank(), SeveritySerious.Rank())
	assert.Greater(t, SeveritySerious.Rank(), SeverityModerate.Rank())
	assert.Greater(t, SeverityModerate.Rank(), SeverityMinor.Rank())
	assert.Equal(t, 0, Severity("bogus").Rank())
}
