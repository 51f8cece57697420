package audits

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bucketReport(buckets ...Bucket) BucketReport {
	return BucketReport{Buckets: buckets}
}

func TestRiskOf(t *testing.T) {
	cases := []struct {
		name   string
		report BucketReport
		want   RiskLevel
	}{
		{"empty is low", bucketReport(), RiskLow},
		{
			"any critical is high",
			bucketReport(
				Bucket{HighestSeverity: SeverityModerate},
				Bucket{HighestSeverity: SeverityCritical},
			),
			RiskHigh,
		},
		{
			"three serious is high",
			bucketReport(
				Bucket{HighestSeverity: SeveritySerious},
				Bucket{HighestSeverity: SeveritySerious},
				Bucket{HighestSeverity: SeveritySerious},
			),
			RiskHigh,
		},
		{
			"one serious is moderate",
			bucketReport(
				Bucket{HighestSeverity: SeveritySerious},
				Bucket{HighestSeverity: SeverityMinor},
			),
			RiskModerate,
		},
		{
			"only moderate and minor is low",
			bucketReport(
				Bucket{HighestSeverity: SeverityModerate},
				Bucket{HighestSeverity: SeverityMinor},
			),
			RiskLow,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RiskOf(tc.report))
		})
	}
}

func TestScore(t *testing.T) {
	assert.Equal(t, 100, Score(0, 0))
	assert.Equal(t, 70, Score(10, 3))
	assert.Equal(t, 0, Score(5, 5))
	assert.Equal(t, 100, Score(12, 0))
	// 2/3 pass rounds to 67
	assert.Equal(t, 67, Score(3, 1))
}

func TestBuildNarrativeTopThree(t *testing.T) {
	report := bucketReport(
		Bucket{Name: BucketImagesMedia, TotalFailures: 5, HighestSeverity: SeverityCritical, AutoFixable: AutoFixableYes},
		Bucket{Name: BucketColorContrast, TotalFailures: 4, HighestSeverity: SeveritySerious, AutoFixable: AutoFixablePartial},
		Bucket{Name: BucketStructureNav, TotalFailures: 3, HighestSeverity: SeverityModerate, AutoFixable: AutoFixableNo},
		Bucket{Name: BucketARIA, TotalFailures: 2, HighestSeverity: SeverityModerate, AutoFixable: AutoFixableNo},
	)

	n := BuildNarrative(report)

	assert.Equal(t, RiskHigh, n.RiskLevel)
	assert.Equal(t, 14, n.TotalIssues)
	assert.Equal(t, 4, n.TotalBuckets)
	require.Len(t, n.Priorities, 3)
	assert.Equal(t, BucketImagesMedia, n.Priorities[0].Bucket)
	assert.Equal(t, 5, n.Priorities[0].AffectedElements)
	assert.Equal(t, impactSentences[BucketImagesMedia], n.Priorities[0].Impact)
	assert.Equal(t, BucketStructureNav, n.Priorities[2].Bucket)
}

func TestBuildNarrativeDefaultImpactSentence(t *testing.T) {
	report := bucketReport(
		Bucket{Name: FallbackBucket, TotalFailures: 1, HighestSeverity: SeverityModerate, AutoFixable: AutoFixablePartial},
	)
	n := BuildNarrative(report)
	require.Len(t, n.Priorities, 1)
	assert.Equal(t, defaultImpactSentence, n.Priorities[0].Impact)
}

func TestRenderNoIssues(t *testing.T) {
	n := BuildNarrative(bucketReport())
	assert.Equal(t, NoIssuesNarrative, n.Render())
}

func TestRenderFormat(t *testing.T) {
	report := bucketReport(
		Bucket{Name: BucketFormsLabels, TotalFailures: 2, HighestSeverity: SeverityCritical, AutoFixable: AutoFixableYes},
	)
	out := BuildNarrative(report).Render()

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Overall accessibility risk: high. 2 issue(s) across 1 problem area(s).", lines[0])
	assert.Contains(t, lines[1], "Priority 1: Forms & labels (2 affected element(s), worst severity critical).")
	assert.Contains(t, lines[1], "applied automatically")
}
