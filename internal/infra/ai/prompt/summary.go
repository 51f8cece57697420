package prompt

import (
	"encoding/json"
	"fmt"

	domain "github.com/plainweb/plainaudit/internal/domain/audits"
)

// SystemPrompt sets the assistant role shared by both prompt variants.
func SystemPrompt() string {
	return `You are a web accessibility consultant. You write clear, specific prose with no markdown headings and no code fences. Never invent issues that are not in the provided data.`
}

// OwnerSummary builds the owner-facing prompt from the template narrative
// and the bucket summary. Plain language, business impact, no jargon.
func OwnerSummary(pageURL string, narrative string, buckets domain.BucketReport) string {
	summary, _ := json.MarshalIndent(buckets, "", "  ")
	return fmt.Sprintf(`Write a short summary of this accessibility audit for the owner of %s, who is not technical.

Audit narrative:
%s

Grouped findings:
%s

Explain in plain language what these problems mean for their visitors and their business, which area to fix first, and roughly how much of the work can be automated. Under 200 words, no bullet lists.`, pageURL, narrative, string(summary))
}

// ExpertGuide builds the developer-facing prompt from the full
// failed/passed/manual categorization.
func ExpertGuide(pageURL string, groups domain.CheckGroups) string {
	detail, _ := json.MarshalIndent(groups, "", "  ")
	return fmt.Sprintf(`Write a remediation guide for the developers of %s based on this categorized accessibility check data.

Check data (failed, passed, manual):
%s

For each failed check, give the concrete code-level fix and reference the affected selectors where present. Mention which manual checks deserve a human pass. Be specific and technical. Under 400 words.`, pageURL, string(detail))
}

// Fallback strings used when text generation is unavailable or fails.
// They must read as informative content, not as errors.
const (
	OwnerSummaryFallback = "An automated accessibility review of your site has been completed. The findings above are grouped by problem area and ordered by severity; start with the first group, which affects your visitors the most. A detailed plain-language summary could not be generated for this run."

	ExpertGuideFallback = "Automated checks have been categorized into failed, passed and manual groups above. Work through the failed checks in bucket order, using each check's selectors to locate the affected markup, and schedule a manual review for the checks automation cannot decide. A generated remediation guide is not available for this run."
)
