package audits

import "sort"

// Remediation bucket names. Every check id maps to exactly one bucket;
// unmapped ids land in FallbackBucket.
const (
	BucketImagesMedia   = "Images & media"
	BucketFormsLabels   = "Forms & labels"
	BucketColorContrast = "Color & contrast"
	BucketLinksButtons  = "Links & buttons"
	BucketStructureNav  = "Page structure & navigation"
	BucketARIA          = "ARIA & semantics"
	BucketLanguageSetup = "Language & document setup"
	FallbackBucket      = "Other accessibility issues"
)

var bucketNames = map[string]string{
	"image-alt":                  BucketImagesMedia,
	"input-image-alt":            BucketImagesMedia,
	"video-caption":              BucketImagesMedia,
	"label":                      BucketFormsLabels,
	"select-name":                BucketFormsLabels,
	"form-field-multiple-labels": BucketFormsLabels,
	"color-contrast":             BucketColorContrast,
	"link-in-text-block":         BucketColorContrast,
	"link-name":                  BucketLinksButtons,
	"button-name":                BucketLinksButtons,
	"target-size":                BucketLinksButtons,
	"accesskeys":                 BucketStructureNav,
	"bypass":                     BucketStructureNav,
	"heading-order":              BucketStructureNav,
	"list":                       BucketStructureNav,
	"listitem":                   BucketStructureNav,
	"tabindex":                   BucketStructureNav,
	"td-headers-attr":            BucketStructureNav,
	"th-has-data-cells":          BucketStructureNav,
	"frame-title":                BucketStructureNav,
	"duplicate-id-aria":          BucketARIA,
	"aria-allowed-attr":          BucketARIA,
	"aria-hidden-body":           BucketARIA,
	"aria-hidden-focus":          BucketARIA,
	"aria-required-attr":         BucketARIA,
	"aria-roles":                 BucketARIA,
	"aria-valid-attr":            BucketARIA,
	"aria-valid-attr-value":      BucketARIA,
	"aria-command-name":          BucketARIA,
	"document-title":             BucketLanguageSetup,
	"html-has-lang":              BucketLanguageSetup,
	"html-lang-valid":            BucketLanguageSetup,
	"valid-lang":                 BucketLanguageSetup,
	"meta-viewport":              BucketLanguageSetup,
}

// BucketName resolves the remediation bucket for a check id.
func BucketName(checkID string) string {
	if name, ok := bucketNames[checkID]; ok {
		return name
	}
	return FallbackBucket
}

type bucketAcc struct {
	titles    []string
	total     int
	sevs      []Severity
	autofixes []AutoFixPotential
}

// Aggregate groups failed checks into remediation buckets, derives the
// worst severity and aggregate automatability per bucket, and sorts the
// result by severity rank desc, then total failures desc. Stable for
// buckets tied on both keys (discovery order wins).
func Aggregate(failed []FailedCheck) BucketReport {
	accs := make(map[string]*bucketAcc)
	var order []string

	for _, fc := range failed {
		name := BucketName(fc.CheckID)
		acc, ok := accs[name]
		if !ok {
			acc = &bucketAcc{}
			accs[name] = acc
			order = append(order, name)
		}
		meta := RuleFor(fc.CheckID)
		acc.titles = append(acc.titles, fc.Title)
		acc.total += fc.FailCount
		acc.sevs = append(acc.sevs, meta.Severity)
		acc.autofixes = append(acc.autofixes, meta.AutoFix)
	}

	buckets := make([]Bucket, 0, len(order))
	for _, name := range order {
		acc := accs[name]
		buckets = append(buckets, Bucket{
			Name:            name,
			RelatedRules:    acc.titles,
			TotalFailures:   acc.total,
			HighestSeverity: highestSeverity(acc.sevs),
			AutoFixable:     deriveAutoFixable(acc.autofixes),
		})
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		ri, rj := buckets[i].HighestSeverity.Rank(), buckets[j].HighestSeverity.Rank()
		if ri != rj {
			return ri > rj
		}
		return buckets[i].TotalFailures > buckets[j].TotalFailures
	})

	return BucketReport{Buckets: buckets}
}

func highestSeverity(sevs []Severity) Severity {
	var max Severity
	for _, s := range sevs {
		if s.Rank() > max.Rank() {
			max = s
		}
	}
	return max
}

// deriveAutoFixable: yes iff all constituents are high, no iff none are
// high or medium, partial otherwise.
func deriveAutoFixable(fixes []AutoFixPotential) AutoFixable {
	allHigh := true
	anyHighOrMedium := false
	for _, f := range fixes {
		if f != AutoFixHigh {
			allHigh = false
		}
		if f == AutoFixHigh || f == AutoFixMedium {
			anyHighOrMedium = true
		}
	}
	switch {
	case allHigh:
		return AutoFixableYes
	case !anyHighOrMedium:
		return AutoFixableNo
	}
	return AutoFixablePartial
}
