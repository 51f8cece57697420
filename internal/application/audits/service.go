package audits

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	appai "github.com/plainweb/plainaudit/internal/application/ai"
	domain "github.com/plainweb/plainaudit/internal/domain/audits"
	"github.com/plainweb/plainaudit/internal/infra/ai/prompt"
)

// Audience selects which halves of the report are produced.
const (
	AudienceOwner     = "owner"
	AudienceDeveloper = "developer"
	AudienceBoth      = "both"
)

const defaultCacheTTL = 7 * 24 * time.Hour

// Service implements use-cases untuk Audit
// Service is designed to be used concurrently and is thread-safe
type Service struct {
	Repo      domain.Repository
	Runner    domain.Runner
	Artifacts domain.ArtifactStore
	Texter    *appai.Service
	Clock     Clock
	CacheTTL  time.Duration
}

// Clock abstraction supaya gampang ditest
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

//
// ==== USE CASES ====
//

// Command untuk trigger audit
type AuditCommand struct {
	URL      string
	Force    bool
	Audience string // owner | developer | both
}

type AuditResult struct {
	Report   *domain.Report `json:"report"`
	Cached   bool           `json:"cached"`
	CachedAt time.Time      `json:"cached_at,omitempty"`
}

// Audit runs the full pipeline for one URL: normalize, cache lookup,
// browser run, reduce, classify, bucket, narrate, prose, persist.
// Prose generation and persistence are best-effort; everything before
// them is mandatory and fails the request.
func (s *Service) Audit(ctx context.Context, cmd AuditCommand) (AuditResult, error) {
	normalized, err := domain.NormalizeURL(cmd.URL)
	if err != nil {
		return AuditResult{}, err
	}
	hash := domain.HashURL(normalized)

	if !cmd.Force {
		if cached, ok := s.freshReport(ctx, hash); ok {
			return AuditResult{Report: cached, Cached: true, CachedAt: cached.CreatedAt}, nil
		}
	}

	res, err := s.Runner.Run(ctx, domain.RunRequest{
		URL:        normalized,
		Categories: []string{domain.CategoryAccessibility},
	})
	if err != nil {
		return AuditResult{}, fmt.Errorf("%w: %v", domain.ErrAuditRunFailed, err)
	}

	// artifact upload is best-effort; the raw file must not outlive the run
	artifactURL := s.storeArtifact(ctx, hash, res.LocalArtifactPath)

	report := s.assemble(ctx, normalized, hash, res, cmd.Audience)
	report.ArtifactURL = artifactURL

	if err := s.Repo.Save(ctx, report); err != nil {
		// response already computed; persistence failure is logged only
		log.Printf("report save failed for %s: %v", hash, err)
	}

	return AuditResult{Report: report}, nil
}

// assemble runs the deterministic pipeline plus the best-effort prose
// calls and composes the final report value.
func (s *Service) assemble(ctx context.Context, normalized, hash string, res domain.RunResult, audience string) *domain.Report {
	failed := domain.ReduceFailures(res.Raw, domain.CategoryAccessibility)
	issues := domain.ClassifyAll(failed)
	buckets := domain.Aggregate(failed)
	narrative := domain.BuildNarrative(buckets)
	total := domain.CountRelevantChecks(res.Raw, domain.CategoryAccessibility)

	report := &domain.Report{
		ID:         domain.AuditID(uuid.New().String() + "-lighthouse"),
		URLHash:    hash,
		URL:        normalized,
		Status:     domain.StatusSuccess,
		Score:      domain.Score(total, len(failed)),
		RiskLevel:  narrative.RiskLevel,
		PrunedTree: domain.SanitizeTree(res.Raw),
		Issues:     issues,
		Buckets:    buckets,
		Narrative:  narrative.Render(),
		DurationMS: res.DurationMS,
		CreatedAt:  s.Clock.Now(),
	}

	if audience == "" {
		audience = AudienceBoth
	}
	if audience == AudienceOwner || audience == AudienceBoth {
		report.OwnerSummary = s.Texter.GenerateOr(ctx,
			prompt.OwnerSummary(normalized, report.Narrative, buckets),
			prompt.OwnerSummaryFallback,
		)
	}
	if audience == AudienceDeveloper || audience == AudienceBoth {
		groups := domain.CategorizeChecks(res.Raw, domain.CategoryAccessibility)
		report.CheckGroups = &groups
		report.ExpertGuide = s.Texter.GenerateOr(ctx,
			prompt.ExpertGuide(normalized, groups),
			prompt.ExpertGuideFallback,
		)
	}

	return report
}

// Get returns a stored report by the normalized-URL hash.
func (s *Service) Get(ctx context.Context, hash string) (*domain.Report, error) {
	return s.Repo.Get(ctx, hash)
}

// Latest returns the most recent report rows.
func (s *Service) Latest(ctx context.Context, limit int) ([]*domain.Report, error) {
	return s.Repo.Latest(ctx, limit)
}

// RawTree returns the stored pruned tree for a URL, auditing it first if
// no fresh report exists.
func (s *Service) RawTree(ctx context.Context, rawURL string) (map[string]any, error) {
	report, err := s.reportFor(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return report.PrunedTree, nil
}

// FilteredTree returns the evidence-stripped subset for a URL.
func (s *Service) FilteredTree(ctx context.Context, rawURL string) (map[string]any, error) {
	report, err := s.reportFor(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return domain.FilteredTree(report.PrunedTree), nil
}

func (s *Service) reportFor(ctx context.Context, rawURL string) (*domain.Report, error) {
	normalized, err := domain.NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}
	if cached, ok := s.freshReport(ctx, domain.HashURL(normalized)); ok {
		return cached, nil
	}
	res, err := s.Audit(ctx, AuditCommand{URL: rawURL})
	if err != nil {
		return nil, err
	}
	return res.Report, nil
}

// freshReport looks up a stored report and applies the staleness policy.
func (s *Service) freshReport(ctx context.Context, hash string) (*domain.Report, bool) {
	report, err := s.Repo.Get(ctx, hash)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Printf("cache lookup failed for %s: %v", hash, err)
		}
		return nil, false
	}
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	if s.Clock.Now().Sub(report.CreatedAt) > ttl {
		return nil, false
	}
	return report, true
}

// storeArtifact uploads the raw report file and removes the local copy.
func (s *Service) storeArtifact(ctx context.Context, hash, localPath string) string {
	if localPath == "" {
		return ""
	}
	if s.Artifacts == nil {
		os.Remove(localPath)
		return ""
	}
	key := fmt.Sprintf("audits/%s/%s", hash, filepath.Base(localPath))
	url, err := s.Artifacts.UploadAndCleanup(ctx, localPath, key)
	if err != nil {
		// Clean up the temporary file even if upload fails
		os.Remove(localPath)
		log.Printf("artifact upload failed for %s: %v", hash, err)
		return ""
	}
	return url
}
