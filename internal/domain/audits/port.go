package audits

import "context"

// Repository port (interface untuk persistence)
// Reports are keyed by the normalized-URL hash.
type Repository interface {
	Save(ctx context.Context, r *Report) error
	Get(ctx context.Context, urlHash string) (*Report, error)
	Latest(ctx context.Context, limit int) ([]*Report, error)
}

// Runner port (interface untuk browser automation)
type Runner interface {
	Run(ctx context.Context, req RunRequest) (RunResult, error)
}

// ArtifactStore port (interface untuk penyimpanan artefak)
type ArtifactStore interface {
	Upload(ctx context.Context, localPath, key string) (string, error)
	UploadAndCleanup(ctx context.Context, localPath, key string) (string, error)
}

// RunRequest untuk Runner
type RunRequest struct {
	URL        string
	Categories []string // constrain the check-set; empty means all
}

// RunResult hasil dari Runner
type RunResult struct {
	Raw               RawReport
	LocalArtifactPath string
	DurationMS        int64
}
