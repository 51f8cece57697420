package lighthouse

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	domain "github.com/plainweb/plainaudit/internal/domain/audits"
)

const defaultImage = "femtopixel/google-lighthouse:latest"

// Chrome flags required to run headless inside the container.
const chromeFlags = "--headless --no-sandbox --disable-gpu --disable-dev-shm-usage"

type Runner struct {
	image      string
	randSource *rand.Rand
}

func NewRunner(image string) *Runner {
	if image == "" {
		image = defaultImage
	}
	// Create a dedicated random source to avoid contention
	src := rand.NewSource(time.Now().UnixNano())
	return &Runner{
		image:      image,
		randSource: rand.New(src),
	}
}

// Run launches a one-shot Lighthouse container against the target URL and
// decodes the JSON report it writes. The container is removed by docker
// (--rm) and killed when ctx ends; the local artifact is removed on every
// failure path so only successful runs hand a file to the caller.
func (r *Runner) Run(ctx context.Context, req domain.RunRequest) (domain.RunResult, error) {
	start := time.Now()

	tempDir := filepath.Join(".", "temp")
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return domain.RunResult{}, fmt.Errorf("create temp dir: %w", err)
	}
	artifactPath := filepath.Join(tempDir, fmt.Sprintf("lighthouse-%d.json", r.randSource.Int()))

	args := []string{
		"run", "--rm",
		"--cap-add=SYS_ADMIN",
		"-v", fmt.Sprintf("%s:/home/chrome/reports", filepath.Dir(artifactPath)),
		r.image,
		req.URL,
		"--output=json",
		"--output-path=/home/chrome/reports/" + filepath.Base(artifactPath),
		"--chrome-flags=" + chromeFlags,
		"--quiet",
	}
	if len(req.Categories) > 0 {
		args = append(args, "--only-categories="+strings.Join(req.Categories, ","))
	}

	cmd := exec.CommandContext(ctx, "docker", args...)
	out, err := cmd.CombinedOutput()
	duration := time.Since(start).Milliseconds()

	if err != nil {
		os.Remove(artifactPath)
		if ee, ok := err.(*exec.ExitError); ok {
			return domain.RunResult{}, fmt.Errorf("lighthouse exited with code %d: %s", ee.ExitCode(), tail(out))
		}
		return domain.RunResult{}, fmt.Errorf("run error: %v, output=%s", err, tail(out))
	}

	data, err := os.ReadFile(artifactPath)
	if err != nil {
		os.Remove(artifactPath)
		return domain.RunResult{}, fmt.Errorf("read report: %w", err)
	}

	var raw domain.RawReport
	if err := json.Unmarshal(data, &raw); err != nil {
		os.Remove(artifactPath)
		return domain.RunResult{}, fmt.Errorf("decode report: %w", err)
	}
	if _, ok := raw["categories"]; !ok {
		os.Remove(artifactPath)
		return domain.RunResult{}, fmt.Errorf("report has no categories section")
	}

	return domain.RunResult{
		Raw:               raw,
		LocalArtifactPath: artifactPath,
		DurationMS:        duration,
	}, nil
}

// tail keeps command output short enough to wrap into an error.
func tail(out []byte) string {
	const limit = 512
	s := strings.TrimSpace(string(out))
	if len(s) > limit {
		s = "..." + s[len(s)-limit:]
	}
	return s
}
