package ai

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/plainweb/plainaudit/internal/domain/ai"
)

const generateTimeout = 60 * time.Second

// Service wraps the text-generation client with the degrade-to-fallback
// policy: generation failures never propagate to the caller.
type Service struct {
	client ai.Client
}

func NewService(client ai.Client) *Service {
	return &Service{client: client}
}

// Enabled reports whether a text-generation client is configured.
func (s *Service) Enabled() bool {
	return s != nil && s.client != nil
}

// GenerateOr returns generated prose for the prompt, or the fallback when
// the client is not configured, errors out, or returns empty text.
func (s *Service) GenerateOr(ctx context.Context, prompt, fallback string) string {
	if !s.Enabled() {
		return fallback
	}
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	out, err := s.client.Generate(ctx, prompt)
	if err != nil {
		log.Printf("text generation failed, using fallback: %v", err)
		return fallback
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return fallback
	}
	return out
}
