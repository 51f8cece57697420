package ai

import "context"

// Client is the text-generation collaborator: prompt in, prose out.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
