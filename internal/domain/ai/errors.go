package ai

import "errors"

// ErrQuotaExceeded indicates the AI provider returned a quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("ai quota exceeded")

// ErrGenerationFailed indicates the provider returned no usable text.
// Callers substitute a fallback string instead of propagating it.
var ErrGenerationFailed = errors.New("text generation failed")
