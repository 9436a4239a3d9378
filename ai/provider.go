package ai

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable means no configured provider produced a response.
	ErrUnavailable = errors.New("no text generation provider available")
	// ErrMalformed means a provider responded but no valid profile could be
	// extracted from its output.
	ErrMalformed = errors.New("malformed provider response")
)

// TextGenerator is a single text-completion backend. Providers are tried in
// fixed order; there is no retry within one provider.
type TextGenerator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}
