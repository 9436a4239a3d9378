package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/pbudlong/InstaGift/models"
)

const (
	maxOutputTokens = 1024
	// Provider calls get the same order of timeout as the page fetch.
	inferTimeout = 15 * time.Second
)

// Analyzer coerces free-form model output into a validated BrandProfile,
// trying each configured provider in order.
type Analyzer struct {
	providers []TextGenerator
}

// NewAnalyzer keeps the given providers in order, skipping nils so callers
// can pass conditionally-constructed providers directly.
func NewAnalyzer(providers ...TextGenerator) *Analyzer {
	a := &Analyzer{}
	for _, p := range providers {
		if p != nil {
			a.providers = append(a.providers, p)
		}
	}
	return a
}

// Analyze runs the prompt through the first provider that answers. Models
// often wrap the JSON in prose or code fences, so the profile is cut out with
// a first-brace-to-last-brace match before parsing and validation.
func (a *Analyzer) Analyze(ctx context.Context, prompt string) (models.BrandProfile, error) {
	if len(a.providers) == 0 {
		return models.BrandProfile{}, ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, inferTimeout)
	defer cancel()

	var text string
	var lastErr error
	for _, p := range a.providers {
		out, err := p.Generate(ctx, prompt)
		if err != nil {
			log.Printf("provider %s failed: %v", p.Name(), err)
			lastErr = err
			continue
		}
		log.Printf("provider %s answered (%d chars)", p.Name(), len(out))
		text = out
		break
	}
	if text == "" {
		return models.BrandProfile{}, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
	}

	raw, ok := ExtractFirstJSONObject(text)
	if !ok {
		return models.BrandProfile{}, fmt.Errorf("%w: no JSON object found", ErrMalformed)
	}
	var profile models.BrandProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return models.BrandProfile{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := profile.Validate(); err != nil {
		return models.BrandProfile{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return profile, nil
}

// ExtractFirstJSONObject returns the greedy first-{ to last-} substring. It
// is deliberately not a parser: surrounding prose and code fences are the
// common failure modes, and this handles both.
func ExtractFirstJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}
