package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodJSON = `{
  "businessName": "Example Coffee Co",
  "businessType": "Coffee Shop",
  "brandColors": ["#aa5500", "#112233"],
  "emoji": "☕",
  "vibe": "Cozy and artisanal",
  "description": "Single-origin coffee roasted daily."
}`

type stubGen struct {
	name   string
	out    string
	err    error
	called *int
	prompt *string
}

func (s stubGen) Name() string { return s.name }

func (s stubGen) Generate(_ context.Context, prompt string) (string, error) {
	if s.called != nil {
		*s.called++
	}
	if s.prompt != nil {
		*s.prompt = prompt
	}
	return s.out, s.err
}

func TestAnalyzeHappyPath(t *testing.T) {
	a := NewAnalyzer(stubGen{name: "primary", out: goodJSON})
	profile, err := a.Analyze(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "Example Coffee Co", profile.BusinessName)
	assert.Equal(t, []string{"#aa5500", "#112233"}, profile.BrandColors)
}

func TestAnalyzeFallsBackToSecondary(t *testing.T) {
	var primaryCalls, secondaryCalls int
	var secondaryPrompt string
	a := NewAnalyzer(
		stubGen{name: "primary", err: errors.New("quota exceeded"), called: &primaryCalls},
		stubGen{name: "secondary", out: goodJSON, called: &secondaryCalls, prompt: &secondaryPrompt},
	)

	profile, err := a.Analyze(context.Background(), "the prompt")
	require.NoError(t, err)
	assert.Equal(t, 1, primaryCalls)
	assert.Equal(t, 1, secondaryCalls)
	assert.Equal(t, "the prompt", secondaryPrompt, "fallback gets the identical prompt")
	assert.Equal(t, "Coffee Shop", profile.BusinessType)
}

func TestAnalyzeBothProvidersFail(t *testing.T) {
	a := NewAnalyzer(
		stubGen{name: "primary", err: errors.New("down")},
		stubGen{name: "secondary", err: errors.New("also down")},
	)
	_, err := a.Analyze(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestAnalyzeNoProvidersConfigured(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	_, err := a.Analyze(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestAnalyzeUnwrapsCodeFences(t *testing.T) {
	wrapped := "Here you go:\n```json\n" + goodJSON + "\n```\nLet me know if you need anything else."
	a := NewAnalyzer(stubGen{name: "primary", out: wrapped})
	profile, err := a.Analyze(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "Example Coffee Co", profile.BusinessName)
}

func TestAnalyzeMalformedResponses(t *testing.T) {
	cases := []struct {
		name string
		out  string
	}{
		{"no json at all", "Sorry, I cannot help with that."},
		{"broken json", "{\"businessName\": "},
		{"missing emoji", `{"businessName":"A","businessType":"B","brandColors":["#fff"],"vibe":"V","description":"D"}`},
		{"empty brandColors", `{"businessName":"A","businessType":"B","brandColors":[],"emoji":"☕","vibe":"V","description":"D"}`},
		{"no valid color token", `{"businessName":"A","businessType":"B","brandColors":["purple-ish"],"emoji":"☕","vibe":"V","description":"D"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAnalyzer(stubGen{name: "primary", out: tc.out})
			_, err := a.Analyze(context.Background(), "prompt")
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestExtractFirstJSONObject(t *testing.T) {
	out, ok := ExtractFirstJSONObject(`prose {"a": {"b": 1}} trailing`)
	require.True(t, ok)
	assert.Equal(t, `{"a": {"b": 1}}`, out)

	_, ok = ExtractFirstJSONObject("no braces here")
	assert.False(t, ok)

	_, ok = ExtractFirstJSONObject("} reversed {")
	assert.False(t, ok)
}
