package models

import (
	"fmt"
	"regexp"
	"strings"
)

// ColorToken matches the color forms we mine from pages and accept from the
// model: #abc, #aabbcc, rgb(...).
var ColorToken = regexp.MustCompile(`^(#[0-9a-fA-F]{6}|#[0-9a-fA-F]{3}|rgb\([^)]+\))$`)

// BrandProfile is the validated brand description produced by the analyzer.
type BrandProfile struct {
	BusinessName string   `json:"businessName"`
	BusinessType string   `json:"businessType"`
	BrandColors  []string `json:"brandColors"`
	Emoji        string   `json:"emoji"`
	Vibe         string   `json:"vibe"`
	Description  string   `json:"description"`
}

// Validate enforces the profile schema: all six fields present, brandColors
// holding at least one recognizable color token. Renderers tolerate a single
// color (gradient falls back to repeating it), so one is enough here.
func (p BrandProfile) Validate() error {
	if strings.TrimSpace(p.BusinessName) == "" {
		return fmt.Errorf("businessName is required")
	}
	if strings.TrimSpace(p.BusinessType) == "" {
		return fmt.Errorf("businessType is required")
	}
	if strings.TrimSpace(p.Emoji) == "" {
		return fmt.Errorf("emoji is required")
	}
	if strings.TrimSpace(p.Vibe) == "" {
		return fmt.Errorf("vibe is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		return fmt.Errorf("description is required")
	}
	if len(p.BrandColors) == 0 {
		return fmt.Errorf("brandColors must contain at least one color")
	}
	for _, c := range p.BrandColors {
		if ColorToken.MatchString(strings.TrimSpace(c)) {
			return nil
		}
	}
	return fmt.Errorf("brandColors contains no valid color token")
}

// ScrapedSignal is the transient signal mined from a fetched page. It is
// created per analysis request and discarded after prompt composition.
type ScrapedSignal struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Headings    []string `json:"headings"`
	Paragraphs  []string `json:"paragraphs"`
	Colors      []string `json:"colors"`
	SourceURL   string   `json:"url"`
	RawText     string   `json:"rawText"`
}

// Empty reports whether the fetch produced nothing usable for prompting.
func (s ScrapedSignal) Empty() bool {
	return s.Title == "" && len(s.Headings) == 0
}
