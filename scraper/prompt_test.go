package scraper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pbudlong/InstaGift/models"
)

func sampleSignal() models.ScrapedSignal {
	return models.ScrapedSignal{
		Title:       "Example Coffee Co",
		Description: "Small batch roasts.",
		Headings:    []string{"One", "Two", "Three", "Four", "Five", "Six", "Seven"},
		Paragraphs:  []string{"First paragraph.", "Second paragraph.", "Third paragraph.", "Fourth paragraph."},
		Colors:      []string{"#aa5500", "#112233"},
		SourceURL:   "https://example-coffee.test",
	}
}

func TestBuildPromptIsPure(t *testing.T) {
	sig := sampleSignal()
	a := BuildPrompt("https://example-coffee.test", sig)
	b := BuildPrompt("https://example-coffee.test", sig)
	assert.Equal(t, a, b)
}

func TestBuildPromptEmbedsSignal(t *testing.T) {
	p := BuildPrompt("https://example-coffee.test", sampleSignal())

	assert.Contains(t, p, "https://example-coffee.test")
	assert.Contains(t, p, "Example Coffee Co")
	assert.Contains(t, p, "Small batch roasts.")
	assert.Contains(t, p, "- Five")
	assert.NotContains(t, p, "- Six", "only the first 5 headings")
	assert.Contains(t, p, "Third paragraph.")
	assert.NotContains(t, p, "Fourth paragraph.", "only the first 3 paragraphs")
	assert.Contains(t, p, "Detected Colors: #aa5500, #112233")
	assert.Contains(t, p, `"businessName"`)
	assert.Contains(t, p, `"brandColors"`)
	assert.Contains(t, p, "Return ONLY the JSON object")
}

func TestBuildPromptOmitsColorLineWhenNone(t *testing.T) {
	sig := sampleSignal()
	sig.Colors = nil
	p := BuildPrompt("https://example-coffee.test", sig)
	assert.NotContains(t, p, "Detected Colors")
}

func TestBuildPromptURLOnlyFallback(t *testing.T) {
	p := BuildPrompt("https://mystery.example", models.ScrapedSignal{SourceURL: "https://mystery.example"})
	assert.Contains(t, p, "couldn't be accessed")
	assert.Contains(t, p, "https://mystery.example")
	assert.Contains(t, p, `"emoji"`)
	assert.False(t, strings.Contains(p, "SCRAPED WEBSITE CONTENT"))
}
