package scraper

import (
	"fmt"
	"strings"

	"github.com/pbudlong/InstaGift/models"
)

const responseShape = `{
  "businessName": "The business name",
  "businessType": "Type of business (e.g., 'Coffee Shop', 'Auto Detailing')",
  "brandColors": ["#hex1", "#hex2"],
  "emoji": "A single emoji that represents the business",
  "vibe": "Short description of the brand vibe (e.g., 'Cozy and artisanal')",
  "description": "One sentence description of what the business offers"
}`

// BuildPrompt turns the mined signal into the analysis instruction. It is a
// pure function of its inputs. When the fetch produced nothing usable the
// model is asked to guess from the URL alone.
func BuildPrompt(pageURL string, signal models.ScrapedSignal) string {
	if signal.Empty() {
		return fmt.Sprintf(`You are analyzing a local business website to create a branded gift card.

Given this URL: %s

The website couldn't be accessed, so please make educated guesses based on the URL and common business patterns.

Please analyze the business and return a JSON object with the following structure:
%s

Return ONLY the JSON object, no other text.`, pageURL, responseShape)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are analyzing a local business website to create a branded gift card.

Website URL: %s

SCRAPED WEBSITE CONTENT:

Title: %s

Description: %s

Key Headings:
`, pageURL, signal.Title, signal.Description)
	for _, h := range headOf(signal.Headings, 5) {
		fmt.Fprintf(&b, "- %s\n", h)
	}
	b.WriteString("\nSample Content:\n")
	b.WriteString(strings.Join(headOf(signal.Paragraphs, 3), "\n\n"))
	b.WriteString("\n")
	if len(signal.Colors) > 0 {
		fmt.Fprintf(&b, "\nDetected Colors: %s\n", strings.Join(headOf(signal.Colors, 10), ", "))
	}
	fmt.Fprintf(&b, `
Based on this REAL website content, please analyze the business and return a JSON object with the following structure:
%s

Use detected colors for brandColors if available, otherwise suggest colors that match the brand vibe.
Return ONLY the JSON object, no other text.`, responseShape)
	return b.String()
}

func headOf(in []string, n int) []string {
	if len(in) > n {
		return in[:n]
	}
	return in
}
