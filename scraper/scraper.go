package scraper

import (
	"context"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/pbudlong/InstaGift/models"
)

const (
	userAgent     = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	fetchTimeout  = 10 * time.Second
	maxRedirects  = 5
	maxHeadings   = 10
	maxParagraphs = 5
	maxColors     = 20
	maxRawText    = 3000
)

var (
	colorTokens = regexp.MustCompile(`#[0-9a-fA-F]{6}|#[0-9a-fA-F]{3}|rgb\([^)]+\)`)
	hexTokens   = regexp.MustCompile(`#[0-9a-fA-F]{6}|#[0-9a-fA-F]{3}`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// Scraper fetches a page and mines brand signal from its HTML.
type Scraper struct {
	client *http.Client
}

func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: fetchTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
	}
}

// Scrape never fails the caller: any fetch or parse error yields an empty
// signal, and the composer falls back to a URL-only prompt downstream.
func (s *Scraper) Scrape(ctx context.Context, pageURL string) models.ScrapedSignal {
	empty := models.ScrapedSignal{
		Headings:   []string{},
		Paragraphs: []string{},
		Colors:     []string{},
		SourceURL:  pageURL,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		log.Printf("scrape %s: %v", pageURL, err)
		return empty
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("scrape %s: %v", pageURL, err)
		return empty
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("scrape %s: status %d", pageURL, resp.StatusCode)
		return empty
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		log.Printf("scrape %s: parse: %v", pageURL, err)
		return empty
	}

	// Mine colors before stripping: inline style attributes, <style> blocks,
	// and the theme-color meta.
	colors := newColorSet()
	doc.Find("[style]").Each(func(_ int, sel *goquery.Selection) {
		style, _ := sel.Attr("style")
		colors.addAll(colorTokens.FindAllString(style, -1))
	})
	doc.Find("style").Each(func(_ int, sel *goquery.Selection) {
		colors.addAll(hexTokens.FindAllString(sel.Text(), -1))
	})
	if theme, ok := doc.Find(`meta[name="theme-color"]`).Attr("content"); ok && theme != "" {
		colors.addAll([]string{theme})
	}

	// Strip chrome before mining text.
	doc.Find("script, style, nav, footer, header").Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title, _ = doc.Find(`meta[property="og:title"]`).Attr("content")
	}
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	description, _ := doc.Find(`meta[name="description"]`).Attr("content")
	if description == "" {
		description, _ = doc.Find(`meta[property="og:description"]`).Attr("content")
	}
	if description == "" {
		description = strings.TrimSpace(doc.Find("p").First().Text())
	}

	headings := []string{}
	doc.Find("h1, h2, h3").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text != "" && len(text) < 200 {
			headings = append(headings, text)
		}
	})

	paragraphs := []string{}
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if len(text) > 20 && len(text) < 500 {
			paragraphs = append(paragraphs, text)
		}
	})

	rawText := strings.TrimSpace(whitespace.ReplaceAllString(doc.Find("body").Text(), " "))
	if len(rawText) > maxRawText {
		rawText = rawText[:maxRawText]
	}

	signal := models.ScrapedSignal{
		Title:       title,
		Description: description,
		Headings:    capStrings(headings, maxHeadings),
		Paragraphs:  capStrings(paragraphs, maxParagraphs),
		Colors:      colors.take(maxColors),
		SourceURL:   pageURL,
		RawText:     rawText,
	}
	log.Printf("scraped %s: title=%dch headings=%d paragraphs=%d colors=%d",
		pageURL, len(signal.Title), len(signal.Headings), len(signal.Paragraphs), len(signal.Colors))
	return signal
}

func capStrings(in []string, n int) []string {
	if len(in) > n {
		return in[:n]
	}
	return in
}

// colorSet keeps first-occurrence order while deduplicating.
type colorSet struct {
	seen  map[string]bool
	order []string
}

func newColorSet() *colorSet {
	return &colorSet{seen: make(map[string]bool)}
}

func (c *colorSet) addAll(tokens []string) {
	for _, t := range tokens {
		if t == "" || c.seen[t] {
			continue
		}
		c.seen[t] = true
		c.order = append(c.order, t)
	}
}

func (c *colorSet) take(n int) []string {
	if len(c.order) > n {
		return c.order[:n]
	}
	if c.order == nil {
		return []string{}
	}
	return c.order
}
