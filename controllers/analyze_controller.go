package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pbudlong/InstaGift/models"
	"github.com/pbudlong/InstaGift/scraper"
)

// AnalyzeBusiness runs the full extraction pipeline: SSRF guard, page
// scrape, prompt composition, inference. The guard runs before any network
// call is made on the user-supplied URL.
func AnalyzeBusiness(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AnalyzeBusinessRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.URL) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "URL is required"})
			return
		}
		if err := scraper.ValidateURL(req.URL); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid URL: " + err.Error()})
			return
		}

		ctx := c.Request.Context()
		signal := d.Scraper.Scrape(ctx, req.URL)
		prompt := scraper.BuildPrompt(req.URL, signal)

		profile, err := d.Analyzer.Analyze(ctx, prompt)
		if err != nil {
			log.Printf("business analysis for %s failed: %v", req.URL, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error analyzing business, please try again"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}
