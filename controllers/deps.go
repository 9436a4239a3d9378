package controllers

import (
	"context"

	"github.com/pbudlong/InstaGift/ai"
	"github.com/pbudlong/InstaGift/models"
	"github.com/pbudlong/InstaGift/notify"
	"github.com/pbudlong/InstaGift/payments"
	"github.com/pbudlong/InstaGift/storage"
	"github.com/pbudlong/InstaGift/utils"
)

// PageScraper mines brand signal from a fetched page. It absorbs failures:
// an unreachable page yields an empty signal, not an error.
type PageScraper interface {
	Scrape(ctx context.Context, url string) models.ScrapedSignal
}

// Deps carries the collaborators the handlers close over.
type Deps struct {
	Store     storage.Store
	Scraper   PageScraper
	Analyzer  *ai.Analyzer
	Payments  payments.Provider
	Notifier  notify.Notifier
	Passwords *utils.PasswordIssuer
}
