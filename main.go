package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/pbudlong/InstaGift/ai"
	"github.com/pbudlong/InstaGift/config"
	"github.com/pbudlong/InstaGift/controllers"
	"github.com/pbudlong/InstaGift/database"
	"github.com/pbudlong/InstaGift/notify"
	"github.com/pbudlong/InstaGift/payments"
	"github.com/pbudlong/InstaGift/routes"
	"github.com/pbudlong/InstaGift/scraper"
	"github.com/pbudlong/InstaGift/storage"
	"github.com/pbudlong/InstaGift/utils"
)

func main() {
	cfg := config.Load()

	var store storage.Store
	if cfg.DatabaseURL != "" {
		database.Connect(cfg.DatabaseURL)
		database.EnsureSchema()
		store = storage.NewPostgres(database.Pool)
	} else {
		log.Printf("DATABASE_URL not set, using in-memory store")
		store = storage.NewMemory()
	}

	var gemini, openai ai.TextGenerator
	if cfg.GeminiAPIKey != "" {
		gemini = ai.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel)
	}
	if cfg.OpenAIAPIKey != "" {
		openai = ai.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}

	deps := controllers.Deps{
		Store:     store,
		Scraper:   scraper.New(),
		Analyzer:  ai.NewAnalyzer(gemini, openai),
		Payments:  payments.NewStripe(cfg.StripeSecretKey),
		Notifier:  notify.NewService(cfg),
		Passwords: utils.NewPasswordIssuer(),
	}

	r := gin.Default()
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})
	routes.Register(r, cfg, deps)
	log.Printf("server on :%s", cfg.Port)
	r.Run(":" + cfg.Port)
}
