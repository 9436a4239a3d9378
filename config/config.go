package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string // optional; empty runs the in-memory store
	JWTSecret   string
	AppURL      string

	StripeSecretKey string

	// At least one AI provider key is required at startup.
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string

	MasterPassword string

	// SMS: Twilio primary, Telnyx fallback. All optional.
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string
	TelnyxAPIKey      string
	TelnyxPhoneNumber string
	AdminPhoneNumber  string

	// Mail over SMTP. Optional.
	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPPassword string
	AdminEmail   string
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Port:        get("PORT", "8080"),
		DatabaseURL: get("DATABASE_URL", ""),
		JWTSecret:   get("JWT_SECRET", "instagift-demo-secret"),
		AppURL:      get("APP_URL", "http://localhost:8080"),

		StripeSecretKey: must("STRIPE_SECRET_KEY"),

		GeminiAPIKey: get("GEMINI_API_KEY", ""),
		GeminiModel:  get("GEMINI_MODEL", "gemini-2.0-flash"),
		OpenAIAPIKey: get("OPENAI_API_KEY", ""),
		OpenAIModel:  get("OPENAI_MODEL", "gpt-4o-mini"),

		MasterPassword: get("MASTER_PASSWORD", "iGft"),

		TwilioAccountSID:  get("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:   get("TWILIO_AUTH_TOKEN", ""),
		TwilioPhoneNumber: get("TWILIO_PHONE_NUMBER", ""),
		TelnyxAPIKey:      get("TELNYX_API_KEY", ""),
		TelnyxPhoneNumber: get("TELNYX_PHONE_NUMBER", ""),
		AdminPhoneNumber:  get("ADMIN_PHONE_NUMBER", ""),

		SMTPHost:     get("SMTP_HOST", ""),
		SMTPPort:     get("SMTP_PORT", "587"),
		SMTPFrom:     get("SMTP_FROM", ""),
		SMTPPassword: get("SMTP_PASSWORD", ""),
		AdminEmail:   get("ADMIN_EMAIL", ""),
	}
	if cfg.GeminiAPIKey == "" && cfg.OpenAIAPIKey == "" {
		log.Fatalf("missing required env: either GEMINI_API_KEY or OPENAI_API_KEY must be set")
	}
	return cfg
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env: %s", k)
	}
	return v
}
