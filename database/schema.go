package database

import (
	"context"
	"log"
)

// EnsureSchema creates required tables and indexes if they do not exist.
func EnsureSchema() {
	if Pool == nil {
		return
	}
	ctx := context.Background()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS gifts (
            id TEXT PRIMARY KEY,
            business_name TEXT NOT NULL,
            business_type TEXT NOT NULL,
            brand_colors TEXT[],
            emoji TEXT,
            amount INT NOT NULL,
            recipient_name TEXT NOT NULL,
            recipient_email TEXT,
            recipient_phone TEXT,
            message TEXT,
            stripe_cardholder_id TEXT,
            stripe_card_id TEXT,
            card_number TEXT,
            card_expiry TEXT,
            card_cvv TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE TABLE IF NOT EXISTS access_requests (
            id TEXT PRIMARY KEY,
            email TEXT,
            phone TEXT,
            password TEXT,
            approved BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE UNIQUE INDEX IF NOT EXISTS access_requests_email_idx ON access_requests(email) WHERE email IS NOT NULL AND email <> ''`,
		// Phone uniqueness is also checked in the application layer; the
		// partial index backs it up for the Postgres store.
		`CREATE UNIQUE INDEX IF NOT EXISTS access_requests_phone_idx ON access_requests(phone) WHERE phone IS NOT NULL AND phone <> ''`,
	}
	for _, s := range stmts {
		if _, err := Pool.Exec(ctx, s); err != nil {
			log.Fatalf("schema error: %v", err)
		}
	}
}
