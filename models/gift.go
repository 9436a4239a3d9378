package models

import (
	"fmt"
	"strings"
	"time"
)

// Gift is a purchased gift card. Created once after payment succeeds and
// never mutated afterwards.
type Gift struct {
	ID                 string    `json:"id"`
	BusinessName       string    `json:"businessName"`
	BusinessType       string    `json:"businessType"`
	BrandColors        []string  `json:"brandColors"`
	Emoji              string    `json:"emoji"`
	Amount             int       `json:"amount"`
	RecipientName      string    `json:"recipientName"`
	RecipientEmail     string    `json:"recipientEmail,omitempty"`
	RecipientPhone     string    `json:"recipientPhone,omitempty"`
	Message            string    `json:"message,omitempty"`
	StripeCardholderID string    `json:"stripeCardholderId,omitempty"`
	StripeCardID       string    `json:"stripeCardId,omitempty"`
	CardNumber         string    `json:"cardNumber,omitempty"`
	CardExpiry         string    `json:"cardExpiry,omitempty"`
	CardCvv            string    `json:"cardCvv,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// InsertGift is the create-gift request body: brand fields from the preview
// plus amount and recipient details.
type InsertGift struct {
	BusinessName   string   `json:"businessName"`
	BusinessType   string   `json:"businessType"`
	BrandColors    []string `json:"brandColors"`
	Emoji          string   `json:"emoji"`
	Amount         int      `json:"amount"`
	RecipientName  string   `json:"recipientName"`
	RecipientEmail string   `json:"recipientEmail"`
	RecipientPhone string   `json:"recipientPhone"`
	Message        string   `json:"message"`
}

func (g InsertGift) Validate() error {
	if strings.TrimSpace(g.BusinessName) == "" {
		return fmt.Errorf("businessName is required")
	}
	if strings.TrimSpace(g.BusinessType) == "" {
		return fmt.Errorf("businessType is required")
	}
	if g.Amount <= 0 {
		return fmt.Errorf("amount must be a positive whole number")
	}
	if strings.TrimSpace(g.RecipientName) == "" {
		return fmt.Errorf("recipientName is required")
	}
	if strings.TrimSpace(g.RecipientEmail) == "" && strings.TrimSpace(g.RecipientPhone) == "" {
		return fmt.Errorf("recipientEmail or recipientPhone is required")
	}
	return nil
}
