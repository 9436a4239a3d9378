package payments

import "context"

// Provider is the hosted payment collaborator: intent creation before the
// client-side confirmation, card issuance after.
type Provider interface {
	CreatePaymentIntent(ctx context.Context, amount int) (clientSecret string, err error)
	IssueCard(ctx context.Context, req IssueCardRequest) (IssuedCard, error)
}

// IssueCardRequest names the cardholder and caps spending at the gift amount
// (whole currency units).
type IssueCardRequest struct {
	CardholderName string
	Email          string
	Phone          string
	Amount         int
}

// IssuedCard carries the display fields for the recipient view. Synthetic is
// set when issuance was unavailable and the fallback generator filled in the
// card details.
type IssuedCard struct {
	CardholderID string
	CardID       string
	Number       string
	Expiry       string
	Cvv          string
	Synthetic    bool
}
