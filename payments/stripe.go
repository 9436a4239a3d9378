package payments

import (
	"context"
	"fmt"
	"log"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

// Stripe implements Provider with payment intents and Issuing virtual cards.
type Stripe struct {
	api *client.API
}

func NewStripe(secretKey string) *Stripe {
	return &Stripe{api: client.New(secretKey, nil)}
}

func (s *Stripe) CreatePaymentIntent(ctx context.Context, amount int) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount) * 100),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}

// IssueCard creates a cardholder and a virtual card capped at the gift
// amount, then re-fetches the card with number and cvc expanded for display.
func (s *Stripe) IssueCard(ctx context.Context, req IssueCardRequest) (IssuedCard, error) {
	holderParams := &stripe.IssuingCardholderParams{
		Name:   stripe.String(req.CardholderName),
		Type:   stripe.String(string(stripe.IssuingCardholderTypeIndividual)),
		Status: stripe.String("active"),
		Billing: &stripe.IssuingCardholderBillingParams{
			Address: &stripe.AddressParams{
				Line1:      stripe.String("123 Main Street"),
				City:       stripe.String("San Francisco"),
				State:      stripe.String("CA"),
				PostalCode: stripe.String("94111"),
				Country:    stripe.String("US"),
			},
		},
	}
	if req.Email != "" {
		holderParams.Email = stripe.String(req.Email)
	}
	if req.Phone != "" {
		holderParams.PhoneNumber = stripe.String(req.Phone)
	}
	holderParams.Context = ctx

	holder, err := s.api.IssuingCardholders.New(holderParams)
	if err != nil {
		return IssuedCard{}, fmt.Errorf("stripe: create cardholder: %w", err)
	}

	cardParams := &stripe.IssuingCardParams{
		Cardholder: stripe.String(holder.ID),
		Currency:   stripe.String(string(stripe.CurrencyUSD)),
		Type:       stripe.String(string(stripe.IssuingCardTypeVirtual)),
		Status:     stripe.String(string(stripe.IssuingCardStatusActive)),
		SpendingControls: &stripe.IssuingCardSpendingControlsParams{
			SpendingLimits: []*stripe.IssuingCardSpendingControlsSpendingLimitParams{{
				Amount:   stripe.Int64(int64(req.Amount) * 100),
				Interval: stripe.String(string(stripe.IssuingCardSpendingControlsSpendingLimitIntervalAllTime)),
			}},
		},
	}
	cardParams.Context = ctx

	card, err := s.api.IssuingCards.New(cardParams)
	if err != nil {
		return IssuedCard{}, fmt.Errorf("stripe: create card: %w", err)
	}

	detailParams := &stripe.IssuingCardParams{}
	detailParams.Context = ctx
	detailParams.AddExpand("number")
	detailParams.AddExpand("cvc")
	full, err := s.api.IssuingCards.Get(card.ID, detailParams)
	if err != nil {
		// The card exists; only the display fields are missing.
		log.Printf("stripe: fetch card details: %v", err)
		full = card
	}

	return IssuedCard{
		CardholderID: holder.ID,
		CardID:       card.ID,
		Number:       groupDigits(full.Number),
		Expiry:       fmt.Sprintf("%02d/%02d", full.ExpMonth, full.ExpYear%100),
		Cvv:          full.CVC,
	}, nil
}

func groupDigits(number string) string {
	if len(number) != 16 {
		return number
	}
	return number[0:4] + " " + number[4:8] + " " + number[8:12] + " " + number[12:16]
}
