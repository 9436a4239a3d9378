package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pbudlong/InstaGift/config"
	"github.com/pbudlong/InstaGift/models"
	"github.com/pbudlong/InstaGift/storage"
	"github.com/pbudlong/InstaGift/utils"
)

// RequestAccess records an ask for a demo password. The admin notification
// must go out first: a request nobody hears about would sit unapproved
// forever, so notification failure aborts the whole thing.
func RequestAccess(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AccessRequestInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		email := strings.ToLower(strings.TrimSpace(req.Email))
		phone := strings.TrimSpace(req.Phone)
		if (email == "") == (phone == "") {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Provide either an email or a phone number"})
			return
		}

		ctx := c.Request.Context()
		var err error
		if email != "" {
			_, err = d.Store.FindAccessRequestByEmail(ctx, email)
		} else {
			_, err = d.Store.FindAccessRequestByPhone(ctx, phone)
		}
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Access request already submitted"})
			return
		}
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("access request lookup error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error checking request"})
			return
		}

		contact := email
		if contact == "" {
			contact = phone
		}
		if err := d.Notifier.NotifyAdminAccessRequest(ctx, contact, email != ""); err != nil {
			log.Printf("admin notification failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error sending notification"})
			return
		}

		record := models.AccessRequest{
			ID:        uuid.NewString(),
			Email:     email,
			Phone:     phone,
			CreatedAt: time.Now().UTC(),
		}
		if err := d.Store.CreateAccessRequest(ctx, record); err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Access request already submitted"})
				return
			}
			log.Printf("access request store error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saving request"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func ListAccessRequests(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		requests, err := d.Store.ListAccessRequests(c.Request.Context())
		if err != nil {
			log.Printf("access request list error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error listing requests"})
			return
		}
		c.JSON(http.StatusOK, requests)
	}
}

// ApproveAccess assigns a password and notifies the requester. A second
// approval of the same request fails cleanly instead of re-sending.
func ApproveAccess(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ApproveAccessRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.RequestID) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "requestId is required"})
			return
		}

		ctx := c.Request.Context()
		record, err := d.Store.GetAccessRequest(ctx, req.RequestID)
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Request not found"})
			return
		}
		if err != nil {
			log.Printf("access request lookup error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error loading request"})
			return
		}
		if record.Approved {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Request already approved"})
			return
		}

		password := d.Passwords.Generate()
		if err := d.Notifier.SendPassword(ctx, record, password); err != nil {
			log.Printf("password delivery failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error sending password"})
			return
		}
		if err := d.Store.ApproveAccessRequest(ctx, record.ID, password); err != nil {
			log.Printf("approval store error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error approving request"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// CheckPassword never fails the caller: anything unexpected reads as an
// invalid password. A valid one also yields a short-lived session token for
// the admin endpoints.
func CheckPassword(cfg config.Config, d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CheckPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil || len(req.Password) != 4 {
			c.JSON(http.StatusOK, gin.H{"valid": false})
			return
		}

		valid := req.Password == cfg.MasterPassword
		if !valid {
			ok, err := d.Store.PasswordApproved(c.Request.Context(), req.Password)
			if err != nil {
				log.Printf("password check error: %v", err)
			}
			valid = err == nil && ok
		}
		if !valid {
			c.JSON(http.StatusOK, gin.H{"valid": false})
			return
		}

		token, err := utils.GenerateJWT(cfg.JWTSecret, 24*time.Hour)
		if err != nil {
			log.Printf("token error: %v", err)
			c.JSON(http.StatusOK, gin.H{"valid": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"valid": true, "token": token})
	}
}
