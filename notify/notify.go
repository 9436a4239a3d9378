package notify

import (
	"context"
	"fmt"

	"github.com/pbudlong/InstaGift/config"
	"github.com/pbudlong/InstaGift/models"
)

// Notifier dispatches the three notification kinds the flows need. Handlers
// depend on this interface so tests can swap in a recorder.
type Notifier interface {
	// NotifyAdminAccessRequest must succeed before an access request is
	// persisted; an un-notifiable request is worse than no request.
	NotifyAdminAccessRequest(ctx context.Context, contact string, isEmail bool) error
	// SendPassword delivers an approved password over the request's channel.
	SendPassword(ctx context.Context, req models.AccessRequest, password string) error
	// SendGiftNotice tells the recipient about their gift. Best effort.
	SendGiftNotice(ctx context.Context, gift models.Gift) error
}

// Service sends SMS through Twilio with a Telnyx fallback, and mail over
// SMTP.
type Service struct {
	sms    []smsSender
	mail   *mailer
	appURL string

	adminPhone string
	adminEmail string
}

func NewService(cfg config.Config) *Service {
	s := &Service{
		appURL:     cfg.AppURL,
		adminPhone: cfg.AdminPhoneNumber,
		adminEmail: cfg.AdminEmail,
	}
	if t := newTwilio(cfg); t != nil {
		s.sms = append(s.sms, t)
	}
	if t := newTelnyx(cfg); t != nil {
		s.sms = append(s.sms, t)
	}
	s.mail = newMailer(cfg)
	return s
}

func (s *Service) NotifyAdminAccessRequest(ctx context.Context, contact string, isEmail bool) error {
	contactType := "Phone"
	if isEmail {
		contactType = "Email"
	}
	body := fmt.Sprintf("New InstaGift Access Request\n\n%s: %s\n\nReview at: %s/requests",
		contactType, contact, s.appURL)

	if s.adminPhone != "" && len(s.sms) > 0 {
		return s.sendSMS(ctx, s.adminPhone, body)
	}
	if s.adminEmail != "" && s.mail != nil {
		return s.mail.send(s.adminEmail, "New InstaGift Access Request", body)
	}
	return fmt.Errorf("no admin notification channel configured")
}

func (s *Service) SendPassword(ctx context.Context, req models.AccessRequest, password string) error {
	body := fmt.Sprintf("Your InstaGift access password is: %s\n\nUse this to access the demo at %s",
		password, s.appURL)
	if req.Phone != "" {
		return s.sendSMS(ctx, req.Phone, body)
	}
	if req.Email != "" {
		if s.mail == nil {
			return fmt.Errorf("mail is not configured")
		}
		return s.mail.send(req.Email, "Your InstaGift access password", body)
	}
	return fmt.Errorf("access request has no contact channel")
}

func (s *Service) SendGiftNotice(ctx context.Context, gift models.Gift) error {
	body := fmt.Sprintf("%s, you received a $%d gift card for %s %s\n\nView your gift at: %s/gift/%s",
		gift.RecipientName, gift.Amount, gift.BusinessName, gift.Emoji, s.appURL, gift.ID)
	if gift.RecipientEmail != "" && s.mail != nil {
		return s.mail.send(gift.RecipientEmail, fmt.Sprintf("A gift card for %s", gift.BusinessName), body)
	}
	if gift.RecipientPhone != "" && len(s.sms) > 0 {
		return s.sendSMS(ctx, gift.RecipientPhone, body)
	}
	return fmt.Errorf("no notification channel for gift %s", gift.ID)
}

// sendSMS walks the configured senders in order and returns the last error
// when all of them fail.
func (s *Service) sendSMS(ctx context.Context, to, body string) error {
	if len(s.sms) == 0 {
		return fmt.Errorf("sms is not configured")
	}
	var lastErr error
	for _, sender := range s.sms {
		if err := sender.send(ctx, to, body); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
