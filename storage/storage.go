package storage

import (
	"context"
	"errors"

	"github.com/pbudlong/InstaGift/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Store is the persistence contract the handlers depend on. Gift ids are
// unique and stable once created; access-request uniqueness is per contact
// channel (email or phone) and must be checked before creation.
type Store interface {
	CreateGift(ctx context.Context, gift models.Gift) error
	GetGift(ctx context.Context, id string) (models.Gift, error)
	ListGifts(ctx context.Context) ([]models.Gift, error)

	CreateAccessRequest(ctx context.Context, req models.AccessRequest) error
	GetAccessRequest(ctx context.Context, id string) (models.AccessRequest, error)
	ListAccessRequests(ctx context.Context) ([]models.AccessRequest, error)
	FindAccessRequestByEmail(ctx context.Context, email string) (models.AccessRequest, error)
	FindAccessRequestByPhone(ctx context.Context, phone string) (models.AccessRequest, error)
	ApproveAccessRequest(ctx context.Context, id, password string) error
	PasswordApproved(ctx context.Context, password string) (bool, error)
}
