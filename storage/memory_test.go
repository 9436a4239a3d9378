package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbudlong/InstaGift/models"
)

func TestMemoryGifts(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.GetGift(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	gift := models.Gift{ID: "g1", BusinessName: "Example Coffee Co", Amount: 75, RecipientName: "Jake Smith", CreatedAt: time.Now()}
	require.NoError(t, m.CreateGift(ctx, gift))
	assert.ErrorIs(t, m.CreateGift(ctx, gift), ErrDuplicate)

	got, err := m.GetGift(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, 75, got.Amount)

	all, err := m.ListGifts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryAccessRequestUniqueness(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.CreateAccessRequest(ctx, models.AccessRequest{ID: "r1", Email: "a@example.com", CreatedAt: time.Now()}))
	assert.ErrorIs(t, m.CreateAccessRequest(ctx, models.AccessRequest{ID: "r2", Email: "a@example.com"}), ErrDuplicate)

	require.NoError(t, m.CreateAccessRequest(ctx, models.AccessRequest{ID: "r3", Phone: "+15551234567", CreatedAt: time.Now()}))
	assert.ErrorIs(t, m.CreateAccessRequest(ctx, models.AccessRequest{ID: "r4", Phone: "+15551234567"}), ErrDuplicate)

	byEmail, err := m.FindAccessRequestByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "r1", byEmail.ID)

	byPhone, err := m.FindAccessRequestByPhone(ctx, "+15551234567")
	require.NoError(t, err)
	assert.Equal(t, "r3", byPhone.ID)

	_, err = m.FindAccessRequestByEmail(ctx, "b@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryApprovalAndPasswordLookup(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.CreateAccessRequest(ctx, models.AccessRequest{ID: "r1", Email: "a@example.com", CreatedAt: time.Now()}))

	ok, err := m.PasswordApproved(ctx, "wrap")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.ApproveAccessRequest(ctx, "r1", "wrap"))
	r, err := m.GetAccessRequest(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, r.Approved)
	assert.Equal(t, "wrap", r.Password)

	ok, err = m.PasswordApproved(ctx, "wrap")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.ErrorIs(t, m.ApproveAccessRequest(ctx, "nope", "x"), ErrNotFound)
}
