package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/pbudlong/InstaGift/models"
)

// Memory is an in-process Store. It backs the demo when no DATABASE_URL is
// configured and all handler tests.
type Memory struct {
	mu       sync.RWMutex
	gifts    map[string]models.Gift
	requests map[string]models.AccessRequest
}

func NewMemory() *Memory {
	return &Memory{
		gifts:    make(map[string]models.Gift),
		requests: make(map[string]models.AccessRequest),
	}
}

func (m *Memory) CreateGift(_ context.Context, gift models.Gift) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.gifts[gift.ID]; ok {
		return ErrDuplicate
	}
	m.gifts[gift.ID] = gift
	return nil
}

func (m *Memory) GetGift(_ context.Context, id string) (models.Gift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.gifts[id]
	if !ok {
		return models.Gift{}, ErrNotFound
	}
	return g, nil
}

func (m *Memory) ListGifts(_ context.Context) ([]models.Gift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Gift, 0, len(m.gifts))
	for _, g := range m.gifts {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *Memory) CreateAccessRequest(_ context.Context, req models.AccessRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.requests[req.ID]; ok {
		return ErrDuplicate
	}
	for _, r := range m.requests {
		if req.Email != "" && r.Email == req.Email {
			return ErrDuplicate
		}
		if req.Phone != "" && r.Phone == req.Phone {
			return ErrDuplicate
		}
	}
	m.requests[req.ID] = req
	return nil
}

func (m *Memory) GetAccessRequest(_ context.Context, id string) (models.AccessRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.requests[id]
	if !ok {
		return models.AccessRequest{}, ErrNotFound
	}
	return r, nil
}

func (m *Memory) ListAccessRequests(_ context.Context) ([]models.AccessRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.AccessRequest, 0, len(m.requests))
	for _, r := range m.requests {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *Memory) FindAccessRequestByEmail(_ context.Context, email string) (models.AccessRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.requests {
		if r.Email == email {
			return r, nil
		}
	}
	return models.AccessRequest{}, ErrNotFound
}

func (m *Memory) FindAccessRequestByPhone(_ context.Context, phone string) (models.AccessRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.requests {
		if r.Phone == phone {
			return r, nil
		}
	}
	return models.AccessRequest{}, ErrNotFound
}

func (m *Memory) ApproveAccessRequest(_ context.Context, id, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.requests[id]
	if !ok {
		return ErrNotFound
	}
	r.Approved = true
	r.Password = password
	m.requests[id] = r
	return nil
}

func (m *Memory) PasswordApproved(_ context.Context, password string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.requests {
		if r.Approved && r.Password == password {
			return true, nil
		}
	}
	return false, nil
}
