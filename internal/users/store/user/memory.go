package user

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"welfare/internal/sentinel"
	"welfare/internal/users/models"
	id "welfare/pkg/domain"
)

// Error contract: missing users yield sentinel.ErrNotFound, a taken
// username yields sentinel.ErrAlreadyUsed.

// InMemory stores users for the database-less mode and tests.
type InMemory struct {
	mu     sync.RWMutex
	users  map[id.UserID]*models.User
	keyIdx map[string]id.UserID
}

func NewInMemory() *InMemory {
	return &InMemory{
		users:  make(map[id.UserID]*models.User),
		keyIdx: make(map[string]id.UserID),
	}
}

func (s *InMemory) Create(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := u.UsernameKey()
	if _, taken := s.keyIdx[key]; taken {
		return fmt.Errorf("username must be unique: %w", sentinel.ErrAlreadyUsed)
	}
	cp := *u
	s.users[u.ID] = &cp
	s.keyIdx[key] = u.ID
	return nil
}

func (s *InMemory) Update(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.users[u.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	key := u.UsernameKey()
	if holder, taken := s.keyIdx[key]; taken && holder != u.ID {
		return fmt.Errorf("username must be unique: %w", sentinel.ErrAlreadyUsed)
	}
	delete(s.keyIdx, existing.UsernameKey())
	cp := *u
	s.users[u.ID] = &cp
	s.keyIdx[key] = u.ID
	return nil
}

func (s *InMemory) FindByID(_ context.Context, userID id.UserID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// FindByUsernameKey looks a user up by the folded username.
func (s *InMemory) FindByUsernameKey(_ context.Context, key string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.keyIdx[key]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *s.users[userID]
	return &cp, nil
}

func (s *InMemory) UsernameExists(_ context.Context, key string, excludeID uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	holder, ok := s.keyIdx[key]
	return ok && uuid.UUID(holder) != excludeID, nil
}

// List returns users ordered by last and first name.
func (s *InMemory) List(_ context.Context, activeOnly bool) ([]*models.User, error) {
	return s.collect(func(u *models.User) bool {
		return !activeOnly || u.IsActive()
	}), nil
}

func (s *InMemory) ListByRole(_ context.Context, role models.Role) ([]*models.User, error) {
	return s.collect(func(u *models.User) bool {
		return u.Role == role && u.IsActive()
	}), nil
}

func (s *InMemory) CountByRole(_ context.Context, role models.Role) (int, error) {
	return len(s.collect(func(u *models.User) bool {
		return u.Role == role && u.IsActive()
	})), nil
}

func (s *InMemory) collect(keep func(*models.User) bool) []*models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.User, 0, len(s.users))
	for _, u := range s.users {
		if keep(u) {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].FirstName < out[j].FirstName
	})
	return out
}
