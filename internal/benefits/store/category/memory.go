package category

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"welfare/internal/benefits/models"
	"welfare/internal/sentinel"
	id "welfare/pkg/domain"
	pstrings "welfare/pkg/platform/strings"
)

// InMemory stores benefit categories for the database-less mode and tests.
type InMemory struct {
	mu         sync.RWMutex
	categories map[id.CategoryID]*models.Category
	nameIdx    map[string]id.CategoryID
}

func NewInMemory() *InMemory {
	return &InMemory{
		categories: make(map[id.CategoryID]*models.Category),
		nameIdx:    make(map[string]id.CategoryID),
	}
}

func (s *InMemory) Create(_ context.Context, c *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pstrings.FoldKey(c.Name)
	if _, exists := s.nameIdx[key]; exists {
		return fmt.Errorf("category name must be unique: %w", sentinel.ErrAlreadyUsed)
	}
	cp := *c
	s.categories[c.ID] = &cp
	s.nameIdx[key] = c.ID
	return nil
}

func (s *InMemory) Update(_ context.Context, c *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.categories[c.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	key := pstrings.FoldKey(c.Name)
	if holder, taken := s.nameIdx[key]; taken && holder != c.ID {
		return fmt.Errorf("category name must be unique: %w", sentinel.ErrAlreadyUsed)
	}
	delete(s.nameIdx, pstrings.FoldKey(existing.Name))
	cp := *c
	s.categories[c.ID] = &cp
	s.nameIdx[key] = c.ID
	return nil
}

func (s *InMemory) FindByID(_ context.Context, categoryID id.CategoryID) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[categoryID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

// List returns categories ordered by name, optionally only active ones.
func (s *InMemory) List(_ context.Context, activeOnly bool) ([]*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		if activeOnly && !c.IsActive() {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}
