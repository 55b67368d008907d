package region

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"welfare/internal/citizens/models"
	"welfare/internal/sentinel"
	id "welfare/pkg/domain"
	pstrings "welfare/pkg/platform/strings"
)

// InMemory stores regions for the database-less mode and tests.
type InMemory struct {
	mu      sync.RWMutex
	regions map[id.RegionID]*models.Region
	nameIdx map[string]id.RegionID
}

func NewInMemory() *InMemory {
	return &InMemory{
		regions: make(map[id.RegionID]*models.Region),
		nameIdx: make(map[string]id.RegionID),
	}
}

// Create stores the region if its name is not already taken (case-insensitive).
func (s *InMemory) Create(_ context.Context, r *models.Region) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pstrings.FoldKey(r.Name)
	if _, exists := s.nameIdx[key]; exists {
		return fmt.Errorf("region name must be unique: %w", sentinel.ErrAlreadyUsed)
	}
	cp := *r
	s.regions[r.ID] = &cp
	s.nameIdx[key] = r.ID
	return nil
}

func (s *InMemory) Update(_ context.Context, r *models.Region) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.regions[r.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	key := pstrings.FoldKey(r.Name)
	if holder, taken := s.nameIdx[key]; taken && holder != r.ID {
		return fmt.Errorf("region name must be unique: %w", sentinel.ErrAlreadyUsed)
	}
	delete(s.nameIdx, pstrings.FoldKey(existing.Name))
	cp := *r
	s.regions[r.ID] = &cp
	s.nameIdx[key] = r.ID
	return nil
}

func (s *InMemory) FindByID(_ context.Context, regionID id.RegionID) (*models.Region, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.regions[regionID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

// List returns all regions ordered by name.
func (s *InMemory) List(_ context.Context) ([]*models.Region, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Region, 0, len(s.regions))
	for _, r := range s.regions {
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}
