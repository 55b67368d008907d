package citizen

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"welfare/internal/citizens/models"
	"welfare/internal/sentinel"
	id "welfare/pkg/domain"
)

// InMemory stores citizens for the database-less mode and tests.
type InMemory struct {
	mu            sync.RWMutex
	citizens      map[id.CitizenID]*models.Citizen
	identifierIdx map[string]id.CitizenID
}

func NewInMemory() *InMemory {
	return &InMemory{
		citizens:      make(map[id.CitizenID]*models.Citizen),
		identifierIdx: make(map[string]id.CitizenID),
	}
}

// Create stores the citizen if no other citizen holds the identifier.
func (s *InMemory) Create(_ context.Context, c *models.Citizen) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.identifierIdx[c.Identifier]; exists {
		return fmt.Errorf("identifier must be unique: %w", sentinel.ErrAlreadyUsed)
	}
	cp := *c
	s.citizens[c.ID] = &cp
	s.identifierIdx[c.Identifier] = c.ID
	return nil
}

func (s *InMemory) Update(_ context.Context, c *models.Citizen) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.citizens[c.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	if holder, taken := s.identifierIdx[c.Identifier]; taken && holder != c.ID {
		return fmt.Errorf("identifier must be unique: %w", sentinel.ErrAlreadyUsed)
	}
	delete(s.identifierIdx, existing.Identifier)
	cp := *c
	s.citizens[c.ID] = &cp
	s.identifierIdx[c.Identifier] = c.ID
	return nil
}

func (s *InMemory) FindByID(_ context.Context, citizenID id.CitizenID) (*models.Citizen, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.citizens[citizenID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

// FindByIDs returns the citizens that exist among ids, in name order.
// Unknown IDs are skipped.
func (s *InMemory) FindByIDs(_ context.Context, ids []id.CitizenID) ([]*models.Citizen, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Citizen, 0, len(ids))
	seen := make(map[id.CitizenID]struct{}, len(ids))
	for _, citizenID := range ids {
		if _, dup := seen[citizenID]; dup {
			continue
		}
		seen[citizenID] = struct{}{}
		if c, ok := s.citizens[citizenID]; ok {
			cp := *c
			out = append(out, &cp)
		}
	}
	sortByName(out)
	return out, nil
}

func (s *InMemory) FindByIdentifier(_ context.Context, identifier string) (*models.Citizen, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	citizenID, ok := s.identifierIdx[identifier]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *s.citizens[citizenID]
	return &cp, nil
}

// IdentifierExists reports whether a citizen other than excludeID holds the
// canonical identifier.
func (s *InMemory) IdentifierExists(_ context.Context, identifier string, excludeID uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	holder, ok := s.identifierIdx[identifier]
	if !ok {
		return false, nil
	}
	return uuid.UUID(holder) != excludeID, nil
}

func (s *InMemory) List(_ context.Context, activeOnly bool) ([]*models.Citizen, error) {
	return s.collect(func(c *models.Citizen) bool {
		return !activeOnly || c.IsActive()
	}), nil
}

// SearchByName returns active citizens whose last, first or middle name
// contains text, ignoring case.
func (s *InMemory) SearchByName(_ context.Context, text string) ([]*models.Citizen, error) {
	return s.collect(func(c *models.Citizen) bool {
		return c.IsActive() && c.MatchesName(text)
	}), nil
}

func (s *InMemory) ListByRegion(_ context.Context, regionID id.RegionID) ([]*models.Citizen, error) {
	return s.collect(func(c *models.Citizen) bool {
		return c.IsActive() && c.RegionID != nil && *c.RegionID == regionID
	}), nil
}

// CountActiveByRegion counts active citizens per region. Citizens without a
// region are not counted.
func (s *InMemory) CountActiveByRegion(_ context.Context) (map[id.RegionID]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[id.RegionID]int)
	for _, c := range s.citizens {
		if c.IsActive() && c.RegionID != nil {
			counts[*c.RegionID]++
		}
	}
	return counts, nil
}

func (s *InMemory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.citizens), nil
}

func (s *InMemory) collect(keep func(*models.Citizen) bool) []*models.Citizen {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Citizen, 0)
	for _, c := range s.citizens {
		if keep(c) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sortByName(out)
	return out
}

func sortByName(cs []*models.Citizen) {
	sort.Slice(cs, func(i, j int) bool {
		a, b := cs[i], cs[j]
		if a.LastName != b.LastName {
			return a.LastName < b.LastName
		}
		if a.FirstName != b.FirstName {
			return a.FirstName < b.FirstName
		}
		return a.MiddleName < b.MiddleName
	})
}
