package grant

import (
	"context"
	"sort"
	"sync"
	"time"

	"welfare/internal/benefits/models"
	"welfare/internal/sentinel"
	id "welfare/pkg/domain"
)

// InMemory stores benefit grants for the database-less mode and tests.
type InMemory struct {
	mu     sync.RWMutex
	grants map[id.GrantID]*models.Grant
}

func NewInMemory() *InMemory {
	return &InMemory{grants: make(map[id.GrantID]*models.Grant)}
}

func (s *InMemory) Create(_ context.Context, g *models.Grant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grants[g.ID] = copyGrant(g)
	return nil
}

func (s *InMemory) Update(_ context.Context, g *models.Grant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.grants[g.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.grants[g.ID] = copyGrant(g)
	return nil
}

func (s *InMemory) FindByID(_ context.Context, grantID id.GrantID) (*models.Grant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.grants[grantID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return copyGrant(g), nil
}

// ListByCitizen returns every grant of the citizen, newest start first.
func (s *InMemory) ListByCitizen(_ context.Context, citizenID id.CitizenID) ([]*models.Grant, error) {
	return s.collect(func(g *models.Grant) bool { return g.CitizenID == citizenID }, byStartDesc), nil
}

// ListCurrentByCitizen returns active grants of the citizen that have not
// ended before today, newest start first.
func (s *InMemory) ListCurrentByCitizen(_ context.Context, citizenID id.CitizenID, today time.Time) ([]*models.Grant, error) {
	return s.collect(func(g *models.Grant) bool {
		return g.CitizenID == citizenID && g.IsCurrent(today)
	}, byStartDesc), nil
}

// ListCurrent returns current grants across citizens, optionally restricted
// to one category.
func (s *InMemory) ListCurrent(_ context.Context, today time.Time, categoryID *id.CategoryID) ([]*models.Grant, error) {
	return s.collect(func(g *models.Grant) bool {
		return g.IsCurrent(today) && (categoryID == nil || g.CategoryID == *categoryID)
	}, byStartDesc), nil
}

func (s *InMemory) HasCurrentInCategory(_ context.Context, citizenID id.CitizenID, categoryID id.CategoryID, today time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.grants {
		if g.CitizenID == citizenID && g.CategoryID == categoryID && g.IsCurrent(today) {
			return true, nil
		}
	}
	return false, nil
}

// LockCitizenCategory is a no-op; callers already serialize through the
// in-memory transaction.
func (s *InMemory) LockCitizenCategory(_ context.Context, _ id.CitizenID, _ id.CategoryID) error {
	return nil
}

// ListExpiring returns active grants whose end date falls in [from, to],
// soonest first.
func (s *InMemory) ListExpiring(_ context.Context, from, to time.Time) ([]*models.Grant, error) {
	return s.collect(func(g *models.Grant) bool {
		return g.IsActive() && g.EndDate != nil && !g.EndDate.Before(from) && !g.EndDate.After(to)
	}, func(a, b *models.Grant) bool {
		return a.EndDate.Before(*b.EndDate)
	}), nil
}

// CountActiveByCategory counts grants with active status per category.
func (s *InMemory) CountActiveByCategory(_ context.Context) (map[id.CategoryID]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[id.CategoryID]int)
	for _, g := range s.grants {
		if g.IsActive() {
			out[g.CategoryID]++
		}
	}
	return out, nil
}

// CountCitizensInCategory counts distinct citizens holding an active grant
// in the category.
func (s *InMemory) CountCitizensInCategory(_ context.Context, categoryID id.CategoryID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[id.CitizenID]struct{})
	for _, g := range s.grants {
		if g.IsActive() && g.CategoryID == categoryID {
			seen[g.CitizenID] = struct{}{}
		}
	}
	return len(seen), nil
}

// CountBeneficiaries counts distinct citizens holding any active grant.
func (s *InMemory) CountBeneficiaries(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[id.CitizenID]struct{})
	for _, g := range s.grants {
		if g.IsActive() {
			seen[g.CitizenID] = struct{}{}
		}
	}
	return len(seen), nil
}

func (s *InMemory) collect(keep func(*models.Grant) bool, less func(a, b *models.Grant) bool) []*models.Grant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Grant, 0)
	for _, g := range s.grants {
		if keep(g) {
			out = append(out, copyGrant(g))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func byStartDesc(a, b *models.Grant) bool {
	return a.StartDate.After(b.StartDate)
}

func copyGrant(g *models.Grant) *models.Grant {
	cp := *g
	if g.EndDate != nil {
		end := *g.EndDate
		cp.EndDate = &end
	}
	return &cp
}
