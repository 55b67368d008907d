package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"welfare/internal/certificates/models"
	"welfare/internal/sentinel"
	id "welfare/pkg/domain"
)

// InMemory stores certificates for the database-less mode and tests.
type InMemory struct {
	mu           sync.RWMutex
	certificates map[id.CertificateID]*models.Certificate
}

func NewInMemory() *InMemory {
	return &InMemory{certificates: make(map[id.CertificateID]*models.Certificate)}
}

func (s *InMemory) Create(_ context.Context, c *models.Certificate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *c
	s.certificates[c.ID] = &cp
	return nil
}

func (s *InMemory) Update(_ context.Context, c *models.Certificate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.certificates[c.ID]; !ok {
		return sentinel.ErrNotFound
	}
	cp := *c
	s.certificates[c.ID] = &cp
	return nil
}

func (s *InMemory) FindByID(_ context.Context, certificateID id.CertificateID) (*models.Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.certificates[certificateID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

// List returns matching certificates, latest issue date first.
func (s *InMemory) List(_ context.Context, f models.Filter) ([]*models.Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Certificate, 0)
	for _, c := range s.certificates {
		if f.Matches(c) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].IssueDate.Equal(out[j].IssueDate) {
			return out[i].IssueDate.After(out[j].IssueDate)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// CountByType counts certificates that are not annulled.
func (s *InMemory) CountByType(_ context.Context) (map[models.Type]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[models.Type]int)
	for _, c := range s.certificates {
		if !c.IsAnnulled() {
			out[c.Type]++
		}
	}
	return out, nil
}

// CountInRange counts certificates not annulled and issued in [from, to].
func (s *InMemory) CountInRange(_ context.Context, from, to time.Time) (int, error) {
	f := models.Filter{From: &from, To: &to}
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, c := range s.certificates {
		if f.Matches(c) {
			n++
		}
	}
	return n, nil
}

func (s *InMemory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, c := range s.certificates {
		if !c.IsAnnulled() {
			n++
		}
	}
	return n, nil
}
