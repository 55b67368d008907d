package models

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
)

// ModelsSuite covers citizen and region state transitions.
//
// Justification: soft delete is the only way records leave the active set,
// so repeated transitions must be rejected rather than silently accepted.
type ModelsSuite struct {
	suite.Suite
	now time.Time
}

func TestModelsSuite(t *testing.T) {
	suite.Run(t, new(ModelsSuite))
}

func (s *ModelsSuite) SetupTest() {
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func (s *ModelsSuite) TestCitizenLifecycle() {
	c := &Citizen{ID: id.CitizenID(uuid.New()), Status: StatusActive}

	s.Run("deactivate then reactivate", func() {
		s.Require().NoError(c.Deactivate(s.now))
		s.Equal(StatusInactive, c.Status)
		s.Equal(s.now, c.UpdatedAt)
		s.Require().NoError(c.Reactivate(s.now.Add(time.Hour)))
		s.True(c.IsActive())
	})

	s.Run("reactivating an active citizen is rejected", func() {
		err := c.Reactivate(s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	s.Run("deactivating twice is rejected", func() {
		s.Require().NoError(c.Deactivate(s.now))
		err := c.Deactivate(s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func (s *ModelsSuite) TestCitizenNames() {
	c := &Citizen{LastName: "Иванова", FirstName: "Мария"}
	s.Equal("Иванова Мария", c.FullName())

	c.MiddleName = "Петровна"
	s.Equal("Иванова Мария Петровна", c.FullName())

	s.True(c.MatchesName("петров"))
	s.True(c.MatchesName("  ИВАН "))
	s.False(c.MatchesName("Сидоров"))
	s.True(c.MatchesName(""))
}

func (s *ModelsSuite) TestCitizenFormatting() {
	c := &Citizen{Identifier: "11223344595", Phone: "79161234567"}
	s.Equal("112-233-445 95", c.FormattedIdentifier())
	s.Equal("+7 (916) 123-45-67", c.FormattedPhone())

	c.Phone = ""
	s.Empty(c.FormattedPhone())
}

func (s *ModelsSuite) TestRegionName() {
	s.Run("trimmed on create", func() {
		r, err := NewRegion(id.RegionID(uuid.New()), "  Северный округ ", s.now)
		s.Require().NoError(err)
		s.Equal("Северный округ", r.Name)
		s.Equal(s.now, r.CreatedAt)
	})

	s.Run("blank is rejected", func() {
		_, err := NewRegion(id.RegionID(uuid.New()), "   ", s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rename enforces length", func() {
		r, err := NewRegion(id.RegionID(uuid.New()), "Центр", s.now)
		s.Require().NoError(err)
		err = r.Rename(strings.Repeat("я", 129), s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal("Центр", r.Name)
	})
}
