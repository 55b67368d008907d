package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
)

func TestType(t *testing.T) {
	for _, typ := range Types {
		assert.True(t, typ.IsValid(), typ)
		assert.NotEqual(t, string(typ), typ.Title())
	}
	assert.False(t, Type("pension").IsValid())
	assert.False(t, Type("").IsValid())
}

func TestAnnul(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	c := &Certificate{Status: StatusActive}
	require.NoError(t, c.Annul(now))
	assert.True(t, c.IsAnnulled())
	assert.Equal(t, now, c.UpdatedAt)
	assert.True(t, dErrors.HasCode(c.Annul(now), dErrors.CodeInvariantViolation))
}

func TestFilterMatches(t *testing.T) {
	citizen := id.CitizenID(uuid.New())
	issued := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	c := &Certificate{CitizenID: citizen, Type: TypeIncome, IssueDate: issued, Status: StatusActive}
	day := func(m time.Month, d int) *time.Time {
		v := time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
		return &v
	}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"empty filter", Filter{}, true},
		{"type mismatch", Filter{Type: TypeStatus}, false},
		{"range is inclusive", Filter{From: day(3, 15), To: day(3, 15)}, true},
		{"before range", Filter{From: day(3, 16)}, false},
		{"other citizen", Filter{CitizenIDs: []id.CitizenID{id.CitizenID(uuid.New())}}, false},
		{"empty name match excludes all", Filter{CitizenIDs: []id.CitizenID{}}, false},
		{"listed citizen", Filter{CitizenIDs: []id.CitizenID{citizen}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(c))
		})
	}

	t.Run("annulled hidden unless asked", func(t *testing.T) {
		annulled := *c
		annulled.Status = StatusAnnulled
		assert.False(t, Filter{}.Matches(&annulled))
		assert.True(t, Filter{IncludeAnnulled: true}.Matches(&annulled))
	})
}
