package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"welfare/internal/certificates/models"
	id "welfare/pkg/domain"
)

func newCertificate(citizenID id.CitizenID, typ models.Type, issued time.Time) *models.Certificate {
	return &models.Certificate{
		ID:        id.CertificateID(uuid.New()),
		CitizenID: citizenID,
		Type:      typ,
		IssueDate: issued,
		Status:    models.StatusActive,
		CreatedAt: issued,
	}
}

func TestInMemoryCertificates(t *testing.T) {
	ctx := context.Background()
	citizen := id.CitizenID(uuid.New())
	jan := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	may := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	store := NewInMemory()
	require.NoError(t, store.Create(ctx, newCertificate(citizen, models.TypeIncome, jan)))
	require.NoError(t, store.Create(ctx, newCertificate(citizen, models.TypeStatus, may)))
	annulled := newCertificate(id.CitizenID(uuid.New()), models.TypeIncome, mar)
	annulled.Status = models.StatusAnnulled
	require.NoError(t, store.Create(ctx, annulled))

	t.Run("latest first and annulled hidden", func(t *testing.T) {
		got, err := store.List(ctx, models.Filter{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, may, got[0].IssueDate)
	})

	t.Run("include annulled", func(t *testing.T) {
		got, err := store.List(ctx, models.Filter{IncludeAnnulled: true})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("counts skip annulled", func(t *testing.T) {
		byType, err := store.CountByType(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[models.Type]int{models.TypeIncome: 1, models.TypeStatus: 1}, byType)

		n, err := store.CountInRange(ctx, jan, mar)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		n, err = store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}
