package eventlog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
)

func TestServiceLatestDefaultsToHundred(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 120 {
		require.NoError(t, store.Append(ctx, &Entry{
			ID:        id.EventID(uuid.New()),
			Type:      TypeLogin,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	svc := NewService(store)

	latest, err := svc.Latest(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, latest, 100)
	assert.Equal(t, base.Add(119*time.Minute), latest[0].CreatedAt)

	five, err := svc.Latest(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, five, 5)
}

func TestServiceFilterRejectsInvertedRange(t *testing.T) {
	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)

	_, err := NewService(NewInMemoryStore()).Filter(context.Background(), Filter{From: &from, To: &to})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}
