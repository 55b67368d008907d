package eventlog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "welfare/pkg/domain"
)

func TestInMemoryStoreFilterOrdersNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	userID := id.UserID(uuid.New())

	for i := range 5 {
		e := &Entry{ID: id.EventID(uuid.New()), Type: TypeLogin, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		if i%2 == 0 {
			e.UserID = &userID
		}
		require.NoError(t, store.Append(ctx, e))
	}

	all, err := store.Filter(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.True(t, all[i-1].CreatedAt.After(all[i].CreatedAt))
	}

	limited, err := store.Filter(ctx, Filter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, base.Add(4*time.Hour), limited[0].CreatedAt)

	mine, err := store.Filter(ctx, Filter{UserID: &userID})
	require.NoError(t, err)
	assert.Len(t, mine, 3)
}

func TestInMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	e := &Entry{ID: id.EventID(uuid.New()), Type: TypeLogin, Description: "original"}
	require.NoError(t, store.Append(ctx, e))

	e.Description = "mutated after append"
	got, err := store.Filter(ctx, Filter{})
	require.NoError(t, err)
	got[0].Description = "mutated after read"

	again, err := store.Filter(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].Description)
}
