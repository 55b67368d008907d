package region

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"welfare/internal/citizens/models"
	"welfare/internal/sentinel"
	id "welfare/pkg/domain"
)

func newRegion(t *testing.T, name string) *models.Region {
	t.Helper()
	r, err := models.NewRegion(id.RegionID(uuid.New()), name, time.Now())
	require.NoError(t, err)
	return r
}

func TestInMemoryNameIsUniqueIgnoringCase(t *testing.T) {
	ctx := context.Background()
	store := NewInMemory()

	require.NoError(t, store.Create(ctx, newRegion(t, "Заречный")))
	err := store.Create(ctx, newRegion(t, "ЗАРЕЧНЫЙ"))
	assert.ErrorIs(t, err, sentinel.ErrAlreadyUsed)
}

func TestInMemoryUpdateReleasesOldName(t *testing.T) {
	ctx := context.Background()
	store := NewInMemory()
	north := newRegion(t, "North")
	south := newRegion(t, "South")
	require.NoError(t, store.Create(ctx, north))
	require.NoError(t, store.Create(ctx, south))

	south.Name = "north"
	assert.ErrorIs(t, store.Update(ctx, south), sentinel.ErrAlreadyUsed)

	north.Name = "Far North"
	require.NoError(t, store.Update(ctx, north))
	south.Name = "North"
	require.NoError(t, store.Update(ctx, south))

	missing := newRegion(t, "Nowhere")
	assert.ErrorIs(t, store.Update(ctx, missing), sentinel.ErrNotFound)
}

func TestInMemoryListIsOrderedByName(t *testing.T) {
	ctx := context.Background()
	store := NewInMemory()
	for _, name := range []string{"Western", "Central", "Eastern"} {
		require.NoError(t, store.Create(ctx, newRegion(t, name)))
	}

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Central", list[0].Name)
	assert.Equal(t, "Western", list[2].Name)
}
