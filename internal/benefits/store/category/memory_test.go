package category

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"welfare/internal/benefits/models"
	"welfare/internal/sentinel"
	id "welfare/pkg/domain"
)

func newCategory(t *testing.T, name string) *models.Category {
	t.Helper()
	c, err := models.NewCategory(id.CategoryID(uuid.New()), models.CategoryDetails{Name: name}, time.Now())
	require.NoError(t, err)
	return c
}

func TestInMemoryCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("names are unique ignoring case", func(t *testing.T) {
		store := NewInMemory()
		require.NoError(t, store.Create(ctx, newCategory(t, "Veteran")))
		assert.ErrorIs(t, store.Create(ctx, newCategory(t, "VETERAN")), sentinel.ErrAlreadyUsed)
	})

	t.Run("rename frees the old name", func(t *testing.T) {
		store := NewInMemory()
		c := newCategory(t, "Veteran")
		require.NoError(t, store.Create(ctx, c))
		c.Name = "Labour veteran"
		require.NoError(t, store.Update(ctx, c))
		assert.NoError(t, store.Create(ctx, newCategory(t, "veteran")))
	})

	t.Run("update of unknown category", func(t *testing.T) {
		store := NewInMemory()
		assert.ErrorIs(t, store.Update(ctx, newCategory(t, "Veteran")), sentinel.ErrNotFound)
	})

	t.Run("list filters and sorts", func(t *testing.T) {
		store := NewInMemory()
		disabled := newCategory(t, "Disability")
		require.NoError(t, store.Create(ctx, newCategory(t, "Veteran")))
		require.NoError(t, store.Create(ctx, disabled))
		require.NoError(t, store.Create(ctx, newCategory(t, "Large family")))
		require.NoError(t, disabled.Deactivate(time.Now()))
		require.NoError(t, store.Update(ctx, disabled))

		all, err := store.List(ctx, false)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "Disability", all[0].Name)

		active, err := store.List(ctx, true)
		require.NoError(t, err)
		require.Len(t, active, 2)
		assert.Equal(t, "Large family", active[0].Name)
	})

	t.Run("returns copies", func(t *testing.T) {
		store := NewInMemory()
		c := newCategory(t, "Veteran")
		require.NoError(t, store.Create(ctx, c))
		got, err := store.FindByID(ctx, c.ID)
		require.NoError(t, err)
		got.Name = "mutated"
		again, err := store.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Veteran", again.Name)
	})
}
