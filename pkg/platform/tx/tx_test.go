package tx

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "welfare/pkg/domain-errors"
)

func TestFromWithoutTx(t *testing.T) {
	_, ok := From(context.Background())
	assert.False(t, ok)

	ctx := WithTx(context.Background(), nil)
	_, ok = From(ctx)
	assert.False(t, ok, "nil tx must not be stored")
}

func TestFromWithTx(t *testing.T) {
	sqlTx := &sql.Tx{}
	got, ok := From(WithTx(context.Background(), sqlTx))
	require.True(t, ok)
	assert.Same(t, sqlTx, got)
}

func TestMemoryRunInTxSerializes(t *testing.T) {
	m := NewMemory()
	var inside, maxInside atomic.Int32

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.RunInTx(context.Background(), func(context.Context) error {
				n := inside.Add(1)
				if n > maxInside.Load() {
					maxInside.Store(n)
				}
				time.Sleep(time.Millisecond)
				inside.Add(-1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside.Load())
}

func TestMemoryRunInTxCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := NewMemory().RunInTx(ctx, func(context.Context) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeTimeout))
}
