package redis

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"welfare/internal/platform/config"
)

func TestNewWithoutURLIsDisabled(t *testing.T) {
	client, err := New(context.Background(), config.RedisConfig{}, nil)
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewRejectsMalformedURL(t *testing.T) {
	_, err := New(context.Background(), config.RedisConfig{URL: "://nope"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse redis URL")
}

func TestAddDeltaOnlyMovesForward(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPoolMetrics(reg)

	addDelta(m.hits, 10, 0)
	addDelta(m.hits, 15, 10)
	addDelta(m.hits, 3, 15)

	assert.InDelta(t, 15, testutil.ToFloat64(m.hits), 0.001)
}
