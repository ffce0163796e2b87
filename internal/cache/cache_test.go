package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloud-ru/mcp-kpr-go/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		backend   string
		want      any
		wantError bool
	}{
		{backend: "none", want: Noop{}},
		{backend: "", want: Noop{}},
		{backend: "memory", want: &Memory{}},
		{backend: "redis", want: &Redis{}},
		{backend: "memcached", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			cfg := config.Default()
			cfg.CacheBackend = tt.backend

			c, err := New(cfg)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, c)
		})
	}
}

func TestKey(t *testing.T) {
	type params struct {
		Principal int64   `json:"principal"`
		Rate      float64 `json:"rate"`
	}

	a, err := Key("monthly_installment_fixed", params{Principal: 1000000, Rate: 0.06})
	require.NoError(t, err)
	b, err := Key("monthly_installment_fixed", params{Principal: 1000000, Rate: 0.06})
	require.NoError(t, err)
	c, err := Key("monthly_installment_fixed", params{Principal: 1000000, Rate: 0.07})
	require.NoError(t, err)
	other, err := Key("interest_paid_fixed", params{Principal: 1000000, Rate: 0.06})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, other)
	assert.Contains(t, a, "kpr:monthly_installment_fixed:")
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(time.Minute)

	_, ok, err := m.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, "k", "v"))
	val, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", val)
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemory(time.Minute)
	m.now = func() time.Time { return now }
	m.lastSweep = now

	require.NoError(t, m.Set(ctx, "a", "1"))
	require.NoError(t, m.Set(ctx, "b", "2"))

	now = now.Add(30 * time.Second)
	_, ok, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)

	// "a" устарела и удаляется при чтении
	now = now.Add(time.Minute)
	_, ok, err = m.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())

	// "b" никто не читает: ее удаляет очистка при записи
	require.NoError(t, m.Set(ctx, "c", "3"))
	assert.Equal(t, 1, m.Len())
	val, ok, err := m.Get(ctx, "c")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "3", val)
}

func TestMemoryWithoutTTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemory(0)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "k", "v"))
	now = now.Add(24 * time.Hour)
	_, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLookupResult(t *testing.T) {
	val, ok, err := lookupResult("", redis.Nil)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, val)

	_, ok, err = lookupResult("", errors.New("connection refused"))
	assert.Error(t, err)
	assert.False(t, ok)

	val, ok, err = lookupResult("cached", nil)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "cached", val)
}

func TestRedisUnavailable(t *testing.T) {
	// порт 1 закрыт: ошибка хранилища, а не промах и не паника
	r := NewRedis("127.0.0.1:1", time.Minute)
	defer r.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, ok, err := r.Get(ctx, "k")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, r.Set(ctx, "k", "v"))
}
