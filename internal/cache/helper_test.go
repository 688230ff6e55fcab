package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestGetSetJSON(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	found, err := GetJSON(ctx, "missing", &payload{})
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "k", payload{Name: "a", Count: 3}, time.Minute))

	var got payload
	found, err = GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "a", Count: 3}, got)
}

func TestAside(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *payload) func() error {
		return func() error {
			calls++
			*dest = payload{Name: "db", Count: calls}
			return nil
		}
	}

	var first payload
	require.NoError(t, Aside(ctx, "user:1", &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "db", first.Name)

	// Second read is served from the cache; fetch must not run again.
	var second payload
	require.NoError(t, Aside(ctx, "user:1", &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestAsideFetchError(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	wantErr := errors.New("boom")
	var dest payload
	err := Aside(ctx, "user:2", &dest, time.Minute, func() error { return wantErr })
	assert.ErrorIs(t, err, wantErr)

	// Nothing was cached for the failed fetch.
	found, err := GetJSON(ctx, "user:2", &dest)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNilClientDegradesGracefully(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	found, err := GetJSON(ctx, "k", &payload{})
	assert.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, SetJSON(ctx, "k", payload{}, time.Minute))
	Delete(ctx, "k")

	calls := 0
	var dest payload
	require.NoError(t, Aside(ctx, "k", &dest, time.Minute, func() error {
		calls++
		return nil
	}))
	assert.Equal(t, 1, calls)
}

func TestDelete(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, UserKey(7), payload{Name: "x"}, time.Minute))
	Delete(ctx, UserKey(7), FeedKey)

	found, err := GetJSON(ctx, UserKey(7), &payload{})
	require.NoError(t, err)
	assert.False(t, found)
}
