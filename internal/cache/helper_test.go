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
	Name string `json:"name"`
	N    int    `json:"n"`
}

func withMiniredis(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	SetClient(rdb)
	t.Cleanup(func() {
		SetClient(nil)
		_ = rdb.Close()
	})
}

func TestAsidePopulatesAndHits(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	calls := 0
	var got payload
	err := Aside(ctx, "k1", &got, time.Minute, func() error {
		calls++
		got = payload{Name: "warble", N: 3}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "warble", got.Name)

	// Second read served from cache; fetch must not run again.
	var again payload
	err = Aside(ctx, "k1", &again, time.Minute, func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, got, again)
}

func TestAsidePropagatesFetchError(t *testing.T) {
	withMiniredis(t)

	wantErr := errors.New("boom")
	var got payload
	err := Aside(context.Background(), "k2", &got, time.Minute, func() error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	// Errors must not poison the cache.
	found, err := GetJSON(context.Background(), "k2", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAsideWithoutClientFallsThrough(t *testing.T) {
	SetClient(nil)

	calls := 0
	var got payload
	err := Aside(context.Background(), "k3", &got, time.Minute, func() error {
		calls++
		got.N = 1
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, got.N)
}

func TestInvalidateUser(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, UserKey(12), payload{Name: "u"}, time.Minute))
	InvalidateUser(ctx, 12)

	var got payload
	found, err := GetJSON(ctx, UserKey(12), &got)
	require.NoError(t, err)
	assert.False(t, found)
}
