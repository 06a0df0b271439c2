package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestClient_JSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)
	c := Wrap(redis.NewClient(&redis.Options{Addr: srv.Addr()}))
	defer c.Close()

	require.NoError(t, c.SetJSON(ctx, "k", entry{Name: "john", Count: 2}, time.Minute))

	var got entry
	require.True(t, c.GetJSON(ctx, "k", &got))
	assert.Equal(t, entry{Name: "john", Count: 2}, got)

	require.NoError(t, c.Delete(ctx, "k"))
	assert.False(t, c.GetJSON(ctx, "k", &got))
}

func TestClient_Expiry(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)
	c := Wrap(redis.NewClient(&redis.Options{Addr: srv.Addr()}))
	defer c.Close()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Second))
	srv.FastForward(2 * time.Second)

	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestClient_FailsSafe(t *testing.T) {
	ctx := context.Background()

	var nilClient *Client
	assert.NoError(t, nilClient.Ping(ctx))
	assert.NoError(t, nilClient.Set(ctx, "k", []byte("v"), time.Minute))
	v, err := nilClient.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, v)
	assert.NoError(t, nilClient.Close())

	srv := miniredis.RunT(t)
	c := Wrap(redis.NewClient(&redis.Options{Addr: srv.Addr()}))
	defer c.Close()
	srv.Close()

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	v, err = c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func TestNewInProcess(t *testing.T) {
	ctx := context.Background()
	c, err := NewInProcess()
	require.NoError(t, err)

	require.NoError(t, c.Ping(ctx))
	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
	assert.NoError(t, c.Close())
}

func TestClient_DeletePrefix(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)
	c := Wrap(redis.NewClient(&redis.Options{Addr: srv.Addr()}))
	defer c.Close()

	for _, k := range []string{"user:john", "user:jane", "feedback_summary:john", "refresh_token:abc"} {
		require.NoError(t, c.Set(ctx, k, []byte("v"), time.Minute))
	}

	n, err := c.DeletePrefix(ctx, "user:")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.False(t, srv.Exists("user:john"))
	assert.True(t, srv.Exists("feedback_summary:john"))
	assert.True(t, srv.Exists("refresh_token:abc"))

	var nilClient *Client
	n, err = nilClient.DeletePrefix(ctx, "user:")
	assert.NoError(t, err)
	assert.Zero(t, n)
}
