package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestMemoryStore(t *testing.T) (*MemorySessionCodeStore, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	s := NewMemorySessionCodeStore(logger.NewNopLogger(), 5*time.Minute, time.Hour)
	s.now = clock.Now
	t.Cleanup(func() { _ = s.Close() })
	return s, clock
}

func TestMemorySessionCodeStore_SingleUse(t *testing.T) {
	s, _ := newTestMemoryStore(t)
	ctx := context.Background()

	code, err := s.Put(ctx, SessionGrant{Credential: "cred", AccountRef: "acc_abcdefghijkl"})
	require.NoError(t, err)
	assert.Len(t, code, 64)

	grant, err := s.Take(ctx, code)
	require.NoError(t, err)
	require.NotNil(t, grant)
	assert.Equal(t, "cred", grant.Credential)

	again, err := s.Take(ctx, code)
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestMemorySessionCodeStore_Expiry(t *testing.T) {
	s, clock := newTestMemoryStore(t)
	ctx := context.Background()

	expired, err := s.Put(ctx, SessionGrant{Credential: "old"})
	require.NoError(t, err)
	clock.Advance(4 * time.Minute)
	fresh, err := s.Put(ctx, SessionGrant{Credential: "new"})
	require.NoError(t, err)
	clock.Advance(2 * time.Minute)

	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())

	grant, err := s.Take(ctx, expired)
	require.NoError(t, err)
	assert.Nil(t, grant)

	grant, err = s.Take(ctx, fresh)
	require.NoError(t, err)
	require.NotNil(t, grant)
	assert.Equal(t, "new", grant.Credential)
}

func TestMemorySessionCodeStore_TakeRejectsExpiredBeforeSweep(t *testing.T) {
	s, clock := newTestMemoryStore(t)
	ctx := context.Background()

	code, err := s.Put(ctx, SessionGrant{Credential: "cred"})
	require.NoError(t, err)
	clock.Advance(5 * time.Minute)

	grant, err := s.Take(ctx, code)
	require.NoError(t, err)
	assert.Nil(t, grant)
	assert.Equal(t, 0, s.Len())
}

func TestMemorySessionCodeStore_SweepLoopStops(t *testing.T) {
	s := NewMemorySessionCodeStore(logger.NewNopLogger(), time.Millisecond, 5*time.Millisecond)
	_, err := s.Put(context.Background(), SessionGrant{Credential: "cred"})
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)
	require.NoError(t, s.Close())
}

func TestRedisSessionCodeStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s := NewRedisSessionCodeStore(client, "artsoul:session-code:", 5*time.Minute)
	ctx := context.Background()

	code, err := s.Put(ctx, SessionGrant{Credential: "cred", AccountRef: "acc_abcdefghijkl"})
	require.NoError(t, err)
	assert.True(t, mr.Exists("artsoul:session-code:"+code))

	grant, err := s.Take(ctx, code)
	require.NoError(t, err)
	require.NotNil(t, grant)
	assert.Equal(t, "acc_abcdefghijkl", grant.AccountRef)

	again, err := s.Take(ctx, code)
	require.NoError(t, err)
	assert.Nil(t, again)

	expiring, err := s.Put(ctx, SessionGrant{Credential: "cred"})
	require.NoError(t, err)
	mr.FastForward(6 * time.Minute)
	grant, err = s.Take(ctx, expiring)
	require.NoError(t, err)
	assert.Nil(t, grant)
}
