package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client), mr
}

func testSession(t *testing.T, ttl time.Duration) Session {
	t.Helper()

	id, err := NewToken()
	require.NoError(t, err)

	now := time.Now()
	return Session{
		SessionID: id,
		UserID:    "user-1",
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestRedisStoreRoundtrip(t *testing.T) {
	st, _ := newRedisStore(t)
	s := testSession(t, time.Hour)

	require.NoError(t, st.Create(context.Background(), s))

	got, err := st.Get(context.Background(), s.SessionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, s.SessionID, got.SessionID)
	assert.Equal(t, "user-1", got.UserID)
}

func TestRedisStoreUnknownTokenAbsent(t *testing.T) {
	st, _ := newRedisStore(t)

	got, err := st.Get(context.Background(), "no-such-token")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStoreExpiry(t *testing.T) {
	st, mr := newRedisStore(t)
	s := testSession(t, time.Minute)

	require.NoError(t, st.Create(context.Background(), s))

	mr.FastForward(2 * time.Minute)

	got, err := st.Get(context.Background(), s.SessionID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStoreDeleteIdempotent(t *testing.T) {
	st, _ := newRedisStore(t)
	s := testSession(t, time.Hour)

	require.NoError(t, st.Create(context.Background(), s))
	require.NoError(t, st.Delete(context.Background(), s.SessionID))

	got, err := st.Get(context.Background(), s.SessionID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting an already-revoked token still succeeds.
	assert.NoError(t, st.Delete(context.Background(), s.SessionID))
}

func TestRedisStoreRejectsIncompleteSession(t *testing.T) {
	st, _ := newRedisStore(t)

	err := st.Create(context.Background(), Session{SessionID: "x"})
	assert.Error(t, err)

	s := testSession(t, time.Hour)
	s.ExpiresAt = time.Now().Add(-time.Minute)
	assert.Error(t, st.Create(context.Background(), s))
}
