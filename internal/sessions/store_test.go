package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeKV is an in-memory KV honoring TTLs against an adjustable clock.
type fakeKV struct {
	now     time.Time
	entries map[string]fakeEntry
}

type fakeEntry struct {
	value     string
	expiresAt time.Time
}

func newFakeKV() *fakeKV {
	return &fakeKV{now: time.Now(), entries: map[string]fakeEntry{}}
}

func (f *fakeKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	f.entries[key] = fakeEntry{value: value, expiresAt: f.now.Add(ttl)}
	return nil
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, error) {
	e, ok := f.entries[key]
	if !ok || !f.now.Before(e.expiresAt) {
		return "", ErrNoSession
	}
	return e.value, nil
}

func (f *fakeKV) Del(ctx context.Context, key string) (bool, error) {
	e, ok := f.entries[key]
	if !ok || !f.now.Before(e.expiresAt) {
		return false, nil
	}
	delete(f.entries, key)
	return true, nil
}

func TestStoreRoundtrip(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	store := NewStore(kv, 24*time.Hour)

	token, err := store.Create(ctx, "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := store.UserID(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestStoreTokensAreUnique(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newFakeKV(), time.Hour)

	t1, err := store.Create(ctx, "user-1")
	require.NoError(t, err)
	t2, err := store.Create(ctx, "user-1")
	require.NoError(t, err)
	assert.NotEqual(t, t1, t2)
}

func TestStoreExpiry(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	store := NewStore(kv, 24*time.Hour)

	token, err := store.Create(ctx, "user-1")
	require.NoError(t, err)

	kv.now = kv.now.Add(24*time.Hour + time.Second)
	_, err = store.UserID(ctx, token)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestStoreDestroy(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newFakeKV(), time.Hour)

	token, err := store.Create(ctx, "user-1")
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, token))

	_, err = store.UserID(ctx, token)
	require.ErrorIs(t, err, ErrNoSession)

	// second revocation reports no session, deterministically
	require.ErrorIs(t, store.Destroy(ctx, token), ErrNoSession)
}

func TestStoreEmptyToken(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newFakeKV(), time.Hour)

	_, err := store.UserID(ctx, "")
	require.ErrorIs(t, err, ErrNoSession)
	require.ErrorIs(t, store.Destroy(ctx, ""), ErrNoSession)
}

func TestStoreUnknownToken(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newFakeKV(), time.Hour)

	_, err := store.UserID(ctx, "never-issued")
	require.ErrorIs(t, err, ErrNoSession)
}
