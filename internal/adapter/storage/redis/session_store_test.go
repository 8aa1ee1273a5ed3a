package redis

import (
	"context"
	"testing"
	"time"

	"wallet-admin-console/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionStore(client), s
}

func testSession() *domain.Session {
	return &domain.Session{
		ID:                 uuid.New(),
		UserID:             1,
		Name:               "root",
		Email:              "admin@example.com",
		Role:               domain.RoleSuperAdmin,
		AccessTokenSealed:  "sealed-access",
		RefreshTokenSealed: "sealed-refresh",
		AccessExpiresAt:    time.Date(2026, 3, 1, 10, 5, 0, 0, time.UTC),
		DisplayCurrency:    "USD",
		CreatedAt:          time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	store, mr := newSessionStore(t)
	ctx := context.Background()
	sess := testSession()

	require.NoError(t, store.Save(ctx, sess, time.Hour))
	assert.Equal(t, time.Hour, mr.TTL("session:"+sess.ID.String()))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sess.UserID, got.UserID)
	assert.Equal(t, "sealed-access", got.AccessTokenSealed)
	assert.True(t, sess.AccessExpiresAt.Equal(got.AccessExpiresAt))
}

func TestSessionStore_GetMissing(t *testing.T) {
	store, _ := newSessionStore(t)

	got, err := store.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_Expiry(t *testing.T) {
	store, mr := newSessionStore(t)
	ctx := context.Background()
	sess := testSession()

	require.NoError(t, store.Save(ctx, sess, time.Minute))
	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "expired session should be gone")
}

func TestSessionStore_UpdateKeepsTTL(t *testing.T) {
	store, mr := newSessionStore(t)
	ctx := context.Background()
	sess := testSession()

	require.NoError(t, store.Save(ctx, sess, time.Hour))
	mr.FastForward(10 * time.Minute)

	sess.DisplayCurrency = "XAF"
	require.NoError(t, store.Save(ctx, sess, 0))

	assert.Equal(t, 50*time.Minute, mr.TTL("session:"+sess.ID.String()))
	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "XAF", got.DisplayCurrency)
}

func TestSessionStore_UpdateDoesNotResurrect(t *testing.T) {
	store, _ := newSessionStore(t)
	ctx := context.Background()
	sess := testSession()

	require.NoError(t, store.Save(ctx, sess, 0))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_Delete(t *testing.T) {
	store, _ := newSessionStore(t)
	ctx := context.Background()
	sess := testSession()

	require.NoError(t, store.Save(ctx, sess, time.Hour))
	require.NoError(t, store.Delete(ctx, sess.ID))
	require.NoError(t, store.Delete(ctx, sess.ID), "deleting twice is fine")

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_CorruptPayload(t *testing.T) {
	store, mr := newSessionStore(t)
	id := uuid.New()
	require.NoError(t, mr.Set("session:"+id.String(), "{not json"))

	_, err := store.Get(context.Background(), id)
	assert.ErrorContains(t, err, "decode session")
}
