package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/wellbeinghub/internal/client/models"
	"github.com/dmitrijs2005/wellbeinghub/internal/client/repositories/metadata"
)

func newStore(t *testing.T) (*Store, *metadata.MemoryRepository) {
	t.Helper()
	repo := metadata.NewMemoryRepository()
	return NewStore(repo, nil), repo
}

func TestToken_SetGetRemove(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	tok, ok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "fresh store has no token")
	assert.Empty(t, tok)

	require.NoError(t, s.SetToken(ctx, "abc"))
	tok, ok, err = s.Token(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	require.NoError(t, s.SetToken(ctx, ""))
	_, ok, err = s.Token(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestToken_RawStorageLayout(t *testing.T) {
	s, repo := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetToken(ctx, "abc"))
	raw, err := repo.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), raw)
}

func TestUser_RoundTrip(t *testing.T) {
	s, repo := newStore(t)
	ctx := context.Background()

	u := &models.User{NumericID: 7, Name: "Ann", Email: "ann@example.org", Role: models.RoleAdmin, Location: "LS1"}
	require.NoError(t, s.SetUser(ctx, u))

	got, err := s.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	raw, err := repo.Get(ctx, UserKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"numericId":7,"name":"Ann","email":"ann@example.org","role":"Admin","location":"LS1"}`, string(raw))

	require.NoError(t, s.SetUser(ctx, nil))
	got, err = s.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUser_CorruptedValueIsAbsent(t *testing.T) {
	s, repo := newStore(t)
	ctx := context.Background()

	for _, raw := range []string{"{not json", "null", " null "} {
		require.NoError(t, repo.Set(ctx, UserKey, []byte(raw)))

		got, err := s.User(ctx)
		require.NoError(t, err, raw)
		assert.Nil(t, got, raw)
	}
}

func TestClear_RemovesBoth(t *testing.T) {
	s, repo := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetToken(ctx, "abc"))
	require.NoError(t, s.SetUser(ctx, &models.User{NumericID: 1, Name: "Ann"}))
	require.NoError(t, s.Clear(ctx))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStore_TokenAndUserAreIndependent(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetUser(ctx, &models.User{NumericID: 1}))
	require.NoError(t, s.SetToken(ctx, ""))

	u, err := s.User(ctx)
	require.NoError(t, err)
	assert.NotNil(t, u, "clearing the token alone leaves the user; coupling is the caller's job")
}

type failingRepo struct {
	metadata.Repository
	err error
}

func (f failingRepo) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingRepo) Set(context.Context, string, []byte) error   { return f.err }
func (f failingRepo) Delete(context.Context, string) error        { return f.err }

func TestStore_BackendErrorsAreWrapped(t *testing.T) {
	boom := errors.New("disk full")
	s := NewStore(failingRepo{err: boom}, nil)
	ctx := context.Background()

	_, _, err := s.Token(ctx)
	require.ErrorIs(t, err, boom)
	require.ErrorContains(t, err, "read token")

	require.ErrorIs(t, s.SetToken(ctx, "x"), boom)
	require.ErrorIs(t, s.SetToken(ctx, ""), boom)

	_, err = s.User(ctx)
	require.ErrorIs(t, err, boom)

	require.ErrorIs(t, s.SetUser(ctx, &models.User{}), boom)
	require.ErrorIs(t, s.Clear(ctx), boom)
}
