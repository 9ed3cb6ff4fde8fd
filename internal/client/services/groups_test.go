package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/wellbeinghub/internal/client/backendtest"
	"github.com/dmitrijs2005/wellbeinghub/internal/client/client"
	"github.com/dmitrijs2005/wellbeinghub/internal/client/models"
)

func TestGroupCreate_DefaultMembers(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	require.NoError(t, store.SetUser(ctx, ann))

	fc := &fakeClient{}
	require.NoError(t, NewGroupService(fc, store).Create(ctx, models.Group{Name: "Runners", Location: "LS1"}))
	assert.Equal(t, []int64{ann.NumericID}, fc.LastGroup.MemberIDs)

	fc = &fakeClient{}
	require.NoError(t, NewGroupService(fc, newStore()).Create(ctx, models.Group{Name: "Runners", Location: "LS1"}))
	assert.Equal(t, []int64{models.DefaultUserID}, fc.LastGroup.MemberIDs)
}

func TestGroupCreate_ValidationAndErrors(t *testing.T) {
	fc := &fakeClient{}
	err := NewGroupService(fc, newStore()).Create(context.Background(), models.Group{Name: "Runners"})
	require.ErrorContains(t, err, "Location is required")
	assert.Empty(t, fc.LastGroup.Name)

	boom := errors.New("down")
	err = NewGroupService(&fakeClient{CreateGroupErr: boom}, newStore()).Create(context.Background(), models.Group{Name: "R", Location: "LS1"})
	require.ErrorIs(t, err, boom)
}

func TestGroupsByLocation_DefaultsLocation(t *testing.T) {
	fc := &fakeClient{GroupsResp: []models.Group{{Name: "Runners"}}}
	svc := NewGroupService(fc, newStore())

	got, err := svc.ByLocation(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultLocation, fc.LastLocation)
	assert.Len(t, got, 1)

	_, err = svc.ByLocation(context.Background(), "Leeds")
	require.NoError(t, err)
	assert.Equal(t, "Leeds", fc.LastLocation)
}

func TestGroups_AgainstFakeBackend(t *testing.T) {
	b := backendtest.New(t)
	b.AddUser(models.Registration{Name: "Ann", Email: "ann@example.org", Password: "pw", Role: models.RoleAdmin})

	store := newStore()
	api := client.NewHTTPClient(b.URL(), store)
	ctx := context.Background()

	me, err := NewAuthService(api, store, nil).Login(ctx, "ann@example.org", "pw")
	require.NoError(t, err)

	groups := NewGroupService(api, store)
	require.NoError(t, groups.Create(ctx, models.Group{Name: "Runners", Location: "LS1"}))
	require.NoError(t, groups.Create(ctx, models.Group{Name: "Bakers", Location: "LS2"}))

	got, err := groups.ByLocation(ctx, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Runners", got[0].Name)
	assert.Equal(t, []int64{me.NumericID}, got[0].MemberIDs)
}
