package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/wellbeinghub/internal/client/models"
	"github.com/dmitrijs2005/wellbeinghub/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/wellbeinghub/internal/client/session"
)

func TestMarketplaceCreate_FillsCreatorFromSession(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	require.NoError(t, store.SetUser(ctx, ann))

	fc := &fakeClient{}
	require.NoError(t, NewMarketplaceService(fc, store).Create(ctx, models.Listing{Title: "Bike", Price: 5}))
	assert.Equal(t, ann.NumericID, fc.LastListing.CreatedBy)
}

func TestMarketplaceCreate_DefaultCreatorWithoutProfile(t *testing.T) {
	fc := &fakeClient{}
	require.NoError(t, NewMarketplaceService(fc, newStore()).Create(context.Background(), models.Listing{Title: "Bike"}))
	assert.Equal(t, models.DefaultUserID, fc.LastListing.CreatedBy)
}

func TestMarketplaceCreate_NullProfileUsesDefaultCreator(t *testing.T) {
	ctx := context.Background()
	repo := metadata.NewMemoryRepository()
	require.NoError(t, repo.Set(ctx, session.UserKey, []byte("null")))

	fc := &fakeClient{}
	require.NoError(t, NewMarketplaceService(fc, session.NewStore(repo, nil)).Create(ctx, models.Listing{Title: "Bike", Price: 1}))
	assert.Equal(t, models.DefaultUserID, fc.LastListing.CreatedBy)
}

func TestMarketplaceCreate_ExplicitCreatorKept(t *testing.T) {
	fc := &fakeClient{}
	require.NoError(t, NewMarketplaceService(fc, newStore()).Create(context.Background(), models.Listing{Title: "Bike", CreatedBy: 3}))
	assert.Equal(t, int64(3), fc.LastListing.CreatedBy)
}

func TestMarketplaceCreate_Errors(t *testing.T) {
	fc := &fakeClient{}
	err := NewMarketplaceService(fc, newStore()).Create(context.Background(), models.Listing{Price: -2})
	require.ErrorContains(t, err, "validation failed")
	assert.Empty(t, fc.LastListing.Title)

	boom := errors.New("down")
	fc = &fakeClient{CreateListingErr: boom}
	err = NewMarketplaceService(fc, newStore()).Create(context.Background(), models.Listing{Title: "Bike"})
	require.ErrorIs(t, err, boom)
}

func TestMarketplaceList(t *testing.T) {
	want := []models.Listing{{Title: "B"}, {Title: "A"}}
	got, err := NewMarketplaceService(&fakeClient{ListingsResp: want}, newStore()).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	boom := errors.New("down")
	_, err = NewMarketplaceService(&fakeClient{ListingsErr: boom}, newStore()).List(context.Background())
	require.ErrorIs(t, err, boom)
}
