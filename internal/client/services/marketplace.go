package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/wellbeinghub/internal/client/client"
	"github.com/dmitrijs2005/wellbeinghub/internal/client/models"
)

type MarketplaceService interface {
	Create(ctx context.Context, l models.Listing) error
	List(ctx context.Context) ([]models.Listing, error)
}

type marketplaceService struct {
	client client.Client
	store  SessionStore
}

func NewMarketplaceService(c client.Client, store SessionStore) MarketplaceService {
	return &marketplaceService{client: c, store: store}
}

// Create posts l. A zero CreatedBy is filled with the cached user's id, or
// models.DefaultUserID when no profile is cached.
func (m *marketplaceService) Create(ctx context.Context, l models.Listing) error {
	if l.CreatedBy == 0 {
		id, err := currentUserID(ctx, m.store)
		if err != nil {
			return err
		}
		l.CreatedBy = id
	}
	if err := models.Validate(l); err != nil {
		return err
	}
	if err := m.client.CreateListing(ctx, l); err != nil {
		return fmt.Errorf("create listing error: %w", err)
	}
	return nil
}

// List returns the listings in the order the backend sent them.
func (m *marketplaceService) List(ctx context.Context) ([]models.Listing, error) {
	ls, err := m.client.ListListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list listings error: %w", err)
	}
	return ls, nil
}

func currentUserID(ctx context.Context, store SessionStore) (int64, error) {
	u, err := store.User(ctx)
	if err != nil {
		return 0, err
	}
	return u.IDOrDefault(), nil
}
