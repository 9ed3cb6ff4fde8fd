package client

import (
	"context"

	"github.com/dmitrijs2005/wellbeinghub/internal/client/models"
)

// Client is the typed surface of the WellbeingHub backend used by the
// services layer.
type Client interface {
	Register(ctx context.Context, r models.Registration) error
	Login(ctx context.Context, c models.Credentials) (*models.LoginResponse, error)
	Me(ctx context.Context) (*models.User, error)
	CreateListing(ctx context.Context, l models.Listing) error
	ListListings(ctx context.Context) ([]models.Listing, error)
	CreateGroup(ctx context.Context, g models.Group) error
	GroupsByLocation(ctx context.Context, location string) ([]models.Group, error)
}
