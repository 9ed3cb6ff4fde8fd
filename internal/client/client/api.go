package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/wellbeinghub/internal/client/models"
)

const (
	PathRegister         = "/api/User/register"
	PathLogin            = "/api/User/login"
	PathMe               = "/api/User/me"
	PathListingCreate    = "/api/Marketplace/create"
	PathListings         = "/api/Marketplace"
	PathGroupCreate      = "/api/Group/create"
	PathGroupsByLocation = "/api/Group/by-location/"
)

var _ Client = (*HTTPClient)(nil)

func (c *HTTPClient) post(ctx context.Context, path string, payload any, useAuth bool, out any) error {
	body, err := JSONBody(payload)
	if err != nil {
		return err
	}
	return c.Do(ctx, Request{Path: path, Method: http.MethodPost, Body: body, UseAuth: useAuth}, out)
}

func (c *HTTPClient) Register(ctx context.Context, r models.Registration) error {
	return c.post(ctx, PathRegister, r, false, nil)
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.post(ctx, PathLogin, creds, false, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	return Call[*models.User](ctx, c, Request{Path: PathMe, UseAuth: true})
}

func (c *HTTPClient) CreateListing(ctx context.Context, l models.Listing) error {
	return c.post(ctx, PathListingCreate, l, true, nil)
}

func (c *HTTPClient) ListListings(ctx context.Context) ([]models.Listing, error) {
	return Call[[]models.Listing](ctx, c, Request{Path: PathListings, UseAuth: true})
}

func (c *HTTPClient) CreateGroup(ctx context.Context, g models.Group) error {
	return c.post(ctx, PathGroupCreate, g, true, nil)
}

func (c *HTTPClient) GroupsByLocation(ctx context.Context, location string) ([]models.Group, error) {
	return Call[[]models.Group](ctx, c, Request{Path: PathGroupsByLocation + url.PathEscape(location), UseAuth: true})
}
