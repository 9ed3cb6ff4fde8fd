package services

import (
	"context"

	"github.com/dmitrijs2005/wellbeinghub/internal/client/models"
)

// fakeClient implements client.Client for unit tests.
type fakeClient struct {
	RegisterErr   error
	LastRegister  models.Registration
	RegisterCalls int

	LoginResp *models.LoginResponse
	LoginErr  error
	LastCreds models.Credentials

	MeResp *models.User
	MeErr  error

	CreateListingErr error
	LastListing      models.Listing
	ListingsResp     []models.Listing
	ListingsErr      error

	CreateGroupErr error
	LastGroup      models.Group
	GroupsResp     []models.Group
	GroupsErr      error
	LastLocation   string
}

func (f *fakeClient) Register(_ context.Context, r models.Registration) error {
	f.RegisterCalls++
	f.LastRegister = r
	return f.RegisterErr
}

func (f *fakeClient) Login(_ context.Context, c models.Credentials) (*models.LoginResponse, error) {
	f.LastCreds = c
	return f.LoginResp, f.LoginErr
}

func (f *fakeClient) Me(context.Context) (*models.User, error) {
	return f.MeResp, f.MeErr
}

func (f *fakeClient) CreateListing(_ context.Context, l models.Listing) error {
	f.LastListing = l
	return f.CreateListingErr
}

func (f *fakeClient) ListListings(context.Context) ([]models.Listing, error) {
	return f.ListingsResp, f.ListingsErr
}

func (f *fakeClient) CreateGroup(_ context.Context, g models.Group) error {
	f.LastGroup = g
	return f.CreateGroupErr
}

func (f *fakeClient) GroupsByLocation(_ context.Context, location string) ([]models.Group, error) {
	f.LastLocation = location
	return f.GroupsResp, f.GroupsErr
}
