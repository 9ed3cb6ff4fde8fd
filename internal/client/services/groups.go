package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/wellbeinghub/internal/client/client"
	"github.com/dmitrijs2005/wellbeinghub/internal/client/models"
)

type GroupService interface {
	Create(ctx context.Context, g models.Group) error
	ByLocation(ctx context.Context, location string) ([]models.Group, error)
}

type groupService struct {
	client client.Client
	store  SessionStore
}

func NewGroupService(c client.Client, store SessionStore) GroupService {
	return &groupService{client: c, store: store}
}

// Create posts g. Without member ids the current user becomes the only member.
func (s *groupService) Create(ctx context.Context, g models.Group) error {
	if len(g.MemberIDs) == 0 {
		id, err := currentUserID(ctx, s.store)
		if err != nil {
			return err
		}
		g.MemberIDs = []int64{id}
	}
	if err := models.Validate(g); err != nil {
		return err
	}
	if err := s.client.CreateGroup(ctx, g); err != nil {
		return fmt.Errorf("create group error: %w", err)
	}
	return nil
}

// ByLocation lists groups at location, models.DefaultLocation when empty.
func (s *groupService) ByLocation(ctx context.Context, location string) ([]models.Group, error) {
	if location == "" {
		location = models.DefaultLocation
	}
	gs, err := s.client.GroupsByLocation(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("list groups error: %w", err)
	}
	return gs, nil
}
