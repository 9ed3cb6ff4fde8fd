package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/wellbeinghub/internal/client/brand"
	"github.com/dmitrijs2005/wellbeinghub/internal/client/models"
)

// AddGroup prompts for a group name and location, creates the group with
// the signed-in user as its member and prints the groups at that location.
func (a *App) AddGroup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter group name", a.out)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Enter location (empty for "+models.DefaultLocation+")", a.out)
	if err != nil {
		return err
	}
	if location == "" {
		location = models.DefaultLocation
	}

	callCtx, cancel := a.callCtx(ctx)
	defer cancel()

	if err := a.groups.Create(callCtx, models.Group{Name: name, Location: location}); err != nil {
		return err
	}

	a.success("Group created.")
	return a.Groups(ctx, location)
}

// Groups prints the groups at location (the default office when empty).
func (a *App) Groups(ctx context.Context, location string) error {
	if location == "" {
		location = models.DefaultLocation
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	gs, err := a.groups.ByLocation(ctx, location)
	if err != nil {
		return err
	}
	if len(gs) == 0 {
		fmt.Fprintf(a.out, "No groups at %s.\n", location)
		return nil
	}

	fmt.Fprintln(a.out, brand.Paint(brand.Current().Accent3, fmt.Sprintf("Groups at %s (%d)", location, len(gs))))
	for _, g := range gs {
		fmt.Fprintln(a.out, "-", g)
	}
	return nil
}
