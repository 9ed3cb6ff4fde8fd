package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/wellbeinghub/internal/client/brand"
	"github.com/dmitrijs2005/wellbeinghub/internal/client/models"
)

// AddItem prompts for a listing, posts it to the marketplace and prints the
// refreshed list.
func (a *App) AddItem(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	description, err := getMultiline(a.reader, "Enter description", a.out)
	if err != nil {
		return err
	}
	price, err := GetPrice(a.reader, "Enter price (empty for free)", a.out)
	if err != nil {
		return err
	}

	callCtx, cancel := a.callCtx(ctx)
	defer cancel()

	if err := a.marketplace.Create(callCtx, models.Listing{Title: title, Description: description, Price: price}); err != nil {
		return err
	}

	a.success("Item posted.")
	return a.Items(ctx)
}

// Items prints the marketplace in the order the backend returned it.
func (a *App) Items(ctx context.Context) error {
	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	ls, err := a.marketplace.List(ctx)
	if err != nil {
		return err
	}
	if len(ls) == 0 {
		fmt.Fprintln(a.out, "No items yet.")
		return nil
	}

	fmt.Fprintln(a.out, brand.Paint(brand.Current().Accent1, fmt.Sprintf("Marketplace (%d)", len(ls))))
	for i, l := range ls {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, l)
	}
	return nil
}
