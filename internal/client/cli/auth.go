package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/wellbeinghub/internal/client/models"
	"github.com/dmitrijs2005/wellbeinghub/internal/common"
)

// Register prompts for the account details and creates the account. The
// role defaults to Employee and the location to the default office.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	role, err := getSimpleText(a.reader, "Enter role (Employee/Admin, empty for Employee)", a.out)
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

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	err = a.authService.Register(ctx, models.Registration{
		Name:     name,
		Email:    email,
		Password: string(password),
		Role:     parseRole(role),
		Location: location,
	})
	if err != nil {
		return err
	}

	a.success("Registered! You can now log in.")
	return nil
}

// Login prompts for credentials, signs in and caches the profile.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	u, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.success(fmt.Sprintf("Welcome, %s!", u.Name))
	return nil
}

// Logout drops the stored token and profile.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.success("Signed out.")
	return nil
}

// Me prints the cached profile.
func (a *App) Me(ctx context.Context) error {
	u, err := a.authService.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if u == nil {
		fmt.Fprintln(a.out, "No profile cached. Use 'login'.")
		return nil
	}
	fmt.Fprintln(a.out, u.String())
	return nil
}

// Status prints the API base URL, whether a session exists and when its
// token expires, if that can be told.
func (a *App) Status(ctx context.Context) error {
	baseURL := a.config.APIBaseURL
	if baseURL == "" {
		baseURL = "(not set)"
	}
	fmt.Fprintln(a.out, "API:", baseURL)

	in, err := a.authService.IsLoggedIn(ctx)
	if err != nil {
		return err
	}
	if !in {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}

	u, err := a.authService.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if u != nil {
		fmt.Fprintln(a.out, "Signed in as", u.String())
	} else {
		fmt.Fprintln(a.out, "Signed in (profile not cached)")
	}

	exp, ok, err := a.authService.TokenExpiry(ctx)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintln(a.out, "Token expires:", exp.Local().Format(time.RFC1123))
	} else {
		fmt.Fprintln(a.out, "Token expires: unknown")
	}
	return nil
}

func parseRole(s string) models.Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return models.RoleEmployee
	case "admin":
		return models.RoleAdmin
	case "employee":
		return models.RoleEmployee
	default:
		return models.Role(s)
	}
}
