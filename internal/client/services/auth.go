// Package services contains the WellbeingHub client flows built on top of
// the API client and the session store. This file holds authentication:
// register, login, logout and session restore.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/wellbeinghub/internal/client/client"
	"github.com/dmitrijs2005/wellbeinghub/internal/client/models"
	"github.com/dmitrijs2005/wellbeinghub/internal/logging"
)

var ErrNoToken = errors.New("login response carried no token")

// SessionStore is the persistence the flows need; *session.Store satisfies it.
type SessionStore interface {
	Token(ctx context.Context) (string, bool, error)
	SetToken(ctx context.Context, token string) error
	User(ctx context.Context) (*models.User, error)
	SetUser(ctx context.Context, u *models.User) error
	Clear(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login stores the token, then fetches and caches the profile.
//   - Logout removes both token and profile.
//   - CurrentUser returns the cached profile without a network call.
type AuthService interface {
	Register(ctx context.Context, r models.Registration) error
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	IsLoggedIn(ctx context.Context) (bool, error)
	TokenExpiry(ctx context.Context) (time.Time, bool, error)
}

type authService struct {
	client client.Client
	store  SessionStore
	log    logging.Logger
}

func NewAuthService(c client.Client, store SessionStore, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop()
	}
	return &authService{client: c, store: store, log: log}
}

// Register creates an account. An empty role defaults to Employee.
func (a *authService) Register(ctx context.Context, r models.Registration) error {
	if r.Role == "" {
		r.Role = models.RoleEmployee
	}
	if err := models.Validate(r); err != nil {
		return err
	}
	if err := a.client.Register(ctx, r); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	a.log.Info(ctx, "registered", "email", r.Email)
	return nil
}

// Login authenticates and caches the session. A previously cached profile
// is dropped before the new token is stored. If fetching the profile fails,
// the new token stays stored without a profile and the error is returned.
func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	creds := models.Credentials{Email: email, Password: password}
	if err := models.Validate(creds); err != nil {
		return nil, err
	}

	resp, err := a.client.Login(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	if resp == nil || resp.Token == "" {
		return nil, ErrNoToken
	}

	if err := a.store.SetUser(ctx, nil); err != nil {
		return nil, err
	}
	if err := a.store.SetToken(ctx, resp.Token); err != nil {
		return nil, err
	}

	me, err := a.client.Me(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch profile error: %w", err)
	}
	if me == nil {
		return nil, errors.New("fetch profile error: empty profile")
	}
	if err := a.store.SetUser(ctx, me); err != nil {
		return nil, err
	}

	a.log.Info(ctx, "logged in", "user_id", me.NumericID)
	return me, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	return a.store.User(ctx)
}

// IsLoggedIn reports whether a token is stored. The token alone decides.
func (a *authService) IsLoggedIn(ctx context.Context) (bool, error) {
	_, ok, err := a.store.Token(ctx)
	return ok, err
}

// TokenExpiry reads the exp claim when the token happens to be a JWT. The
// signature is not verified; the value is for display only. ok is false
// for opaque tokens, tokens without exp, or no token at all.
func (a *authService) TokenExpiry(ctx context.Context) (time.Time, bool, error) {
	token, ok, err := a.store.Token(ctx)
	if err != nil || !ok {
		return time.Time{}, false, err
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false, nil
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false, nil
	}
	return claims.ExpiresAt.Time, true, nil
}
