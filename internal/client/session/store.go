// Package session keeps the current session token and cached user profile
// in a durable key/value store so a restart preserves the login.
//
// The store exposes token and user as independent primitives. It does not
// keep them consistent with each other: callers that log in or out must set
// or clear both (see services.AuthService). There is no transaction across
// the pair, so a crash between the two writes can leave them out of step.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/wellbeinghub/internal/client/models"
	"github.com/dmitrijs2005/wellbeinghub/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/wellbeinghub/internal/logging"
)

// Storage slots.
const (
	TokenKey = "wb_token"
	UserKey  = "wb_user"
)

type Store struct {
	repo metadata.Repository
	log  logging.Logger
}

// NewStore wraps repo. A nil logger discards warnings.
func NewStore(repo metadata.Repository, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{repo: repo, log: log}
}

// Token returns the stored token; ok is false when none is stored.
func (s *Store) Token(ctx context.Context) (string, bool, error) {
	raw, err := s.repo.Get(ctx, TokenKey)
	if err != nil {
		return "", false, fmt.Errorf("read token: %w", err)
	}
	if len(raw) == 0 {
		return "", false, nil
	}
	return string(raw), true, nil
}

// SetToken persists token, or removes the stored one when token is empty.
func (s *Store) SetToken(ctx context.Context, token string) error {
	if token == "" {
		if err := s.repo.Delete(ctx, TokenKey); err != nil {
			return fmt.Errorf("remove token: %w", err)
		}
		return nil
	}
	if err := s.repo.Set(ctx, TokenKey, []byte(token)); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// User returns the cached profile, or nil when none is cached. A stored
// value that does not parse is treated as absent.
func (s *Store) User(ctx context.Context) (*models.User, error) {
	raw, err := s.repo.Get(ctx, UserKey)
	if err != nil {
		return nil, fmt.Errorf("read user: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	// A stored JSON null decodes to a nil pointer and counts as absent.
	var u *models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		s.log.Warn(ctx, "ignoring unreadable cached user", "error", err)
		return nil, nil
	}
	return u, nil
}

// SetUser caches u, or removes the cached profile when u is nil.
func (s *Store) SetUser(ctx context.Context, u *models.User) error {
	if u == nil {
		if err := s.repo.Delete(ctx, UserKey); err != nil {
			return fmt.Errorf("remove user: %w", err)
		}
		return nil
	}

	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.repo.Set(ctx, UserKey, b); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// Clear removes the token first, then the user.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.SetToken(ctx, ""); err != nil {
		return err
	}
	return s.SetUser(ctx, nil)
}
