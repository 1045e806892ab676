// Package session keeps the signed-in user's token and profile, in memory and
// in a durable key-value store.
package session

import (
	"context"
	"sync"

	"assetdesk/models"
	"assetdesk/providers"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	TokenKey = "token"
	UserKey  = "user"
)

// Store caches the session in memory and writes every change through to storage.
// Token and user are always written and cleared together.
type Store struct {
	mu      sync.RWMutex
	storage providers.StorageProvider
	token   string
	user    *models.User
}

func NewStore(storage providers.StorageProvider) *Store {
	return &Store{storage: storage}
}

// Load replaces the in-memory session with what storage holds. An unreadable
// profile is treated as absent.
func (s *Store) Load(ctx context.Context) error {
	token, _, err := s.storage.Get(ctx, TokenKey)
	if err != nil {
		return errors.Wrap(err, "failed to read session token")
	}
	raw, ok, err := s.storage.Get(ctx, UserKey)
	if err != nil {
		return errors.Wrap(err, "failed to read session user")
	}

	var user *models.User
	if ok && raw != "" {
		var u models.User
		if err := json.UnmarshalFromString(raw, &u); err == nil {
			user = &u
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
	return nil
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the cached profile, or nil.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Save persists token and user. On failure nothing is left behind.
func (s *Store) Save(ctx context.Context, token string, user models.User) error {
	raw, err := json.MarshalToString(user)
	if err != nil {
		return errors.Wrap(err, "failed to encode session user")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Set(ctx, TokenKey, token); err != nil {
		return errors.Wrap(err, "failed to persist session token")
	}
	if err := s.storage.Set(ctx, UserKey, raw); err != nil {
		_ = s.storage.Delete(ctx, TokenKey, UserKey)
		s.token, s.user = "", nil
		return errors.Wrap(err, "failed to persist session user")
	}
	s.token = token
	s.user = &user
	return nil
}

func (s *Store) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Set(ctx, TokenKey, token); err != nil {
		return errors.Wrap(err, "failed to persist session token")
	}
	s.token = token
	return nil
}

func (s *Store) SetUser(ctx context.Context, user models.User) error {
	raw, err := json.MarshalToString(user)
	if err != nil {
		return errors.Wrap(err, "failed to encode session user")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Set(ctx, UserKey, raw); err != nil {
		return errors.Wrap(err, "failed to persist session user")
	}
	s.user = &user
	return nil
}

// Clear drops the in-memory session first, so it is gone even if storage fails.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil
	if err := s.storage.Delete(ctx, TokenKey, UserKey); err != nil {
		return errors.Wrap(err, "failed to clear persisted session")
	}
	return nil
}
