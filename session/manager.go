package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"assetdesk/apperrors"
	"assetdesk/models"
	"assetdesk/providers"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Authenticator is the server side of the session.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (models.AuthRes, error)
	Register(ctx context.Context, req models.RegisterReq) (models.MessageRes, error)
	CurrentUser(ctx context.Context) (models.User, error)
	RefreshToken(ctx context.Context) (string, error)
}

// Manager runs the session lifecycle. Mutating operations are serialized.
type Manager struct {
	mu     sync.Mutex
	store  *Store
	auth   Authenticator
	logger providers.ZapLoggerProvider
	Now    func() time.Time
}

func NewManager(store *Store, auth Authenticator, logger providers.ZapLoggerProvider) *Manager {
	return &Manager{
		store:  store,
		auth:   auth,
		logger: logger,
		Now:    time.Now,
	}
}

func (m *Manager) Store() *Store {
	return m.store
}

// Init restores a persisted session. A session that cannot be resolved is
// cleared and Init still succeeds.
func (m *Manager) Init(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Load(ctx); err != nil {
		return err
	}
	token := m.store.Token()
	if token == "" {
		return nil
	}

	if m.tokenExpired(token) {
		m.logger.GetLogger().Info("persisted token expired, signing out")
		return m.clearQuietly(ctx)
	}

	if m.store.User() != nil {
		return nil
	}

	user, err := m.auth.CurrentUser(ctx)
	if err != nil {
		m.logger.GetLogger().Info("could not restore session", zap.Error(err))
		return m.clearQuietly(ctx)
	}
	if m.store.Token() == "" {
		// cleared by a 401 while resolving
		return nil
	}
	if err := m.store.SetUser(ctx, user); err != nil {
		m.logger.GetLogger().Warn("could not persist restored user", zap.Error(err))
	}
	return nil
}

// tokenExpired reports whether token is a JWT with an exp claim in the past.
// Tokens that are not JWTs never expire locally.
func (m *Manager) tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(m.Now())
}

func (m *Manager) clearQuietly(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		m.logger.GetLogger().Warn("failed to clear stale session", zap.Error(err))
	}
	return nil
}

func (m *Manager) CurrentUser() *models.User {
	return m.store.User()
}

// Login leaves any prior session untouched when it fails.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	res, err := m.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := m.store.Save(ctx, res.Token, res.User); err != nil {
		return nil, err
	}
	m.logger.GetLogger().Info("signed in", zap.String("user_id", res.User.ID), zap.String("role", string(res.User.Role)))
	return m.store.User(), nil
}

// Register never signs the user in.
func (m *Manager) Register(ctx context.Context, req models.RegisterReq) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.auth.Register(ctx, req)
	return err
}

// Logout is local only and safe to repeat.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.store.Clear(ctx)
}

// Refresh swaps the token for a new one. Any failure signs the user out.
func (m *Manager) Refresh(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.store.Token() == "" {
		return "", &apperrors.HTTPError{Kind: apperrors.ErrUnauthorized, Status: http.StatusUnauthorized, Message: "Authentication required"}
	}

	token, err := m.auth.RefreshToken(ctx)
	if err != nil {
		m.logger.GetLogger().Info("token refresh failed, signing out", zap.Error(err))
		_ = m.clearQuietly(ctx)
		return "", err
	}
	if err := m.store.SetToken(ctx, token); err != nil {
		_ = m.clearQuietly(ctx)
		return "", err
	}
	return token, nil
}
