package session

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"assetdesk/apperrors"
	"assetdesk/client"
	"assetdesk/fixtures"
	"assetdesk/models"
	"assetdesk/providers"
	"assetdesk/providers/configProvider"
	"assetdesk/providers/loggerProvider"
	"assetdesk/providers/storageProvider"
	"assetdesk/server"
	"assetdesk/services/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestManager(t *testing.T, storage providers.StorageProvider) (*Manager, *MockAuthenticator) {
	ctrl := gomock.NewController(t)
	mockAuth := NewMockAuthenticator(ctrl)
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()
	return NewManager(NewStore(storage), mockAuth, mockLogger), mockAuth
}

func signedToken(t *testing.T, exp time.Time) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestManagerLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success stores token and user", func(t *testing.T) {
		storage := storageprovider.NewMemoryProvider()
		manager, mockAuth := newTestManager(t, storage)
		mockAuth.EXPECT().Login(ctx, "employee@example.com", "password").
			Return(models.AuthRes{User: employee, Token: "mock-jwt-token-employee"}, nil)

		user, err := manager.Login(ctx, "employee@example.com", "password")

		require.NoError(t, err)
		assert.Equal(t, &employee, user)
		assert.Equal(t, &employee, manager.CurrentUser())
		token, ok, _ := storage.Get(ctx, TokenKey)
		assert.True(t, ok)
		assert.Equal(t, "mock-jwt-token-employee", token)
	})

	t.Run("failure keeps prior session", func(t *testing.T) {
		storage := storageprovider.NewMemoryProvider()
		manager, mockAuth := newTestManager(t, storage)
		require.NoError(t, manager.Store().Save(ctx, "mock-jwt-token-employee", employee))
		mockAuth.EXPECT().Login(ctx, "admin@example.com", "wrong").
			Return(models.AuthRes{}, apperrors.Reclassify(apperrors.Classify(http.StatusUnauthorized, "Invalid credentials"), apperrors.ErrInvalidCredentials))

		user, err := manager.Login(ctx, "admin@example.com", "wrong")

		assert.Nil(t, user)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
		assert.Equal(t, "mock-jwt-token-employee", manager.Store().Token())
		assert.Equal(t, &employee, manager.CurrentUser())
	})
}

func TestManagerRegisterNeverSignsIn(t *testing.T) {
	ctx := context.Background()
	manager, mockAuth := newTestManager(t, storageprovider.NewMemoryProvider())
	req := models.RegisterReq{Email: "new.hire@example.com"}
	mockAuth.EXPECT().Register(ctx, req).Return(models.MessageRes{Message: "Registration successful"}, nil)

	require.NoError(t, manager.Register(ctx, req))

	assert.Nil(t, manager.CurrentUser())
	assert.Empty(t, manager.Store().Token())
}

func TestManagerLogoutIdempotent(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager(t, storageprovider.NewMemoryProvider())
	require.NoError(t, manager.Store().Save(ctx, "mock-jwt-token-admin", employee))

	require.NoError(t, manager.Logout(ctx))
	require.NoError(t, manager.Logout(ctx))

	assert.Nil(t, manager.CurrentUser())
	assert.Empty(t, manager.Store().Token())
}

func TestManagerInit(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1700000000, 0)
	userJSON, err := json.MarshalToString(employee)
	require.NoError(t, err)

	testCases := []struct {
		name          string
		token         string
		user          string
		mockAuth      func(m *MockAuthenticator)
		expectedToken string
		expectedUser  *models.User
	}{
		{
			name:     "nothing persisted",
			mockAuth: func(m *MockAuthenticator) {},
		},
		{
			name:          "cached user used without a call",
			token:         "mock-jwt-token-employee",
			user:          userJSON,
			mockAuth:      func(m *MockAuthenticator) {},
			expectedToken: "mock-jwt-token-employee",
			expectedUser:  &employee,
		},
		{
			name:  "missing user fetched from server",
			token: "mock-jwt-token-employee",
			mockAuth: func(m *MockAuthenticator) {
				m.EXPECT().CurrentUser(gomock.Any()).Return(employee, nil)
			},
			expectedToken: "mock-jwt-token-employee",
			expectedUser:  &employee,
		},
		{
			name:  "server rejects token",
			token: "mock-jwt-token-employee",
			mockAuth: func(m *MockAuthenticator) {
				m.EXPECT().CurrentUser(gomock.Any()).Return(models.User{}, apperrors.Classify(http.StatusUnauthorized, ""))
			},
		},
		{
			name:  "network failure clears too",
			token: "mock-jwt-token-employee",
			mockAuth: func(m *MockAuthenticator) {
				m.EXPECT().CurrentUser(gomock.Any()).Return(models.User{}, &apperrors.NetworkError{Cause: errors.New("refused")})
			},
		},
		{
			name:     "expired jwt cleared without a call",
			token:    signedToken(t, now.Add(-time.Hour)),
			user:     userJSON,
			mockAuth: func(m *MockAuthenticator) {},
		},
		{
			name:          "live jwt kept",
			token:         signedToken(t, now.Add(time.Hour)),
			user:          userJSON,
			mockAuth:      func(m *MockAuthenticator) {},
			expectedToken: signedToken(t, now.Add(time.Hour)),
			expectedUser:  &employee,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			storage := storageprovider.NewMemoryProvider()
			if tc.token != "" {
				require.NoError(t, storage.Set(ctx, TokenKey, tc.token))
			}
			if tc.user != "" {
				require.NoError(t, storage.Set(ctx, UserKey, tc.user))
			}
			manager, mockAuth := newTestManager(t, storage)
			manager.Now = func() time.Time { return now }
			tc.mockAuth(mockAuth)

			err := manager.Init(ctx)

			require.NoError(t, err)
			assert.Equal(t, tc.expectedToken, manager.Store().Token())
			assert.Equal(t, tc.expectedUser, manager.CurrentUser())
			reopened := NewStore(storage)
			require.NoError(t, reopened.Load(ctx))
			assert.Equal(t, tc.expectedToken, reopened.Token())
			assert.Equal(t, tc.expectedUser, reopened.User())
		})
	}
}

func TestManagerRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("success replaces token", func(t *testing.T) {
		manager, mockAuth := newTestManager(t, storageprovider.NewMemoryProvider())
		require.NoError(t, manager.Store().Save(ctx, "mock-jwt-token-employee", employee))
		mockAuth.EXPECT().RefreshToken(ctx).Return("mock-jwt-token-employee-1700000000000", nil)

		token, err := manager.Refresh(ctx)

		require.NoError(t, err)
		assert.Equal(t, "mock-jwt-token-employee-1700000000000", token)
		assert.Equal(t, token, manager.Store().Token())
		assert.Equal(t, &employee, manager.CurrentUser())
	})

	t.Run("failure signs out", func(t *testing.T) {
		manager, mockAuth := newTestManager(t, storageprovider.NewMemoryProvider())
		require.NoError(t, manager.Store().Save(ctx, "mock-jwt-token-employee", employee))
		mockAuth.EXPECT().RefreshToken(ctx).Return("", apperrors.Classify(http.StatusInternalServerError, ""))

		_, err := manager.Refresh(ctx)

		assert.True(t, errors.Is(err, apperrors.ErrServer))
		assert.Empty(t, manager.Store().Token())
		assert.Nil(t, manager.CurrentUser())
	})

	t.Run("no session", func(t *testing.T) {
		manager, _ := newTestManager(t, storageprovider.NewMemoryProvider())

		_, err := manager.Refresh(ctx)

		assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
	})
}

func TestManagerConcurrentReaders(t *testing.T) {
	ctx := context.Background()
	manager, mockAuth := newTestManager(t, storageprovider.NewMemoryProvider())
	mockAuth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.AuthRes{User: employee, Token: "mock-jwt-token-employee"}, nil).AnyTimes()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = manager.Login(ctx, "employee@example.com", "password")
		}()
		go func() {
			defer wg.Done()
			_ = manager.Logout(ctx)
		}()
	}
	wg.Wait()

	// token and user always change together
	user := manager.CurrentUser()
	token := manager.Store().Token()
	assert.Equal(t, user == nil, token == "")
}

// wired the way the CLI wires it: the client clears the store on any
// authenticated 401
func newWiredManager(storage providers.StorageProvider) *Manager {
	logger := loggerProvider.NewLogProvider("error", "")
	srv := server.NewServer(configprovider.NewConfigProvider(), logger, fixtures.Default())
	store := NewStore(storage)
	api := client.New("http://assetdesk.test/api", client.NewHandlerTransport(srv.InjectRoutes()),
		client.WithRequestHook(client.BearerToken(store)),
		client.WithResponseHook(client.TeardownOnUnauthorized(store, logger.GetLogger())),
		client.WithResponseHook(client.ClassifyStatus()),
	)
	return NewManager(store, authservice.NewAuthService(api, logger), logger)
}

func TestWiredSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	storage := storageprovider.NewMemoryProvider()
	manager := newWiredManager(storage)

	_, err := manager.Login(ctx, "admin@example.com", "nope")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	assert.Nil(t, manager.CurrentUser())

	user, err := manager.Login(ctx, "admin@example.com", "password")
	require.NoError(t, err)
	assert.Equal(t, models.AdminRole, user.Role)

	// a failed login does not sign out the admin
	_, err = manager.Login(ctx, "admin@example.com", "nope")
	assert.Error(t, err)
	assert.Equal(t, "mock-jwt-token-admin", manager.Store().Token())

	token, err := manager.Refresh(ctx)
	require.NoError(t, err)
	assert.Regexp(t, `^mock-jwt-token-admin-\d+$`, token)

	// profile dropped: Init resolves it through /auth/me
	require.NoError(t, storage.Delete(ctx, UserKey))
	restarted := newWiredManager(storage)
	require.NoError(t, restarted.Init(ctx))
	require.NotNil(t, restarted.CurrentUser())
	assert.Equal(t, "2", restarted.CurrentUser().ID)

	require.NoError(t, restarted.Logout(ctx))
	assert.Nil(t, restarted.CurrentUser())
}

func TestWiredInitWithRejectedToken(t *testing.T) {
	ctx := context.Background()
	storage := storageprovider.NewMemoryProvider()
	// no employee in the fixtures, so /auth/me answers 404
	require.NoError(t, storage.Set(ctx, TokenKey, "mock-jwt-token-employee"))

	data := fixtures.Default()
	data.Users = data.Users[1:]
	logger := loggerProvider.NewLogProvider("error", "")
	srv := server.NewServer(configprovider.NewConfigProvider(), logger, data)
	store := NewStore(storage)
	api := client.New("http://assetdesk.test/api", client.NewHandlerTransport(srv.InjectRoutes()),
		client.WithRequestHook(client.BearerToken(store)),
		client.WithResponseHook(client.TeardownOnUnauthorized(store, logger.GetLogger())),
		client.WithResponseHook(client.ClassifyStatus()),
	)
	manager := NewManager(store, authservice.NewAuthService(api, logger), logger)

	require.NoError(t, manager.Init(ctx))

	assert.Nil(t, manager.CurrentUser())
	assert.Empty(t, manager.Store().Token())
	_, ok, _ := storage.Get(ctx, TokenKey)
	assert.False(t, ok)
}
