package providers

import (
	"context"
	"net/http"

	"assetdesk/client"
	"assetdesk/models"

	"go.uber.org/zap"
)

type AuthMiddlewareService interface {
	BearerAuthMiddleware() func(http.Handler) http.Handler
	RequireRole(roles ...models.Role) func(http.Handler) http.Handler
	GetTokenAndRoleFromContext(r *http.Request) (string, models.Role, error)
}

type ConfigProvider interface {
	LoadEnv() error
	GetServerPort() string
	GetAPIBaseURL() string
	GetAPIMode() string
	GetStorageDriver() string
	GetStorageDSN() string
	GetRedisAddr() string
	GetLogLevel() string
	GetLogFile() string
	SimulateLatency() bool
}

// StorageProvider is the durable key-value store that backs the client session.
type StorageProvider interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

type MetricsProvider interface {
	Middleware() func(http.Handler) http.Handler
	Handler() http.Handler
}

type ZapLoggerProvider interface {
	InitLogger()
	SyncLogger()
	GetLogger() *zap.Logger
}

// APIClient is the hooked HTTP client the domain services talk through.
type APIClient interface {
	Send(ctx context.Context, call *client.Call, out interface{}) error
}
