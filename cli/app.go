// Package cli is the assetctl command line client.
package cli

import (
	"context"
	"net/http"

	"assetdesk/client"
	"assetdesk/fixtures"
	"assetdesk/providers"
	"assetdesk/providers/configProvider"
	"assetdesk/providers/storageProvider"
	"assetdesk/server"
	"assetdesk/services/asset"
	"assetdesk/services/auth"
	"assetdesk/services/dashboard"
	"assetdesk/session"

	"github.com/pkg/errors"
)

// App is everything one command invocation needs.
type App struct {
	Config    providers.ConfigProvider
	Logger    providers.ZapLoggerProvider
	Storage   providers.StorageProvider
	Client    *client.Client
	Session   *session.Manager
	Auth      authservice.AuthService
	Assets    assetservice.AssetService
	Dashboard dashboardservice.DashboardService
}

func NewApp(ctx context.Context, cfg providers.ConfigProvider, logger providers.ZapLoggerProvider) (*App, error) {
	transport, err := newTransport(cfg, logger)
	if err != nil {
		return nil, err
	}
	storage, err := storageprovider.NewStorageProvider(ctx, cfg.GetStorageDriver(), cfg.GetStorageDSN(), cfg.GetRedisAddr())
	if err != nil {
		return nil, errors.Wrap(err, "failed to open session storage")
	}
	return Assemble(cfg, logger, storage, transport), nil
}

// Assemble wires the session, the hooked client and the services together.
func Assemble(cfg providers.ConfigProvider, logger providers.ZapLoggerProvider, storage providers.StorageProvider, transport http.RoundTripper) *App {
	store := session.NewStore(storage)
	api := client.New(cfg.GetAPIBaseURL(), transport,
		client.WithLogger(logger.GetLogger()),
		client.WithRequestHook(client.BearerToken(store)),
		client.WithResponseHook(client.TeardownOnUnauthorized(store, logger.GetLogger())),
		client.WithResponseHook(client.ClassifyStatus()),
	)
	auth := authservice.NewAuthService(api, logger)

	return &App{
		Config:    cfg,
		Logger:    logger,
		Storage:   storage,
		Client:    api,
		Session:   session.NewManager(store, auth, logger),
		Auth:      auth,
		Assets:    assetservice.NewAssetService(api, logger),
		Dashboard: dashboardservice.NewDashboardService(api, store),
	}
}

func newTransport(cfg providers.ConfigProvider, logger providers.ZapLoggerProvider) (http.RoundTripper, error) {
	switch cfg.GetAPIMode() {
	case configprovider.APIModeMock:
		mock := server.NewServer(cfg, logger, fixtures.Default())
		return client.NewHandlerTransport(mock.InjectRoutes()), nil
	case configprovider.APIModeNetwork:
		return client.NewNetworkTransport(), nil
	default:
		return nil, errors.Errorf("unknown api mode %q", cfg.GetAPIMode())
	}
}

func (a *App) Close() error {
	a.Logger.SyncLogger()
	return a.Storage.Close()
}
