package server

import (
	"context"
	"net/http"
	"time"

	"assetdesk/fixtures"
	"assetdesk/handler/assetHandler"
	"assetdesk/handler/authHandler"
	"assetdesk/handler/dashboardHandler"
	"assetdesk/providers"
	"assetdesk/providers/configProvider"
	"assetdesk/providers/loggerProvider"
	"assetdesk/providers/middlewareprovider"

	"go.uber.org/zap"
)

type Server struct {
	Config           providers.ConfigProvider
	Logger           providers.ZapLoggerProvider
	Middleware       providers.AuthMiddlewareService
	Metrics          providers.MetricsProvider
	AuthHandler      *authhandler.AuthHandler
	AssetHandler     *assethandler.AssetHandler
	DashboardHandler *dashboardhandler.DashboardHandler
	httpServer       *http.Server
}

// ServerInit builds the mock API server from the environment.
func ServerInit() *Server {
	cfg := configprovider.NewConfigProvider()
	cfg.LoadEnv()

	logger := loggerProvider.NewLogProvider(cfg.GetLogLevel(), cfg.GetLogFile())
	logger.InitLogger()

	return NewServer(cfg, logger, fixtures.Default())
}

func NewServer(cfg providers.ConfigProvider, logger providers.ZapLoggerProvider, data *fixtures.Dataset) *Server {
	middleware := middlewareprovider.NewAuthMiddlewareService()
	metrics := middlewareprovider.NewPrometheusMetrics("assetdesk_mock")

	return &Server{
		Config:           cfg,
		Logger:           logger,
		Middleware:       middleware,
		Metrics:          metrics,
		AuthHandler:      authhandler.NewAuthHandler(data, middleware, logger),
		AssetHandler:     assethandler.NewAssetHandler(data, logger, cfg.SimulateLatency()),
		DashboardHandler: dashboardhandler.NewDashboardHandler(data, cfg.SimulateLatency()),
	}
}

func (s *Server) Start() {
	addr := ":" + s.Config.GetServerPort()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.InjectRoutes(),
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	s.Logger.GetLogger().Info("mock api listening", zap.String("addr", addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.Logger.GetLogger().Fatal("server error", zap.Error(err))
	}
}

func (s *Server) Stop() {
	s.Logger.GetLogger().Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.Logger.GetLogger().Error("error shutting down server", zap.Error(err))
		}
	}
	s.Logger.SyncLogger()
}
