package server

import (
	"net/http"

	"assetdesk/models"
	"assetdesk/providers/middlewareprovider"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func (srv *Server) InjectRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  zap.NewStdLog(srv.Logger.GetLogger()),
		NoColor: true,
	}))
	r.Use(srv.Metrics.Middleware())
	r.Use(middlewareprovider.CORS)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("connection established..."))
	})
	r.Handle("/metrics", srv.Metrics.Handler())

	r.Route("/api", func(api chi.Router) {
		//public routes
		api.Post("/auth/login", srv.AuthHandler.Login)
		api.Post("/auth/register", srv.AuthHandler.Register)

		api.Get("/assets", srv.AssetHandler.GetAssets)
		api.Get("/assets/categories", srv.AssetHandler.GetCategories)
		api.Get("/assets/suggestions", srv.AssetHandler.GetSuggestions)
		api.Post("/assets/request", srv.AssetHandler.SubmitAssetRequest)
		api.Post("/assets/service", srv.AssetHandler.SubmitServiceRequest)
		api.Get("/service-requests", srv.AssetHandler.GetServiceRequests)

		//protected
		api.Group(func(protected chi.Router) {
			protected.Use(srv.Middleware.BearerAuthMiddleware())

			protected.Get("/auth/me", srv.AuthHandler.CurrentUser)
			protected.Post("/auth/refresh-token", srv.AuthHandler.RefreshToken)
			protected.Get("/employee/dashboard", srv.DashboardHandler.GetEmployeeDashboard)

			// Admin-only routes
			protected.Group(func(admin chi.Router) {
				admin.Use(srv.Middleware.RequireRole(models.AdminRole))
				admin.Get("/admin/dashboard", srv.DashboardHandler.GetAdminDashboard)
			})
		})
	})

	return r
}
