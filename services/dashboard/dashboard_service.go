package dashboardservice

import (
	"context"
	"net/http"

	"assetdesk/apperrors"
	"assetdesk/client"
	"assetdesk/models"
	"assetdesk/providers"
)

// SessionReader exposes what the dashboard needs to know about the signed-in user.
type SessionReader interface {
	Token() string
	User() *models.User
}

type DashboardService interface {
	FetchDashboard(ctx context.Context) (models.DashboardSnapshot, error)
}

type dashboardServiceStruct struct {
	api     providers.APIClient
	session SessionReader
}

func NewDashboardService(api providers.APIClient, session SessionReader) DashboardService {
	return &dashboardServiceStruct{api: api, session: session}
}

// FetchDashboard picks the endpoint from the session role. Snapshots are never cached.
func (s *dashboardServiceStruct) FetchDashboard(ctx context.Context) (models.DashboardSnapshot, error) {
	user := s.session.User()
	if user == nil || s.session.Token() == "" {
		return models.DashboardSnapshot{}, &apperrors.HTTPError{
			Kind:    apperrors.ErrUnauthorized,
			Status:  http.StatusUnauthorized,
			Message: "Authentication required",
		}
	}

	snapshot := models.DashboardSnapshot{Role: user.Role}
	if user.Role.IsAdmin() {
		var data models.AdminDashboardData
		if err := s.api.Send(ctx, &client.Call{Method: http.MethodGet, Path: "/admin/dashboard"}, &data); err != nil {
			return models.DashboardSnapshot{}, err
		}
		snapshot.Admin = &data
		return snapshot, nil
	}

	var data models.EmployeeDashboardData
	if err := s.api.Send(ctx, &client.Call{Method: http.MethodGet, Path: "/employee/dashboard"}, &data); err != nil {
		return models.DashboardSnapshot{}, err
	}
	snapshot.Employee = &data
	return snapshot, nil
}
