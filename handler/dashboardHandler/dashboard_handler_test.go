package dashboardhandler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"assetdesk/fixtures"
	"assetdesk/models"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEmployeeDashboard(t *testing.T) {
	data := fixtures.Default()
	handler := NewDashboardHandler(data, false)

	res := httptest.NewRecorder()
	handler.GetEmployeeDashboard(res, httptest.NewRequest(http.MethodGet, "/api/employee/dashboard", nil))

	assert.Equal(t, http.StatusOK, res.Code)
	var body models.EmployeeDashboardData
	require.NoError(t, jsoniter.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, data.EmployeeDashboard, body)
}

func TestGetAdminDashboard(t *testing.T) {
	data := fixtures.Default()
	handler := NewDashboardHandler(data, false)

	res := httptest.NewRecorder()
	handler.GetAdminDashboard(res, httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil))

	assert.Equal(t, http.StatusOK, res.Code)
	var body models.AdminDashboardData
	require.NoError(t, jsoniter.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, data.AdminDashboard, body)
}

func TestSimulatedLatencyStopsOnCancel(t *testing.T) {
	handler := NewDashboardHandler(fixtures.Default(), true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/employee/dashboard", nil).WithContext(ctx)

	start := time.Now()
	res := httptest.NewRecorder()
	handler.GetEmployeeDashboard(res, req)

	assert.Less(t, time.Since(start), dashboardLatency)
	assert.Equal(t, http.StatusOK, res.Code)
}
