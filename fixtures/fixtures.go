// Package fixtures holds the canned data served by the mock endpoints.
package fixtures

import (
	"strings"

	"assetdesk/models"
)

// Dataset is everything the mock endpoints read from. Handlers never mutate it.
type Dataset struct {
	Users             []models.User
	Categories        []models.Category
	Assets            []models.Asset
	ServiceRequests   []models.ServiceRecord
	AssetSuggestions  []string
	EmployeeDashboard models.EmployeeDashboardData
	AdminDashboard    models.AdminDashboardData
}

func (d *Dataset) UserByEmail(email string) (models.User, bool) {
	for _, u := range d.Users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

func (d *Dataset) UserByRole(role models.Role) (models.User, bool) {
	for _, u := range d.Users {
		if u.Role == role {
			return u, true
		}
	}
	return models.User{}, false
}

func (d *Dataset) FilterAssets(filter models.AssetFilter) []models.Asset {
	assets := make([]models.Asset, 0, len(d.Assets))
	for _, a := range d.Assets {
		if filter.Match(a) {
			assets = append(assets, a)
		}
	}
	return assets
}

func (d *Dataset) FilterServiceRequests(status string) []models.ServiceRecord {
	records := make([]models.ServiceRecord, 0, len(d.ServiceRequests))
	for _, sr := range d.ServiceRequests {
		if status == "" || sr.Status == status {
			records = append(records, sr)
		}
	}
	return records
}

// Suggestions is a case-insensitive substring match; an empty query matches all.
func (d *Dataset) Suggestions(query string) []string {
	q := strings.ToLower(query)
	matches := make([]string, 0, len(d.AssetSuggestions))
	for _, s := range d.AssetSuggestions {
		if strings.Contains(strings.ToLower(s), q) {
			matches = append(matches, s)
		}
	}
	return matches
}

func intPtr(i int) *int {
	return &i
}

func strPtr(s string) *string {
	return &s
}

func Default() *Dataset {
	return &Dataset{
		Users: []models.User{
			{ID: "1", Email: "employee@example.com", Name: "John Employee", Role: models.EmployeeRole, Department: "Engineering"},
			{ID: "2", Email: "admin@example.com", Name: "Admin User", Role: models.AdminRole, Department: "IT"},
		},
		Categories: []models.Category{
			{ID: "1", Name: "Laptops", Description: "Work laptops and accessories"},
			{ID: "2", Name: "Furniture", Description: "Office chairs and desks"},
			{ID: "3", Name: "Mobile Devices", Description: "Phones and tablets"},
			{ID: "4", Name: "Peripherals", Description: "Keyboards, mice, and monitors"},
		},
		Assets: []models.Asset{
			{ID: "ASSET-001", Name: "MacBook Pro M1", Category: "Laptops", Status: models.AssetAssigned, AssignedTo: strPtr("1"), Condition: "excellent", PurchaseDate: "2023-01-15", WarrantyEnd: "2024-01-15"},
			{ID: "ASSET-002", Name: "Herman Miller Chair", Category: "Furniture", Status: models.AssetAssigned, AssignedTo: strPtr("1"), Condition: "good", PurchaseDate: "2023-02-20", WarrantyEnd: "2026-02-20"},
			{ID: "ASSET-003", Name: "iPhone 13 Pro", Category: "Mobile Devices", Status: models.AssetAvailable, Condition: "new", PurchaseDate: "2024-01-10", WarrantyEnd: "2025-01-10"},
		},
		ServiceRequests: []models.ServiceRecord{
			{ID: "SR-001", AssetID: "ASSET-001", Type: "repair", Status: "pending", Description: "Battery not holding charge", Priority: models.PriorityHigh, RequestedBy: "1", RequestDate: "2024-02-15"},
			{ID: "SR-002", AssetID: "ASSET-002", Type: "maintenance", Status: "in_progress", Description: "Regular maintenance check", Priority: models.PriorityLow, RequestedBy: "1", RequestDate: "2024-02-10"},
		},
		AssetSuggestions: []string{
			"MacBook Pro M1",
			"MacBook Air M2",
			"Dell XPS 13",
			"Herman Miller Chair",
			`Dell 27" Monitor`,
			"iPhone 13 Pro",
			`iPad Pro 12.9"`,
			"Logitech MX Master 3",
		},
		EmployeeDashboard: models.EmployeeDashboardData{
			MyAssets:   models.AssetStats{Total: 5, Pending: 1, Approved: 3, Rejected: 1},
			MyRequests: models.RequestStats{Pending: 2, Approved: 4, Rejected: 1},
			RecentActivities: []models.Activity{
				{ID: "1", Date: "2024-02-20T00:00:00.000Z", AssetName: "MacBook Pro M1", Action: "Request", Status: "approved"},
				{ID: "2", Date: "2024-02-19T00:00:00.000Z", AssetName: "Office Chair", Action: "Service Request", Status: "pending"},
				{ID: "3", Date: "2024-02-18T00:00:00.000Z", AssetName: `Monitor Dell 27"`, Action: "Return", Status: "approved"},
			},
			MyAssetsByCategory: []models.CategoryCount{
				{Category: "Laptop", Count: 2},
				{Category: "Furniture", Count: 2},
				{Category: "Gadgets", Count: 1},
			},
		},
		AdminDashboard: models.AdminDashboardData{
			TotalAssets:            3,
			AssignedAssets:         2,
			AvailableAssets:        1,
			UnderMaintenanceAssets: 0,
			PendingRequests:        1,
			TotalEmployees:         2,
			ActiveEmployees:        2,
			RecentActivities: []models.Activity{
				{ID: "1", Date: "2024-02-20T00:00:00.000Z", AssetName: "MacBook Pro M1", Action: "Request", Status: "approved", User: "John Employee"},
				{ID: "2", Date: "2024-02-15T00:00:00.000Z", AssetName: "MacBook Pro M1", Action: "Service Request", Status: "pending", User: "John Employee"},
			},
			AssetsByCategory: []models.CategoryCount{
				{Category: "Laptops", Count: 1, Available: intPtr(0)},
				{Category: "Furniture", Count: 1, Available: intPtr(0)},
				{Category: "Mobile Devices", Count: 1, Available: intPtr(1)},
			},
			AssetUtilization:  66.7,
			MaintenanceAlerts: 1,
		},
	}
}
