package models

type AssetStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

type RequestStats struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

type Activity struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	AssetName string `json:"assetName"`
	Action    string `json:"action"`
	Status    string `json:"status"`
	User      string `json:"user,omitempty"`
}

type CategoryCount struct {
	Category  string `json:"category"`
	Count     int    `json:"count"`
	Available *int   `json:"available,omitempty"`
}

type EmployeeDashboardData struct {
	MyAssets           AssetStats      `json:"myAssets"`
	MyRequests         RequestStats    `json:"myRequests"`
	RecentActivities   []Activity      `json:"recentActivities"`
	MyAssetsByCategory []CategoryCount `json:"myAssetsByCategory"`
}

type AdminDashboardData struct {
	TotalAssets            int             `json:"totalAssets"`
	AssignedAssets         int             `json:"assignedAssets"`
	AvailableAssets        int             `json:"availableAssets"`
	UnderMaintenanceAssets int             `json:"underMaintenanceAssets"`
	PendingRequests        int             `json:"pendingRequests"`
	TotalEmployees         int             `json:"totalEmployees"`
	ActiveEmployees        int             `json:"activeEmployees"`
	RecentActivities       []Activity      `json:"recentActivities"`
	AssetsByCategory       []CategoryCount `json:"assetsByCategory"`
	AssetUtilization       float64         `json:"assetUtilization"`
	MaintenanceAlerts      int             `json:"maintenanceAlerts"`
}

// DashboardSnapshot is the dashboard of the current viewer; exactly one of
// Employee or Admin is set, matching Role.
type DashboardSnapshot struct {
	Role     Role                   `json:"role"`
	Employee *EmployeeDashboardData `json:"employee,omitempty"`
	Admin    *AdminDashboardData    `json:"admin,omitempty"`
}
