package models

type AssetStatus string

const (
	AssetAvailable   AssetStatus = "available"
	AssetAssigned    AssetStatus = "assigned"
	AssetMaintenance AssetStatus = "maintenance"
	AssetRetired     AssetStatus = "retired"
)

type Asset struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Category     string      `json:"category"`
	Status       AssetStatus `json:"status"`
	AssignedTo   *string     `json:"assignedTo"`
	Condition    string      `json:"condition"`
	PurchaseDate string      `json:"purchaseDate"`
	WarrantyEnd  string      `json:"warrantyEnd"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AssetFilter holds exact-match filters for GET /assets; empty fields match everything.
type AssetFilter struct {
	Category string
	Status   string
}

func (f AssetFilter) Match(a Asset) bool {
	if f.Category != "" && a.Category != f.Category {
		return false
	}
	if f.Status != "" && string(a.Status) != f.Status {
		return false
	}
	return true
}
