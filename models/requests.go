package models

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type IssueType string

const (
	IssueMalfunction IssueType = "malfunction"
	IssueRepair      IssueType = "repair"
	IssueReturn      IssueType = "return"
)

// AssetRequest asks for a new asset. Category is canonical; AssetType is the
// legacy wire name for the same field and is accepted in its place.
type AssetRequest struct {
	Category       string            `json:"category,omitempty" validate:"required_without=AssetType"`
	AssetType      string            `json:"assetType,omitempty" validate:"required_without=Category"`
	Reason         string            `json:"reason" validate:"required"`
	Priority       Priority          `json:"priority,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
	Notes          string            `json:"notes,omitempty"`
}

type Attachment struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType,omitempty"`
	Data        []byte `json:"data,omitempty"`
}

type ServiceRequest struct {
	AssetID     string       `json:"assetId,omitempty" validate:"required_without=AssetNo"`
	AssetNo     string       `json:"assetNo,omitempty" validate:"required_without=AssetID"`
	IssueType   IssueType    `json:"issueType,omitempty"`
	Issue       string       `json:"issue,omitempty" validate:"required_without=Description"`
	Description string       `json:"description,omitempty" validate:"required_without=Issue"`
	Priority    Priority     `json:"priority,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

type AssetRequestRes struct {
	Message   string       `json:"message"`
	RequestID string       `json:"requestId"`
	Request   AssetRequest `json:"request"`
}

type ServiceRequestRes struct {
	Message   string         `json:"message"`
	RequestID string         `json:"requestId"`
	Request   ServiceRequest `json:"request"`
}

// ServiceRecord is a service request as the server tracks it.
type ServiceRecord struct {
	ID          string   `json:"id"`
	AssetID     string   `json:"assetId"`
	Type        string   `json:"type"`
	Status      string   `json:"status"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	RequestedBy string   `json:"requestedBy"`
	RequestDate string   `json:"requestDate"`
}
