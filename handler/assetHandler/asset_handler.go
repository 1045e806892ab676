package assethandler

import (
	"net/http"
	"time"

	"assetdesk/fixtures"
	"assetdesk/models"
	"assetdesk/providers"
	"assetdesk/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	suggestionLatency = 300 * time.Millisecond
	submissionLatency = time.Second
)

type AssetHandler struct {
	Data            *fixtures.Dataset
	Logger          providers.ZapLoggerProvider
	SimulateLatency bool
}

func NewAssetHandler(data *fixtures.Dataset, logger providers.ZapLoggerProvider, simulateLatency bool) *AssetHandler {
	return &AssetHandler{
		Data:            data,
		Logger:          logger,
		SimulateLatency: simulateLatency,
	}
}

func (h *AssetHandler) delay(r *http.Request, d time.Duration) {
	if h.SimulateLatency {
		utils.SimulateLatency(r.Context(), d)
	}
}

func (h *AssetHandler) GetAssets(w http.ResponseWriter, r *http.Request) {
	filter := models.AssetFilter{
		Category: r.URL.Query().Get("category"),
		Status:   r.URL.Query().Get("status"),
	}
	utils.RespondJSON(w, http.StatusOK, h.Data.FilterAssets(filter))
}

func (h *AssetHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.Data.Categories)
}

func (h *AssetHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	h.delay(r, suggestionLatency)
	utils.RespondJSON(w, http.StatusOK, h.Data.Suggestions(r.URL.Query().Get("query")))
}

func (h *AssetHandler) SubmitAssetRequest(w http.ResponseWriter, r *http.Request) {
	var req models.AssetRequest
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, err.Error())
		return
	}

	h.delay(r, submissionLatency)

	requestID := "AR-" + uuid.NewString()
	h.Logger.GetLogger().Info("asset request submitted", zap.String("request_id", requestID), zap.String("priority", string(req.Priority)))
	utils.RespondJSON(w, http.StatusCreated, models.AssetRequestRes{
		Message:   "Asset request submitted successfully",
		RequestID: requestID,
		Request:   req,
	})
}

func (h *AssetHandler) SubmitServiceRequest(w http.ResponseWriter, r *http.Request) {
	var req models.ServiceRequest
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, err.Error())
		return
	}

	h.delay(r, submissionLatency)

	requestID := "SR-" + uuid.NewString()
	h.Logger.GetLogger().Info("service request submitted",
		zap.String("request_id", requestID),
		zap.String("issue_type", string(req.IssueType)),
		zap.Int("attachments", len(req.Attachments)))
	utils.RespondJSON(w, http.StatusCreated, models.ServiceRequestRes{
		Message:   "Service request submitted successfully",
		RequestID: requestID,
		Request:   req,
	})
}

func (h *AssetHandler) GetServiceRequests(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.Data.FilterServiceRequests(r.URL.Query().Get("status")))
}
