package assetservice

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"assetdesk/apperrors"
	"assetdesk/client"
	"assetdesk/fixtures"
	"assetdesk/models"
	"assetdesk/providers"
	"assetdesk/providers/configProvider"
	"assetdesk/providers/loggerProvider"
	"assetdesk/server"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockedService(t *testing.T) (AssetService, *providers.MockAPIClient) {
	ctrl := gomock.NewController(t)
	mockAPI := providers.NewMockAPIClient(ctrl)
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()
	return NewAssetService(mockAPI, mockLogger), mockAPI
}

func TestListAssetsQuery(t *testing.T) {
	testCases := []struct {
		name          string
		filter        models.AssetFilter
		expectedQuery url.Values
	}{
		{name: "no filter", filter: models.AssetFilter{}, expectedQuery: url.Values{}},
		{name: "category only", filter: models.AssetFilter{Category: "Laptops"}, expectedQuery: url.Values{"category": {"Laptops"}}},
		{name: "both", filter: models.AssetFilter{Category: "Laptops", Status: "assigned"}, expectedQuery: url.Values{"category": {"Laptops"}, "status": {"assigned"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, mockAPI := newMockedService(t)
			mockAPI.EXPECT().
				Send(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, call *client.Call, out interface{}) error {
					assert.Equal(t, http.MethodGet, call.Method)
					assert.Equal(t, "/assets", call.Path)
					assert.Equal(t, tc.expectedQuery, call.Query)
					return nil
				})

			assets, err := service.ListAssets(context.Background(), tc.filter)

			assert.NoError(t, err)
			assert.NotNil(t, assets)
		})
	}
}

func TestSuggestionsSwallowsErrors(t *testing.T) {
	testCases := []struct {
		name    string
		sendErr error
	}{
		{name: "network failure", sendErr: &apperrors.NetworkError{Cause: errors.New("timeout")}},
		{name: "server failure", sendErr: apperrors.Classify(http.StatusInternalServerError, "")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, mockAPI := newMockedService(t)
			mockAPI.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(tc.sendErr)

			suggestions := service.Suggestions(context.Background(), "mac")

			assert.NotNil(t, suggestions)
			assert.Empty(t, suggestions)
		})
	}
}

func TestSubmitErrorsForwarded(t *testing.T) {
	service, mockAPI := newMockedService(t)
	sendErr := apperrors.Classify(http.StatusBadRequest, "reason is required")
	mockAPI.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(sendErr).Times(2)

	_, err := service.SubmitAssetRequest(context.Background(), models.AssetRequest{Category: "Laptops"})
	assert.Equal(t, sendErr, err)

	_, err = service.SubmitServiceRequest(context.Background(), models.ServiceRequest{AssetID: "ASSET-001"})
	assert.Equal(t, sendErr, err)
}

func newContractService() AssetService {
	srv := server.NewServer(configprovider.NewConfigProvider(), loggerProvider.NewLogProvider("error", ""), fixtures.Default())
	api := client.New("http://assetdesk.test/api", client.NewHandlerTransport(srv.InjectRoutes()),
		client.WithResponseHook(client.ClassifyStatus()),
	)
	return NewAssetService(api, loggerProvider.NewLogProvider("error", ""))
}

func TestAssetContract(t *testing.T) {
	ctx := context.Background()
	service := newContractService()

	t.Run("filters are AND combined", func(t *testing.T) {
		assets, err := service.ListAssets(ctx, models.AssetFilter{Category: "Laptops", Status: "available"})
		require.NoError(t, err)
		assert.Empty(t, assets)

		assets, err = service.ListAssets(ctx, models.AssetFilter{Status: "assigned"})
		require.NoError(t, err)
		assert.Len(t, assets, 2)
	})

	t.Run("categories", func(t *testing.T) {
		categories, err := service.ListCategories(ctx)
		require.NoError(t, err)
		assert.Equal(t, fixtures.Default().Categories, categories)
	})

	t.Run("suggestions are case insensitive", func(t *testing.T) {
		assert.Equal(t, []string{"Dell XPS 13", `Dell 27" Monitor`}, service.Suggestions(ctx, "DELL"))
		assert.Len(t, service.Suggestions(ctx, ""), 8)
	})

	t.Run("asset request without reason", func(t *testing.T) {
		_, err := service.SubmitAssetRequest(ctx, models.AssetRequest{Category: "Laptops"})
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
		assert.Equal(t, "reason is required", apperrors.Message(err))
	})

	t.Run("asset request echoed", func(t *testing.T) {
		req := models.AssetRequest{AssetType: "Laptops", Reason: "new joiner", Priority: models.PriorityHigh}
		res, err := service.SubmitAssetRequest(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "Asset request submitted successfully", res.Message)
		assert.NotEmpty(t, res.RequestID)
		assert.Equal(t, req, res.Request)
	})

	t.Run("service request ids are fresh", func(t *testing.T) {
		req := models.ServiceRequest{AssetNo: "A-17", Issue: "hinge cracked", IssueType: models.IssueRepair}
		first, err := service.SubmitServiceRequest(ctx, req)
		require.NoError(t, err)
		second, err := service.SubmitServiceRequest(ctx, req)
		require.NoError(t, err)
		assert.NotEqual(t, first.RequestID, second.RequestID)
	})

	t.Run("service request without asset", func(t *testing.T) {
		_, err := service.SubmitServiceRequest(ctx, models.ServiceRequest{Issue: "broken"})
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})

	t.Run("service requests by status", func(t *testing.T) {
		records, err := service.ListServiceRequests(ctx, "in_progress")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "SR-002", records[0].ID)
	})
}
