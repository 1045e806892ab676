package assetservice

import (
	"context"
	"net/http"
	"net/url"

	"assetdesk/client"
	"assetdesk/models"
	"assetdesk/providers"

	"go.uber.org/zap"
)

type AssetService interface {
	ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	Suggestions(ctx context.Context, query string) []string
	SubmitAssetRequest(ctx context.Context, req models.AssetRequest) (models.AssetRequestRes, error)
	SubmitServiceRequest(ctx context.Context, req models.ServiceRequest) (models.ServiceRequestRes, error)
	ListServiceRequests(ctx context.Context, status string) ([]models.ServiceRecord, error)
}

type assetServiceStruct struct {
	api    providers.APIClient
	logger providers.ZapLoggerProvider
}

func NewAssetService(api providers.APIClient, logger providers.ZapLoggerProvider) AssetService {
	return &assetServiceStruct{api: api, logger: logger}
}

func (s *assetServiceStruct) ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}

	assets := []models.Asset{}
	if err := s.api.Send(ctx, &client.Call{Method: http.MethodGet, Path: "/assets", Query: query}, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

func (s *assetServiceStruct) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := s.api.Send(ctx, &client.Call{Method: http.MethodGet, Path: "/assets/categories"}, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Suggestions never fails; any error yields an empty list.
func (s *assetServiceStruct) Suggestions(ctx context.Context, query string) []string {
	suggestions := []string{}
	err := s.api.Send(ctx, &client.Call{
		Method: http.MethodGet,
		Path:   "/assets/suggestions",
		Query:  url.Values{"query": {query}},
	}, &suggestions)
	if err != nil {
		s.logger.GetLogger().Warn("failed to fetch asset suggestions", zap.String("query", query), zap.Error(err))
		return []string{}
	}
	return suggestions
}

func (s *assetServiceStruct) SubmitAssetRequest(ctx context.Context, req models.AssetRequest) (models.AssetRequestRes, error) {
	var res models.AssetRequestRes
	if err := s.api.Send(ctx, &client.Call{Method: http.MethodPost, Path: "/assets/request", Body: req}, &res); err != nil {
		return models.AssetRequestRes{}, err
	}
	s.logger.GetLogger().Info("asset request accepted", zap.String("request_id", res.RequestID))
	return res, nil
}

func (s *assetServiceStruct) SubmitServiceRequest(ctx context.Context, req models.ServiceRequest) (models.ServiceRequestRes, error) {
	var res models.ServiceRequestRes
	if err := s.api.Send(ctx, &client.Call{Method: http.MethodPost, Path: "/assets/service", Body: req}, &res); err != nil {
		return models.ServiceRequestRes{}, err
	}
	s.logger.GetLogger().Info("service request accepted", zap.String("request_id", res.RequestID))
	return res, nil
}

func (s *assetServiceStruct) ListServiceRequests(ctx context.Context, status string) ([]models.ServiceRecord, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": {status}}
	}

	records := []models.ServiceRecord{}
	if err := s.api.Send(ctx, &client.Call{Method: http.MethodGet, Path: "/service-requests", Query: query}, &records); err != nil {
		return nil, err
	}
	return records, nil
}
