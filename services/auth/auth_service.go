package authservice

import (
	"context"
	"net/http"

	"assetdesk/apperrors"
	"assetdesk/client"
	"assetdesk/models"
	"assetdesk/providers"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const emailExistsMessage = "Email already exists"

type AuthService interface {
	Login(ctx context.Context, email, password string) (models.AuthRes, error)
	Register(ctx context.Context, req models.RegisterReq) (models.MessageRes, error)
	CurrentUser(ctx context.Context) (models.User, error)
	RefreshToken(ctx context.Context) (string, error)
}

type authServiceStruct struct {
	api    providers.APIClient
	logger providers.ZapLoggerProvider
}

func NewAuthService(api providers.APIClient, logger providers.ZapLoggerProvider) AuthService {
	return &authServiceStruct{api: api, logger: logger}
}

// Login is sent anonymously so a rejected attempt never signs out an existing session.
func (s *authServiceStruct) Login(ctx context.Context, email, password string) (models.AuthRes, error) {
	var res models.AuthRes
	err := s.api.Send(ctx, &client.Call{
		Method:    http.MethodPost,
		Path:      "/auth/login",
		Body:      models.LoginReq{Email: email, Password: password},
		Anonymous: true,
	}, &res)
	if errors.Is(err, apperrors.ErrUnauthorized) {
		s.logger.GetLogger().Info("login rejected", zap.String("email", email))
		return models.AuthRes{}, apperrors.Reclassify(err, apperrors.ErrInvalidCredentials)
	}
	if err != nil {
		return models.AuthRes{}, err
	}
	return res, nil
}

func (s *authServiceStruct) Register(ctx context.Context, req models.RegisterReq) (models.MessageRes, error) {
	var res models.MessageRes
	err := s.api.Send(ctx, &client.Call{
		Method:    http.MethodPost,
		Path:      "/auth/register",
		Body:      req,
		Anonymous: true,
	}, &res)
	if errors.Is(err, apperrors.ErrValidation) && apperrors.Message(err) == emailExistsMessage {
		return models.MessageRes{}, apperrors.Reclassify(err, apperrors.ErrEmailExists)
	}
	if err != nil {
		return models.MessageRes{}, err
	}
	return res, nil
}

func (s *authServiceStruct) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	if err := s.api.Send(ctx, &client.Call{Method: http.MethodGet, Path: "/auth/me"}, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *authServiceStruct) RefreshToken(ctx context.Context) (string, error) {
	var res models.TokenRes
	if err := s.api.Send(ctx, &client.Call{Method: http.MethodPost, Path: "/auth/refresh-token"}, &res); err != nil {
		return "", err
	}
	if res.Token == "" {
		return "", &apperrors.HTTPError{Kind: apperrors.ErrUnexpectedStatus, Status: http.StatusOK, Message: "refresh returned no token"}
	}
	return res.Token, nil
}
