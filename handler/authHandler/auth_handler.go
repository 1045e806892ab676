package authhandler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"assetdesk/fixtures"
	"assetdesk/models"
	"assetdesk/providers"
	"assetdesk/utils"

	"go.uber.org/zap"
)

// fixturePassword is the only password the mock login accepts.
const fixturePassword = "password"

type AuthHandler struct {
	Data           *fixtures.Dataset
	AuthMiddleware providers.AuthMiddlewareService
	Logger         providers.ZapLoggerProvider
	Now            func() time.Time
}

func NewAuthHandler(data *fixtures.Dataset, auth providers.AuthMiddlewareService, logger providers.ZapLoggerProvider) *AuthHandler {
	return &AuthHandler{
		Data:           data,
		AuthMiddleware: auth,
		Logger:         logger,
		Now:            time.Now,
	}
}

func issueToken(role models.Role) string {
	return "mock-jwt-token-" + strings.ToLower(string(role))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	user, ok := h.Data.UserByEmail(req.Email)
	if !ok || req.Password != fixturePassword {
		h.Logger.GetLogger().Info("login rejected", zap.String("email", req.Email))
		utils.RespondError(w, http.StatusUnauthorized, nil, "Invalid credentials")
		return
	}

	h.Logger.GetLogger().Info("login accepted", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	utils.RespondJSON(w, http.StatusOK, models.AuthRes{User: user, Token: issueToken(user.Role)})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid input")
		return
	}

	if _, exists := h.Data.UserByEmail(req.Email); exists {
		h.Logger.GetLogger().Warn("user already registered", zap.String("email", req.Email))
		utils.RespondError(w, http.StatusBadRequest, nil, "Email already exists")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, models.MessageRes{Message: "Registration successful"})
}

func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	_, role, err := h.AuthMiddleware.GetTokenAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "Authentication required")
		return
	}

	user, ok := h.Data.UserByRole(role)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, nil, "User not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	_, role, err := h.AuthMiddleware.GetTokenAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "Authentication required")
		return
	}

	token := fmt.Sprintf("%s-%d", issueToken(role), h.Now().UnixMilli())
	utils.RespondJSON(w, http.StatusOK, models.TokenRes{Token: token})
}
