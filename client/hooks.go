package client

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

type TokenSource interface {
	Token() string
}

type SessionClearer interface {
	Clear(ctx context.Context) error
}

// BearerToken attaches "Authorization: Bearer <token>" to non-anonymous calls
// while the source holds a token.
func BearerToken(source TokenSource) RequestHook {
	return func(req *http.Request, call *Call) error {
		if call.Anonymous {
			return nil
		}
		if token := source.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		return nil
	}
}

// TeardownOnUnauthorized clears the session when an authenticated call gets a 401.
// It never fails the call itself; the status is still classified afterwards.
func TeardownOnUnauthorized(session SessionClearer, logger *zap.Logger) ResponseHook {
	return func(res *http.Response, call *Call) error {
		if call.Anonymous || res.StatusCode != http.StatusUnauthorized {
			return nil
		}
		logger.Info("session rejected by server, signing out", zap.String("path", call.Path))
		ctx := context.Background()
		if res.Request != nil {
			ctx = res.Request.Context()
		}
		if err := session.Clear(ctx); err != nil {
			logger.Error("failed to clear session", zap.Error(err))
		}
		return nil
	}
}

// ClassifyStatus fails any response with status >= 400.
func ClassifyStatus() ResponseHook {
	return func(res *http.Response, call *Call) error {
		if res.StatusCode < http.StatusBadRequest {
			return nil
		}
		return classifyResponse(res)
	}
}
