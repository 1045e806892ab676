package client

import (
	"net"
	"net/http"
	"net/http/httptest"
	"time"
)

// NewNetworkTransport talks to a real API over TCP.
func NewNetworkTransport() http.RoundTripper {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
	}
}

// HandlerTransport serves requests straight from an http.Handler in process.
type HandlerTransport struct {
	Handler http.Handler
}

func NewHandlerTransport(handler http.Handler) *HandlerTransport {
	return &HandlerTransport{Handler: handler}
}

func (t *HandlerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	rec := httptest.NewRecorder()
	t.Handler.ServeHTTP(rec, req)
	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	res := rec.Result()
	res.Request = req
	return res, nil
}
