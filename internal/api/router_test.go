package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wildlog/wildlog_api/internal/auth"
	"github.com/wildlog/wildlog_api/internal/ratelimit"
	"github.com/wildlog/wildlog_api/internal/stats"
)

func TestInitRouter_NotFound(t *testing.T) {
	server := newTestServer(t)
	server.initRouter()

	rr := server.serve(httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "endpoint not found")
}

func TestInitRouter_MethodNotAllowed(t *testing.T) {
	server := newTestServer(t)
	server.initRouter()

	rr := server.serve(httptest.NewRequest(http.MethodDelete, "/api/v1/health", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Contains(t, rr.Body.String(), "method not allowed")
}

func TestInitRouter_Health(t *testing.T) {
	server := newTestServer(t)
	server.initRouter()
	server.healthy = true

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set(requestIDHeader, "req-42")
	rr := server.serve(req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "req-42", rr.Header().Get(requestIDHeader))
	assert.JSONEq(t, "true", rr.Body.String())
}

func TestInitRouter_GeneratesRequestID(t *testing.T) {
	server := newTestServer(t)
	server.initRouter()

	rr := server.serve(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.NotEmpty(t, rr.Header().Get(requestIDHeader))
}

func TestInitRouter_CORSPreflight(t *testing.T) {
	server := newTestServer(t)
	server.initRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/sightings", nil)
	req.Header.Set("Origin", "https://app.wildlog.example")
	rr := server.serve(req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "https://app.wildlog.example", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, corsAllowHeaders, rr.Header().Get("Access-Control-Allow-Headers"))
}

func TestInitRouter_Metrics(t *testing.T) {
	server := newTestServer(t)
	server.initRouter()

	server.serve(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	rr := server.serve(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "wildlog_http_request_duration_seconds")
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(ts *testServer)
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer token", header: "Basic abc"},
		{name: "empty bearer", header: "Bearer "},
		{
			name:   "rejected token",
			header: "Bearer " + testToken,
			setup: func(ts *testServer) {
				ts.auth.EXPECT().Parse(testToken).Return(nil, errors.New("token expired")).Once()
			},
		},
		{
			name:   "token without profile",
			header: "Bearer " + testToken,
			setup: func(ts *testServer) {
				ts.auth.EXPECT().Parse(testToken).Return(&auth.Claims{UserID: "not-a-uuid"}, nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t)
			server.initRouter()
			if tt.setup != nil {
				tt.setup(server)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := server.serve(req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	server := newTestServer(t)
	server.limiter.Stop()
	server.limiter = ratelimit.New(0.001, 1)
	t.Cleanup(server.limiter.Stop)
	server.initRouter()

	server.progress.EXPECT().LogSighting(mock.Anything, mock.Anything).
		Return(&stats.SightingResult{}, nil).Once()

	server.authorize()
	rr := server.serve(authedRequest(http.MethodPost, "/api/v1/sightings", jsonBody(`{"species_id":"red_fox"}`)))
	require.Equal(t, http.StatusCreated, rr.Code)

	server.authorize()
	rr = server.serve(authedRequest(http.MethodPost, "/api/v1/sightings", jsonBody(`{"species_id":"red_fox"}`)))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "1", rr.Header().Get("Retry-After"))

	server.progress.EXPECT().ListSightings(mock.Anything, server.profileID, defaultLimit, defaultOffset).
		Return(nil, nil).Once()
	server.authorize()
	rr = server.serve(authedRequest(http.MethodGet, "/api/v1/sightings", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
