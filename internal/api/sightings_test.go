package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wildlog/wildlog_api/internal/errlocal"
	"github.com/wildlog/wildlog_api/internal/models"
	"github.com/wildlog/wildlog_api/internal/progression"
	"github.com/wildlog/wildlog_api/internal/stats"
)

func TestLogSighting(t *testing.T) {
	server := newTestServer(t)
	server.initRouter()

	sightedAt := time.Date(2024, time.June, 15, 23, 10, 0, 0, time.UTC)
	result := &stats.SightingResult{
		Sighting: &models.Sighting{ID: uuid.New(), ProfileID: server.profileID, SpeciesID: "red_fox", XPAwarded: 125},
		Notification: progression.Notification{
			SpeciesID: "red_fox",
			XPDelta:   125,
			Badges:    []progression.Award{{ID: "night_owl", Name: "Night Owl", Reward: 25}},
		},
	}

	server.authorize()
	server.progress.EXPECT().
		LogSighting(mock.Anything, mock.MatchedBy(func(req stats.SightingRequest) bool {
			return req.ProfileID == server.profileID &&
				req.Species == "red_fox" &&
				req.SightedAt.Equal(sightedAt) &&
				req.Source == stats.SourceManual
		})).
		Return(result, nil).Once()

	rr := server.serve(authedRequest(http.MethodPost, "/api/v1/sightings",
		jsonBody(`{"species_id":"red_fox","sighted_at":"2024-06-15T23:10:00Z"}`)))

	require.Equal(t, http.StatusCreated, rr.Code)
	var resp stats.SightingResult
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, int64(125), resp.Notification.XPDelta)
	require.Len(t, resp.Notification.Badges, 1)
	assert.Equal(t, "night_owl", resp.Notification.Badges[0].ID)
}

func TestLogSighting_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"species_id":`},
		{"missing species", `{}`},
		{"species too long", `{"species_id":"` + strings.Repeat("a", 129) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t)
			server.initRouter()

			server.authorize()
			rr := server.serve(authedRequest(http.MethodPost, "/api/v1/sightings", jsonBody(tt.body)))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestLogSighting_ConflictIsSurfaced(t *testing.T) {
	server := newTestServer(t)
	server.initRouter()

	server.authorize()
	server.progress.EXPECT().LogSighting(mock.Anything, mock.Anything).
		Return(nil, errlocal.NewErrConflict("profile changed concurrently", errlocal.SystemStats, nil)).Once()

	rr := server.serve(authedRequest(http.MethodPost, "/api/v1/sightings", jsonBody(`{"species_id":"red_fox"}`)))

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestListSightings(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		limit  int
		offset int
	}{
		{"defaults", "", defaultLimit, defaultOffset},
		{"explicit page", "?limit=20&offset=40", 20, 40},
		{"limit above max", "?limit=10000", maxSightingsPage, 0},
		{"garbage falls back", "?limit=abc&offset=-3", defaultLimit, defaultOffset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t)
			server.initRouter()

			sightings := []*models.Sighting{{ID: uuid.New(), SpeciesID: "red_fox"}}
			server.authorize()
			server.progress.EXPECT().ListSightings(mock.Anything, server.profileID, tt.limit, tt.offset).
				Return(sightings, nil).Once()

			rr := server.serve(authedRequest(http.MethodGet, "/api/v1/sightings"+tt.query, nil))

			require.Equal(t, http.StatusOK, rr.Code)
			var resp []models.Sighting
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			require.Len(t, resp, 1)
			assert.Equal(t, "red_fox", resp[0].SpeciesID)
		})
	}
}

func TestListSightings_EmptyIsArray(t *testing.T) {
	server := newTestServer(t)
	server.initRouter()

	server.authorize()
	server.progress.EXPECT().ListSightings(mock.Anything, server.profileID, defaultLimit, defaultOffset).
		Return(nil, nil).Once()

	rr := server.serve(authedRequest(http.MethodGet, "/api/v1/sightings", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}
