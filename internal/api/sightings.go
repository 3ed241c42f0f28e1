package api

import (
	"net/http"

	"github.com/wildlog/wildlog_api/internal/api/dto"
	"github.com/wildlog/wildlog_api/internal/errlocal"
	"github.com/wildlog/wildlog_api/internal/models"
	"github.com/wildlog/wildlog_api/internal/utils"
)

const maxSightingsPage = 500

// LogSighting godoc
// @Summary Log a sighting
// @Description Runs the sighting through streak, badge and XP evaluation and returns what changed
// @Tags sightings
// @Accept json
// @Produce json
// @Param request body dto.LogSightingRequest true "Sighting"
// @Success 201 {object} stats.SightingResult "Progression outcome"
// @Failure 400 {object} errlocal.ErrBadRequest "Invalid request body"
// @Failure 401 {object} errlocal.ErrUnauthorized "Unauthorized"
// @Failure 404 {object} errlocal.ErrNotFound "Profile not found"
// @Failure 409 {object} errlocal.ErrConflict "Concurrent update, retry"
// @Failure 429 {object} errlocal.ErrTooManyRequests "Rate limited"
// @Failure 500 {object} errlocal.ErrInternal "Internal server error"
// @Security BearerAuth
// @Router /sightings [post]
func (s *Server) logSighting(w http.ResponseWriter, r *http.Request) {
	req, err := dto.GetRequestBody[dto.LogSightingRequest](r)
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrBadRequest("invalid request body", err.Error(), nil))
		return
	}

	result, err := s.progress.LogSighting(r.Context(), req.ToRequest(currentProfile(r)))
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.WriteResponse(w, r, http.StatusCreated, result)
}

// ListSightings godoc
// @Summary List the caller's sightings
// @Description Newest first
// @Tags sightings
// @Produce json
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} models.Sighting "Sightings"
// @Failure 401 {object} errlocal.ErrUnauthorized "Unauthorized"
// @Failure 500 {object} errlocal.ErrInternal "Internal server error"
// @Security BearerAuth
// @Router /sightings [get]
func (s *Server) listSightings(w http.ResponseWriter, r *http.Request) {
	limit, offset := utils.ClampPage(
		utils.GetQueryParam(r, limitQueryKey, defaultLimit),
		utils.GetQueryParam(r, offsetQueryKey, defaultOffset),
		maxSightingsPage,
	)

	sightings, err := s.progress.ListSightings(r.Context(), currentProfile(r), limit, offset)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}
	if sightings == nil {
		sightings = []*models.Sighting{}
	}

	s.WriteResponse(w, r, http.StatusOK, sightings)
}
