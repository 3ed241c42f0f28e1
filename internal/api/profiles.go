package api

import (
	"net/http"

	"github.com/wildlog/wildlog_api/internal/api/dto"
	"github.com/wildlog/wildlog_api/internal/errlocal"
)

// CreateProfile godoc
// @Summary Create the caller's profile
// @Description Start a fresh collection for the authenticated identity
// @Tags profiles
// @Produce json
// @Success 201 {object} stats.ProfileView "Created profile"
// @Failure 401 {object} errlocal.ErrUnauthorized "Unauthorized"
// @Failure 409 {object} errlocal.ErrConflict "Profile already exists"
// @Failure 500 {object} errlocal.ErrInternal "Internal server error"
// @Security BearerAuth
// @Router /profiles/me [post]
func (s *Server) createProfile(w http.ResponseWriter, r *http.Request) {
	view, err := s.progress.CreateProfile(r.Context(), currentProfile(r))
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.WriteResponse(w, r, http.StatusCreated, view)
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Description Collection, streak, badges, XP and level progress
// @Tags profiles
// @Produce json
// @Success 200 {object} stats.ProfileView "Profile"
// @Failure 401 {object} errlocal.ErrUnauthorized "Unauthorized"
// @Failure 404 {object} errlocal.ErrNotFound "Profile not found"
// @Failure 500 {object} errlocal.ErrInternal "Internal server error"
// @Security BearerAuth
// @Router /profiles/me [get]
func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	view, err := s.progress.GetProfile(r.Context(), currentProfile(r))
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.WriteResponse(w, r, http.StatusOK, view)
}

// JoinSwarm godoc
// @Summary Join or leave a swarm
// @Description Set swarm_id to join a swarm, null to leave the current one
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body dto.JoinSwarmRequest true "Target swarm"
// @Success 200 {object} stats.ProfileView "Updated profile"
// @Failure 400 {object} errlocal.ErrBadRequest "Invalid request body"
// @Failure 401 {object} errlocal.ErrUnauthorized "Unauthorized"
// @Failure 404 {object} errlocal.ErrNotFound "Swarm or profile not found"
// @Failure 500 {object} errlocal.ErrInternal "Internal server error"
// @Security BearerAuth
// @Router /profiles/me/swarm [put]
func (s *Server) joinSwarm(w http.ResponseWriter, r *http.Request) {
	req, err := dto.GetRequestBody[dto.JoinSwarmRequest](r)
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrBadRequest("invalid request body", err.Error(), nil))
		return
	}

	view, err := s.progress.JoinSwarm(r.Context(), currentProfile(r), req.SwarmID)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.WriteResponse(w, r, http.StatusOK, view)
}
