package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/wildlog/wildlog_api/internal/api/dto"
	"github.com/wildlog/wildlog_api/internal/errlocal"
)

// CreateSwarm godoc
// @Summary Create a swarm
// @Description Creates a swarm with the caller as its first member
// @Tags swarms
// @Accept json
// @Produce json
// @Param request body dto.CreateSwarmRequest true "Swarm"
// @Success 201 {object} models.Swarm "Created swarm"
// @Failure 400 {object} errlocal.ErrBadRequest "Invalid request body"
// @Failure 401 {object} errlocal.ErrUnauthorized "Unauthorized"
// @Failure 500 {object} errlocal.ErrInternal "Internal server error"
// @Security BearerAuth
// @Router /swarms [post]
func (s *Server) createSwarm(w http.ResponseWriter, r *http.Request) {
	req, err := dto.GetRequestBody[dto.CreateSwarmRequest](r)
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrBadRequest("invalid request body", err.Error(), nil))
		return
	}

	swarm, err := s.progress.CreateSwarm(r.Context(), currentProfile(r), req.Name)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.WriteResponse(w, r, http.StatusCreated, swarm)
}

// GetSwarm godoc
// @Summary Get a swarm's collection
// @Description Aggregates the members' collections, advances the shared streak and awards swarm badges
// @Tags swarms
// @Produce json
// @Param swarm_id path string true "Swarm ID UUID format"
// @Success 200 {object} dto.SwarmResponse "Swarm view"
// @Failure 400 {object} errlocal.ErrBadRequest "Invalid swarm ID"
// @Failure 401 {object} errlocal.ErrUnauthorized "Unauthorized"
// @Failure 403 {object} errlocal.ErrForbidden "Not a member"
// @Failure 404 {object} errlocal.ErrNotFound "Swarm not found"
// @Failure 500 {object} errlocal.ErrInternal "Internal server error"
// @Security BearerAuth
// @Router /swarms/{swarm_id} [get]
func (s *Server) getSwarm(w http.ResponseWriter, r *http.Request) {
	swarmID, err := uuid.Parse(mux.Vars(r)[swarmIDTag])
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrBadRequest("invalid swarm ID", err.Error(), nil))
		return
	}

	result, err := s.progress.SwarmView(r.Context(), swarmID)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.WriteResponse(w, r, http.StatusOK, dto.NewSwarmResponse(result))
}
