package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/wildlog/wildlog_api/internal/api/dto"
	"github.com/wildlog/wildlog_api/internal/errlocal"
)

// StartIdentification godoc
// @Summary Identify a species from a photo
// @Description Uploads the photo and queues it for recognition. A recognized species is logged as a sighting.
// @Tags identifications
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Photo to identify"
// @Success 202 {object} models.Identification "Queued identification"
// @Failure 400 {object} errlocal.ErrBadRequest "Bad photo"
// @Failure 401 {object} errlocal.ErrUnauthorized "Unauthorized"
// @Failure 409 {object} errlocal.ErrConflict "Photo is already being identified"
// @Failure 429 {object} errlocal.ErrTooManyRequests "Too many identifications in flight"
// @Failure 500 {object} errlocal.ErrInternal "Internal server error"
// @Security BearerAuth
// @Router /identifications [post]
func (s *Server) startIdentification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profileID := currentProfile(r)

	photo, err := dto.GetPhotoFromMultipartForm(r)
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrBadRequest("bad format of photo", err.Error(), nil))
		return
	}

	key, err := s.fileStore.UploadPhoto(ctx, profileID, photo)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	identification, err := s.recognizer.Identify(ctx, profileID, key)
	if err != nil {
		// the same photo uploaded twice shares a key with the running job
		if !errlocal.IsConflict(err) {
			if delErr := s.fileStore.DeletePhoto(ctx, key); delErr != nil {
				s.logger.WithContext(ctx).WithError(delErr).Warnf("failed to delete photo %s", key)
			}
		}
		s.WriteError(w, r, err)
		return
	}

	s.WriteResponse(w, r, http.StatusAccepted, identification)
}

// GetIdentification godoc
// @Summary Get an identification
// @Description Poll the status of a queued identification
// @Tags identifications
// @Produce json
// @Param identification_id path string true "Identification ID UUID format"
// @Success 200 {object} models.Identification "Identification"
// @Failure 400 {object} errlocal.ErrBadRequest "Invalid identification ID"
// @Failure 401 {object} errlocal.ErrUnauthorized "Unauthorized"
// @Failure 403 {object} errlocal.ErrForbidden "Belongs to another profile"
// @Failure 404 {object} errlocal.ErrNotFound "Identification not found"
// @Failure 500 {object} errlocal.ErrInternal "Internal server error"
// @Security BearerAuth
// @Router /identifications/{identification_id} [get]
func (s *Server) getIdentification(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)[identificationIDTag])
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrBadRequest("invalid identification ID", err.Error(), nil))
		return
	}

	identification, err := s.store.GetIdentification(r.Context(), id)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}
	if identification.ProfileID != currentProfile(r) {
		s.WriteError(w, r, errlocal.NewErrForbidden("access denied", "identification belongs to another profile", nil))
		return
	}

	s.WriteResponse(w, r, http.StatusOK, identification)
}
