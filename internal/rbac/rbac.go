// Package rbac provides access control middleware for group resources.
package rbac

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/wildlog/wildlog_api/internal/errlocal"
	"github.com/wildlog/wildlog_api/internal/models"
	"github.com/wildlog/wildlog_api/internal/utils"
)

type ProfileGetter interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

// RequireSwarmMember returns middleware that lets a request through only when
// the authenticated profile belongs to the swarm named by the idVar route
// variable.
func RequireSwarmMember(writeError func(http.ResponseWriter, *http.Request, error), profiles ProfileGetter, idVar string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			swarmID, err := uuid.Parse(mux.Vars(r)[idVar])
			if err != nil {
				writeError(w, r, errlocal.NewErrBadRequest("invalid swarm ID", err.Error(), nil))
				return
			}

			profileID, ok := utils.GetUserID(r.Context())
			if !ok {
				writeError(w, r, errlocal.NewErrUnauthorized("missing or invalid authorization", "", nil))
				return
			}

			profile, err := profiles.GetProfile(r.Context(), profileID)
			if err != nil {
				writeError(w, r, err)
				return
			}

			if profile.SwarmID == nil || *profile.SwarmID != swarmID {
				writeError(w, r, errlocal.NewErrForbidden("access denied", "not a member of this swarm",
					map[string]any{"swarm_id": swarmID.String()}))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
