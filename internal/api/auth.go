package api

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/wildlog/wildlog_api/internal/errlocal"
	"github.com/wildlog/wildlog_api/internal/utils"
)

const authHeaderPrefix = "Bearer "

// authMiddleware verifies the access token issued by the identity service and
// puts the profile id it names into the request context.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, authHeaderPrefix))
		if !strings.HasPrefix(header, authHeaderPrefix) || token == "" {
			s.WriteError(w, r, errlocal.NewErrUnauthorized("missing or invalid authorization", errlocal.SystemAuth, nil))
			return
		}

		claims, err := s.authManager.Parse(token)
		if err != nil {
			s.WriteError(w, r, errlocal.NewErrUnauthorized("invalid token", err.Error(), nil))
			return
		}

		profileID, err := claims.ProfileID()
		if err != nil {
			s.WriteError(w, r, errlocal.NewErrUnauthorized("invalid token", err.Error(), nil))
			return
		}

		ctx := utils.SetUserID(r.Context(), profileID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// rateLimitMiddleware throttles write endpoints per profile. It must run after
// authMiddleware.
func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || s.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		if !s.limiter.Allow(currentProfile(r).String()) {
			w.Header().Set("Retry-After", "1")
			s.WriteError(w, r, errlocal.NewErrTooManyRequests("too many requests, slow down", errlocal.SystemAPI))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func currentProfile(r *http.Request) uuid.UUID {
	id, _ := utils.GetUserID(r.Context())
	return id
}
