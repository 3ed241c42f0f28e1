package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/wildlog/wildlog_api/internal/api/middlewares"
	"github.com/wildlog/wildlog_api/internal/rbac"
)

const (
	identificationIDTag = "identification_id"
	swarmIDTag          = "swarm_id"
	offsetQueryKey      = "offset"
	limitQueryKey       = "limit"
	defaultLimit        = 100
	defaultOffset       = 0
)

func (s *Server) initRouter() {
	s.router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	root := s.router.PathPrefix(apiPrefix).Subrouter().StrictSlash(true)
	root.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "endpoint not found", http.StatusNotFound)
	})
	root.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			s.setCORSHeaders(w, r)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	})
	root.Use(mux.CORSMethodMiddleware(root), s.commonMiddleware, middlewares.Metrics)
	root.HandleFunc("/health", s.healthCheck).Methods(http.MethodGet)

	catalogRouter := root.PathPrefix("/catalog").Subrouter()
	catalogRouter.HandleFunc("/species", s.listSpecies).Methods(http.MethodGet)
	catalogRouter.HandleFunc("/badges", s.listBadges).Methods(http.MethodGet)
	catalogRouter.HandleFunc("/levels", s.listLevels).Methods(http.MethodGet)

	profileRouter := root.PathPrefix("/profiles/me").Subrouter()
	profileRouter.Use(s.authMiddleware)
	profileRouter.HandleFunc("", s.createProfile).Methods(http.MethodPost)
	profileRouter.HandleFunc("", s.getProfile).Methods(http.MethodGet)
	profileRouter.HandleFunc("/swarm", s.joinSwarm).Methods(http.MethodPut)

	sightingRouter := root.PathPrefix("/sightings").Subrouter()
	sightingRouter.Use(s.authMiddleware, s.rateLimitMiddleware)
	sightingRouter.HandleFunc("", s.logSighting).Methods(http.MethodPost)
	sightingRouter.HandleFunc("", s.listSightings).Methods(http.MethodGet)

	identificationRouter := root.PathPrefix("/identifications").Subrouter()
	identificationRouter.Use(s.authMiddleware, s.rateLimitMiddleware)
	identificationRouter.HandleFunc("", s.startIdentification).Methods(http.MethodPost)
	identificationRouter.HandleFunc(fmt.Sprintf("/{%s}", identificationIDTag), s.getIdentification).
		Methods(http.MethodGet)

	swarmRouter := root.PathPrefix("/swarms").Subrouter()
	swarmRouter.Use(s.authMiddleware)
	swarmRouter.HandleFunc("", s.createSwarm).Methods(http.MethodPost)

	memberRouter := swarmRouter.PathPrefix(fmt.Sprintf("/{%s}", swarmIDTag)).Subrouter()
	memberRouter.Use(rbac.RequireSwarmMember(s.WriteError, s.store, swarmIDTag))
	memberRouter.HandleFunc("", s.getSwarm).Methods(http.MethodGet)
}
