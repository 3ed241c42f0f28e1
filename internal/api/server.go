package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	_ "github.com/wildlog/wildlog_api/docs"
	"github.com/wildlog/wildlog_api/internal/auth"
	"github.com/wildlog/wildlog_api/internal/config"
	"github.com/wildlog/wildlog_api/internal/errlocal"
	"github.com/wildlog/wildlog_api/internal/filestore"
	"github.com/wildlog/wildlog_api/internal/logging"
	"github.com/wildlog/wildlog_api/internal/models"
	"github.com/wildlog/wildlog_api/internal/progression"
	"github.com/wildlog/wildlog_api/internal/ratelimit"
	"github.com/wildlog/wildlog_api/internal/stats"
	"github.com/wildlog/wildlog_api/internal/store"
)

const (
	defaultHost    = "0.0.0.0"
	defaultPort    = "8080"
	defaultTimeout = time.Second * 10
	apiPrefix      = "/api/v1"
)

type Server struct {
	s           *http.Server
	router      *mux.Router
	store       store.Store
	fileStore   filestore.FileStore
	authManager auth.AuthManager
	progress    progressService
	recognizer  identifier
	limiter     *ratelimit.KeyedRateLimiter
	logger      *logging.Logger
	healthy     bool
}

type progressService interface {
	Catalog() *progression.Catalog
	CreateProfile(ctx context.Context, profileID uuid.UUID) (*stats.ProfileView, error)
	GetProfile(ctx context.Context, profileID uuid.UUID) (*stats.ProfileView, error)
	JoinSwarm(ctx context.Context, profileID uuid.UUID, swarmID *uuid.UUID) (*stats.ProfileView, error)
	LogSighting(ctx context.Context, req stats.SightingRequest) (*stats.SightingResult, error)
	ListSightings(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*models.Sighting, error)
	CreateSwarm(ctx context.Context, creator uuid.UUID, name string) (*models.Swarm, error)
	SwarmView(ctx context.Context, swarmID uuid.UUID) (*stats.SwarmResult, error)
}

type identifier interface {
	Identify(ctx context.Context, profileID uuid.UUID, photoKey string) (*models.Identification, error)
}

// @title WildLog API
// @version 1.0
// @description Species collection, streaks, badges and levels for wildlife spotters.

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host 0.0.0.0:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func NewServer(
	cfg config.Config,
	store store.Store,
	fileStore filestore.FileStore,
	authManager auth.AuthManager,
	progress progressService,
	recognizer identifier,
	logger *logging.Logger,
) *Server {
	r := mux.NewRouter()

	host, port := cfg.Server.Host, cfg.Server.Port
	if host == "" {
		host = defaultHost
	}
	if port == "" {
		port = defaultPort
	}

	return &Server{
		s: &http.Server{
			Addr:         fmt.Sprintf("%s:%s", host, port),
			Handler:      r,
			WriteTimeout: defaultTimeout,
			ReadTimeout:  defaultTimeout,
		},
		router:      r,
		store:       store,
		fileStore:   fileStore,
		authManager: authManager,
		progress:    progress,
		recognizer:  recognizer,
		limiter:     ratelimit.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
		logger:      logger.WithApiTag(),
	}
}

func (s *Server) InitRouter() *mux.Router {
	s.initRouter()
	return s.router
}

func (s *Server) Start() error {
	s.logger.Infof("starting server at %s", s.s.Addr)
	s.initRouter()
	s.healthy = true

	return s.s.ListenAndServe()
}

func (s *Server) Shutdown() error {
	s.logger.Infof("shutting down server at %s", s.s.Addr)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	s.healthy = false
	if s.limiter != nil {
		s.limiter.Stop()
	}

	if err := s.s.Shutdown(ctx); err != nil {
		s.logger.Warnf("graceful shutdown failed, forcing close: %v", err)
		return s.s.Close()
	}

	return nil
}

func (s *Server) WriteResponse(w http.ResponseWriter, r *http.Request, status int, data any) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		s.logger.WithContext(r.Context()).WithField("status", status).Info("request processed")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data == nil {
		data = map[string]string{"status": http.StatusText(status)}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		s.logger.WithContext(r.Context()).WithError(err).Error("failed to encode response")
		return
	}

	s.logger.WithContext(r.Context()).WithField("status", status).Info("request processed")
}

func (s *Server) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	var errLocal errlocal.LocalError
	if !errors.As(err, &errLocal) {
		errLocal = errlocal.NewErrInternal("internal server error", err.Error(), nil)
	}
	w.WriteHeader(errLocal.Code())

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if encodeErr := encoder.Encode(errLocal); encodeErr != nil {
		http.Error(w, `{"message":"failed to encode error response"}`, http.StatusInternalServerError)
		return
	}

	logger := s.logger.WithContext(r.Context()).WithError(err)
	if errLocal.Code() >= http.StatusInternalServerError {
		logger.Error("request processed with error")
		return
	}
	logger.Warn("request processed with error")
}

// HealthCheck godoc
// @Summary Health check
// @Description Check server health
// @Tags health
// @Produce json
// @Success 200 {object} bool "Is server healthy"
// @Failure 500 {object} errlocal.ErrInternal "Internal server error"
// @Router /health [get]
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	s.WriteResponse(w, r, http.StatusOK, s.healthy)
}
