package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/wildlog/wildlog_api/internal/utils"
)

const requestIDHeader = "X-Request-ID"

const (
	corsAllowMethods = "GET, POST, PUT, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization, X-Request-ID"
	corsMaxAge       = "3600"
)

type accessRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (a *accessRecorder) WriteHeader(code int) {
	a.status = code
	a.ResponseWriter.WriteHeader(code)
}

func (a *accessRecorder) Write(b []byte) (int, error) {
	n, err := a.ResponseWriter.Write(b)
	a.bytes += n
	return n, err
}

// commonMiddleware answers CORS preflights, tags the request with an id and
// writes one access log line per request.
func (s *Server) commonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.setCORSHeaders(w, r)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, requestID)
		r.Header.Set(requestIDHeader, requestID)

		r = r.WithContext(requestContext(r, requestID))
		rec := &accessRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		ctx := r.Context()
		entry := s.logger.WithContext(ctx).
			WithField("status", rec.status).
			WithField("bytes", rec.bytes)
		if elapsed, ok := utils.ElapsedTime(ctx); ok {
			entry = entry.WithField("elapsed_ms", elapsed.Milliseconds())
		}

		level := logrus.InfoLevel
		if rec.status >= http.StatusInternalServerError {
			level = logrus.ErrorLevel
		}
		entry.Log(level, "request finished")
	})
}

func requestContext(r *http.Request, requestID string) context.Context {
	ctx := r.Context()
	ctx = context.WithValue(ctx, utils.TimeKey, time.Now())
	ctx = context.WithValue(ctx, utils.PathKey, r.URL.Path)
	ctx = context.WithValue(ctx, utils.MethodKey, r.Method)
	return utils.SetRequestID(ctx, requestID)
}

func (s *Server) setCORSHeaders(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return
	}

	h := w.Header()
	h.Set("Access-Control-Allow-Origin", origin)
	h.Set("Vary", "Origin")
	h.Set("Access-Control-Allow-Credentials", "true")
	h.Set("Access-Control-Allow-Methods", corsAllowMethods)
	h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
	h.Set("Access-Control-Max-Age", corsMaxAge)
}
