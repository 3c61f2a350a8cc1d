// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine calls, output serialization.
// The API NEVER performs cost logic.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"iops-calculator/core/determinism"
	"iops-calculator/core/engine"
	"iops-calculator/core/output"
	"iops-calculator/internal/metrics"
)

// DefaultMaxBodySize limits request bodies
const DefaultMaxBodySize = 1 << 20

// ResponseMetadata contains audit/reproducibility metadata
type ResponseMetadata struct {
	InputHash     string `json:"input_hash"`
	EngineVersion string `json:"engine_version"`
	DurationMs    int64  `json:"duration_ms"`
}

// Server is the API server
type Server struct {
	engine  *engine.Engine
	handler *Handler
	mux     *http.ServeMux
	chain   http.Handler
	version string
	metrics *metrics.Metrics
	logger  *zap.Logger

	maxBodySize int64
}

// Option configures a Server
type Option func(*Server)

// WithLogger sets the server logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics sets the metrics the server records into
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// NewServer creates a new API server
func NewServer(eng *engine.Engine, version string, opts ...Option) *Server {
	s := &Server{
		engine:      eng,
		mux:         http.NewServeMux(),
		version:     version,
		logger:      zap.NewNop(),
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = metrics.New()
	}
	s.handler = NewHandler(eng, s.metrics, s.logger)

	s.registerRoutes()
	s.chain = s.recoveryMiddleware(s.requestIDMiddleware(s.metricsMiddleware(s.mux)))
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Configuration events
	s.mux.HandleFunc("POST /configuration/tier", s.handleEvent(EventTier))
	s.mux.HandleFunc("POST /configuration/storage", s.handleEvent(EventStorage))
	s.mux.HandleFunc("POST /configuration/disk", s.handleEvent(EventDisk))
	s.mux.HandleFunc("POST /configuration/iops", s.handleEvent(EventIops))
	s.mux.HandleFunc("POST /pricing", s.handlePricing)
	s.mux.HandleFunc("POST /diff", s.handleDiff)

	// Catalog
	s.mux.HandleFunc("GET /tiers", s.handleTiers)
	s.mux.HandleFunc("GET /storage-classes", s.handleStorageClasses)

	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
	s.mux.Handle("GET /metrics", s.metrics.Handler())
}

// handleEvent handles POST /configuration/{event}
func (s *Server) handleEvent(event Event) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		var req ConfigurationRequest
		if err := s.parseJSON(r, &req); err != nil {
			s.writeError(w, r, "INVALID_JSON", err.Error(), http.StatusBadRequest)
			return
		}

		resp, err := s.handler.apply(r.Context(), event, &req)
		if err != nil {
			s.writeJSON(w, ErrorResponse{
				RequestID:     requestIDFrom(r.Context()),
				Error:         ErrorDetail{Code: errorCode(err), Message: err.Error()},
				Configuration: &req.Configuration,
			}, errorStatus(err))
			return
		}

		resp.Metadata = s.metadata(&req, start)
		s.writeJSON(w, resp, http.StatusOK)
	}
}

// handlePricing handles POST /pricing
func (s *Server) handlePricing(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req PricingRequest
	if err := s.parseJSON(r, &req); err != nil {
		s.writeError(w, r, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	resp := s.handler.price(r.Context(), &req)
	resp.Metadata = s.metadata(&req, start)
	s.writeJSON(w, resp, http.StatusOK)
}

// handleDiff handles POST /diff
func (s *Server) handleDiff(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req DiffRequest
	if err := s.parseJSON(r, &req); err != nil {
		s.writeError(w, r, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	result := computeDiff(s.engine, &req)
	result.RequestID = requestIDFrom(r.Context())
	result.DurationMs = time.Since(start).Milliseconds()
	s.writeJSON(w, result, http.StatusOK)
}

// handleTiers handles GET /tiers
func (s *Server) handleTiers(w http.ResponseWriter, r *http.Request) {
	listing := output.NewCatalogListing(s.engine)
	s.writeJSON(w, TiersResponse{Tiers: listing.Tiers}, http.StatusOK)
}

// handleStorageClasses handles GET /storage-classes
func (s *Server) handleStorageClasses(w http.ResponseWriter, r *http.Request) {
	listing := output.NewCatalogListing(s.engine)
	s.writeJSON(w, StorageClassesResponse{StorageClasses: listing.StorageClasses}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "iops-calculator",
		"api_version": "v1",
	}, http.StatusOK)
}

func (s *Server) metadata(req interface{}, start time.Time) *ResponseMetadata {
	return &ResponseMetadata{
		InputHash:     computeInputHash(req),
		EngineVersion: s.version,
		DurationMs:    time.Since(start).Milliseconds(),
	}
}

func (s *Server) parseJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, s.maxBodySize))
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, code, message string, status int) {
	s.writeJSON(w, ErrorResponse{
		RequestID: requestIDFrom(r.Context()),
		Error:     ErrorDetail{Code: code, Message: message},
	}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.chain.ServeHTTP(w, r)
}

// HTTPServer returns an http.Server for addr serving this API
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down within timeout
func (s *Server) ListenAndServe(ctx context.Context, addr string, timeout time.Duration) error {
	srv := s.HTTPServer(addr)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	s.logger.Info("shutting down", zap.Duration("timeout", timeout))
	return srv.Shutdown(shutdownCtx)
}

// Helper functions

func computeInputHash(req interface{}) string {
	hash, err := determinism.HashJSON(req)
	if err != nil {
		return ""
	}
	return hash.Hex()
}
