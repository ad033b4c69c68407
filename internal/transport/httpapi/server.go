// Package httpapi is the thin HTTP wrapper over the orchestrator: it
// decodes a request, forwards it to the core, and returns the result
// verbatim as JSON.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hawsadev/hawsa/internal/config"
	"github.com/hawsadev/hawsa/internal/core"
	"github.com/hawsadev/hawsa/pkg/log"
)

type Core interface {
	ProcessQuery(ctx context.Context, userID, message string) core.QueryResult
}

type Server struct {
	srv  *http.Server
	core Core
}

type analyzeRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func NewServer(cfg *config.ServerConfig, c Core) *Server {
	s := &Server{core: c}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", s.handleAnalyze)

	s.srv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) Start(ctx context.Context) error {
	// Propagate the service context (and its logger) into handlers
	s.srv.BaseContext = func(net.Listener) context.Context { return ctx }

	log.FromCtx(ctx).Info().Str("addr", s.srv.Addr).Msg("http api listening")

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	logger := log.FromCtx(r.Context()).With().
		Str("request_id", uuid.NewString()).
		Logger()
	ctx := logger.WithContext(r.Context())

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Message == "" {
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: "message is required"})
		return
	}

	result := s.core.ProcessQuery(ctx, req.UserID, req.Message)
	writeJSON(ctx, w, http.StatusOK, result)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}
