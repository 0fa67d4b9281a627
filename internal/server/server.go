// Package server exposes the chatbot over HTTP: the chat UI, the JSON chat
// endpoint, a health check and the dataset admin endpoint.
package server

import (
	"context"
	"embed"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xaenox/campus-chatbot/internal/chat"
	"github.com/xaenox/campus-chatbot/internal/storage"
)

//go:embed web/index.html
var webFS embed.FS

type Server struct {
	service *chat.Service
	store   storage.Storage
	addr    string
	logger  *zap.Logger
}

func New(service *chat.Service, store storage.Storage, addr string, logger *zap.Logger) *Server {
	return &Server{
		service: service,
		store:   store,
		addr:    addr,
		logger:  logger,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/", s.handleIndex)
	r.Post("/api/chat", s.handleChat)
	r.Get("/api/health", s.handleHealth)
	// GET kept for browser convenience; this endpoint must not run while
	// read traffic is being served.
	r.Get("/admin/init_db", s.handleInitDB)
	r.Post("/admin/init_db", s.handleInitDB)

	return r
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("Campus chatbot listening", zap.String("addr", s.addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	// A missing or malformed body is treated as an empty message, which
	// routes straight to the generic fallback.
	json.NewDecoder(r.Body).Decode(&req)

	reply, err := s.service.Reply(r.Context(), req.Message)
	if err != nil {
		s.logger.Error("Chat failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "the campus database is unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleInitDB(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Reset(r.Context()); err != nil {
		s.logger.Error("Failed to reset dataset", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "initialized campus dataset with sample data"})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := webFS.ReadFile("web/index.html")
	if err != nil {
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()
		next.ServeHTTP(w, r)
		s.logger.Info("Request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}
