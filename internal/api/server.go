// Package api exposes the HTTP interface for managing worlds, bookmarks
// and background search jobs. Request bodies are validated against JSON
// schemas embedded at build time before they reach the handlers.
package api

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/OCharnyshevich/bedrockmate/internal/config"
	"github.com/OCharnyshevich/bedrockmate/internal/jobs"
	"github.com/OCharnyshevich/bedrockmate/internal/store"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// Server routes API requests and holds the shared application state.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	store  *store.Store
	runner *jobs.Runner

	schemas map[string]*jsonschema.Schema
	mux     *http.ServeMux
}

// New builds a Server with all routes registered and request schemas
// compiled. It does not start listening.
func New(cfg *config.Config, log *slog.Logger, st *store.Store, runner *jobs.Runner) (*Server, error) {
	s := &Server{
		cfg:     cfg,
		log:     log,
		store:   st,
		runner:  runner,
		schemas: make(map[string]*jsonschema.Schema),
		mux:     http.NewServeMux(),
	}
	if err := s.compileSchemas(); err != nil {
		return nil, err
	}
	s.routes()
	return s, nil
}

func (s *Server) compileSchemas() error {
	names := []string{
		"world_create", "world_update",
		"bookmark_create", "bookmark_update",
		"job_create",
	}
	c := jsonschema.NewCompiler()
	for _, name := range names {
		path := "schemas/" + name + ".schema.json"
		f, err := schemaFS.Open(path)
		if err != nil {
			return fmt.Errorf("open schema %s: %w", name, err)
		}
		if err := c.AddResource(path, f); err != nil {
			f.Close()
			return fmt.Errorf("add schema %s: %w", name, err)
		}
		f.Close()
	}
	for _, name := range names {
		schema, err := c.Compile("schemas/" + name + ".schema.json")
		if err != nil {
			return fmt.Errorf("compile schema %s: %w", name, err)
		}
		s.schemas[name] = schema
	}
	return nil
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /api/health", s.handleHealth)

	s.mux.HandleFunc("GET /api/seeds", s.handleWorldList)
	s.mux.HandleFunc("POST /api/seeds", s.handleWorldCreate)
	s.mux.HandleFunc("GET /api/seeds/active", s.handleWorldActive)
	s.mux.HandleFunc("GET /api/seeds/{id}", s.handleWorldGet)
	s.mux.HandleFunc("PUT /api/seeds/{id}", s.handleWorldUpdate)
	s.mux.HandleFunc("DELETE /api/seeds/{id}", s.handleWorldDelete)
	s.mux.HandleFunc("POST /api/seeds/{id}/activate", s.handleWorldActivate)

	s.mux.HandleFunc("GET /api/bookmarks", s.handleBookmarkList)
	s.mux.HandleFunc("POST /api/bookmarks", s.handleBookmarkCreate)
	s.mux.HandleFunc("GET /api/bookmarks/{id}", s.handleBookmarkGet)
	s.mux.HandleFunc("PUT /api/bookmarks/{id}", s.handleBookmarkUpdate)
	s.mux.HandleFunc("DELETE /api/bookmarks/{id}", s.handleBookmarkDelete)

	s.mux.HandleFunc("GET /api/jobs/types", s.handleJobTypes)
	s.mux.HandleFunc("GET /api/jobs", s.handleJobList)
	s.mux.HandleFunc("POST /api/jobs", s.handleJobCreate)
	s.mux.HandleFunc("GET /api/jobs/{id}", s.handleJobGet)
	s.mux.HandleFunc("DELETE /api/jobs/{id}", s.handleJobDelete)
}

// Handler returns the root HTTP handler. Exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.Info("api listening", "addr", srv.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeValid reads the request body, validates it against the named
// schema and then unmarshals it into dst.
func (s *Server) decodeValid(r *http.Request, name string, dst any) error {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if err := s.schemas[name].Validate(v); err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, format string, args ...any) {
	writeJSON(w, status, map[string]string{"error": fmt.Sprintf(format, args...)})
}
