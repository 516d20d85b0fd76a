// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package api exposes the collection analysis pipeline over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pdiddy/doc-insight/internal/collection"
	"github.com/pdiddy/doc-insight/pkg/types"
)

// Server serves the analysis API.
type Server struct {
	analyzer *collection.Analyzer
	layout   types.LayoutConfig
	logger   *slog.Logger
	router   chi.Router
}

// AnalyzeRequest asks for one collection to be analyzed.
type AnalyzeRequest struct {
	// CollectionPath is the collection directory, either absolute or
	// relative to the configured base directory.
	CollectionPath string `json:"collection_path"`
}

// AnalyzeResponse reports the outcome of an analysis request.
type AnalyzeResponse struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message"`
	OutputPath string           `json:"output_path,omitempty"`
	Report     *types.RunReport `json:"report,omitempty"`
	Error      string           `json:"error,omitempty"`
}

// NewServer wires the routes. A nil logger selects slog.Default().
func NewServer(analyzer *collection.Analyzer, layout types.LayoutConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{analyzer: analyzer, layout: layout, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/api", s.handleInfo)
	r.Get("/collections", s.handleListCollections)
	r.Get("/collection/{name}", s.handleCollectionInfo)
	r.Get("/results/{name}", s.handleResults)
	r.Post("/analyze", s.handleAnalyze)
	r.Post("/analyze-batch", s.handleAnalyzeBatch)

	s.router = r
	return s
}

// Handler returns the root http.Handler for mounting or serving.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("api listening", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleInfo(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"name": "doc-insight",
		"endpoints": []string{
			"GET /health",
			"GET /collections",
			"GET /collection/{name}",
			"GET /results/{name}",
			"POST /analyze",
			"POST /analyze-batch",
		},
	})
}

func (s *Server) handleListCollections(w http.ResponseWriter, _ *http.Request) {
	infos, err := collection.Discover(s.layout)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, collection.ErrCollectionNotFound) {
			status = http.StatusNotFound
		}
		s.writeJSON(w, status, AnalyzeResponse{Success: false, Error: err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"collections": infos,
		"count":       len(infos),
	})
}

func (s *Server) handleCollectionInfo(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	infos, err := collection.Discover(s.layout)
	if err != nil {
		s.writeJSON(w, http.StatusNotFound, AnalyzeResponse{Success: false, Error: err.Error()})
		return
	}
	for _, info := range infos {
		if info.Name == name {
			s.writeJSON(w, http.StatusOK, info)
			return
		}
	}
	s.writeJSON(w, http.StatusNotFound, AnalyzeResponse{
		Success: false,
		Error:   "collection not found: " + name,
	})
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	outputFile := s.layout.OutputFile
	if outputFile == "" {
		outputFile = types.DefaultLayoutConfig().OutputFile
	}
	path := filepath.Join(s.layout.BaseDir, name, outputFile)

	f, err := os.Open(path)
	if err != nil {
		s.writeJSON(w, http.StatusNotFound, AnalyzeResponse{
			Success: false,
			Error:   "no results for collection: " + name,
		})
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, f); err != nil {
		s.logger.Error("streaming results", "collection", name, "error", err)
	}
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, AnalyzeResponse{Success: false, Error: "invalid request body"})
		return
	}
	if req.CollectionPath == "" {
		s.writeJSON(w, http.StatusBadRequest, AnalyzeResponse{Success: false, Error: "collection_path is required"})
		return
	}

	dir := req.CollectionPath
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(s.layout.BaseDir, dir)
	}

	outPath, report, err := s.analyzer.AnalyzeCollection(r.Context(), dir)
	if err != nil {
		status := http.StatusInternalServerError
		var derr *collection.DescriptorError
		switch {
		case errors.Is(err, collection.ErrCollectionNotFound):
			status = http.StatusNotFound
		case errors.As(err, &derr):
			status = http.StatusUnprocessableEntity
		}
		s.writeJSON(w, status, AnalyzeResponse{Success: false, Error: err.Error()})
		return
	}

	s.writeJSON(w, http.StatusOK, AnalyzeResponse{
		Success:    true,
		Message:    "analysis complete",
		OutputPath: outPath,
		Report:     report,
	})
}

func (s *Server) handleAnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var names []string
	if err := json.NewDecoder(r.Body).Decode(&names); err != nil {
		s.writeJSON(w, http.StatusBadRequest, AnalyzeResponse{Success: false, Error: "invalid request body"})
		return
	}

	responses := make([]AnalyzeResponse, 0, len(names))
	for _, name := range names {
		dir := name
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(s.layout.BaseDir, dir)
		}
		outPath, report, err := s.analyzer.AnalyzeCollection(r.Context(), dir)
		if err != nil {
			responses = append(responses, AnalyzeResponse{Success: false, Error: err.Error()})
			continue
		}
		responses = append(responses, AnalyzeResponse{
			Success:    true,
			Message:    "analysis complete",
			OutputPath: outPath,
			Report:     report,
		})
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"results": responses})
}
