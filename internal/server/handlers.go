package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/redmage123/course-creator-sub021/internal/pathfinding"
)

// PathService is the computation surface the handlers depend on.
type PathService interface {
	FindLearningPath(ctx context.Context, start, end uuid.UUID, opt pathfinding.Optimization, maxDepth int) (*pathfinding.PathSummary, error)
	ShortestPath(ctx context.Context, start, end uuid.UUID, maxDepth int) ([]uuid.UUID, error)
	AlternativePaths(ctx context.Context, start, end uuid.UUID, maxDepth, maxPaths int) ([][]uuid.UUID, error)
}

// APIHandlers exposes HTTP handlers for the learning-path API.
type APIHandlers struct {
	logger   *slog.Logger
	service  PathService
	validate *validator.Validate
}

// NewAPIHandlers constructs an APIHandlers instance.
func NewAPIHandlers(logger *slog.Logger, svc PathService) *APIHandlers {
	return &APIHandlers{
		logger:   logger,
		service:  svc,
		validate: validator.New(),
	}
}

// --- Request & Response DTOs ---

// learningPathRequest deliberately does not constrain the optimization value:
// unknown strategies fall back to shortest inside the engine.
type learningPathRequest struct {
	StartID      string `json:"startId" validate:"required,uuid"`
	EndID        string `json:"endId" validate:"required,uuid"`
	Optimization string `json:"optimization,omitempty"`
	MaxDepth     int    `json:"maxDepth,omitempty" validate:"omitempty,min=1,max=100"`
}

type alternativesRequest struct {
	StartID  string `json:"startId" validate:"required,uuid"`
	EndID    string `json:"endId" validate:"required,uuid"`
	MaxDepth int    `json:"maxDepth,omitempty" validate:"omitempty,min=1,max=50"`
	MaxPaths int    `json:"maxPaths,omitempty" validate:"omitempty,min=1,max=20"`
}

type shortestPathResponse struct {
	Path []string `json:"path"`
	Hops int      `json:"hops"`
}

type alternativesResponse struct {
	Paths [][]string `json:"paths"`
	Count int        `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// --- Handlers ---

func (h *APIHandlers) findLearningPath(w http.ResponseWriter, r *http.Request) {
	var payload learningPathRequest
	start, end, ok := h.decodePathRequest(w, r, &payload, &payload.StartID, &payload.EndID)
	if !ok {
		return
	}

	summary, err := h.service.FindLearningPath(r.Context(), start, end, pathfinding.Optimization(payload.Optimization), payload.MaxDepth)
	if err != nil {
		h.logger.Error("learning path computation failed", "error", err, "startId", start, "endId", end)
		writeError(w, http.StatusInternalServerError, "failed to compute learning path")
		return
	}
	if summary == nil {
		writeError(w, http.StatusNotFound, "no path found")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

func (h *APIHandlers) shortestPath(w http.ResponseWriter, r *http.Request) {
	var payload learningPathRequest
	start, end, ok := h.decodePathRequest(w, r, &payload, &payload.StartID, &payload.EndID)
	if !ok {
		return
	}

	path, err := h.service.ShortestPath(r.Context(), start, end, payload.MaxDepth)
	if err != nil {
		h.logger.Error("shortest path computation failed", "error", err, "startId", start, "endId", end)
		writeError(w, http.StatusInternalServerError, "failed to compute shortest path")
		return
	}
	if path == nil {
		writeError(w, http.StatusNotFound, "no path found")
		return
	}

	respondJSON(w, http.StatusOK, shortestPathResponse{
		Path: stringifyPath(path),
		Hops: len(path) - 1,
	})
}

func (h *APIHandlers) alternativePaths(w http.ResponseWriter, r *http.Request) {
	var payload alternativesRequest
	start, end, ok := h.decodePathRequest(w, r, &payload, &payload.StartID, &payload.EndID)
	if !ok {
		return
	}

	paths, err := h.service.AlternativePaths(r.Context(), start, end, payload.MaxDepth, payload.MaxPaths)
	if err != nil {
		h.logger.Error("path enumeration failed", "error", err, "startId", start, "endId", end)
		writeError(w, http.StatusInternalServerError, "failed to enumerate paths")
		return
	}

	resp := alternativesResponse{
		Paths: make([][]string, 0, len(paths)),
		Count: len(paths),
	}
	for _, path := range paths {
		resp.Paths = append(resp.Paths, stringifyPath(path))
	}
	respondJSON(w, http.StatusOK, resp)
}

// decodePathRequest decodes, validates, and parses the start/end identifiers
// shared by all path endpoints. It writes the error response itself and
// returns ok=false on failure.
func (h *APIHandlers) decodePathRequest(w http.ResponseWriter, r *http.Request, dst any, startField, endField *string) (uuid.UUID, uuid.UUID, bool) {
	if err := decodeJSON(r, dst); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return uuid.Nil, uuid.Nil, false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return uuid.Nil, uuid.Nil, false
	}

	start, err := uuid.Parse(*startField)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid startId")
		return uuid.Nil, uuid.Nil, false
	}
	end, err := uuid.Parse(*endField)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid endId")
		return uuid.Nil, uuid.Nil, false
	}
	return start, end, true
}

// --- Helpers ---

func stringifyPath(path []uuid.UUID) []string {
	out := make([]string, len(path))
	for i, id := range path {
		out[i] = id.String()
	}
	return out
}

func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}
