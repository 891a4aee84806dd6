package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"chronotense/internal/catalog"
	"chronotense/internal/content"
	"chronotense/pkg/logging/logging"
)

// ContentService is what the handlers need from content.Service.
type ContentService interface {
	GetLevelContent(ctx context.Context, level catalog.Level, opts content.Options) content.LevelContent
	GetSingleExample(ctx context.Context, level catalog.Level, tenseTitle, currentExample string, opts content.Options) string
}

// ContentHandler serves the catalog and generated content.
type ContentHandler struct {
	Service ContentService
}

func NewContentHandler(svc ContentService) *ContentHandler {
	return &ContentHandler{Service: svc}
}

type levelsResponse struct {
	Levels []catalog.Level `json:"levels"`
}

type tensesResponse struct {
	Tenses []catalog.TenseDefinition `json:"tenses"`
}

type exampleRequest struct {
	Level               string `json:"level"`
	TenseTitle          string `json:"tenseTitle"`
	CurrentExample      string `json:"currentExample"`
	IncludeModals       bool   `json:"includeModals"`
	IncludeConditionals bool   `json:"includeConditionals"`
}

type exampleResponse struct {
	Example string `json:"example"`
}

// Levels handles GET /v1/levels.
func (h *ContentHandler) Levels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, levelsResponse{Levels: catalog.Levels()})
}

// Tenses handles GET /v1/tenses.
func (h *ContentHandler) Tenses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, tensesResponse{Tenses: catalog.Tenses()})
}

// LevelContent handles GET /v1/levels/{level}/content.
func (h *ContentHandler) LevelContent(w http.ResponseWriter, r *http.Request) {
	level, opts, ok := parseLevelQuery(w, r)
	if !ok {
		return
	}

	lc := h.Service.GetLevelContent(r.Context(), level, opts)

	logging.L(r.Context()).Info("level_content_served",
		zap.String("level", level.String()),
		zap.String("source", string(lc.Source)),
	)

	writeJSON(w, http.StatusOK, lc)
}

// Share handles GET /v1/levels/{level}/share.
func (h *ContentHandler) Share(w http.ResponseWriter, r *http.Request) {
	level, opts, ok := parseLevelQuery(w, r)
	if !ok {
		return
	}

	share, err := content.BuildShare(h.Service.GetLevelContent(r.Context(), level, opts))
	if err != nil {
		logging.L(r.Context()).Error("share_render_error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_server_error")
		return
	}

	writeJSON(w, http.StatusOK, share)
}

// Example handles POST /v1/examples.
func (h *ContentHandler) Example(w http.ResponseWriter, r *http.Request) {
	logger := logging.L(r.Context())

	var req exampleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid request", zap.Error(err))
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	level, err := catalog.ParseLevel(req.Level)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.TenseTitle) == "" {
		writeError(w, http.StatusBadRequest, "tenseTitle is required")
		return
	}

	example := h.Service.GetSingleExample(r.Context(), level, req.TenseTitle, req.CurrentExample, content.Options{
		IncludeModals:       req.IncludeModals,
		IncludeConditionals: req.IncludeConditionals,
	})

	writeJSON(w, http.StatusOK, exampleResponse{Example: example})
}

// parseLevelQuery reads {level} plus the modals/conditionals query flags,
// writing a 400 and returning ok=false on bad input.
func parseLevelQuery(w http.ResponseWriter, r *http.Request) (catalog.Level, content.Options, bool) {
	level, err := catalog.ParseLevel(chi.URLParam(r, "level"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return "", content.Options{}, false
	}

	modals, err := queryBool(r, "modals")
	if err != nil {
		writeError(w, http.StatusBadRequest, "modals must be a boolean")
		return "", content.Options{}, false
	}
	conditionals, err := queryBool(r, "conditionals")
	if err != nil {
		writeError(w, http.StatusBadRequest, "conditionals must be a boolean")
		return "", content.Options{}, false
	}

	return level, content.Options{IncludeModals: modals, IncludeConditionals: conditionals}, true
}

func queryBool(r *http.Request, name string) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}

// writeJSON is a small helper to send JSON responses consistently.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
