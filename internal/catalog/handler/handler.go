package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"fixlist/internal/catalog"
	"fixlist/internal/platform/middleware"
	"fixlist/internal/transport/http/shared"
	dErrors "fixlist/pkg/domain-errors"
)

// Handler serves the catalog: filtered listings, progress edits, and the
// derived statistics. It keeps the active filter query as session state so
// listing parameters behave like the original single-visitor view (a request
// that omits a parameter keeps the previously applied value).
type Handler struct {
	logger  *slog.Logger
	tracker *catalog.Tracker

	mu    sync.Mutex
	query catalog.Query
}

// New creates a catalog Handler with an all-matching query.
func New(tracker *catalog.Tracker, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		tracker: tracker,
		query:   catalog.NewQuery(),
	}
}

// Register registers the catalog routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/fixes", h.handleList)
	r.Get("/fixes/stats", h.handleStats)
	r.Post("/fixes/{id}/progress", h.handleSetProgress)
	r.Post("/fixes/filters/reset", h.handleResetFilters)
}

type listResponse struct {
	Fixes []catalog.Fix `json:"fixes"`
	Total int           `json:"total"`
	Query queryView     `json:"query"`
}

type queryView struct {
	SearchTerm string `json:"searchTerm"`
	Difficulty string `json:"difficulty"`
	Channel    string `json:"channel"`
	Progress   string `json:"progress"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	h.mu.Lock()
	if params.Has("search") {
		h.query.SearchTerm = params.Get("search")
	}
	if params.Has("difficulty") {
		h.query.Difficulty = params.Get("difficulty")
	}
	if params.Has("channel") {
		h.query.Channel = params.Get("channel")
	}
	if params.Has("progress") {
		h.query.Progress = params.Get("progress")
	}
	q := h.query
	h.mu.Unlock()

	q.ProgressMap = h.tracker.Snapshot()
	fixes := catalog.Filter(catalog.All(), q)

	shared.WriteJSON(w, http.StatusOK, listResponse{
		Fixes: fixes,
		Total: len(fixes),
		Query: queryView{
			SearchTerm: q.SearchTerm,
			Difficulty: q.Difficulty,
			Channel:    q.Channel,
			Progress:   q.Progress,
		},
	})
}

func (h *Handler) handleStats(w http.ResponseWriter, _ *http.Request) {
	shared.WriteJSON(w, http.StatusOK, h.tracker.Stats())
}

type setProgressRequest struct {
	Progress catalog.Progress `json:"progress"`
}

type setProgressResponse struct {
	ID       int              `json:"id"`
	Progress catalog.Progress `json:"progress"`
	Stats    catalog.Stats    `json:"stats"`
}

func (h *Handler) handleSetProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "fix id must be an integer"))
		return
	}

	var req setProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	if err := h.tracker.SetProgress(ctx, id, req.Progress); err != nil {
		if !dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			h.logger.ErrorContext(ctx, "progress update failed",
				"request_id", middleware.GetRequestID(ctx),
				"fix_id", id,
				"error", err.Error(),
			)
		}
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, setProgressResponse{
		ID:       id,
		Progress: req.Progress,
		Stats:    h.tracker.Stats(),
	})
}

func (h *Handler) handleResetFilters(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	h.query.Reset()
	q := h.query
	h.mu.Unlock()

	shared.WriteJSON(w, http.StatusOK, queryView{
		SearchTerm: q.SearchTerm,
		Difficulty: q.Difficulty,
		Channel:    q.Channel,
		Progress:   q.Progress,
	})
}
