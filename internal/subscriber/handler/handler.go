package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fixlist/internal/platform/middleware"
	"fixlist/internal/subscriber"
	"fixlist/internal/transport/http/shared"
	dErrors "fixlist/pkg/domain-errors"
)

// Service defines the subscriber operations the handler needs.
type Service interface {
	Subscribe(ctx context.Context, email string) (subscriber.SubscribeResult, error)
	CheckAccess(ctx context.Context, email string) (subscriber.AccessStatus, error)
	Watch(ctx context.Context, email string) (<-chan subscriber.AccessStatus, error)
}

// SheetAccess is the best-effort bottom-of-page path: subscribe if possible,
// hand out the sheet link regardless.
type SheetAccess interface {
	Grant(ctx context.Context, email string) (sheetURL string, err error)
}

// Handler handles access-gate endpoints.
type Handler struct {
	logger *slog.Logger
	subs   Service
	sheet  SheetAccess
}

// New creates a new access Handler.
func New(subs Service, sheet SheetAccess, logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger,
		subs:   subs,
		sheet:  sheet,
	}
}

// Register registers the request/response access routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/access/subscribe", h.handleSubscribe)
	r.Get("/access/check", h.handleCheck)
	r.Post("/access/sheet", h.handleSheet)
}

// RegisterStream registers the long-lived watch stream. It is mounted
// outside the request timeout so the stream can outlive it.
func (h *Handler) RegisterStream(r chi.Router) {
	r.Get("/access/watch", h.handleWatch)
}

type subscribeRequest struct {
	Email string `json:"email"`
}

type subscribeResponse struct {
	Success   bool   `json:"success"`
	IsNew     bool   `json:"isNew"`
	HasAccess bool   `json:"hasAccess"`
	Message   string `json:"message,omitempty"`
}

func (h *Handler) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	res, err := h.subs.Subscribe(ctx, req.Email)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeValidation) {
			h.logger.ErrorContext(ctx, "subscribe failed",
				"request_id", middleware.GetRequestID(ctx),
				"error", err.Error(),
			)
		}
		shared.WriteError(w, err)
		return
	}

	resp := subscribeResponse{Success: true, IsNew: res.IsNew, HasAccess: res.HasAccess}
	if res.IsNew {
		resp.Message = "Welcome! You now have access to all 101 fixes."
	}
	shared.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status, err := h.subs.CheckAccess(ctx, r.URL.Query().Get("email"))
	if err != nil {
		h.logger.ErrorContext(ctx, "access check failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, status)
}

// handleWatch streams access-status updates for one email as server-sent
// events, the transport analog of the live query the gate subscribes to.
func (h *Handler) handleWatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	flusher, ok := w.(http.Flusher)
	if !ok {
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "streaming unsupported"))
		return
	}

	updates, err := h.subs.Watch(ctx, r.URL.Query().Get("email"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for status := range updates {
		payload, err := json.Marshal(status)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
	}
}

type sheetResponse struct {
	Success  bool   `json:"success"`
	SheetURL string `json:"sheetUrl"`
	Message  string `json:"message"`
}

func (h *Handler) handleSheet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.Email == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeValidation, "email is required"))
		return
	}

	sheetURL, err := h.sheet.Grant(ctx, req.Email)
	if err != nil {
		// Grant is best-effort by contract; an error here is a bug.
		h.logger.ErrorContext(ctx, "sheet grant failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, sheetResponse{
		Success:  true,
		SheetURL: sheetURL,
		Message:  "Opening your 101 Fixes Sheet...",
	})
}
