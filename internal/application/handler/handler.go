package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fixlist/internal/application"
	"fixlist/internal/platform/middleware"
	"fixlist/internal/transport/http/shared"
	dErrors "fixlist/pkg/domain-errors"
)

// Service defines the application operations the handler needs.
type Service interface {
	Submit(ctx context.Context, fields application.Fields) (string, error)
	List(ctx context.Context) ([]application.AuditApplication, error)
}

// Handler handles audit-application endpoints.
type Handler struct {
	logger *slog.Logger
	apps   Service
}

func New(apps Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, apps: apps}
}

// Register registers the public submit route. The operator listing is
// registered separately so the router can wrap it in the admin-key guard.
func (h *Handler) Register(r chi.Router) {
	r.Post("/audit/apply", h.handleSubmit)
}

// RegisterAdmin registers operator-only routes.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Get("/audit/applications", h.handleList)
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var fields application.Fields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	if _, err := h.apps.Submit(ctx, fields); err != nil {
		h.logger.ErrorContext(ctx, "application submit failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, submitResponse{
		Success: true,
		Message: "Application submitted successfully",
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	apps, err := h.apps.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "application listing failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}
	if apps == nil {
		apps = []application.AuditApplication{}
	}
	shared.WriteJSON(w, http.StatusOK, apps)
}
