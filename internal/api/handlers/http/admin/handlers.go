package admin

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Arora962/NagarikMitra/internal/domain"
	"github.com/Arora962/NagarikMitra/internal/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ReportWorkflow interface {
	AdvanceStatus(ctx context.Context, id string) (domain.Report, error)
	AssignDepartment(ctx context.Context, id, department string) (domain.Report, error)
	Remove(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
}

type StatsGetter interface {
	GetStats(ctx context.Context) (domain.ReportStats, error)
}

type Handler struct {
	logger   *slog.Logger
	Workflow ReportWorkflow
	Stats    StatsGetter
}

func NewHandler(logger *slog.Logger, workflow ReportWorkflow, stats StatsGetter) *Handler {
	return &Handler{
		logger:   logger,
		Workflow: workflow,
		Stats:    stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AdminReportAdvance(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	id := chi.URLParam(r, "id")
	l.Debug("AdminReportAdvance", slog.String("id", id), slog.String("remote", r.RemoteAddr))

	report, err := h.Workflow.AdvanceStatus(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report status advanced", slog.String("id", id), slog.String("status", string(report.Status)))
	h.writeJSON(w, http.StatusOK, report)
}

func (h *Handler) AdminReportAssign(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	id := chi.URLParam(r, "id")
	l.Debug("AdminReportAssign", slog.String("id", id), slog.String("remote", r.RemoteAddr))

	var req domain.AssignDepartmentRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	report, err := h.Workflow.AssignDepartment(r.Context(), id, req.Department)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report department assigned", slog.String("id", id), slog.String("department", report.Department))
	h.writeJSON(w, http.StatusOK, report)
}

func (h *Handler) AdminReportDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	id := chi.URLParam(r, "id")
	l.Debug("AdminReportDelete", slog.String("id", id), slog.String("remote", r.RemoteAddr))

	if err := h.Workflow.Remove(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report removed", slog.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminReportsClear(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminReportsClear", slog.String("remote", r.RemoteAddr))

	if err := h.Workflow.ClearAll(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Warn("all reports cleared")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminStats", slog.String("remote", r.RemoteAddr))

	stats, err := h.Stats.GetStats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("stats success", slog.Int("total", stats.Total), slog.Int("resolved", stats.Resolved))
	h.writeJSON(w, http.StatusOK, stats)
}
