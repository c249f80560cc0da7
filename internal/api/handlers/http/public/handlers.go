package public

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Arora962/NagarikMitra/internal/domain"
	"github.com/Arora962/NagarikMitra/internal/middleware"
	"github.com/Arora962/NagarikMitra/pkg/e"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Reports interface {
	Submit(ctx context.Context, req domain.SubmitReportRequest) (domain.Report, error)
	Get(ctx context.Context, id string) (domain.Report, error)
	List(ctx context.Context, filter domain.StatusFilter) ([]domain.Report, error)
}

type NearbyFinder interface {
	Nearby(ctx context.Context, req domain.NearbyRequest) ([]domain.NearbyReport, error)
}

type Handler struct {
	logger  *slog.Logger
	Reports Reports
	Nearby  NearbyFinder
}

func NewHandler(logger *slog.Logger, reports Reports, nearby NearbyFinder) *Handler {
	return &Handler{
		logger:  logger,
		Reports: reports,
		Nearby:  nearby,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) PublicReportSubmit(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("PublicReportSubmit", slog.String("remote", r.RemoteAddr))

	var req domain.SubmitReportRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	report, err := h.Reports.Submit(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report submitted", slog.String("id", report.ID))
	h.writeJSON(w, http.StatusCreated, report)
}

// PublicReportList returns the filtered reports together with counts over
// the whole list, all taken from one snapshot.
func (h *Handler) PublicReportList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("PublicReportList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	filter, err := domain.ParseStatusFilter(r.URL.Query().Get("status"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	all, err := h.Reports.List(r.Context(), domain.FilterAll)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := domain.ListReportsResponse{
		Reports: make([]domain.Report, 0, len(all)),
		Filter:  filter.String(),
		Total:   len(all),
	}
	for _, rep := range all {
		if rep.Status == domain.StatusResolved {
			resp.Resolved++
		}
		if filter.Match(rep) {
			resp.Reports = append(resp.Reports, rep)
		}
	}

	l.Info("reports listed", slog.String("filter", resp.Filter), slog.Int("count", len(resp.Reports)))
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) PublicReportGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.log(r).Debug("PublicReportGet", slog.String("id", id))

	report, err := h.Reports.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, report)
}

func (h *Handler) PublicReportsNearby(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("PublicReportsNearby", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	q := r.URL.Query()
	var (
		req     domain.NearbyRequest
		invalid []string
	)
	if v, ok := parseFloat(q.Get("lat")); ok {
		req.Lat = v
	} else {
		invalid = append(invalid, "lat")
	}
	if v, ok := parseFloat(q.Get("lng")); ok {
		req.Lng = v
	} else {
		invalid = append(invalid, "lng")
	}
	if s := q.Get("radius_km"); s != "" {
		if v, ok := parseFloat(s); ok {
			req.RadiusKM = v
		} else {
			invalid = append(invalid, "radius_km")
		}
	}
	if len(invalid) > 0 {
		h.handleError(w, r, e.NewValidationError(invalid...))
		return
	}

	nearby, err := h.Nearby.Nearby(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("nearby reports", slog.Int("count", len(nearby)))
	h.writeJSON(w, http.StatusOK, domain.NearbyResponse{Reports: nearby})
}

func parseFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
