package system

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

type Handler struct {
	logger  *slog.Logger
	started time.Time
	driver  string
}

func NewHandler(logger *slog.Logger, driver string) *Handler {
	return &Handler{logger: logger, started: time.Now(), driver: driver}
}

func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":         "ok",
		"storage_driver": h.driver,
		"uptime":         time.Since(h.started).Truncate(time.Second).String(),
	}); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
