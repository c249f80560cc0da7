package system_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Arora962/NagarikMitra/internal/api/handlers/http/system"
)

func TestSystemHealth(t *testing.T) {
	t.Parallel()

	h := system.NewHandler(slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil)), "badger")

	rr := httptest.NewRecorder()
	h.SystemHealth(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	var got map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got["status"] != "ok" || got["storage_driver"] != "badger" {
		t.Fatalf("unexpected body %v", got)
	}
}
