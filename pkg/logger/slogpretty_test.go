package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestPrettyHandler(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewPrettyHandler(&buf, PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: slog.LevelInfo},
		NoColor:  true,
	}))

	l.Debug("hidden")
	l.With(slog.String("request_id", "abc")).Error("save failed", slog.Any("error", errors.New("disk full")))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record must be filtered, got %q", out)
	}
	for _, want := range []string{"ERROR:", "save failed", `"request_id": "abc"`, `"error": "disk full"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Fatalf("NoColor output contains escape codes: %q", out)
	}
}
