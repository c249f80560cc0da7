package domain_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/Arora962/NagarikMitra/internal/domain"
	"github.com/Arora962/NagarikMitra/pkg/e"
)

func TestReportStatus_Next_Sequence(t *testing.T) {
	t.Parallel()

	want := []domain.ReportStatus{
		domain.StatusAcknowledged,
		domain.StatusInProgress,
		domain.StatusResolved,
		domain.StatusResolved,
		domain.StatusResolved,
	}

	st := domain.StatusReported
	for i, w := range want {
		st = st.Next()
		if st != w {
			t.Fatalf("step %d: expected %q got %q", i+1, w, st)
		}
	}
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	for _, st := range domain.Statuses() {
		got, err := domain.ParseStatus(string(st))
		if err != nil || got != st {
			t.Fatalf("ParseStatus(%q) = %q, %v", st, got, err)
		}
	}

	for _, bad := range []string{"", "reported", "Closed", "InProgress"} {
		if _, err := domain.ParseStatus(bad); !errors.Is(err, e.ErrValidation) {
			t.Fatalf("ParseStatus(%q): expected ErrValidation, got %v", bad, err)
		}
	}
}

func TestReportStatus_UnmarshalJSON_RejectsUnknown(t *testing.T) {
	t.Parallel()

	var r domain.Report
	if err := json.Unmarshal([]byte(`{"id":"x","status":"Archived"}`), &r); err == nil {
		t.Fatalf("expected error for unknown status")
	}
	if err := json.Unmarshal([]byte(`{"id":"x","status":"In Progress"}`), &r); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.Status != domain.StatusInProgress {
		t.Fatalf("expected %q got %q", domain.StatusInProgress, r.Status)
	}
}

func TestParseStatusFilter(t *testing.T) {
	t.Parallel()

	acked := domain.Report{Status: domain.StatusAcknowledged}
	resolved := domain.Report{Status: domain.StatusResolved}

	all, err := domain.ParseStatusFilter("")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !all.Match(acked) || !all.Match(resolved) || all.String() != "all" {
		t.Fatalf("empty selector must match everything")
	}

	f, err := domain.ParseStatusFilter("Resolved")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if f.Match(acked) || !f.Match(resolved) {
		t.Fatalf("Resolved filter matched wrong reports")
	}

	if _, err := domain.ParseStatusFilter("Lost"); !errors.Is(err, e.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestReport_Clone_DoesNotShareLocation(t *testing.T) {
	t.Parallel()

	orig := domain.Report{ID: "a", Location: &domain.Location{Latitude: 1, Longitude: 2}}
	cp := orig.Clone()
	cp.Location.Latitude = 50

	if orig.Location.Latitude != 1 {
		t.Fatalf("clone mutated original location")
	}
}
