package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Arora962/NagarikMitra/pkg/e"
)

type ReportStatus string

const (
	StatusReported     ReportStatus = "Reported"
	StatusAcknowledged ReportStatus = "Acknowledged"
	StatusInProgress   ReportStatus = "In Progress"
	StatusResolved     ReportStatus = "Resolved"
)

// statusOrder is the whole lifecycle; index i advances to i+1.
var statusOrder = []ReportStatus{
	StatusReported,
	StatusAcknowledged,
	StatusInProgress,
	StatusResolved,
}

func Statuses() []ReportStatus {
	out := make([]ReportStatus, len(statusOrder))
	copy(out, statusOrder)
	return out
}

func ParseStatus(s string) (ReportStatus, error) {
	for _, st := range statusOrder {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q: %w", s, e.ErrValidation)
}

func (s ReportStatus) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// Next returns the stage after s. Resolved is terminal and maps to itself.
func (s ReportStatus) Next() ReportStatus {
	for i, st := range statusOrder {
		if st == s && i+1 < len(statusOrder) {
			return statusOrder[i+1]
		}
	}
	return s
}

func (s ReportStatus) Terminal() bool {
	return s == StatusResolved
}

func (s *ReportStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	st, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

const filterAll = "all"

// StatusFilter selects either every report or the reports in one status.
type StatusFilter struct {
	status ReportStatus
}

var FilterAll = StatusFilter{}

func FilterByStatus(s ReportStatus) StatusFilter {
	return StatusFilter{status: s}
}

func ParseStatusFilter(s string) (StatusFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, filterAll) {
		return FilterAll, nil
	}
	st, err := ParseStatus(s)
	if err != nil {
		return StatusFilter{}, e.NewValidationError("status")
	}
	return FilterByStatus(st), nil
}

func (f StatusFilter) Match(r Report) bool {
	return f.status == "" || r.Status == f.status
}

func (f StatusFilter) String() string {
	if f.status == "" {
		return filterAll
	}
	return string(f.status)
}
