package service

import (
	"context"

	"github.com/Arora962/NagarikMitra/internal/domain"
)

// ReportSnapshotter hands out a copy of the committed report list.
type ReportSnapshotter interface {
	Snapshot() []domain.Report
}

type statsService struct {
	reports ReportSnapshotter
}

func NewStatsService(reports ReportSnapshotter) StatsService {
	return &statsService{reports: reports}
}

// GetStats counts over the current snapshot; nothing is cached between calls.
func (s *statsService) GetStats(ctx context.Context) (domain.ReportStats, error) {
	if err := ctx.Err(); err != nil {
		return domain.ReportStats{}, err
	}

	snapshot := s.reports.Snapshot()

	stats := domain.ReportStats{
		Total:        len(snapshot),
		ByStatus:     make(map[domain.ReportStatus]int, len(domain.Statuses())),
		ByDepartment: make(map[string]int),
	}
	for _, st := range domain.Statuses() {
		stats.ByStatus[st] = 0
	}
	for _, r := range snapshot {
		stats.ByStatus[r.Status]++
		stats.ByDepartment[r.Department]++
		if r.Status == domain.StatusResolved {
			stats.Resolved++
		}
	}
	return stats, nil
}
