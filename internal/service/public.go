package service

import (
	"context"

	"github.com/Arora962/NagarikMitra/internal/domain"
)

func (s *Service) Submit(ctx context.Context, req domain.SubmitReportRequest) (domain.Report, error) {
	return s.PublicReportService.Submit(ctx, req)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Report, error) {
	return s.PublicReportService.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filter domain.StatusFilter) ([]domain.Report, error) {
	return s.PublicReportService.List(ctx, filter)
}

func (s *Service) Nearby(ctx context.Context, req domain.NearbyRequest) ([]domain.NearbyReport, error) {
	return s.NearbyService.Nearby(ctx, req)
}

func (s *Service) GetStats(ctx context.Context) (domain.ReportStats, error) {
	return s.StatsService.GetStats(ctx)
}
