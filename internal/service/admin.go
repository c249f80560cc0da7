package service

import (
	"context"

	"github.com/Arora962/NagarikMitra/internal/domain"
)

func (s *Service) AdvanceStatus(ctx context.Context, id string) (domain.Report, error) {
	return s.AdminReportService.AdvanceStatus(ctx, id)
}

func (s *Service) AssignDepartment(ctx context.Context, id, department string) (domain.Report, error) {
	return s.AdminReportService.AssignDepartment(ctx, id, department)
}

func (s *Service) Remove(ctx context.Context, id string) error {
	return s.AdminReportService.Remove(ctx, id)
}

func (s *Service) ClearAll(ctx context.Context) error {
	return s.AdminReportService.ClearAll(ctx)
}
