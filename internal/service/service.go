package service

import (
	"context"

	"github.com/Arora962/NagarikMitra/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type ReportRepository interface {
	Load(ctx context.Context) ([]domain.Report, error)
	Save(ctx context.Context, reports []domain.Report) error
}

// Submission and read side used by citizens.
type PublicReportService interface {
	Submit(ctx context.Context, req domain.SubmitReportRequest) (domain.Report, error)
	Get(ctx context.Context, id string) (domain.Report, error)
	List(ctx context.Context, filter domain.StatusFilter) ([]domain.Report, error)
}

// Triage workflow used by administrators.
type AdminReportService interface {
	AdvanceStatus(ctx context.Context, id string) (domain.Report, error)
	AssignDepartment(ctx context.Context, id, department string) (domain.Report, error)
	Remove(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
}

type NearbyService interface {
	Nearby(ctx context.Context, req domain.NearbyRequest) ([]domain.NearbyReport, error)
}

type StatsService interface {
	GetStats(ctx context.Context) (domain.ReportStats, error)
}

type Service struct {
	AdminReportService  AdminReportService
	PublicReportService PublicReportService
	NearbyService       NearbyService
	StatsService        StatsService
}

func NewService(
	adminReportService AdminReportService,
	publicReportService PublicReportService,
	nearbyService NearbyService,
	statsService StatsService,
) *Service {
	return &Service{
		AdminReportService:  adminReportService,
		PublicReportService: publicReportService,
		NearbyService:       nearbyService,
		StatsService:        statsService,
	}
}
