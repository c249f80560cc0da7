package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/Arora962/NagarikMitra/internal/domain"
	"github.com/Arora962/NagarikMitra/pkg/e"
	"github.com/Arora962/NagarikMitra/pkg/validator"
)

type nearbyService struct {
	reports         ReportSnapshotter
	logger          *slog.Logger
	defaultRadiusKm float64
}

func NewNearbyService(reports ReportSnapshotter, logger *slog.Logger, defaultRadiusKm float64) NearbyService {
	if defaultRadiusKm <= 0 {
		defaultRadiusKm = 1.0
	}
	return &nearbyService{
		reports:         reports,
		logger:          logger,
		defaultRadiusKm: defaultRadiusKm,
	}
}

// Nearby lists located reports within the radius of the point, in store order.
func (s *nearbyService) Nearby(ctx context.Context, req domain.NearbyRequest) ([]domain.NearbyReport, error) {
	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		s.logger.Warn("invalid coordinates",
			slog.Float64("lat", req.Lat),
			slog.Float64("lng", req.Lng),
		)
		return nil, e.ErrInvalidCoordinates
	}
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("service.Nearby: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	radius := req.RadiusKM
	if radius <= 0 {
		radius = s.defaultRadiusKm
	}

	snapshot := s.reports.Snapshot()
	nearby := filterNearby(snapshot, req.Lat, req.Lng, radius)
	s.logger.Debug("haversine filter done",
		slog.Int("total", len(snapshot)),
		slog.Int("nearby", len(nearby)),
		slog.Float64("radius_km", radius),
	)
	return nearby, nil
}

func filterNearby(reports []domain.Report, lat, lng, radiusKm float64) []domain.NearbyReport {
	nearby := make([]domain.NearbyReport, 0)
	for _, r := range reports {
		if r.Location == nil {
			continue
		}
		dist := haversine(lat, lng, r.Location.Latitude, r.Location.Longitude)
		if dist <= radiusKm {
			nearby = append(nearby, domain.NearbyReport{Report: r, DistanceKM: dist})
		}
	}
	return nearby
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371.0 // km

	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return R * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
