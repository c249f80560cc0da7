package service_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/Arora962/NagarikMitra/internal/domain"
	"github.com/Arora962/NagarikMitra/internal/service"
	"github.com/Arora962/NagarikMitra/pkg/e"
)

func at(id string, lat, lng float64) domain.Report {
	r := report(id, domain.StatusReported)
	r.Location = &domain.Location{Latitude: lat, Longitude: lng}
	return r
}

func TestNearbyService_Nearby(t *testing.T) {
	t.Parallel()

	noLoc := report("noloc", domain.StatusReported)
	noLoc.Location = nil

	reports := staticReports{
		at("close", 28.6140, 77.2091), // ~15 m
		noLoc,
		at("far", 19.0760, 72.8777),  // Mumbai
		at("edge", 28.6220, 77.2090), // ~900 m north
	}
	svc := service.NewNearbyService(reports, newTestLogger(), 1.0)

	cases := []struct {
		name    string
		req     domain.NearbyRequest
		wantIDs []string
	}{
		{"default_radius", domain.NearbyRequest{Lat: 28.6139, Lng: 77.2090}, []string{"close", "edge"}},
		{"small_radius", domain.NearbyRequest{Lat: 28.6139, Lng: 77.2090, RadiusKM: 0.5}, []string{"close"}},
		{"wide_radius", domain.NearbyRequest{Lat: 28.6139, Lng: 77.2090, RadiusKM: 100}, []string{"close", "edge"}},
		{"nothing_close", domain.NearbyRequest{Lat: 0, Lng: 0}, []string{}},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := svc.Nearby(context.Background(), c.req)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.Report.ID)
				if r.DistanceKM < 0 {
					t.Fatalf("negative distance for %s", r.Report.ID)
				}
			}
			if !reflect.DeepEqual(ids, c.wantIDs) {
				t.Fatalf("expected %v got %v", c.wantIDs, ids)
			}
		})
	}
}

func TestNearbyService_InvalidInput(t *testing.T) {
	t.Parallel()

	svc := service.NewNearbyService(staticReports{}, newTestLogger(), 0)

	cases := []struct {
		name string
		req  domain.NearbyRequest
		want error
	}{
		{"lat_out_of_range", domain.NearbyRequest{Lat: 91, Lng: 0}, e.ErrInvalidCoordinates},
		{"lng_out_of_range", domain.NearbyRequest{Lat: 0, Lng: -181}, e.ErrInvalidCoordinates},
		{"radius_too_large", domain.NearbyRequest{Lat: 0, Lng: 0, RadiusKM: 500}, e.ErrValidation},
		{"radius_negative", domain.NearbyRequest{Lat: 0, Lng: 0, RadiusKM: -1}, e.ErrValidation},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.Nearby(context.Background(), c.req)
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v got %v", c.want, err)
			}
			if !errors.Is(err, e.ErrValidation) {
				t.Fatalf("every input error must match ErrValidation, got %v", err)
			}
		})
	}
}
