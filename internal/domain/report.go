package domain

import (
	"time"
)

const DepartmentUnassigned = "unassigned"

type Location struct {
	Latitude  float64 `json:"latitude" validate:"lat"`   // -90..90
	Longitude float64 `json:"longitude" validate:"lng"` // -180..180
}

type Report struct {
	ID             string       `json:"id"`
	PhotoReference string       `json:"photoReference"`
	Location       *Location    `json:"location"`
	Description    string       `json:"description"`
	CreatedAt      time.Time    `json:"createdAt"`
	Status         ReportStatus `json:"status"`
	Department     string       `json:"department"`
}

// Clone returns a copy that shares no memory with r.
func (r Report) Clone() Report {
	if r.Location != nil {
		loc := *r.Location
		r.Location = &loc
	}
	return r
}

type ReportStats struct {
	Total        int                  `json:"total"`
	Resolved     int                  `json:"resolved"`
	ByStatus     map[ReportStatus]int `json:"by_status"`
	ByDepartment map[string]int       `json:"by_department"`
}

type NearbyReport struct {
	Report     Report  `json:"report"`
	DistanceKM float64 `json:"distance_km"`
}
