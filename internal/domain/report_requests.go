package domain

type SubmitReportRequest struct {
	PhotoReference string    `json:"photoReference" validate:"nonblank"`
	Location       *Location `json:"location" validate:"required"`
	Description    string    `json:"description" validate:"nonblank"`
}

type AssignDepartmentRequest struct {
	Department string `json:"department" validate:"nonblank"`
}

type ListReportsResponse struct {
	Reports  []Report `json:"reports"`
	Filter   string   `json:"filter"`
	Total    int      `json:"total"`
	Resolved int      `json:"resolved"`
}

type NearbyRequest struct {
	Lat      float64 `query:"lat" validate:"lat"`
	Lng      float64 `query:"lng" validate:"lng"`
	RadiusKM float64 `query:"radius_km" validate:"omitempty,radius_km"`
}

type NearbyResponse struct {
	Reports []NearbyReport `json:"reports"`
}
