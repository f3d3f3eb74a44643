package dto

import "time"

// GeoPoint is the persisted GeoJSON shape: coordinates are [lng, lat],
// longitude first, matching the GIS convention.
type GeoPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// EventResp is the stable API response model.
type EventResp struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Location      GeoPoint  `json:"location"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	Price         float64   `json:"price"`
	Images        []string  `json:"images"`
	OrganizerName string    `json:"organizerName"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// DistanceKm is set on proximity queries only: the recomputed
	// great-circle distance from the query origin.
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}

// SubmitResp is the acknowledgement body for public submissions.
type SubmitResp struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}
