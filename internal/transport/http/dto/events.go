package dto

import "time"

// CreateEventReq covers both the public submission and the admin creation
// body. Coordinates are flat latitude/longitude fields on the way in; the
// stored and returned shape is a GeoJSON Point. imageUrl is the single-image
// convenience field submitters use; images wins when both are present.
type CreateEventReq struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Address       string     `json:"address"`
	City          string     `json:"city"`
	Latitude      *float64   `json:"latitude"`
	Longitude     *float64   `json:"longitude"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	Price         float64    `json:"price"`
	ImageURL      string     `json:"imageUrl"`
	Images        []string   `json:"images"`
	OrganizerName string     `json:"organizerName"`
}

// UpdateEventReq is a partial admin edit; absent fields stay untouched.
// Status is not accepted here: moderation endpoints are the only way to
// change it.
type UpdateEventReq struct {
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Category      *string    `json:"category,omitempty"`
	Address       *string    `json:"address,omitempty"`
	City          *string    `json:"city,omitempty"`
	Latitude      *float64   `json:"latitude,omitempty"`
	Longitude     *float64   `json:"longitude,omitempty"`
	StartDate     *time.Time `json:"startDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	Price         *float64   `json:"price,omitempty"`
	Images        *[]string  `json:"images,omitempty"`
	OrganizerName *string    `json:"organizerName,omitempty"`
}
