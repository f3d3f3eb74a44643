package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultImage is substituted when a submitter supplies no image: every
// listing carries at least one image URL.
const DefaultImage = "https://images.unsplash.com/photo-1492684223066-81342ee5ff30?w=800"

// DefaultOrganizer is used when the submitter leaves the organizer blank.
const DefaultOrganizer = "Community Member"

const maxTitleLen = 200

// Event is a discoverable listing. Longitude/Latitude are stored separately
// but the wire format is a GeoJSON Point with coordinates [lng, lat] — lng
// first, never the other way around.
type Event struct {
	ID            string
	Title         string
	Description   string
	Category      string
	Address       string
	City          string
	Longitude     float64
	Latitude      float64
	StartDate     time.Time
	EndDate       time.Time
	Price         float64
	Images        []string
	OrganizerName string

	Status EventStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EventInput carries the raw fields of a creation request before defaults
// and validation are applied.
type EventInput struct {
	Title         string
	Description   string
	Category      string
	Address       string
	City          string
	Longitude     float64
	Latitude      float64
	StartDate     time.Time
	EndDate       time.Time
	Price         float64
	Images        []string
	OrganizerName string
}

// NewEvent validates in, applies defaults and returns a listing in the given
// initial status. Public submissions pass StatusPending; the admin creation
// path passes StatusApproved and skips moderation entirely.
func NewEvent(in EventInput, status EventStatus, now time.Time) (*Event, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	address := strings.TrimSpace(in.Address)
	city := strings.TrimSpace(in.City)
	organizer := strings.TrimSpace(in.OrganizerName)

	meta := map[string]string{}
	if title == "" {
		meta["title"] = "title is required"
	} else if len(title) > maxTitleLen {
		meta["title"] = "title cannot exceed 200 characters"
	}
	if description == "" {
		meta["description"] = "description is required"
	}
	category := NormalizeCategory(in.Category)
	if category == "" {
		meta["category"] = "category must be one of: " + strings.Join(Categories, ", ")
	}
	if address == "" {
		meta["address"] = "address is required"
	}
	if city == "" {
		meta["city"] = "city is required"
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		meta["startDate"] = "start date and end date are required"
	} else if !in.EndDate.After(in.StartDate) {
		meta["endDate"] = "end date must be after start date"
	}
	if in.Price < 0 {
		meta["price"] = "price cannot be negative"
	}
	if len(meta) > 0 {
		return nil, ErrValidationMeta("validation failed", meta)
	}

	if err := ValidatePoint(in.Longitude, in.Latitude); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, ErrValidation("invalid status")
	}

	images := make([]string, 0, len(in.Images))
	for _, img := range in.Images {
		if s := strings.TrimSpace(img); s != "" {
			images = append(images, s)
		}
	}
	if len(images) == 0 {
		images = []string{DefaultImage}
	}
	if organizer == "" {
		organizer = DefaultOrganizer
	}

	return &Event{
		ID:            uuid.NewString(),
		Title:         title,
		Description:   description,
		Category:      category,
		Address:       address,
		City:          city,
		Longitude:     in.Longitude,
		Latitude:      in.Latitude,
		StartDate:     in.StartDate.UTC(),
		EndDate:       in.EndDate.UTC(),
		Price:         in.Price,
		Images:        images,
		OrganizerName: organizer,
		Status:        status,
		CreatedAt:     now.UTC(),
		UpdatedAt:     now.UTC(),
	}, nil
}

// ValidatePoint checks GeoJSON coordinate ranges: lng in [-180,180],
// lat in [-90,90].
func ValidatePoint(lng, lat float64) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return ErrInvalidCoords("invalid coordinates: latitude must be between -90 and 90, longitude between -180 and 180")
	}
	return nil
}

// EventPatch is a partial admin edit. Nil fields are left untouched.
// Status is deliberately absent: moderation transitions are the only way to
// change it, and an edit never reverts a decision.
type EventPatch struct {
	Title         *string
	Description   *string
	Category      *string
	Address       *string
	City          *string
	Longitude     *float64
	Latitude      *float64
	StartDate     *time.Time
	EndDate       *time.Time
	Price         *float64
	Images        *[]string
	OrganizerName *string
}

// ApplyPatch merges p onto the event and re-validates invariants against the
// merged record — in particular endDate > startDate must hold after the merge,
// not merely for the fields present in the patch.
func (e *Event) ApplyPatch(p EventPatch, now time.Time) error {
	if p.Title != nil {
		v := strings.TrimSpace(*p.Title)
		if v == "" || len(v) > maxTitleLen {
			return ErrValidationMeta("validation failed", map[string]string{"title": "title must be non-empty and at most 200 characters"})
		}
		e.Title = v
	}
	if p.Description != nil {
		v := strings.TrimSpace(*p.Description)
		if v == "" {
			return ErrValidationMeta("validation failed", map[string]string{"description": "description must be non-empty"})
		}
		e.Description = v
	}
	if p.Category != nil {
		v := NormalizeCategory(*p.Category)
		if v == "" {
			return ErrValidationMeta("validation failed", map[string]string{"category": "category must be one of: " + strings.Join(Categories, ", ")})
		}
		e.Category = v
	}
	if p.Address != nil {
		v := strings.TrimSpace(*p.Address)
		if v == "" {
			return ErrValidationMeta("validation failed", map[string]string{"address": "address must be non-empty"})
		}
		e.Address = v
	}
	if p.City != nil {
		v := strings.TrimSpace(*p.City)
		if v == "" {
			return ErrValidationMeta("validation failed", map[string]string{"city": "city must be non-empty"})
		}
		e.City = v
	}
	if p.Longitude != nil || p.Latitude != nil {
		lng, lat := e.Longitude, e.Latitude
		if p.Longitude != nil {
			lng = *p.Longitude
		}
		if p.Latitude != nil {
			lat = *p.Latitude
		}
		if err := ValidatePoint(lng, lat); err != nil {
			return err
		}
		e.Longitude, e.Latitude = lng, lat
	}
	if p.StartDate != nil {
		e.StartDate = p.StartDate.UTC()
	}
	if p.EndDate != nil {
		e.EndDate = p.EndDate.UTC()
	}
	if !e.EndDate.After(e.StartDate) {
		return ErrValidationMeta("validation failed", map[string]string{"endDate": "end date must be after start date"})
	}
	if p.Price != nil {
		if *p.Price < 0 {
			return ErrValidationMeta("validation failed", map[string]string{"price": "price cannot be negative"})
		}
		e.Price = *p.Price
	}
	if p.Images != nil {
		images := make([]string, 0, len(*p.Images))
		for _, img := range *p.Images {
			if s := strings.TrimSpace(img); s != "" {
				images = append(images, s)
			}
		}
		if len(images) == 0 {
			images = []string{DefaultImage}
		}
		e.Images = images
	}
	if p.OrganizerName != nil {
		v := strings.TrimSpace(*p.OrganizerName)
		if v == "" {
			v = DefaultOrganizer
		}
		e.OrganizerName = v
	}
	e.UpdatedAt = now.UTC()
	return nil
}

// Approve moves a pending listing to approved. approved and rejected are
// terminal: re-review is not supported.
func (e *Event) Approve(now time.Time) error {
	if e.Status != StatusPending {
		return ErrInvalidState("only pending events can be approved")
	}
	e.Status = StatusApproved
	e.UpdatedAt = now.UTC()
	return nil
}

// Reject moves a pending listing to rejected.
func (e *Event) Reject(now time.Time) error {
	if e.Status != StatusPending {
		return ErrInvalidState("only pending events can be rejected")
	}
	e.Status = StatusRejected
	e.UpdatedAt = now.UTC()
	return nil
}
