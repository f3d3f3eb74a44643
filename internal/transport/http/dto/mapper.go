package dto

import (
	"github.com/evento/discovery-service/internal/application/event"
	"github.com/evento/discovery-service/internal/domain"
)

func ToEventResp(e *domain.Event) EventResp {
	return EventResp{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		Category:      e.Category,
		Location:      GeoPoint{Type: "Point", Coordinates: [2]float64{e.Longitude, e.Latitude}},
		Address:       e.Address,
		City:          e.City,
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		Price:         e.Price,
		Images:        e.Images,
		OrganizerName: e.OrganizerName,
		Status:        string(e.Status),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToEventRespList(events []*domain.Event) []EventResp {
	out := make([]EventResp, 0, len(events))
	for _, e := range events {
		out = append(out, ToEventResp(e))
	}
	return out
}

func ToNearbyResp(it event.EventWithDistance) EventResp {
	resp := ToEventResp(it.Event)
	d := it.DistanceKm
	resp.DistanceKm = &d
	return resp
}

func ToNearbyRespList(items []event.EventWithDistance) []EventResp {
	out := make([]EventResp, 0, len(items))
	for _, it := range items {
		out = append(out, ToNearbyResp(it))
	}
	return out
}

// Input validates presence of the required creation fields and maps the
// request onto the domain input. Range and content checks live in the
// domain; this is only the "did the caller send it at all" layer.
func (r CreateEventReq) Input() (domain.EventInput, error) {
	meta := map[string]string{}
	if r.Title == "" {
		meta["title"] = "title is required"
	}
	if r.Description == "" {
		meta["description"] = "description is required"
	}
	if r.Category == "" {
		meta["category"] = "category is required"
	}
	if r.Address == "" {
		meta["address"] = "address is required"
	}
	if r.City == "" {
		meta["city"] = "city is required"
	}
	if r.Latitude == nil || r.Longitude == nil {
		meta["latitude"] = "latitude and longitude are required"
	}
	if r.StartDate == nil || r.EndDate == nil {
		meta["startDate"] = "start date and end date are required"
	}
	if len(meta) > 0 {
		return domain.EventInput{}, domain.ErrValidationMeta("missing required fields", meta)
	}

	images := r.Images
	if len(images) == 0 && r.ImageURL != "" {
		images = []string{r.ImageURL}
	}

	return domain.EventInput{
		Title:         r.Title,
		Description:   r.Description,
		Category:      r.Category,
		Address:       r.Address,
		City:          r.City,
		Longitude:     *r.Longitude,
		Latitude:      *r.Latitude,
		StartDate:     *r.StartDate,
		EndDate:       *r.EndDate,
		Price:         r.Price,
		Images:        images,
		OrganizerName: r.OrganizerName,
	}, nil
}

// Patch maps the partial edit onto the domain patch type.
func (r UpdateEventReq) Patch() domain.EventPatch {
	return domain.EventPatch{
		Title:         r.Title,
		Description:   r.Description,
		Category:      r.Category,
		Address:       r.Address,
		City:          r.City,
		Longitude:     r.Longitude,
		Latitude:      r.Latitude,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Price:         r.Price,
		Images:        r.Images,
		OrganizerName: r.OrganizerName,
	}
}
