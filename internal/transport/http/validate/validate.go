package validate

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/evento/discovery-service/internal/domain"
)

func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func IsUUID(s string) bool {
	if s == "" {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// ParseLatLng reads required lat/lng query params. Missing or non-numeric
// values fail with invalid_coordinates before anything touches the store;
// range checking happens in the domain.
func ParseLatLng(q url.Values) (lat, lng float64, err error) {
	latStr := q.Get("lat")
	lngStr := q.Get("lng")
	if latStr == "" || lngStr == "" {
		return 0, 0, domain.ErrInvalidCoords("latitude and longitude are required")
	}
	lat, latErr := strconv.ParseFloat(latStr, 64)
	lng, lngErr := strconv.ParseFloat(lngStr, 64)
	if latErr != nil || lngErr != nil {
		return 0, 0, domain.ErrInvalidCoords("latitude and longitude must be numbers")
	}
	return lat, lng, nil
}

// ParseOptionalFloat returns 0 when the param is absent or malformed.
func ParseOptionalFloat(q url.Values, key string) float64 {
	v, err := strconv.ParseFloat(q.Get(key), 64)
	if err != nil {
		return 0
	}
	return v
}
