package domain

import "strings"

// Categories is the fixed set a listing must belong to.
var Categories = []string{
	"Music",
	"Nightlife",
	"Tech",
	"Arts",
	"Food",
	"Sports",
	"Gaming",
	"Outdoors",
	"Workshop",
	"Cultural",
	"Other",
}

// NormalizeCategory maps case-insensitive input to its canonical spelling.
// Returns "" when the input is not a known category.
func NormalizeCategory(input string) string {
	trimmed := strings.TrimSpace(input)
	for _, c := range Categories {
		if strings.EqualFold(c, trimmed) {
			return c
		}
	}
	return ""
}
