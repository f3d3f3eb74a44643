package event

import "fmt"

func cacheKeyEventDetails(id string) string {
	return fmt.Sprintf("event:%s", id)
}

// Only the unfiltered approved listing is cached; filtered views are derived
// per request.
func cacheKeyApprovedList() string {
	return "events:approved:list"
}
