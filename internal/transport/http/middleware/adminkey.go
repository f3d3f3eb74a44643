package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/evento/discovery-service/internal/transport/http/response"
)

const HeaderAdminKey = "X-Admin-Key"

// AdminKey gates the moderation surface behind a shared static key. This is
// deliberately a gate, not an authentication system: callers of the admin
// routes are assumed pre-authorized by the deployment (reverse proxy, VPN).
type AdminKey struct {
	key string
}

func NewAdminKey(key string) *AdminKey {
	return &AdminKey{key: strings.TrimSpace(key)}
}

func (a *AdminKey) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		supplied := strings.TrimSpace(r.Header.Get(HeaderAdminKey))

		if a.key == "" || supplied == "" ||
			subtle.ConstantTimeCompare([]byte(a.key), []byte(supplied)) != 1 {
			response.Fail(w, http.StatusForbidden, "forbidden", "admin key missing or invalid", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
