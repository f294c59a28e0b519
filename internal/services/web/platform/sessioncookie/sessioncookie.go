// Package sessioncookie centralizes web session cookie behavior.
package sessioncookie

import (
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/closealead/internal/services/web/platform/requestmeta"
)

// Name is the canonical web session cookie name.
const Name = "closealead_session"

// Jar reads and writes the session cookie with a fixed scheme policy.
type Jar struct {
	Policy requestmeta.SchemePolicy
}

// Read returns the trimmed session cookie value when present.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write sets the session cookie to value, expiring it after ttl.
func (j Jar) Write(w http.ResponseWriter, r *http.Request, value string, ttl time.Duration) {
	if w == nil {
		return
	}
	cookie := j.base(r)
	cookie.Value = strings.TrimSpace(value)
	if ttl > 0 {
		cookie.MaxAge = int(ttl / time.Second)
	}
	http.SetCookie(w, cookie)
}

// Clear expires the session cookie.
func (j Jar) Clear(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	cookie := j.base(r)
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
}

func (j Jar) base(r *http.Request) *http.Cookie {
	return &http.Cookie{
		Name:     Name,
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, j.Policy),
		SameSite: http.SameSiteLaxMode,
	}
}
