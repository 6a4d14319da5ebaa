package clientstate

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	// VisitorCookieName identifies the anonymous visitor owning a cart and wishlist
	VisitorCookieName = "growshop_cart"
	visitorCookieAge  = int(DefaultTTL / time.Second)
)

// VisitorID returns the visitor id from r, issuing a new one in a cookie on w
// when the request has none or carries a malformed one
func VisitorID(w http.ResponseWriter, r *http.Request, secure bool) string {
	if c, err := r.Cookie(VisitorCookieName); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     VisitorCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   visitorCookieAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
