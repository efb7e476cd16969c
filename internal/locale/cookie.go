package locale

import (
	"net/http"
	"time"

	"contra/internal/i18n"
)

// CookieName carries the resolved language. The cookie is intentionally
// not HttpOnly: client script reads it to seed its own state.
const CookieName = "lang"

const cookieMaxAge = int(365 * 24 * time.Hour / time.Second)

// ApplyLocaleCookie persists lang on the response for a year. secure is
// true only in production-like environments.
func ApplyLocaleCookie(w http.ResponseWriter, lang i18n.Language, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    string(lang),
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: false,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// StaticLocale is the cookie-only reader: no header parsing, no account
// lookup. Used where a locale guess must not cost a network round-trip.
// The cookie value must match a supported code exactly.
func StaticLocale(r *http.Request) i18n.Language {
	if r == nil {
		return i18n.Fallback
	}
	if cookie, err := r.Cookie(CookieName); err == nil && i18n.IsSupported(cookie.Value) {
		return i18n.Language(cookie.Value)
	}
	return i18n.Fallback
}

func rawCookie(r *http.Request, name string) string {
	if cookie, err := r.Cookie(name); err == nil {
		return cookie.Value
	}
	return ""
}
