package locale

import (
	"context"
	"log"
	"net/http"

	"contra/internal/i18n"
)

const defaultSessionCookie = "session_id"

// AccountLanguages is the slice of the account store detection needs.
type AccountLanguages interface {
	GetUserLanguage(ctx context.Context, userID string) (string, error)
}

// SessionReader attributes a session cookie value to an account.
type SessionReader interface {
	UserID(ctx context.Context, sessionID string) (string, error)
}

// Detector computes the effective language for inbound requests. Both
// collaborators are optional: a nil or failing one degrades to "no account
// preference" instead of failing the page render.
type Detector struct {
	Accounts AccountLanguages
	Sessions SessionReader

	// SessionCookie overrides the cookie that attributes the request to a
	// session. Empty means "session_id".
	SessionCookie string
}

// DetectRequestLocale assembles the three preference sources from the
// request and resolves them. It reads only; cookies are written on the
// explicit persistence path.
func (d *Detector) DetectRequestLocale(ctx context.Context, r *http.Request) i18n.Language {
	if r == nil {
		return i18n.Fallback
	}

	src := i18n.Sources{
		Cookie:  rawCookie(r, CookieName),
		Browser: i18n.ParseAcceptLanguage(r.Header.Get("Accept-Language")),
	}
	src.Account = d.accountLanguage(ctx, rawCookie(r, d.sessionCookieName()))

	return i18n.Resolve(src)
}

func (d *Detector) sessionCookieName() string {
	if d.SessionCookie != "" {
		return d.SessionCookie
	}
	return defaultSessionCookie
}

// accountLanguage returns the stored account preference, or "" when the
// request has no session, the stores are unavailable, or the account has
// no saved value. Failures are logged, never propagated.
func (d *Detector) accountLanguage(ctx context.Context, sessionID string) string {
	if sessionID == "" || d.Sessions == nil || d.Accounts == nil {
		return ""
	}

	userID, err := d.Sessions.UserID(ctx, sessionID)
	if err != nil {
		log.Printf("locale detect: session lookup failed: %v", err)
		return ""
	}
	if userID == "" {
		return ""
	}

	lang, err := d.Accounts.GetUserLanguage(ctx, userID)
	if err != nil {
		log.Printf("locale detect: account language lookup for user %s failed: %v", userID, err)
		return ""
	}
	return lang
}
