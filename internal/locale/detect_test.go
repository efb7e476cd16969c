package locale

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"contra/internal/i18n"
)

type stubSessions struct {
	userID string
	err    error
}

func (s *stubSessions) UserID(context.Context, string) (string, error) {
	return s.userID, s.err
}

type stubAccounts struct {
	language string
	err      error
}

func (s *stubAccounts) GetUserLanguage(context.Context, string) (string, error) {
	return s.language, s.err
}

func detectRequest(cookies map[string]string, acceptLanguage string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for name, value := range cookies {
		r.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	if acceptLanguage != "" {
		r.Header.Set("Accept-Language", acceptLanguage)
	}
	return r
}

func TestDetectAccountPreferenceWins(t *testing.T) {
	t.Parallel()

	d := &Detector{
		Sessions: &stubSessions{userID: "user-1"},
		Accounts: &stubAccounts{language: "hu"},
	}

	r := detectRequest(map[string]string{"session_id": "sess-1", CookieName: "en"}, "en-US,en;q=0.9")
	if got := d.DetectRequestLocale(context.Background(), r); got != i18n.Hungarian {
		t.Fatalf("DetectRequestLocale() = %q, want %q", got, i18n.Hungarian)
	}
}

func TestDetectAccountStoreFailureFallsBackToCookie(t *testing.T) {
	t.Parallel()

	d := &Detector{
		Sessions: &stubSessions{userID: "user-1"},
		Accounts: &stubAccounts{err: errors.New("store unreachable")},
	}

	r := detectRequest(map[string]string{"session_id": "sess-1", CookieName: "hu"}, "en-US")
	if got := d.DetectRequestLocale(context.Background(), r); got != i18n.Hungarian {
		t.Fatalf("DetectRequestLocale() = %q, want %q", got, i18n.Hungarian)
	}
}

func TestDetectSessionLookupFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	d := &Detector{
		Sessions: &stubSessions{err: errors.New("redis down")},
		Accounts: &stubAccounts{language: "hu"},
	}

	r := detectRequest(map[string]string{"session_id": "sess-1"}, "hu-HU,en;q=0.5")
	if got := d.DetectRequestLocale(context.Background(), r); got != i18n.Hungarian {
		t.Fatalf("DetectRequestLocale() = %q, want %q", got, i18n.Hungarian)
	}
}

func TestDetectWithoutSessionCookieSkipsAccountLookup(t *testing.T) {
	t.Parallel()

	d := &Detector{
		Sessions: &stubSessions{userID: "user-1"},
		Accounts: &stubAccounts{language: "hu"},
	}

	r := detectRequest(nil, "en-US,en;q=0.9")
	if got := d.DetectRequestLocale(context.Background(), r); got != i18n.English {
		t.Fatalf("DetectRequestLocale() = %q, want %q", got, i18n.English)
	}
}

func TestDetectHeaderOnly(t *testing.T) {
	t.Parallel()

	d := &Detector{}

	r := detectRequest(nil, "fr-FR,hu-HU;q=0.8,en;q=0.5")
	if got := d.DetectRequestLocale(context.Background(), r); got != i18n.Hungarian {
		t.Fatalf("DetectRequestLocale() = %q, want %q", got, i18n.Hungarian)
	}
}

func TestDetectNothingMatchesUsesFallback(t *testing.T) {
	t.Parallel()

	d := &Detector{}

	r := detectRequest(map[string]string{CookieName: "de"}, "de-DE,sk")
	if got := d.DetectRequestLocale(context.Background(), r); got != i18n.Fallback {
		t.Fatalf("DetectRequestLocale() = %q, want %q", got, i18n.Fallback)
	}
}
