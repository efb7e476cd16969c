package server

import (
	"log"
	"net/http"

	"contra/internal/auth"
	"contra/internal/i18n"
	"contra/internal/locale"
)

type setLanguageRequest struct {
	Language string `json:"language"`
}

func (s *Server) handleGetLanguage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"language": localeFromContext(r.Context()),
	})
}

// handleSetLanguage is the explicit language-switch write path: validate,
// set the cookie, and best-effort persist to the account store when the
// request carries a session. A failed store write never fails the switch;
// the cookie already carries it.
func (s *Server) handleSetLanguage(w http.ResponseWriter, r *http.Request) {
	var req setLanguageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if !i18n.IsSupported(req.Language) {
		writeError(w, http.StatusBadRequest, "Language must be 'en' or 'hu'")
		return
	}
	lang := i18n.Language(req.Language)

	locale.ApplyLocaleCookie(w, lang, s.Config.Production())

	if userID := s.sessionUserID(r); userID != "" && s.Accounts != nil {
		if err := s.Accounts.UpdateUserLanguage(r.Context(), userID, string(lang)); err != nil {
			log.Printf("language update: persist for user %s failed: %v", userID, err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"language": lang,
	})
}

// sessionUserID attributes the request to an account, or "" for anonymous
// visitors and unavailable session stores.
func (s *Server) sessionUserID(r *http.Request) string {
	cookie, err := r.Cookie(auth.SessionCookieName)
	if err != nil || cookie.Value == "" || s.Sessions == nil {
		return ""
	}

	userID, err := s.Sessions.UserID(r.Context(), cookie.Value)
	if err != nil {
		log.Printf("language update: session lookup failed: %v", err)
		return ""
	}
	return userID
}
