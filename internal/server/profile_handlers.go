package server

import (
	"net/http"
	"strings"

	"contra/internal/i18n"
	"contra/internal/locale"
)

type updateProfileRequest struct {
	Name     *string `json:"name"`
	Theme    *string `json:"theme"`
	Language *string `json:"language"`
}

// handleUpdateProfile updates the authenticated account's display name,
// theme and language preference. Absent fields are left untouched. A
// language change also refreshes the locale cookie so the next request
// resolves consistently.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := s.sessionUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if s.Accounts == nil {
		writeError(w, http.StatusInternalServerError, "Account store unavailable")
		return
	}

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		writeError(w, http.StatusBadRequest, "Name cannot be empty")
		return
	}
	if req.Theme != nil {
		theme := *req.Theme
		if theme != "light" && theme != "dark" && theme != "system" {
			writeError(w, http.StatusBadRequest, "Invalid theme value")
			return
		}
	}
	if req.Language != nil && !i18n.IsSupported(*req.Language) {
		writeError(w, http.StatusBadRequest, "Language must be 'en' or 'hu'")
		return
	}

	user, err := s.Accounts.UpdateProfile(r.Context(), userID, req.Name, req.Theme, req.Language)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	if req.Language != nil {
		locale.ApplyLocaleCookie(w, i18n.Language(*req.Language), s.Config.Production())
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user": map[string]interface{}{
			"id":       user.ID,
			"email":    user.Email,
			"name":     user.Name,
			"theme":    user.Theme,
			"language": user.Language,
			"role":     user.Role,
		},
	})
}
