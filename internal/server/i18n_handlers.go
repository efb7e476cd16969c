package server

import "net/http"

// handleI18nBootstrap returns the resolved locale together with every
// catalog, keyed by language, so the client can switch languages without
// a further network round-trip.
func (s *Server) handleI18nBootstrap(w http.ResponseWriter, r *http.Request) {
	catalogs := make(map[string]map[string]string, len(s.Catalogs))
	for code, catalog := range s.Catalogs {
		catalogs[string(code)] = catalog.Messages()
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"language": localeFromContext(r.Context()),
		"catalogs": catalogs,
	})
}
