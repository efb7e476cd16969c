package server

import (
	"context"
	"net/http"

	"contra/internal/i18n"
)

type ctxKey string

const localeContextKey ctxKey = "locale"

// withRequestLocale resolves the request language once per request and
// stores it in the context for handlers that render localized responses.
func (s *Server) withRequestLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := s.Detector.DetectRequestLocale(r.Context(), r)
		ctx := context.WithValue(r.Context(), localeContextKey, lang)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func localeFromContext(ctx context.Context) i18n.Language {
	if lang, ok := ctx.Value(localeContextKey).(i18n.Language); ok {
		return lang
	}
	return i18n.Fallback
}
