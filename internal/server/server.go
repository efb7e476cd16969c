package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"contra/internal/auth"
	"contra/internal/config"
	"contra/internal/i18n"
	"contra/internal/locale"
)

// AccountStore is the durable per-user preference store.
type AccountStore interface {
	GetUserLanguage(ctx context.Context, userID string) (string, error)
	UpdateUserLanguage(ctx context.Context, userID, language string) error
	UpdateProfile(ctx context.Context, userID string, name, theme, language *string) (*auth.User, error)
}

// SessionReader attributes a session cookie to an account.
type SessionReader interface {
	UserID(ctx context.Context, sessionID string) (string, error)
}

type Server struct {
	Accounts AccountStore
	Sessions SessionReader
	Config   config.Config
	Detector *locale.Detector
	Catalogs map[i18n.Language]*i18n.Catalog
}

func NewServer(cfg config.Config, accounts AccountStore, sessions SessionReader) (*Server, error) {
	// A supported language without a catalog means the build disagrees
	// with its own language list; refuse to start.
	catalogs, err := i18n.LoadAll(i18n.Locales())
	if err != nil {
		return nil, fmt.Errorf("load translation catalogs: %w", err)
	}

	return &Server{
		Accounts: accounts,
		Sessions: sessions,
		Config:   cfg,
		Detector: &locale.Detector{Accounts: accounts, Sessions: sessions},
		Catalogs: catalogs,
	}, nil
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	formatter := &middleware.DefaultLogFormatter{
		Logger:  log.New(log.Writer(), "", log.Flags()),
		NoColor: true,
	}
	r.Use(middleware.RequestLogger(formatter))
	r.Use(middleware.Recoverer)
	r.Use(secureHeaders)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   s.Config.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler)
	r.Use(s.withRequestLocale)

	r.Get("/api/health", s.handleHealth)

	r.Get("/api/user/language", s.handleGetLanguage)
	r.Post("/api/user/language", s.handleSetLanguage)

	r.Patch("/api/user/profile", s.handleUpdateProfile)

	r.Get("/api/i18n/bootstrap", s.handleI18nBootstrap)

	r.HandleFunc("/api/bff/*", s.handleBFFProxy)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
