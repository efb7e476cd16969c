package server

import (
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

var bffHTTPClient = &http.Client{
	Timeout: 30 * time.Second,
}

// handleBFFProxy forwards dashboard requests to the external API server.
// Only the cookie and content-type cross the boundary in either
// direction; everything else stays backend-private.
func (s *Server) handleBFFProxy(w http.ResponseWriter, r *http.Request) {
	base := strings.TrimRight(s.Config.BackendAPIURL, "/")
	if base == "" {
		writeError(w, http.StatusInternalServerError, "BACKEND_URL is not configured")
		return
	}

	path := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	target, err := url.Parse(base + "/api/v1/" + path)
	if err != nil {
		writeError(w, http.StatusBadGateway, "Invalid backend URL")
		return
	}
	target.RawQuery = r.URL.RawQuery

	var body io.Reader
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		body = r.Body
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target.String(), body)
	if err != nil {
		writeError(w, http.StatusBadGateway, "Failed to create backend request")
		return
	}

	if cookie := r.Header.Get("Cookie"); cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Cache-Control", "no-store")

	resp, err := bffHTTPClient.Do(req)
	if err != nil {
		log.Printf("bff proxy: method=%s path=%s error=%v", r.Method, path, err)
		writeError(w, http.StatusBadGateway, "Backend request failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		log.Printf("bff proxy: method=%s url=%s status=%d", r.Method, target.String(), resp.StatusCode)
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	} else {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("bff proxy: method=%s path=%s copy_error=%v", r.Method, path, err)
	}
}
