package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contra/internal/config"
)

func newProxyServer(t *testing.T, backendURL string) *Server {
	t.Helper()
	s, err := NewServer(config.Config{
		Env:           "test",
		BackendAPIURL: backendURL,
	}, &stubAccounts{}, &stubSessions{})
	if err != nil {
		t.Fatalf("NewServer() error: %v", err)
	}
	return s
}

func TestBFFProxyForwardsRequestAndRelaysResponse(t *testing.T) {
	t.Parallel()

	var gotPath, gotQuery, gotCookie, gotMethod string
	var gotBody []byte
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotCookie = r.Header.Get("Cookie")
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "doc-1"})
	}))
	defer backend.Close()

	s := newProxyServer(t, backend.URL)
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/bff/documents/upload?draft=1", strings.NewReader(`{"name":"contract.pdf"}`))
	r.Header.Set("Cookie", "session_id=sess-1")
	r.Header.Set("Content-Type", "application/json")

	s.Router().ServeHTTP(rec, r)

	if gotPath != "/api/v1/documents/upload" {
		t.Fatalf("backend path = %q, want %q", gotPath, "/api/v1/documents/upload")
	}
	if gotQuery != "draft=1" {
		t.Fatalf("backend query = %q, want %q", gotQuery, "draft=1")
	}
	if gotCookie != "session_id=sess-1" {
		t.Fatalf("backend cookie = %q, want forwarded session cookie", gotCookie)
	}
	if gotMethod != http.MethodPost {
		t.Fatalf("backend method = %q, want POST", gotMethod)
	}
	if string(gotBody) != `{"name":"contract.pdf"}` {
		t.Fatalf("backend body = %q, want request body", gotBody)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("relayed status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("relayed content-type = %q, want application/json", ct)
	}
	if !strings.Contains(rec.Body.String(), "doc-1") {
		t.Fatalf("relayed body = %q, want backend payload", rec.Body.String())
	}
}

func TestBFFProxyRelaysErrorStatus(t *testing.T) {
	t.Parallel()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}))
	defer backend.Close()

	s := newProxyServer(t, backend.URL)
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/bff/documents/missing", nil)

	s.Router().ServeHTTP(rec, r)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("relayed status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestBFFProxyUnconfiguredBackend(t *testing.T) {
	t.Parallel()

	s := newProxyServer(t, "")
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/bff/documents", nil)

	s.Router().ServeHTTP(rec, r)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestBFFProxyUnreachableBackendIsBadGateway(t *testing.T) {
	t.Parallel()

	// Reserve a port, then close it so the address refuses connections.
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := backend.URL
	backend.Close()

	s := newProxyServer(t, deadURL)
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/bff/documents", nil)

	s.Router().ServeHTTP(rec, r)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadGateway)
	}
}
