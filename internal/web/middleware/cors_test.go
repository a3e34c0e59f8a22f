package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func corsTestHandler(origins []string) http.Handler {
	return CORS(origins)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("handled"))
	}))
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	handler := corsTestHandler([]string{"https://gallery.example.com"})

	req := httptest.NewRequest("GET", "/immich/", nil)
	req.Header.Set("Origin", "https://gallery.example.com")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	if got := recorder.Header().Get("Access-Control-Allow-Origin"); got != "https://gallery.example.com" {
		t.Errorf("expected origin to be allowed, got '%s'", got)
	}
}

func TestCORS_AllowsLocalhost(t *testing.T) {
	handler := corsTestHandler(nil)

	req := httptest.NewRequest("GET", "/immich/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	if got := recorder.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("expected localhost origin to be allowed, got '%s'", got)
	}
}

func TestIsLocalhostOrigin(t *testing.T) {
	tests := []struct {
		origin string
		want   bool
	}{
		{"http://localhost:5173", true},
		{"https://localhost", true},
		{"http://127.0.0.1:8080", true},
		{"http://localhost.evil.com", false},
		{"ftp://localhost", false},
		{"localhost:5173", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := isLocalhostOrigin(tc.origin); got != tc.want {
			t.Errorf("isLocalhostOrigin(%q) = %v, want %v", tc.origin, got, tc.want)
		}
	}
}

func TestCORS_RejectsUnknownOrigin(t *testing.T) {
	handler := corsTestHandler([]string{"https://gallery.example.com"})

	req := httptest.NewRequest("GET", "/immich/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	if got := recorder.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no allow-origin header for unknown origin, got '%s'", got)
	}

	// The request itself still reaches the handler.
	if recorder.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", recorder.Code)
	}
}

func TestCORS_Preflight(t *testing.T) {
	handler := corsTestHandler([]string{"https://gallery.example.com"})

	req := httptest.NewRequest("OPTIONS", "/immich/", nil)
	req.Header.Set("Origin", "https://gallery.example.com")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("expected status 200 for preflight, got %d", recorder.Code)
	}

	// Preflight must short-circuit before the wrapped handler.
	if recorder.Body.String() == "handled" {
		t.Error("expected preflight to skip the wrapped handler")
	}

	if got := recorder.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Error("expected allow-methods header on preflight response")
	}
}

func TestCORS_TrimsConfiguredOrigins(t *testing.T) {
	handler := corsTestHandler([]string{" https://gallery.example.com ", ""})

	req := httptest.NewRequest("GET", "/immich/", nil)
	req.Header.Set("Origin", "https://gallery.example.com")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	if got := recorder.Header().Get("Access-Control-Allow-Origin"); got != "https://gallery.example.com" {
		t.Errorf("expected trimmed origin to be allowed, got '%s'", got)
	}
}

func TestSecurityHeaders(t *testing.T) {
	handler := SecurityHeaders()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	if got := recorder.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("expected X-Frame-Options 'DENY', got '%s'", got)
	}

	if got := recorder.Header().Get("Content-Security-Policy"); got == "" {
		t.Error("expected a Content-Security-Policy header")
	}
}
