package web

import (
	"bytes"
	"image"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kozaktomas/immich-frame/internal/config"
	"github.com/kozaktomas/immich-frame/internal/immich"
)

// setupUpstream mocks an Immich server with one person and one asset.
func setupUpstream(t *testing.T) *httptest.Server {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 1200, 900))
	var photo bytes.Buffer
	if err := jpeg.Encode(&photo, img, nil); err != nil {
		t.Fatalf("failed to encode fixture image: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/search/person", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": "person-1", "name": "alice"}]`))
	})
	mux.HandleFunc("/api/search/metadata", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"assets": {"items": [{"id": "asset-1"}], "total": 1}}`))
	})
	mux.HandleFunc("/api/assets/", func(w http.ResponseWriter, r *http.Request) {
		w.Write(photo.Bytes())
	})

	return httptest.NewServer(mux)
}

// newTestServer builds a server wired to the mock upstream. The HTTP
// listener is never started; tests drive the router directly.
func newTestServer(t *testing.T, upstream *httptest.Server) *Server {
	t.Helper()

	cfg := &config.Config{
		Web: config.WebConfig{
			AllowedOrigins: []string{"https://gallery.example.com"},
		},
		Presets: config.PresetsConfig{
			Presets: map[string]config.Preset{
				"waveshare-5in65": {Width: 600, Height: 448},
			},
		},
	}

	im, err := immich.New(config.ImmichConfig{URL: upstream.URL, APIKey: "test-api-key"})
	if err != nil {
		t.Fatalf("failed to create Immich client: %v", err)
	}

	return NewServer(cfg, 8080, "127.0.0.1", im)
}

func TestServer_HealthRoute(t *testing.T) {
	upstream := setupUpstream(t)
	defer upstream.Close()

	s := newTestServer(t, upstream)

	req := httptest.NewRequest("GET", "/api/v1/health", nil)
	recorder := httptest.NewRecorder()

	s.Router().ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", recorder.Code)
	}

	if !strings.Contains(recorder.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected health body: %s", recorder.Body.String())
	}
}

func TestServer_FrameRoute(t *testing.T) {
	upstream := setupUpstream(t)
	defer upstream.Close()

	s := newTestServer(t, upstream)

	for _, path := range []string{"/immich", "/immich/"} {
		req := httptest.NewRequest("GET", path+"?names=alice", nil)
		recorder := httptest.NewRecorder()

		s.Router().ServeHTTP(recorder, req)

		if recorder.Code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d\nBody: %s", path, recorder.Code, recorder.Body.String())
			continue
		}

		img, format, err := image.Decode(bytes.NewReader(recorder.Body.Bytes()))
		if err != nil {
			t.Fatalf("%s: failed to decode response: %v", path, err)
		}
		if format != "jpeg" {
			t.Errorf("%s: expected jpeg, got %s", path, format)
		}
		if b := img.Bounds(); b.Dx() != 600 || b.Dy() != 448 {
			t.Errorf("%s: expected 600x448, got %dx%d", path, b.Dx(), b.Dy())
		}
	}
}

func TestServer_AssetRoute(t *testing.T) {
	upstream := setupUpstream(t)
	defer upstream.Close()

	s := newTestServer(t, upstream)

	req := httptest.NewRequest("GET", "/immich/asset/b4e9a3c2-1f6d-4e8b-9c0a-2d7f5e8b1a3c?preset=waveshare-5in65", nil)
	recorder := httptest.NewRecorder()

	s.Router().ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d\nBody: %s", recorder.Code, recorder.Body.String())
	}

	if ct := recorder.Header().Get("Content-Type"); ct != "image/jpeg" {
		t.Errorf("expected Content-Type 'image/jpeg', got '%s'", ct)
	}
}

func TestServer_DemoPage(t *testing.T) {
	upstream := setupUpstream(t)
	defer upstream.Close()

	s := newTestServer(t, upstream)

	req := httptest.NewRequest("GET", "/", nil)
	recorder := httptest.NewRecorder()

	s.Router().ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", recorder.Code)
	}

	if ct := recorder.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("expected HTML content type, got '%s'", ct)
	}

	if !strings.Contains(recorder.Body.String(), "Immich Frame") {
		t.Error("expected demo page content")
	}
}

func TestServer_CORSHeaders(t *testing.T) {
	upstream := setupUpstream(t)
	defer upstream.Close()

	s := newTestServer(t, upstream)

	req := httptest.NewRequest("GET", "/api/v1/health", nil)
	req.Header.Set("Origin", "https://gallery.example.com")
	recorder := httptest.NewRecorder()

	s.Router().ServeHTTP(recorder, req)

	if got := recorder.Header().Get("Access-Control-Allow-Origin"); got != "https://gallery.example.com" {
		t.Errorf("expected configured origin to be allowed, got '%s'", got)
	}

	if got := recorder.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("expected X-Frame-Options 'DENY', got '%s'", got)
	}
}

func TestServer_UnknownRoute(t *testing.T) {
	upstream := setupUpstream(t)
	defer upstream.Close()

	s := newTestServer(t, upstream)

	req := httptest.NewRequest("GET", "/nope", nil)
	recorder := httptest.NewRecorder()

	s.Router().ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", recorder.Code)
	}
}
