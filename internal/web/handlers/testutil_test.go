package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/kozaktomas/immich-frame/internal/config"
	"github.com/kozaktomas/immich-frame/internal/frame"
	"github.com/kozaktomas/immich-frame/internal/immich"
)

// testConfig creates a minimal config for testing
func testConfig() *config.Config {
	return &config.Config{
		Presets: config.PresetsConfig{
			Presets: map[string]config.Preset{
				"waveshare-5in65": {Width: 600, Height: 448},
				"waveshare-7in3":  {Width: 800, Height: 480},
			},
		},
	}
}

// setupMockImmichServer creates a mock Immich server for handler tests.
// Every endpoint requires the test API key.
func setupMockImmichServer(t *testing.T, endpoints map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	for pattern, handler := range endpoints {
		mux.HandleFunc(pattern, handler)
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "test-api-key" {
			http.Error(w, `{"message":"invalid api key"}`, http.StatusUnauthorized)
			return
		}
		mux.ServeHTTP(w, r)
	}))
}

// createImmichClient creates an Immich client connected to a mock server
func createImmichClient(t *testing.T, server *httptest.Server) *immich.Immich {
	t.Helper()
	im, err := immich.New(config.ImmichConfig{URL: server.URL, APIKey: "test-api-key"})
	if err != nil {
		t.Fatalf("failed to create Immich client: %v", err)
	}
	return im
}

// newTestFrameHandler wires a frame handler to a mock Immich server
func newTestFrameHandler(t *testing.T, server *httptest.Server) *FrameHandler {
	t.Helper()
	return NewFrameHandler(testConfig(), frame.New(createImmichClient(t, server)))
}

// singlePersonLibrary mocks a library where "alice" has one tagged asset
// whose original download returns assetData.
func singlePersonLibrary(assetData []byte) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/api/search/person": func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if r.URL.Query().Get("name") == "alice" {
				w.Write([]byte(`[{"id": "person-1", "name": "alice"}]`))
				return
			}
			w.Write([]byte(`[]`))
		},
		"/api/search/metadata": func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"assets": {"items": [{"id": "asset-1"}], "total": 1}}`))
		},
		"/api/assets/asset-1/original": func(w http.ResponseWriter, r *http.Request) {
			w.Write(assetData)
		},
	}
}

// makeJPEG encodes a solid color image to use as a download fixture
func makeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.Set(x, y, color.RGBA{R: 200, G: 64, B: 64, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("failed to encode fixture image: %v", err)
	}
	return buf.Bytes()
}

// decodeDims decodes the response body as an image and returns its dimensions
func decodeDims(t *testing.T, recorder *httptest.ResponseRecorder) (int, int) {
	t.Helper()

	img, _, err := image.Decode(bytes.NewReader(recorder.Body.Bytes()))
	if err != nil {
		t.Fatalf("failed to decode response image: %v", err)
	}
	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// requestWithChiParams creates a request with chi URL parameters
func requestWithChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// parseJSONResponse parses a JSON response body into the target type
func parseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), target); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nBody: %s", err, recorder.Body.String())
	}
}

// assertStatusCode checks if the response has the expected status code
func assertStatusCode(t *testing.T, recorder *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if recorder.Code != expected {
		t.Errorf("expected status %d, got %d\nBody: %s", expected, recorder.Code, recorder.Body.String())
	}
}

// assertContentType checks if the response has the expected content type
func assertContentType(t *testing.T, recorder *httptest.ResponseRecorder, expected string) {
	t.Helper()
	ct := recorder.Header().Get("Content-Type")
	if ct != expected {
		t.Errorf("expected Content-Type '%s', got '%s'", expected, ct)
	}
}

// assertJSONError checks if the response is a JSON error with the expected message
func assertJSONError(t *testing.T, recorder *httptest.ResponseRecorder, expectedMessage string) {
	t.Helper()
	var result map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse error response: %v\nBody: %s", err, recorder.Body.String())
	}
	if result["error"] != expectedMessage {
		t.Errorf("expected error '%s', got '%s'", expectedMessage, result["error"])
	}
}
