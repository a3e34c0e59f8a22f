package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/kozaktomas/immich-frame/internal/config"
	"github.com/kozaktomas/immich-frame/internal/constants"
	"github.com/kozaktomas/immich-frame/internal/frame"
	"github.com/kozaktomas/immich-frame/internal/immich"
)

// FrameHandler serves normalized photos for picture frames.
type FrameHandler struct {
	config *config.Config
	frame  *frame.Frame
}

// NewFrameHandler creates a new frame handler.
func NewFrameHandler(cfg *config.Config, f *frame.Frame) *FrameHandler {
	return &FrameHandler{
		config: cfg,
		frame:  f,
	}
}

// Random picks a random photo of the requested people and serves it
// resized and padded to the requested dimensions.
func (h *FrameHandler) Random(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	width, height, err := h.parseDimensions(query)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	req := frame.Request{
		Names:  parseNames(query["names"]),
		Width:  width,
		Height: height,
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.frame.Photo(r.Context(), req)
	if err != nil {
		if errors.Is(err, frame.ErrNotFound) {
			log.Debug().Str("names", sanitizeForLog(strings.Join(req.Names, ","))).Msg("no matching photo")
		}
		respondFrameError(w, err)
		return
	}

	writeJPEG(w, data)
}

// Asset serves one specific asset resized and padded to the requested dimensions.
func (h *FrameHandler) Asset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(w, http.StatusBadRequest, "asset id must be a UUID")
		return
	}

	width, height, err := h.parseDimensions(r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := frame.ValidateDimensions(width, height); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.frame.RenderAsset(r.Context(), id, width, height)
	if err != nil {
		respondFrameError(w, err)
		return
	}

	writeJPEG(w, data)
}

// parseDimensions resolves output dimensions from an optional preset and
// explicit width/height parameters, falling back to the default panel size.
// Explicit dimensions win over the preset.
func (h *FrameHandler) parseDimensions(query url.Values) (int, int, error) {
	width, height := constants.DefaultWidth, constants.DefaultHeight

	if name := query.Get("preset"); name != "" {
		preset, ok := h.config.GetPreset(name)
		if !ok {
			return 0, 0, fmt.Errorf("unknown preset %q", name)
		}
		width, height = preset.Width, preset.Height
	}

	var err error
	if width, err = parseDimension(query, "width", width); err != nil {
		return 0, 0, err
	}
	if height, err = parseDimension(query, "height", height); err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

// parseDimension reads one integer query parameter, keeping the fallback
// when the parameter is absent or empty.
func parseDimension(query url.Values, key string, fallback int) (int, error) {
	raw := query.Get(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", key)
	}
	return v, nil
}

// parseNames flattens repeated and comma separated names parameters into a
// single list, dropping blank entries.
func parseNames(values []string) []string {
	var names []string
	for _, value := range values {
		for part := range strings.SplitSeq(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				names = append(names, part)
			}
		}
	}
	return names
}

// respondFrameError maps photo pipeline errors to HTTP status codes.
func respondFrameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, frame.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, immich.ErrUpstream):
		log.Err(err).Msg("immich request failed")
		respondError(w, http.StatusBadGateway, "immich request failed")
	case errors.Is(err, frame.ErrDecode):
		log.Err(err).Msg("could not decode asset")
		respondError(w, http.StatusInternalServerError, "could not decode asset")
	default:
		log.Err(err).Msg("photo request failed")
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

// writeJPEG sends rendered image bytes. Frames poll for a fresh random
// photo, so intermediaries must not cache the response.
func writeJPEG(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
