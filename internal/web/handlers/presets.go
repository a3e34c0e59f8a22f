package handlers

import (
	"net/http"

	"github.com/kozaktomas/immich-frame/internal/config"
)

// PresetsHandler lists the built-in frame size presets.
type PresetsHandler struct {
	config *config.Config
}

// NewPresetsHandler creates a new presets handler.
func NewPresetsHandler(cfg *config.Config) *PresetsHandler {
	return &PresetsHandler{config: cfg}
}

// PresetResponse represents a frame size preset in API responses.
type PresetResponse struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// List returns all presets sorted by name.
func (h *PresetsHandler) List(w http.ResponseWriter, r *http.Request) {
	names := h.config.PresetNames()

	response := make([]PresetResponse, 0, len(names))
	for _, name := range names {
		preset, _ := h.config.GetPreset(name)
		response = append(response, PresetResponse{
			Name:   name,
			Width:  preset.Width,
			Height: preset.Height,
		})
	}

	respondJSON(w, http.StatusOK, response)
}
