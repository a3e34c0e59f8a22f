package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/kozaktomas/immich-frame/internal/immich"
)

// PeopleHandler lists people known to the Immich server.
type PeopleHandler struct {
	immich *immich.Immich
}

// NewPeopleHandler creates a new people handler.
func NewPeopleHandler(im *immich.Immich) *PeopleHandler {
	return &PeopleHandler{immich: im}
}

// PersonResponse represents a person in API responses.
type PersonResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// List returns all named people, optionally filtered with ?match=.
// The match filter ignores case and diacritics.
func (h *PeopleHandler) List(w http.ResponseWriter, r *http.Request) {
	people, err := h.immich.GetAllPeople(r.Context())
	if err != nil {
		log.Err(err).Msg("could not list people")
		respondError(w, http.StatusBadGateway, "immich request failed")
		return
	}

	match := r.URL.Query().Get("match")

	response := make([]PersonResponse, 0, len(people))
	for _, p := range people {
		if match != "" && !immich.MatchesName(p.Name, match) {
			continue
		}
		response = append(response, PersonResponse{ID: p.ID, Name: p.Name})
	}

	respondJSON(w, http.StatusOK, response)
}
