package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/kozaktomas/immich-frame/internal/config"
)

// sanitizeForLog strips CR and LF so user-supplied values cannot forge
// extra log lines.
func sanitizeForLog(s string) string {
	return strings.NewReplacer("\n", "", "\r", "").Replace(s)
}

// respondJSON writes data as a JSON body with the given status. A nil
// data value sends the status alone.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondError wraps message in the {"error": ...} envelope.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// HealthCheck returns the liveness handler. Besides plain liveness it
// flags whether the Immich connection is configured, so a dashboard can
// tell an idle server from a misconfigured one.
func HealthCheck(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]any{
			"status":     "ok",
			"configured": cfg.Immich.URL != "" && cfg.Immich.APIKey != "",
		})
	}
}
