package handlers

import (
	"encoding/json"
	"net/http"

	"message-relay/internal/models"
)

// Health is used by monitoring and by the frontend connectivity check.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{Message: "Healthy"})
}

// HealthPreflight answers a bare OPTIONS on the health path.
func HealthPreflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
