package handlers

import (
	"context"
	"net/http"
	"time"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	DB      Pinger
	Version string
}

type healthStatus struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
	Error     string `json:"error,omitempty"`
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	now := time.Now().UTC().Format(time.RFC3339)
	if err := h.DB.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, healthStatus{
			Status:    "ERROR",
			Database:  "disconnected",
			Timestamp: now,
			Error:     err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, healthStatus{Status: "OK", Database: "connected", Timestamp: now})
}

func (h *HealthHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Purchase Order Management API",
		"version": h.Version,
		"docs":    "/api-docs",
		"health":  "/health",
	})
}
