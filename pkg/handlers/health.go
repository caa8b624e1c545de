package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"go-edsm/pkg/version"
)

// HealthResponse represents the health check response structure
type HealthResponse struct {
	Status  string `json:"status"`
	Module  string `json:"module,omitempty"`
	Version string `json:"version,omitempty"`
}

// HealthHandler creates a health check handler for a given module
func HealthHandler(moduleName string) http.HandlerFunc {
	return healthHandler(HealthResponse{Status: "healthy", Module: moduleName})
}

// ServiceHealthHandler reports the process as a whole, with its build version
func ServiceHealthHandler() http.HandlerFunc {
	return healthHandler(HealthResponse{Status: "healthy", Version: version.GetVersionString()})
}

func healthHandler(response HealthResponse) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.DebugContext(r.Context(), "Health check requested",
			slog.String("remote_addr", r.RemoteAddr),
			slog.String("module", response.Module),
		)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(response); err != nil {
			slog.Error("Failed to encode health response", "error", err, "module", response.Module)
		}
	}
}
