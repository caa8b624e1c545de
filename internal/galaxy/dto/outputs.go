package dto

import (
	"go-edsm/pkg/edsm"
	"go-edsm/pkg/edsm/models"
)

// SystemListOutput represents a list of systems
type SystemListOutput struct {
	Body SystemListResponse `json:"body"`
}

// SystemListResponse is the body of every search endpoint
type SystemListResponse struct {
	Query   string          `json:"query" description:"System name the search started from"`
	Count   int             `json:"count" description:"Number of systems returned"`
	Systems []models.System `json:"systems" description:"Matching systems, closest name match first for name searches"`
}

// SystemOutput represents a single system
type SystemOutput struct {
	Body models.System `json:"body"`
}

// StatusOutput represents the module status response
type StatusOutput struct {
	Body GalaxyStatusResponse `json:"body"`
}

// GalaxyStatusResponse represents the actual status response data
type GalaxyStatusResponse struct {
	Module      string          `json:"module" description:"Module name"`
	Status      string          `json:"status" enum:"healthy,degraded,unhealthy" description:"Module health status"`
	Message     string          `json:"message,omitempty" description:"Optional status message"`
	Upstream    UpstreamStatus  `json:"upstream" description:"Configured EDSM endpoints"`
	RateLimit   *edsm.RateLimit `json:"rate_limit,omitempty" description:"Last rate-limit headers EDSM sent"`
	LastChecked string          `json:"last_checked" description:"Timestamp of this check"`
}

// UpstreamStatus lists where requests go
type UpstreamStatus struct {
	SystemsURL string `json:"systems_url"`
	SystemURL  string `json:"system_url"`
}
