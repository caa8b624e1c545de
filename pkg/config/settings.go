package config

import "time"

// Settings is the EDSM client configuration read from the environment.
// Empty URLs and user agent mean "use the client's built-in default".
type Settings struct {
	SystemsURL      string
	SystemURL       string
	UserAgent       string
	HTTPTimeout     time.Duration
	EnableTelemetry bool
}

// LoadSettings reads the EDSM_* keys and ENABLE_TELEMETRY
func LoadSettings() Settings {
	return Settings{
		SystemsURL:      GetEnv("EDSM_SYSTEMS_URL", ""),
		SystemURL:       GetEnv("EDSM_SYSTEM_URL", ""),
		UserAgent:       GetEnv("EDSM_USER_AGENT", ""),
		HTTPTimeout:     GetDurationEnv("EDSM_HTTP_TIMEOUT", 0),
		EnableTelemetry: GetBoolEnv("ENABLE_TELEMETRY", false),
	}
}
