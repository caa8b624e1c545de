package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetDurationEnv(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{"unset", "", 5 * time.Second},
		{"duration", "90s", 90 * time.Second},
		{"bare seconds", "12", 12 * time.Second},
		{"garbage", "soon", 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)
			assert.Equal(t, tt.expected, GetDurationEnv("TEST_DURATION", 5*time.Second))
		})
	}
}

func TestGetFloatEnv(t *testing.T) {
	t.Setenv("TEST_FLOAT", "12.5")
	assert.Equal(t, 12.5, GetFloatEnv("TEST_FLOAT", 1))

	t.Setenv("TEST_FLOAT", "x")
	assert.Equal(t, 1.0, GetFloatEnv("TEST_FLOAT", 1))
}

func TestLoadSettings(t *testing.T) {
	t.Setenv("EDSM_SYSTEMS_URL", "http://localhost:9000/api-v1")
	t.Setenv("EDSM_SYSTEM_URL", "")
	t.Setenv("EDSM_USER_AGENT", "tester/1.0")
	t.Setenv("EDSM_HTTP_TIMEOUT", "")
	t.Setenv("ENABLE_TELEMETRY", "false")

	s := LoadSettings()
	assert.Equal(t, "http://localhost:9000/api-v1", s.SystemsURL)
	assert.Empty(t, s.SystemURL)
	assert.Equal(t, "tester/1.0", s.UserAgent)
	assert.Zero(t, s.HTTPTimeout)
	assert.False(t, s.EnableTelemetry)
}

func TestMustGetEnv(t *testing.T) {
	t.Setenv("TEST_REQUIRED", "present")
	assert.Equal(t, "present", MustGetEnv("TEST_REQUIRED"))

	t.Setenv("TEST_REQUIRED", "")
	assert.PanicsWithValue(t, "Required environment variable TEST_REQUIRED is not set", func() {
		MustGetEnv("TEST_REQUIRED")
	})
}
