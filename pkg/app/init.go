package app

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"

	"go-edsm/pkg/config"
	"go-edsm/pkg/edsm"
	"go-edsm/pkg/logging"

	"github.com/joho/godotenv"
)

// AppContext holds the shared application context and dependencies
type AppContext struct {
	Settings         config.Settings
	Client           *edsm.Client
	TelemetryManager *logging.TelemetryManager
	ServiceName      string
	shutdownFuncs    []func(context.Context) error
}

// Options tune InitializeApp for a particular binary
type Options struct {
	// LogOutput receives the slog stream; nil means stdout
	LogOutput io.Writer
	// EnvFiles are loaded in order before anything reads the environment.
	// Missing files are ignored.
	EnvFiles []string
}

// InitializeApp loads .env, sets up logging and telemetry and builds the
// shared EDSM client
func InitializeApp(serviceName string) (*AppContext, error) {
	return InitializeAppWithOptions(serviceName, Options{})
}

// InitializeAppWithOptions is InitializeApp with explicit options
func InitializeAppWithOptions(serviceName string, opts Options) (*AppContext, error) {
	envFiles := opts.EnvFiles
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
			log.Printf("Error loading %s: %v", file, err)
		}
	}

	output := opts.LogOutput
	if output == nil {
		output = os.Stdout
	}

	ctx := context.Background()

	telemetryConfig := logging.LoadTelemetryConfig()
	if serviceName != "" && os.Getenv("SERVICE_NAME") == "" {
		telemetryConfig.ServiceName = serviceName
	}
	telemetryManager := logging.NewTelemetryManagerWithConfig(telemetryConfig, output)
	if err := telemetryManager.Initialize(ctx); err != nil {
		// Continue without telemetry rather than failing
		log.Printf("Warning: Failed to initialize telemetry: %v", err)
	}

	settings := config.LoadSettings()
	client := edsm.NewClientWithConfig(edsm.ConfigFromSettings(settings), nil)

	cfg := client.Config()
	slog.Debug("EDSM client initialized",
		"systems_url", cfg.SystemsURL,
		"system_url", cfg.SystemURL,
		"timeout", cfg.Timeout,
	)

	return &AppContext{
		Settings:         settings,
		Client:           client,
		TelemetryManager: telemetryManager,
		ServiceName:      telemetryConfig.ServiceName,
		shutdownFuncs:    []func(context.Context) error{telemetryManager.Shutdown},
	}, nil
}

// Shutdown gracefully shuts down all application dependencies
func (a *AppContext) Shutdown(ctx context.Context) error {
	slog.Debug("Shutting down application", "service", a.ServiceName)

	for _, shutdown := range a.shutdownFuncs {
		if err := shutdown(ctx); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}
	return nil
}

// GetPort returns the port from environment or default
func GetPort(defaultPort string) string {
	return config.GetEnv("PORT", defaultPort)
}
