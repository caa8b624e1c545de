package galaxy

import (
	"log/slog"

	"go-edsm/internal/galaxy/routes"
	"go-edsm/internal/galaxy/services"
	"go-edsm/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module represents the galaxy module, a read-only facade over EDSM
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Module
}

// NewModule creates a new galaxy module instance
func NewModule(client services.Client) *Module {
	service := services.NewService(client)

	m := &Module{
		BaseModule: module.NewBaseModule("galaxy"),
		service:    service,
		routes:     routes.NewModule(service),
	}

	slog.Info("Galaxy module initialized", "name", m.Name())

	return m
}

// RegisterUnifiedRoutes registers all galaxy routes with the provided Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	slog.Info("Registering galaxy unified routes", "basePath", basePath)

	m.routes.RegisterUnifiedRoutes(api, basePath)

	slog.Info("Galaxy unified routes registered successfully", "basePath", basePath)
}

// Version returns the module version
func (m *Module) Version() string {
	return "1.0.0"
}

// Description returns the module description
func (m *Module) Description() string {
	return "EDSM star system lookups"
}

// Routes mounts the plain chi routes; everything else is registered through Huma
func (m *Module) Routes(r chi.Router) {
	m.RegisterHealthRoute(r)
}

// GetService returns the galaxy service for testing or external access
func (m *Module) GetService() *services.Service {
	return m.service
}
