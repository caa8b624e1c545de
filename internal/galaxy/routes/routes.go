package routes

import (
	"context"
	"net/http"

	"go-edsm/internal/galaxy/dto"
	"go-edsm/internal/galaxy/services"
	"go-edsm/pkg/edsm/models"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the galaxy routes module
type Module struct {
	service *services.Service
}

// NewModule creates a new galaxy routes module
func NewModule(service *services.Service) *Module {
	return &Module{
		service: service,
	}
}

// RegisterUnifiedRoutes registers all galaxy routes with the provided Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	huma.Register(api, huma.Operation{
		OperationID: "galaxy-search-systems",
		Method:      http.MethodGet,
		Path:        basePath + "/systems",
		Summary:     "Search Systems by Name",
		Description: "Return every system whose name starts with the given text, closest match first. Coordinates, permit and information sections are included.",
		Tags:        []string{"Galaxy"},
	}, func(ctx context.Context, input *dto.SearchSystemsInput) (*dto.SystemListOutput, error) {
		result, err := m.service.SearchSystems(ctx, input.Name)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &dto.SystemListOutput{Body: *result}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "galaxy-sphere-systems",
		Method:      http.MethodGet,
		Path:        basePath + "/systems/sphere",
		Summary:     "Sphere Search",
		Description: "Return the systems within a radius of a reference system. The radius is capped at 100 light years.",
		Tags:        []string{"Galaxy"},
	}, func(ctx context.Context, input *dto.SphereSystemsInput) (*dto.SystemListOutput, error) {
		result, err := m.service.SphereSystems(ctx, input)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &dto.SystemListOutput{Body: *result}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "galaxy-cube-systems",
		Method:      http.MethodGet,
		Path:        basePath + "/systems/cube",
		Summary:     "Cube Search",
		Description: "Return the systems inside a cube centred on a reference system.",
		Tags:        []string{"Galaxy"},
	}, func(ctx context.Context, input *dto.CubeSystemsInput) (*dto.SystemListOutput, error) {
		result, err := m.service.CubeSystems(ctx, input)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &dto.SystemListOutput{Body: *result}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "galaxy-get-system",
		Method:      http.MethodGet,
		Path:        basePath + "/systems/{name}",
		Summary:     "Get System",
		Description: "Look up a single system by exact name.",
		Tags:        []string{"Galaxy"},
	}, func(ctx context.Context, input *dto.GetSystemInput) (*dto.SystemOutput, error) {
		return systemOutput(m.service.GetSystem(ctx, input.Name))
	})

	huma.Register(api, huma.Operation{
		OperationID: "galaxy-get-traffic",
		Method:      http.MethodGet,
		Path:        basePath + "/systems/{name}/traffic",
		Summary:     "Get System Traffic",
		Description: "Ship traffic through a system over the last day, week and in total, with a breakdown by ship type.",
		Tags:        []string{"Galaxy"},
	}, func(ctx context.Context, input *dto.GetSystemInput) (*dto.SystemOutput, error) {
		return systemOutput(m.service.GetTraffic(ctx, input.Name))
	})

	huma.Register(api, huma.Operation{
		OperationID: "galaxy-get-deaths",
		Method:      http.MethodGet,
		Path:        basePath + "/systems/{name}/deaths",
		Summary:     "Get System Deaths",
		Description: "Commander deaths in a system over the last day, week and in total.",
		Tags:        []string{"Galaxy"},
	}, func(ctx context.Context, input *dto.GetSystemInput) (*dto.SystemOutput, error) {
		return systemOutput(m.service.GetDeaths(ctx, input.Name))
	})

	huma.Register(api, huma.Operation{
		OperationID: "galaxy-get-bodies",
		Method:      http.MethodGet,
		Path:        basePath + "/systems/{name}/bodies",
		Summary:     "Get System Bodies",
		Description: "Stars and planets of a system with their orbital and physical data.",
		Tags:        []string{"Galaxy"},
	}, func(ctx context.Context, input *dto.GetSystemInput) (*dto.SystemOutput, error) {
		return systemOutput(m.service.GetBodies(ctx, input.Name))
	})

	huma.Register(api, huma.Operation{
		OperationID: "galaxy-get-factions",
		Method:      http.MethodGet,
		Path:        basePath + "/systems/{name}/factions",
		Summary:     "Get System Factions",
		Description: "Minor factions present in a system and the one controlling it.",
		Tags:        []string{"Galaxy"},
	}, func(ctx context.Context, input *dto.GetFactionsInput) (*dto.SystemOutput, error) {
		return systemOutput(m.service.GetFactions(ctx, input.Name, input.History))
	})

	// Status endpoint (public, no auth required)
	huma.Register(api, huma.Operation{
		OperationID: "galaxy-get-status",
		Method:      http.MethodGet,
		Path:        basePath + "/status",
		Summary:     "Get galaxy module status",
		Description: "Returns the health status of the galaxy module and the last EDSM rate-limit headers",
		Tags:        []string{"Module Status"},
	}, func(ctx context.Context, input *struct{}) (*dto.StatusOutput, error) {
		status := m.service.GetStatus(ctx)
		return &dto.StatusOutput{Body: *status}, nil
	})
}

func systemOutput(system *models.System, err error) (*dto.SystemOutput, error) {
	if err != nil {
		return nil, toHumaError(err)
	}
	return &dto.SystemOutput{Body: *system}, nil
}
