package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go-edsm/internal/galaxy/dto"
	"go-edsm/pkg/edsm"
	"go-edsm/pkg/edsm/models"
	"go-edsm/pkg/module"
)

// Client is the subset of *edsm.Client the galaxy module uses
type Client interface {
	Systems(ctx context.Context, name string) ([]models.System, error)
	SphereSystems(ctx context.Context, name string, opts edsm.SphereOptions) ([]models.System, error)
	CubeSystems(ctx context.Context, name string, opts edsm.CubeOptions) ([]models.System, error)
	System(ctx context.Context, name string) (*models.System, error)
	Traffic(ctx context.Context, name string) (*models.System, error)
	Deaths(ctx context.Context, name string) (*models.System, error)
	Bodies(ctx context.Context, name string) (*models.System, error)
	Factions(ctx context.Context, name string, withHistory bool) (*models.System, error)
	RateLimit() edsm.RateLimit
	Config() edsm.Config
}

// Service handles galaxy lookups. It keeps no state of its own; every call
// goes to EDSM.
type Service struct {
	client Client
}

// NewService creates a new galaxy service
func NewService(client Client) *Service {
	return &Service{client: client}
}

// SearchSystems returns systems whose name starts with name, best match first
func (s *Service) SearchSystems(ctx context.Context, name string) (*dto.SystemListResponse, error) {
	systems, err := s.client.Systems(ctx, name)
	if err != nil {
		return nil, err
	}
	systems = RankByName(name, systems)
	return &dto.SystemListResponse{Query: name, Count: len(systems), Systems: systems}, nil
}

// SphereSystems returns the systems around name, nearest first as EDSM orders them
func (s *Service) SphereSystems(ctx context.Context, input *dto.SphereSystemsInput) (*dto.SystemListResponse, error) {
	systems, err := s.client.SphereSystems(ctx, input.Name, edsm.SphereOptions{
		Radius:    input.Radius,
		MinRadius: input.MinRadius,
	})
	if err != nil {
		return nil, err
	}
	return &dto.SystemListResponse{Query: input.Name, Count: len(systems), Systems: systems}, nil
}

// CubeSystems returns the systems in a cube around name
func (s *Service) CubeSystems(ctx context.Context, input *dto.CubeSystemsInput) (*dto.SystemListResponse, error) {
	systems, err := s.client.CubeSystems(ctx, input.Name, edsm.CubeOptions{Size: input.Size})
	if err != nil {
		return nil, err
	}
	return &dto.SystemListResponse{Query: input.Name, Count: len(systems), Systems: systems}, nil
}

// GetSystem looks up one system
func (s *Service) GetSystem(ctx context.Context, name string) (*models.System, error) {
	return s.client.System(ctx, name)
}

// GetTraffic returns a system's traffic report
func (s *Service) GetTraffic(ctx context.Context, name string) (*models.System, error) {
	return s.client.Traffic(ctx, name)
}

// GetDeaths returns a system's death report
func (s *Service) GetDeaths(ctx context.Context, name string) (*models.System, error) {
	return s.client.Deaths(ctx, name)
}

// GetBodies returns a system's bodies. A count that disagrees with the list
// is logged but still returned.
func (s *Service) GetBodies(ctx context.Context, name string) (*models.System, error) {
	system, err := s.client.Bodies(ctx, name)
	if err != nil {
		return nil, err
	}
	if !system.BodyCountMatches() {
		slog.WarnContext(ctx, "EDSM body count does not match body list",
			"system_name", name,
			"body_count", *system.BodyCount,
			"bodies", len(system.Bodies),
		)
	}
	return system, nil
}

// GetFactions returns a system's factions, optionally with history
func (s *Service) GetFactions(ctx context.Context, name string, withHistory bool) (*models.System, error) {
	return s.client.Factions(ctx, name, withHistory)
}

// GetStatus reports the module's configuration and the last rate-limit
// headers seen. It makes no request of its own.
func (s *Service) GetStatus(ctx context.Context) *dto.GalaxyStatusResponse {
	cfg := s.client.Config()
	status := &dto.GalaxyStatusResponse{
		Module: "galaxy",
		Status: string(module.StatusHealthy),
		Upstream: dto.UpstreamStatus{
			SystemsURL: cfg.SystemsURL,
			SystemURL:  cfg.SystemURL,
		},
		LastChecked: time.Now().UTC().Format(time.RFC3339),
	}

	limit := s.client.RateLimit()
	if !limit.Known() {
		status.Message = "No EDSM requests made yet"
		return status
	}

	status.RateLimit = &limit
	if limit.Limit > 0 && limit.Remaining == 0 && time.Now().Before(limit.Reset) {
		status.Status = string(module.StatusDegraded)
		status.Message = fmt.Sprintf("EDSM rate limit exhausted until %s", limit.Reset.UTC().Format(time.RFC3339))
	}
	return status
}
