package edsm

import (
	"context"
	"log/slog"

	"go-edsm/pkg/edsm/models"
)

// Systems returns every system whose name starts with name. Coordinates,
// permit and information sections are always requested.
func (c *Client) Systems(ctx context.Context, name string) ([]models.System, error) {
	const op = "Systems"
	if err := validateQuery(op, systemQuery{SystemName: name}); err != nil {
		return nil, err
	}

	ctx, cl := c.begin(ctx, op, "/systems", name)
	defer cl.end()

	slog.InfoContext(ctx, "Requesting systems from EDSM", "system_name", name, "request_id", cl.requestID)

	body, err := c.get(ctx, cl, c.cfg.SystemsURL, "/systems", showFlags(nameQuery(name)))
	if err != nil {
		return nil, err
	}
	return c.decodeList(ctx, cl, body, true)
}

// SphereSystems returns the systems within opts.Radius light years of name,
// excluding those closer than opts.MinRadius. A radius above MaxSphereRadius
// fails with a *ValidationError before anything is sent.
func (c *Client) SphereSystems(ctx context.Context, name string, opts SphereOptions) ([]models.System, error) {
	const op = "SphereSystems"
	if err := validateQuery(op, sphereQuery{SystemName: name, SphereOptions: opts}); err != nil {
		return nil, err
	}

	ctx, cl := c.begin(ctx, op, "/sphere-systems", name)
	defer cl.end()

	query := showFlags(nameQuery(name))
	if opts.Radius != 0 {
		query.Set("radius", formatFloat(opts.Radius))
	}
	if opts.MinRadius != 0 {
		query.Set("minRadius", formatFloat(opts.MinRadius))
	}

	slog.InfoContext(ctx, "Requesting sphere systems from EDSM",
		"system_name", name,
		"radius", opts.Radius,
		"min_radius", opts.MinRadius,
		"request_id", cl.requestID,
	)

	body, err := c.get(ctx, cl, c.cfg.SystemsURL, "/sphere-systems", query)
	if err != nil {
		return nil, err
	}
	return c.decodeList(ctx, cl, body, true)
}

// CubeSystems returns the systems inside a cube of edge opts.Size centred on name
func (c *Client) CubeSystems(ctx context.Context, name string, opts CubeOptions) ([]models.System, error) {
	const op = "CubeSystems"
	if err := validateQuery(op, cubeQuery{SystemName: name, CubeOptions: opts}); err != nil {
		return nil, err
	}

	ctx, cl := c.begin(ctx, op, "/cube-systems", name)
	defer cl.end()

	query := showFlags(nameQuery(name))
	if opts.Size != 0 {
		query.Set("size", formatFloat(opts.Size))
	}

	slog.InfoContext(ctx, "Requesting cube systems from EDSM",
		"system_name", name,
		"size", opts.Size,
		"request_id", cl.requestID,
	)

	body, err := c.get(ctx, cl, c.cfg.SystemsURL, "/cube-systems", query)
	if err != nil {
		return nil, err
	}
	return c.decodeList(ctx, cl, body, true)
}

// System looks up a single system by its exact name. Unknown names return
// ErrUnknownSystem.
func (c *Client) System(ctx context.Context, name string) (*models.System, error) {
	const op = "System"
	if err := validateQuery(op, systemQuery{SystemName: name}); err != nil {
		return nil, err
	}

	ctx, cl := c.begin(ctx, op, "/system", name)
	defer cl.end()

	slog.InfoContext(ctx, "Requesting system from EDSM", "system_name", name, "request_id", cl.requestID)

	body, err := c.get(ctx, cl, c.cfg.SystemsURL, "/system", showFlags(nameQuery(name)))
	if err != nil {
		return nil, err
	}
	return c.decodeOne(ctx, cl, body, true)
}
