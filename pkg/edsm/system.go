package edsm

import (
	"context"
	"log/slog"
	"net/url"

	"go-edsm/pkg/edsm/models"
)

// Traffic returns the system with Traffic and TrafficBreakdown filled in
func (c *Client) Traffic(ctx context.Context, name string) (*models.System, error) {
	return c.systemReport(ctx, "Traffic", "/traffic", name, nameQuery(name))
}

// Deaths returns the system with Deaths filled in
func (c *Client) Deaths(ctx context.Context, name string) (*models.System, error) {
	return c.systemReport(ctx, "Deaths", "/deaths", name, nameQuery(name))
}

// Bodies returns the system with BodyCount and Bodies filled in
func (c *Client) Bodies(ctx context.Context, name string) (*models.System, error) {
	return c.systemReport(ctx, "Bodies", "/bodies", name, nameQuery(name))
}

// Factions returns the system with its controlling faction and faction list.
// withHistory asks for the influence, state and happiness time series.
func (c *Client) Factions(ctx context.Context, name string, withHistory bool) (*models.System, error) {
	query := nameQuery(name)
	query.Set("showHistory", boolFlag(withHistory))
	return c.systemReport(ctx, "Factions", "/factions", name, query)
}

// systemReport serves the api-system-v1 group, where no information block is requested
func (c *Client) systemReport(ctx context.Context, op, endpoint, name string, query url.Values) (*models.System, error) {
	if err := validateQuery(op, systemQuery{SystemName: name}); err != nil {
		return nil, err
	}

	ctx, cl := c.begin(ctx, op, endpoint, name)
	defer cl.end()

	slog.InfoContext(ctx, "Requesting system report from EDSM",
		"operation", op,
		"system_name", name,
		"request_id", cl.requestID,
	)

	body, err := c.get(ctx, cl, c.cfg.SystemURL, endpoint, query)
	if err != nil {
		return nil, err
	}
	return c.decodeOne(ctx, cl, body, false)
}
