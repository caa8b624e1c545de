package routes

import (
	"context"
	"errors"
	"net/http"

	"go-edsm/pkg/edsm"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError maps client errors onto HTTP statuses. EDSM failures are the
// upstream's fault, so they surface as 502/504 rather than 500.
func toHumaError(err error) error {
	var (
		validation *edsm.ValidationError
		remote     *edsm.RemoteError
		transport  *edsm.TransportError
		decodeErr  *edsm.DecodeError
	)

	switch {
	case errors.As(err, &validation):
		return huma.Error400BadRequest(validation.Error(), err)
	case errors.Is(err, edsm.ErrUnknownSystem):
		return huma.Error404NotFound("System not known to EDSM", err)
	case errors.As(err, &remote):
		if remote.StatusCode == http.StatusNotFound {
			return huma.Error404NotFound("EDSM returned not found", err)
		}
		return huma.Error502BadGateway("EDSM rejected the request: "+remote.Status, err)
	case errors.As(err, &transport):
		if transport.Timeout() {
			return huma.Error504GatewayTimeout("EDSM did not answer in time", err)
		}
		return huma.Error502BadGateway("Failed to reach EDSM", err)
	case errors.Is(err, context.DeadlineExceeded):
		return huma.Error504GatewayTimeout("EDSM did not answer in time", err)
	case errors.As(err, &decodeErr):
		return huma.Error502BadGateway("EDSM returned an unexpected payload", err)
	default:
		return huma.Error500InternalServerError("Failed to query EDSM", err)
	}
}
