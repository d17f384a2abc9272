package interfaces

import (
	"context"

	domaintypes "gamiclient/internal/domain/types"
)

// Transport performs one HTTP exchange. An error means no response was
// obtained at all; any status code is returned as a response.
type Transport interface {
	Send(ctx context.Context, req domaintypes.TransportRequest) (domaintypes.TransportResponse, error)
}
