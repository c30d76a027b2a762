package ffb

import (
	"context"

	"github.com/bft-labs/ffblink/internal/adapters/fswatch"
	"github.com/bft-labs/ffblink/internal/adapters/ipc"
	"github.com/bft-labs/ffblink/pkg/transport"
)

// EndpointPath returns the file system path behind endpoint: the socket file
// for names and unix: endpoints, the device node for serial: endpoints.
func EndpointPath(endpoint string) (string, error) {
	ep, err := transport.ParseEndpoint(endpoint)
	if err != nil {
		return "", err
	}
	if ep.Scheme == transport.SchemeName {
		return ipc.SocketPath(ep.Address), nil
	}
	return ep.Address, nil
}

// WaitForEndpoint blocks until the provider's socket or device node exists,
// or ctx is done. It does not connect; follow it with Start or Reopen.
func WaitForEndpoint(ctx context.Context, endpoint string) error {
	path, err := EndpointPath(endpoint)
	if err != nil {
		return err
	}
	return fswatch.WaitForPath(ctx, path)
}
