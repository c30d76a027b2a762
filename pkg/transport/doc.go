// Package transport owns the client connection to a force-feedback provider.
//
// A [Channel] opens one connection to a provider endpoint, writes fixed-size
// frames to it, and closes it. Every operation runs on the caller's goroutine;
// there are no background workers and no automatic reconnection. A caller
// that wants to reconnect does so explicitly with [Channel.Reopen].
//
// # Endpoints
//
// Endpoint identifiers are routed by scheme through a [Mux]:
//
//	application/ffb      well-known name, resolved to a local socket
//	unix:/run/ffb.sock   explicit Unix domain socket path
//	serial:/dev/ttyACM0  serial device
//
// # Usage
//
//	ch := transport.NewChannel(dialer, transport.WithWriteTimeout(20*time.Millisecond))
//	if err := ch.Open(ctx, "application/ffb"); err != nil {
//	    // errors.Is(err, transport.ErrEndpointUnavailable)
//	}
//	defer ch.Close()
//	err := ch.Send(frame)
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package transport
