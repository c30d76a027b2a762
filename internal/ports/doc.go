// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// In Clean Architecture / Hexagonal Architecture, ports are the boundaries
// between the application core and the outside world. They define what the
// application needs from external systems without specifying how those needs
// are fulfilled.
//
// # Port Interfaces
//
//   - [FrameSender]: Delivers one encoded frame to the provider
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// pkg/transport.Channel satisfies FrameSender; tests substitute recorders.
package ports
