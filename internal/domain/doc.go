// Package domain contains the core domain entities and value objects for ffblink.
//
// This package represents the innermost layer of the Clean Architecture. It has
// no dependencies on infrastructure concerns (sockets, serial ports, logging)
// and contains only the force-feedback vocabulary shared by every layer.
//
// # Entities
//
//   - [Frame]: One target curl state for one hand, the unit written to a provider
//   - [Hand]: Which hand a frame addresses
//   - [Curls]: The five finger curl targets of a prime request
//   - [HandState]: Relaxed or Primed, tracked per hand by the controller
//
// # Design Principles
//
// Domain entities are:
//   - Immutable value types compared by value
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain
