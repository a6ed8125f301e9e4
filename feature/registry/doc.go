// Package registry implements per-account storage of player UIDs.
//
// Each account stores one reference UID (the baseline player) and any number
// of target UIDs (the players to compare against). The comparison feature
// consumes this registry through its UIDProvider interface.
//
// Persistence goes through GORM: MySQL in production, SQLite in tests.
//
// # HTTP Endpoints
//
//   - GET    /registry/:account              : stored UIDs for the account.
//   - PUT    /registry/:account/reference    : set the reference UID.
//   - POST   /registry/:account/targets      : add a target UID (idempotent).
//   - DELETE /registry/:account/targets/:uid : remove a target UID.
package registry
