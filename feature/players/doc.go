// Package players exposes read-only player gallery lookups.
//
// It resolves a player UID to a normalized gallery summary (display name,
// points, deduplicated sorted invader list) through the same gallery source
// the comparison feature uses.
//
// # HTTP Endpoints
//
//   - GET /players/:uid : gallery summary for one player.
package players
