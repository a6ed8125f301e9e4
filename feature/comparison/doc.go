// Package comparison implements the invader collection comparison feature.
//
// At its core sits the comparison engine: a pure function that, given a
// reference player's collection and a set of named collections, computes per
// name the invaders present in that collection but missing from the
// reference. Names are normalized (whitespace-trimmed, case-sensitive),
// results are deduplicated and sorted.
//
// Around the engine:
//
//   - Service: resolves an account's stored UIDs (or an ad hoc UID list),
//     fetches all galleries concurrently and feeds them to the engine.
//     A gallery that cannot be fetched degrades to an empty collection with
//     the UID as display name.
//   - Filter: the presentation-level case-insensitive substring filter
//     applied to engine output.
//   - Handler: exposes the HTTP endpoints.
//
// # HTTP Endpoints
//
//   - GET /comparison?reference=UID&targets=a,b,c : ad hoc comparison.
//   - GET /comparison/:account : comparison driven by the UID registry.
//
// Both accept an optional ?filter= term.
package comparison
