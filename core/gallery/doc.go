// Package gallery provides access to the remote invader gallery API.
//
// A gallery is one player's collection of spotted invaders, keyed by an
// opaque player UID. The package exposes:
//
//   - Source: the interface consumed by features needing galleries.
//   - Client: the HTTP implementation, with retries and lax payload decoding
//     (the upstream API is not strict about field types or shapes).
//   - CachedSource: a Source decorator that stores JSON snapshots in object
//     storage with a TTL, collapsing concurrent fetches of the same UID.
//
// Mocks for the Source interface live in core/gallery/mocks.
package gallery
