// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the gallery snapshot cache needs. This abstraction supports both
// AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easy to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: Verify or create the snapshot bucket.
//   - StatObject: Check snapshot freshness without downloading it.
//   - GetObject / PutObject: Read and write snapshot content.
//   - RemoveObject: Evict a snapshot.
//   - ListObjects: Enumerate cached snapshots.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "galleries")
package storage
