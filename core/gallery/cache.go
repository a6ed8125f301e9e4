package gallery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ThomasBonnelye/invader-comparator/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// snapshotPrefix is where gallery snapshots live inside the bucket.
const snapshotPrefix = "galleries/"

// CachedSource decorates a Source with an object-storage snapshot cache.
// A snapshot is fresh while its LastModified is within the TTL; stale or
// unreadable snapshots fall through to the wrapped source. Cache write
// failures are logged and otherwise ignored, so storage outages never break
// a comparison.
type CachedSource struct {
	source Source
	client storage.Client
	bucket string
	ttl    time.Duration
	logger *zap.Logger
	sf     singleflight.Group
}

// NewCachedSource wraps source with a snapshot cache stored in bucket.
func NewCachedSource(source Source, client storage.Client, bucket string, ttl time.Duration, logger *zap.Logger) *CachedSource {
	return &CachedSource{
		source: source,
		client: client,
		bucket: bucket,
		ttl:    ttl,
		logger: logger,
	}
}

// FetchGallery returns the cached gallery for uid if fresh, fetching and
// storing a new snapshot otherwise. Concurrent fetches of the same UID are
// collapsed into a single upstream call.
func (c *CachedSource) FetchGallery(ctx context.Context, uid string) (*Gallery, error) {
	if c.ttl <= 0 {
		return c.source.FetchGallery(ctx, uid)
	}

	v, err, _ := c.sf.Do(uid, func() (any, error) {
		return c.fetch(ctx, uid)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Gallery), nil
}

func (c *CachedSource) fetch(ctx context.Context, uid string) (*Gallery, error) {
	objectName := SnapshotObjectName(uid)

	info, err := c.client.StatObject(ctx, c.bucket, objectName, minio.StatObjectOptions{})
	if err == nil && time.Since(info.LastModified) <= c.ttl {
		if g, err := c.readSnapshot(ctx, objectName); err == nil {
			return g, nil
		} else {
			c.logger.Warn("Failed to read gallery snapshot, refetching",
				zap.String("uid", uid), zap.Error(err))
		}
	}

	g, err := c.source.FetchGallery(ctx, uid)
	if err != nil {
		return nil, err
	}

	if err := c.writeSnapshot(ctx, objectName, g); err != nil {
		c.logger.Warn("Failed to store gallery snapshot",
			zap.String("uid", uid), zap.Error(err))
	}

	return g, nil
}

func (c *CachedSource) readSnapshot(ctx context.Context, objectName string) (*Gallery, error) {
	obj, err := c.client.GetObject(ctx, c.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	var g Gallery
	if err := json.NewDecoder(obj).Decode(&g); err != nil {
		return nil, fmt.Errorf("corrupt snapshot %s: %w", objectName, err)
	}
	return &g, nil
}

func (c *CachedSource) writeSnapshot(ctx context.Context, objectName string, g *Gallery) error {
	payload, err := json.Marshal(g)
	if err != nil {
		return err
	}

	_, err = c.client.PutObject(ctx, c.bucket, objectName, bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"})
	return err
}

// Evict removes the stored snapshot for uid, forcing the next fetch to go
// upstream.
func (c *CachedSource) Evict(ctx context.Context, uid string) error {
	return c.client.RemoveObject(ctx, c.bucket, SnapshotObjectName(uid), minio.RemoveObjectOptions{})
}

// SnapshotObjectName returns the object key of the snapshot for uid.
func SnapshotObjectName(uid string) string {
	return snapshotPrefix + uid + ".json"
}

// ListSnapshots returns the UIDs that currently have a stored snapshot.
func ListSnapshots(ctx context.Context, client storage.Client, bucket string) ([]string, error) {
	uids := []string{}
	for info := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: snapshotPrefix, Recursive: true}) {
		if info.Err != nil {
			return nil, info.Err
		}
		name := strings.TrimPrefix(info.Key, snapshotPrefix)
		if strings.HasSuffix(name, ".json") {
			uids = append(uids, strings.TrimSuffix(name, ".json"))
		}
	}
	return uids, nil
}

// EnsureBucket verifies the snapshot bucket exists, creating it when missing.
func EnsureBucket(ctx context.Context, client storage.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if exists {
		return nil
	}
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return nil
}
