package gallery_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/ThomasBonnelye/invader-comparator/core/gallery"
	galleryMocks "github.com/ThomasBonnelye/invader-comparator/core/gallery/mocks"
	storageMocks "github.com/ThomasBonnelye/invader-comparator/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const bucket = "galleries"

func TestCachedSource_FreshSnapshot(t *testing.T) {
	store := new(storageMocks.Client)
	source := new(galleryMocks.Source)

	objectName := gallery.SnapshotObjectName("abc")
	store.On("StatObject", mock.Anything, bucket, objectName, mock.Anything).
		Return(minio.ObjectInfo{Key: objectName, LastModified: time.Now()}, nil)
	store.On("GetObject", mock.Anything, bucket, objectName, mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(`{"uid":"abc","name":"Jace","points":10,"invaders":["PA_1"]}`))), nil)

	cached := gallery.NewCachedSource(source, store, bucket, 5*time.Minute, zap.NewNop())

	g, err := cached.FetchGallery(context.Background(), "abc")
	assert.NoError(t, err)
	assert.Equal(t, "Jace", g.Name)
	assert.Equal(t, []string{"PA_1"}, g.Invaders)

	// Upstream source must not be hit on a fresh snapshot
	source.AssertNotCalled(t, "FetchGallery", mock.Anything, mock.Anything)
}

func TestCachedSource_StaleSnapshotRefetches(t *testing.T) {
	store := new(storageMocks.Client)
	source := new(galleryMocks.Source)

	objectName := gallery.SnapshotObjectName("abc")
	store.On("StatObject", mock.Anything, bucket, objectName, mock.Anything).
		Return(minio.ObjectInfo{Key: objectName, LastModified: time.Now().Add(-time.Hour)}, nil)
	store.On("PutObject", mock.Anything, bucket, objectName, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	fresh := &gallery.Gallery{UID: "abc", Name: "Jace", Invaders: []string{"PA_2"}}
	source.On("FetchGallery", mock.Anything, "abc").Return(fresh, nil)

	cached := gallery.NewCachedSource(source, store, bucket, 5*time.Minute, zap.NewNop())

	g, err := cached.FetchGallery(context.Background(), "abc")
	assert.NoError(t, err)
	assert.Equal(t, fresh, g)

	source.AssertExpectations(t)
	store.AssertCalled(t, "PutObject", mock.Anything, bucket, objectName, mock.Anything, mock.Anything, mock.Anything)
}

func TestCachedSource_SnapshotWriteFailureIsNotFatal(t *testing.T) {
	store := new(storageMocks.Client)
	source := new(galleryMocks.Source)

	objectName := gallery.SnapshotObjectName("abc")
	store.On("StatObject", mock.Anything, bucket, objectName, mock.Anything).
		Return(minio.ObjectInfo{}, errors.New("no such key"))
	store.On("PutObject", mock.Anything, bucket, objectName, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("storage down"))

	fresh := &gallery.Gallery{UID: "abc", Name: "Jace", Invaders: []string{}}
	source.On("FetchGallery", mock.Anything, "abc").Return(fresh, nil)

	cached := gallery.NewCachedSource(source, store, bucket, time.Minute, zap.NewNop())

	g, err := cached.FetchGallery(context.Background(), "abc")
	assert.NoError(t, err)
	assert.Equal(t, fresh, g)
}

func TestCachedSource_ZeroTTLPassesThrough(t *testing.T) {
	store := new(storageMocks.Client)
	source := new(galleryMocks.Source)

	fresh := &gallery.Gallery{UID: "abc", Name: "Jace", Invaders: []string{}}
	source.On("FetchGallery", mock.Anything, "abc").Return(fresh, nil)

	cached := gallery.NewCachedSource(source, store, bucket, 0, zap.NewNop())

	g, err := cached.FetchGallery(context.Background(), "abc")
	assert.NoError(t, err)
	assert.Equal(t, fresh, g)

	store.AssertNotCalled(t, "StatObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCachedSource_UpstreamErrorPropagates(t *testing.T) {
	store := new(storageMocks.Client)
	source := new(galleryMocks.Source)

	objectName := gallery.SnapshotObjectName("ghost")
	store.On("StatObject", mock.Anything, bucket, objectName, mock.Anything).
		Return(minio.ObjectInfo{}, errors.New("no such key"))

	source.On("FetchGallery", mock.Anything, "ghost").Return(nil, errors.New("api unreachable"))

	cached := gallery.NewCachedSource(source, store, bucket, time.Minute, zap.NewNop())

	g, err := cached.FetchGallery(context.Background(), "ghost")
	assert.Error(t, err)
	assert.Nil(t, g)
}

func TestEnsureBucket(t *testing.T) {
	t.Run("AlreadyExists", func(t *testing.T) {
		store := new(storageMocks.Client)
		store.On("BucketExists", mock.Anything, bucket).Return(true, nil)

		err := gallery.EnsureBucket(context.Background(), store, bucket)
		assert.NoError(t, err)
		store.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("CreatesWhenMissing", func(t *testing.T) {
		store := new(storageMocks.Client)
		store.On("BucketExists", mock.Anything, bucket).Return(false, nil)
		store.On("MakeBucket", mock.Anything, bucket, mock.Anything).Return(nil)

		err := gallery.EnsureBucket(context.Background(), store, bucket)
		assert.NoError(t, err)
		store.AssertExpectations(t)
	})
}

func TestListSnapshots(t *testing.T) {
	store := new(storageMocks.Client)

	ch := make(chan minio.ObjectInfo, 3)
	ch <- minio.ObjectInfo{Key: "galleries/abc.json"}
	ch <- minio.ObjectInfo{Key: "galleries/def.json"}
	ch <- minio.ObjectInfo{Key: "galleries/notes.txt"}
	close(ch)
	store.On("ListObjects", mock.Anything, bucket, mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	uids, err := gallery.ListSnapshots(context.Background(), store, bucket)
	assert.NoError(t, err)
	assert.Equal(t, []string{"abc", "def"}, uids)
}
