package blob

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	domainerrors "planner/internal/domain/errors"
	"planner/internal/util"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectStore struct {
	buckets   map[string]bool
	objects   map[string][]byte
	types     map[string]string
	checksums map[string]string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{
		buckets:   map[string]bool{},
		objects:   map[string][]byte{},
		types:     map[string]string{},
		checksums: map[string]string{},
	}
}

func (f *fakeObjectStore) BucketExists(_ context.Context, bucket string) (bool, error) {
	return f.buckets[bucket], nil
}

func (f *fakeObjectStore) MakeBucket(_ context.Context, bucket string, _ minio.MakeBucketOptions) error {
	f.buckets[bucket] = true
	return nil
}

func (f *fakeObjectStore) PutObject(_ context.Context, bucket, key string, reader io.Reader, _ int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.objects[bucket+"/"+key] = data
	f.types[bucket+"/"+key] = opts.ContentType
	f.checksums[bucket+"/"+key] = opts.UserMetadata["sha256"]

	return minio.UploadInfo{Bucket: bucket, Key: key, Size: int64(len(data))}, nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func newTestStore(client objectStore, maxBytes int64) *Store {
	store := NewStore(client, "slips", "http://minio.local/", maxBytes, slog.New(slog.NewTextHandler(io.Discard, nil)))
	store.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

	return store
}

func TestStore_StoreImage(t *testing.T) {
	ctx := context.Background()
	fake := newFakeObjectStore()
	store := newTestStore(fake, 1<<20)
	data := pngBytes(t)

	url, err := store.StoreImage(ctx, data, "image/png; charset=binary")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://minio.local/slips/bank-slips/2024/06/01/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
	require.Len(t, fake.objects, 1)
	for key, stored := range fake.objects {
		assert.Equal(t, data, stored)
		assert.Equal(t, "image/png", fake.types[key])
		assert.Equal(t, util.Checksum(data), fake.checksums[key])
	}
}

func TestStore_StoreImage_Rejections(t *testing.T) {
	ctx := context.Background()
	data := pngBytes(t)

	t.Run("non image content type", func(t *testing.T) {
		_, err := newTestStore(newFakeObjectStore(), 1<<20).StoreImage(ctx, data, "application/pdf")
		assert.ErrorIs(t, err, domainerrors.ErrUnsupportedMedia)
	})

	t.Run("claims image but is not", func(t *testing.T) {
		_, err := newTestStore(newFakeObjectStore(), 1<<20).StoreImage(ctx, []byte("%PDF-1.4"), "image/png")
		assert.ErrorIs(t, err, domainerrors.ErrUnsupportedMedia)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := newTestStore(newFakeObjectStore(), 8).StoreImage(ctx, data, "image/png")
		assert.ErrorIs(t, err, domainerrors.ErrPayloadTooLarge)
		assert.ErrorContains(t, err, "limit is 8 B")
	})

	t.Run("storage not configured", func(t *testing.T) {
		store := &Store{maxBytes: 1 << 20}
		_, err := store.StoreImage(ctx, data, "image/png")
		assert.ErrorIs(t, err, domainerrors.ErrInternalError)
	})
}

func TestStore_EnsureBucket(t *testing.T) {
	ctx := context.Background()
	fake := newFakeObjectStore()
	store := newTestStore(fake, 0)

	require.NoError(t, store.EnsureBucket(ctx))
	assert.True(t, fake.buckets["slips"])
	require.NoError(t, store.EnsureBucket(ctx))
}
