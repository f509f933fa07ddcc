// Package blob stores uploaded bank slips in MinIO.
package blob

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"planner/config"
	"planner/internal/domain/lifecycle"
	"planner/internal/domain/service"
	"planner/internal/errors"
	"planner/internal/util"

	domainerrors "planner/internal/domain/errors"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/fx"
)

const (
	defaultBucket   = "bank-slips"
	defaultMaxBytes = 5 << 20
	keyPrefix       = "bank-slips"
	checksumMetaKey = "sha256"
)

// Extensions of the accepted image content types.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/bmp":  ".bmp",
	"image/tiff": ".tiff",
}

// objectStore is the subset of *minio.Client used here.
type objectStore interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Store validates images and writes them to a bucket.
type Store struct {
	client   objectStore
	bucket   string
	baseURL  string
	maxBytes int64
	logger   *slog.Logger
	now      func() time.Time
}

var _ service.BlobStore = (*Store)(nil)

// New creates the MinIO client and ensures the bucket exists on start.
// Without MinIO configuration uploads are rejected but slip URLs still work.
func New(params Params) (service.BlobStore, error) {
	maxBytes := int64(defaultMaxBytes)
	if params.Config.Upload != nil && params.Config.Upload.MaxBytes > 0 {
		maxBytes = params.Config.Upload.MaxBytes
	}

	cfg := params.Config.MinIO
	if cfg == nil || cfg.Endpoint == "" {
		params.Logger.Info("Blob storage not configured, bank slip uploads disabled")

		return &Store{maxBytes: maxBytes, logger: params.Logger, now: time.Now}, nil
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("minio accessKey and secretKey are required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create minio client")
	}

	store := NewStore(client, cfg.Bucket, publicBaseURL(cfg), maxBytes, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return store.EnsureBucket(ctx)
		},
	})

	return store, nil
}

// NewStore wraps an object store client.
func NewStore(client objectStore, bucket, baseURL string, maxBytes int64, logger *slog.Logger) *Store {
	if bucket == "" {
		bucket = defaultBucket
	}
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}

	return &Store{
		client:   client,
		bucket:   bucket,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxBytes: maxBytes,
		logger:   logger,
		now:      time.Now,
	}
}

func publicBaseURL(cfg *config.MinIOConfig) string {
	if cfg.PublicBaseURL != "" {
		return cfg.PublicBaseURL
	}
	if cfg.UseSSL {
		return "https://" + cfg.Endpoint
	}

	return "http://" + cfg.Endpoint
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *Store) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return errors.Wrap(err, "check bucket")
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return errors.Wrap(err, "create bucket")
	}
	s.logger.InfoContext(ctx, "Created blob bucket", slog.String("bucket", s.bucket))

	return nil
}

// StoreImage accepts only decodable images within the size limit.
func (s *Store) StoreImage(ctx context.Context, data []byte, contentType string) (string, error) {
	ext, err := s.validate(data, contentType)
	if err != nil {
		return "", err
	}
	if s.client == nil {
		return "", domainerrors.ErrInternalError.WrapMessage("blob storage is not configured")
	}

	key := path.Join(keyPrefix, s.now().UTC().Format("2006/01/02"), uuid.NewString()+ext)
	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  normalizeContentType(contentType),
		UserMetadata: map[string]string{checksumMetaKey: util.Checksum(data)},
	})
	if err != nil {
		return "", errors.Wrapf(err, "upload %s", key)
	}

	return s.baseURL + "/" + s.bucket + "/" + key, nil
}

func (s *Store) validate(data []byte, contentType string) (string, error) {
	if int64(len(data)) > s.maxBytes {
		return "", domainerrors.ErrPayloadTooLarge.WithDetails("limit is " + util.FormatBytes(s.maxBytes))
	}

	ext, ok := imageExtensions[normalizeContentType(contentType)]
	if !ok {
		return "", domainerrors.ErrUnsupportedMedia.WrapMessage("content type " + contentType + " is not an accepted image type")
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", domainerrors.ErrUnsupportedMedia.WrapMessage("upload is not a readable image")
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return "", domainerrors.ErrUnsupportedMedia.WrapMessage("upload is an empty image")
	}

	return ext, nil
}

func normalizeContentType(contentType string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")

	return strings.ToLower(strings.TrimSpace(mediaType))
}
