// Package storage implements the blob store service on Google Cloud Storage.
package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
	"go.uber.org/fx"

	"pasar/config"
	"pasar/internal/domain/lifecycle"
	"pasar/internal/domain/service"
	"pasar/internal/errors"
)

const publicURLPrefix = "https://storage.googleapis.com/"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// gcsStore is a concrete implementation of the BlobStore interface.
type gcsStore struct {
	client *gcs.Client
	bucket string
}

// NewGCSStore creates the Cloud Storage client and verifies the configured
// bucket is reachable on startup.
func NewGCSStore(params Params) (service.BlobStore, error) {
	if params.Config.GCS == nil || params.Config.GCS.Bucket == "" {
		return nil, errors.New("gcs bucket must be provided")
	}

	client, err := gcs.NewClient(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "create gcs client")
	}

	store := &gcsStore{client: client, bucket: params.Config.GCS.Bucket}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if _, err := client.Bucket(store.bucket).Attrs(ctx); err != nil {
				return errors.Wrapf(err, "access bucket %s", store.bucket)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return store, nil
}

// Upload writes the content under a fresh object name and returns the public
// URL. The writer's Close confirms durability before the URL is handed back.
func (s *gcsStore) Upload(ctx context.Context, content io.Reader, contentType, folder string) (string, error) {
	object := objectName(contentType, folder)

	writer := s.client.Bucket(s.bucket).Object(object).NewWriter(ctx)
	writer.ContentType = contentType

	if _, err := io.Copy(writer, content); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "write object")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "finalize object")
	}

	return publicURLPrefix + s.bucket + "/" + object, nil
}

// Remove deletes the object behind a URL a previous Upload returned.
func (s *gcsStore) Remove(ctx context.Context, url string) error {
	prefix := publicURLPrefix + s.bucket + "/"
	object := strings.TrimPrefix(url, prefix)
	if object == url || object == "" {
		return errors.Errorf("url %s does not belong to bucket %s", url, s.bucket)
	}

	if err := s.client.Bucket(s.bucket).Object(object).Delete(ctx); err != nil {
		return errors.Wrap(err, "delete object")
	}

	return nil
}

// objectName builds a collision-free object name from a uuid and timestamp,
// with an extension derived from the content type.
func objectName(contentType, folder string) string {
	ext := ".bin"
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		ext = exts[0]
	}

	name := fmt.Sprintf("%s-%d%s", uuid.New(), time.Now().UnixNano(), ext)
	if folder == "" {
		return name
	}

	return folder + "/" + name
}
