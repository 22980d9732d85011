package service

import (
	"context"
	"io"
)

// BlobStore abstracts durable object storage for uploaded images. Upload
// blocks until the store confirms durability, so a record persisted with the
// returned URL never references a blob that does not exist.
type BlobStore interface {
	// Upload stores the content and returns a durable, retrievable URL.
	Upload(ctx context.Context, content io.Reader, contentType, folder string) (string, error)

	// Remove deletes the blob a previous Upload returned the URL for.
	Remove(ctx context.Context, url string) error
}
