package service

import "context"

// BlobStore stores uploaded payment artifacts such as bank slips.
type BlobStore interface {
	// StoreImage validates and persists an image and returns its retrievable URL.
	StoreImage(ctx context.Context, data []byte, contentType string) (string, error)
}
