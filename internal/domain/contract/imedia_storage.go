package contract

import (
	"context"
	"io"
)

// StoredMedia is the result of handing a file to the media storage
// collaborator. Duration is only meaningful for video uploads and is zero
// when the store cannot determine it.
type StoredMedia struct {
	URL      string
	Duration float64
}

// IMediaStorage is the opaque upload-and-get-URL contract for media files.
// The backend (object store, CDN) is an external collaborator; the core only
// consumes the stored URL.
type IMediaStorage interface {
	Store(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (*StoredMedia, error)
	Remove(ctx context.Context, objectName string) error
}
