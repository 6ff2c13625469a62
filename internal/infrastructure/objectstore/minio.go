package objectstore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/playtube-app/playtube/internal/domain/contract"
)

// MinioStorage stores uploaded media in a MinIO (S3-compatible) bucket and
// hands back a public URL.
type MinioStorage struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

var _ contract.IMediaStorage = (*MinioStorage)(nil)

// Options carries the connection settings for the object store.
type Options struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	Bucket          string
	// PublicBaseURL overrides the URL prefix stored objects are served
	// from. Empty means the endpoint itself is publicly reachable.
	PublicBaseURL string
}

// NewMinioStorage connects to the object store and ensures the media bucket
// exists.
func NewMinioStorage(ctx context.Context, opts Options) (*MinioStorage, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKeyID, opts.SecretAccessKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %q: %w", opts.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %q: %w", opts.Bucket, err)
		}
	}

	base := opts.PublicBaseURL
	if base == "" {
		scheme := "http"
		if opts.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s", scheme, opts.Endpoint)
	}

	return &MinioStorage{
		client:        client,
		bucket:        opts.Bucket,
		publicBaseURL: strings.TrimRight(base, "/"),
	}, nil
}

// Store uploads the object and returns its public URL. The store cannot
// probe media durations, so Duration is always zero here; callers fall back
// to the client-reported value.
func (s *MinioStorage) Store(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (*contract.StoredMedia, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store object %q: %w", objectName, err)
	}
	return &contract.StoredMedia{
		URL: fmt.Sprintf("%s/%s/%s", s.publicBaseURL, s.bucket, objectName),
	}, nil
}

// Remove deletes a stored object. Missing objects are not an error.
func (s *MinioStorage) Remove(ctx context.Context, objectName string) error {
	err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove object %q: %w", objectName, err)
	}
	return nil
}
