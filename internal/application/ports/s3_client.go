package ports

import (
	"context"
	"io"
)

type S3Client interface {
	Upload(ctx context.Context, r io.Reader, key, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	GetPublicURL(key string) string
	GetBucket() string
}
