package s3

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"doc-vault-api/config"
)

type Client struct {
	logger   *zap.Logger
	region   string
	endpoint string
	bucket   string
	uploader *manager.Uploader
	s3       *awss3.Client
}

func New(
	ctx context.Context,
	logger *zap.Logger,
	cfg config.S3,
) (*Client, error) {
	opts := []func(*awss3.Options){}
	if cfg.Endpoint != "" {
		opts = append(opts, func(o *awss3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			// path-style is required for MinIO-compatible endpoints
			o.UsePathStyle = true
		})
	}

	awsCfg := aws.Config{
		Region: cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
	}
	s3Client := awss3.NewFromConfig(awsCfg, opts...)

	logger.Info("s3 client initialized",
		zap.String("region", cfg.Region),
		zap.String("bucket", cfg.BucketUploads),
	)

	return &Client{
		logger:   logger,
		region:   cfg.Region,
		endpoint: cfg.Endpoint,
		bucket:   cfg.BucketUploads,
		uploader: manager.NewUploader(s3Client),
		s3:       s3Client,
	}, nil
}

// Upload streams the object to the uploads bucket and returns its public
// URL. The transfer runs to completion or failure; callers commit ledger
// and metadata only after it succeeds.
func (c *Client) Upload(ctx context.Context, r io.Reader, key, contentType string) (string, error) {
	_, err := c.uploader.Upload(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload %q: %w", key, err)
	}

	return c.GetPublicURL(key), nil
}

func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.s3.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %q: %w", key, err)
	}

	return nil
}

func (c *Client) GetPublicURL(key string) string {
	if c.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(c.endpoint, "/"), c.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)
}

func (c *Client) GetBucket() string { return c.bucket }
