package storage

import (
	"bytes"
	"context"
	"fmt"

	appconfig "filebox/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Store writes blobs to an S3-compatible bucket. The locator is the object
// key.
type S3Store struct {
	client *s3.Client
	bucket string
}

// NewS3Store builds an S3 client from the storage configuration. It works
// against AWS as well as MinIO-style endpoints when BaseEndpoint is set.
func NewS3Store(ctx context.Context, cfg appconfig.Storage) (*S3Store, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3ID,
			cfg.S3Key,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("loading S3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{client: client, bucket: cfg.S3Bucket}, nil
}

// Store puts data under a freshly generated UUID key. Any failure wraps
// ErrUnavailable.
func (s *S3Store) Store(ctx context.Context, data []byte) (string, error) {
	key := uuid.NewString()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", fmt.Errorf("%w: putting object: %v", ErrUnavailable, err)
	}

	return key, nil
}
