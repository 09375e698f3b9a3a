package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rxquote/internal/config"
	"rxquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Signer issues presigned GET URLs for prescription images.
type S3Signer struct {
	presign *s3.PresignClient
	bucket  string
}

var _ interfaces.IFileSigner = (*S3Signer)(nil)

// NewS3Signer builds a signer for cfg.Bucket. A custom endpoint (MinIO, localstack) switches
// to path-style addressing.
func NewS3Signer(awsCfg aws.Config, cfg config.StorageConfig) *S3Signer {
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Region != "" {
			o.Region = cfg.Region
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Signer{presign: s3.NewPresignClient(client), bucket: cfg.Bucket}
}

func (s *S3Signer) SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	key := strings.TrimPrefix(path, "/")
	if key == "" {
		return "", fmt.Errorf("empty object key")
	}
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return req.URL, nil
}
