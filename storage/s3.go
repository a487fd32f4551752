package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"inkpress/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// CoverStore uploads cover images to S3-compatible object storage and hands
// back a stable URL. The workflow treats that URL as opaque.
type CoverStore struct {
	client   *s3.Client
	endpoint string
	bucket   string
}

// NewCoverStore builds the S3 client against the configured endpoint.
func NewCoverStore(cfg *config.Config) (*CoverStore, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(
		func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:               cfg.S3Endpoint,
				SigningRegion:     cfg.S3Region,
				HostnameImmutable: true,
			}, nil
		},
	)
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3Key, cfg.S3Secret, "")),
		awsconfig.WithEndpointResolverWithOptions(resolver),
	)
	if err != nil {
		return nil, err
	}

	return &CoverStore{
		client:   s3.NewFromConfig(awsCfg),
		endpoint: cfg.S3Endpoint,
		bucket:   cfg.S3Bucket,
	}, nil
}

// Upload stores the image bytes and returns the public URL.
func (s *CoverStore) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	key := fmt.Sprintf("covers/%d-%s", time.Now().UnixNano(), filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key), nil
}
