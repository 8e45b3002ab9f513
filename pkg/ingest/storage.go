package ingest

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// AudioStore persists call audio blobs and hands back nothing but errors;
// the object key is chosen by the caller and recorded on the call row.
type AudioStore interface {
	Put(ctx context.Context, key, contentType string, size int64, body io.Reader) error
}

// StorageConfig holds object storage settings.
type StorageConfig struct {
	Bucket       string
	Region       string
	Endpoint     string
	UsePathStyle bool
}

// LoadStorageConfigFromEnv loads object storage configuration from
// environment variables. Endpoint and path-style addressing support
// S3-compatible stores (MinIO, localstack).
func LoadStorageConfigFromEnv() (StorageConfig, error) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		return StorageConfig{}, fmt.Errorf("S3_BUCKET is required")
	}
	pathStyle, _ := strconv.ParseBool(os.Getenv("S3_USE_PATH_STYLE"))
	return StorageConfig{
		Bucket:       bucket,
		Region:       getEnvOrDefault("S3_REGION", "us-east-1"),
		Endpoint:     os.Getenv("S3_ENDPOINT"),
		UsePathStyle: pathStyle,
	}, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// S3AudioStore stores audio in an S3 bucket.
type S3AudioStore struct {
	client *s3.Client
	bucket string
}

// NewS3AudioStore builds an S3-backed store. Credentials come from the
// standard AWS credential chain.
func NewS3AudioStore(ctx context.Context, cfg StorageConfig) (*S3AudioStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = &cfg.Endpoint
		}
		o.UsePathStyle = cfg.UsePathStyle
	})
	return &S3AudioStore{client: client, bucket: cfg.Bucket}, nil
}

// Put uploads one audio object.
func (s *S3AudioStore) Put(ctx context.Context, key, contentType string, size int64, body io.Reader) error {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        &s.bucket,
		Key:           &key,
		Body:          body,
		ContentType:   &contentType,
		ContentLength: &size,
	})
	if err != nil {
		return fmt.Errorf("failed to store audio object %s: %w", key, err)
	}
	return nil
}
