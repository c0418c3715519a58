package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/config"
)

const (
	manifestCacheControl = "public, max-age=60"
	imageCacheControl    = "public, max-age=31536000"
)

// S3Publisher uploads the static gallery assets to a bucket.
type S3Publisher struct {
	client    *s3.Client
	bucket    string
	keyPrefix string
	publicURL string
}

func NewS3Publisher(cfg config.S3Config) *S3Publisher {
	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			if cfg.AccessKeyID != "" {
				o.Credentials = credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretAccessKey,
					"",
				)
			}
		},
	}

	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.UsePathStyle
		})
	}

	return &S3Publisher{
		client:    s3.New(s3.Options{}, opts...),
		bucket:    cfg.Bucket,
		keyPrefix: strings.Trim(cfg.KeyPrefix, "/"),
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
	}
}

func (s *S3Publisher) objectKey(key string) string {
	key = strings.TrimPrefix(key, "/")
	if s.keyPrefix == "" {
		return key
	}
	return path.Join(s.keyPrefix, key)
}

func (s *S3Publisher) Upload(ctx context.Context, key string, reader io.Reader, contentType string, size int64) error {
	cacheControl := imageCacheControl
	if strings.HasSuffix(key, ".json") {
		cacheControl = manifestCacheControl
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.objectKey(key)),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
		CacheControl:  aws.String(cacheControl),
	})
	if err != nil {
		return fmt.Errorf("uploading to s3: %w", err)
	}
	return nil
}

func (s *S3Publisher) GetURL(key string) string {
	key = s.objectKey(key)
	if s.publicURL != "" {
		return fmt.Sprintf("%s/%s", s.publicURL, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}
