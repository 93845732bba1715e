package filesystem

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// CacheControl is sent with every uploaded object.
const CacheControl = "max-age=3600"

type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Store struct {
	client  S3API
	bucket  string
	baseURL string
}

type S3Option struct {
	Bucket string
	Region string
	// PublicBaseURL overrides the virtual-hosted bucket URL, e.g. a CDN in front of the bucket.
	PublicBaseURL string
}

func NewS3Store(ctx context.Context, opt S3Option) (*S3Store, error) {
	var loadOpts []func(*config.LoadOptions) error
	if opt.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opt.Region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewS3StoreWithClient(s3.NewFromConfig(cfg), opt), nil
}

func NewS3StoreWithClient(client S3API, opt S3Option) *S3Store {
	base := strings.TrimRight(opt.PublicBaseURL, "/")
	if base == "" {
		region := opt.Region
		if region == "" {
			region = "us-east-1"
		}
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", opt.Bucket, region)
	}
	return &S3Store{client: client, bucket: opt.Bucket, baseURL: base}
}

// Put uploads body under key and refuses to overwrite an existing object.
func (s *S3Store) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String(CacheControl),
		IfNoneMatch:   aws.String("*"),
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s to bucket %s: %w", key, s.bucket, err)
	}
	return nil
}

func (s *S3Store) PublicURL(key string) string {
	return s.baseURL + "/" + escapeKey(key)
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
