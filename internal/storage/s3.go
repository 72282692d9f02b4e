package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Owen-Kz/bn-portfolio/internal/config"
)

// S3Store stores images in an S3-compatible bucket (AWS or MinIO). Objects
// are written publicly readable; the returned URL points straight at the
// object.
type S3Store struct {
	client *s3.Client
	bucket string
	// urlBase is the prefix objects are reachable under, without a
	// trailing slash.
	urlBase string
}

// NewS3Store builds a client from static credentials in the app config.
// A non-empty S3Endpoint switches the client to a custom endpoint.
func NewS3Store(ctx context.Context, cfg config.Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3Access, cfg.S3Secret, "",
		)))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})
	urlBase := fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	if cfg.S3Endpoint != "" {
		urlBase = fmt.Sprintf("%s/%s", cfg.S3Endpoint, cfg.S3Bucket)
	}
	return &S3Store{client: client, bucket: cfg.S3Bucket, urlBase: urlBase}, nil
}

func (s *S3Store) Save(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return s.urlBase + "/" + key, nil
}
