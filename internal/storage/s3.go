// Package storage provides presigned-URL access to the S3-compatible
// image store. The service never touches image bytes itself; clients
// upload and download directly and only the object key is persisted.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Presign lifetime for upload and download URLs.
const urlExpiration = 15 * time.Minute

// Options configures access to the image bucket.
type Options struct {
	Endpoint  string // Base endpoint, e.g. a minio address; empty for AWS
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

// FileStorage issues presigned URLs for the image bucket.
type FileStorage struct {
	bucket  string
	presign *s3.PresignClient
}

// New creates a FileStorage from static credentials.
func New(ctx context.Context, opts Options) (*FileStorage, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(opts.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey, opts.SecretKey, "",
		)),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.Endpoint != ""
	})

	return &FileStorage{
		bucket:  opts.Bucket,
		presign: s3.NewPresignClient(client),
	}, nil
}

// newObjectKey returns a date-partitioned unique object key.
func newObjectKey() string {
	d := time.Now()
	return fmt.Sprintf("photos/%d/%02d/%02d/%s", d.Year(), d.Month(), d.Day(), uuid.New())
}

// PresignUpload returns a fresh object key and a presigned PUT URL the
// client uploads the image bytes to.
func (s *FileStorage) PresignUpload(ctx context.Context) (string, string, error) {
	key := newObjectKey()

	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(urlExpiration))
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

// PresignDownload returns a presigned GET URL for a stored object key.
func (s *FileStorage) PresignDownload(ctx context.Context, key string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(urlExpiration))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
