package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rotisserie/eris"
	"github.com/terraenergy/prospect-quote-api/internal/models"
)

// S3PutObjectAPI is the subset of the S3 client used for uploads.
type S3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Storage uploads documents to one bucket.
type S3Storage struct {
	client S3PutObjectAPI
	bucket string
	region string
}

func NewS3Storage(client S3PutObjectAPI, bucket, region string) *S3Storage {
	return &S3Storage{client: client, bucket: bucket, region: region}
}

func (s *S3Storage) Put(ctx context.Context, key string, body []byte, contentType string) (*models.StoredDocument, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return nil, eris.Wrapf(err, "s3: put %s/%s", s.bucket, key)
	}

	return &models.StoredDocument{
		Bucket: s.bucket,
		Key:    key,
		URL:    s.ObjectURL(key),
	}, nil
}

// ObjectURL is the virtual-hosted style URL of key.
func (s *S3Storage) ObjectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
