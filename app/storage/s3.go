package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Disk is the abstracted storage target. Unlike LocalDisk the bucket is
// not served by this process, so URL builds the bucket-facing address.
type S3Disk struct {
	uploader *manager.Uploader
	client   *s3.Client
	bucket   string
	region   string
}

func NewS3Disk(ctx context.Context, bucket, region string) (*S3Disk, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return &S3Disk{
		uploader: manager.NewUploader(client),
		client:   client,
		bucket:   bucket,
		region:   region,
	}, nil
}

func (d *S3Disk) Put(ctx context.Context, relPath string, body io.Reader, contentType string) error {
	_, err := d.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(d.bucket),
		Key:         aws.String(relPath),
		Body:        body,
		ACL:         "public-read",
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to s3: %w", relPath, err)
	}
	return nil
}

func (d *S3Disk) Delete(ctx context.Context, relPath string) error {
	_, err := d.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(relPath),
	})
	return err
}

func (d *S3Disk) URL(relPath string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", d.bucket, d.region, relPath)
}
