// Package storage stores offline content bundles in MinIO.
package storage

import (
	"bytes"
	"context"
	"time"

	"vaccine-village-go/internal/config"
	"vaccine-village-go/pkg/log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// BundleStore puts objects into one bucket and hands out presigned URLs.
type BundleStore struct {
	client *minio.Client
	bucket string
	expiry time.Duration
}

// NewBundleStore connects to MinIO and makes sure the bucket exists.
func NewBundleStore(ctx context.Context, cfg config.MinIOConfig) (*BundleStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, err
	}
	if !exists {
		log.Infof("Bucket '%s' does not exist, creating it", cfg.BucketName)
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}
	log.Infof("MinIO bucket '%s' ready", cfg.BucketName)

	expiry := cfg.URLExpiry
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &BundleStore{client: client, bucket: cfg.BucketName, expiry: expiry}, nil
}

// Exists reports whether objectName is already stored.
func (s *BundleStore) Exists(ctx context.Context, objectName string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, objectName, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return false, nil
	}
	return false, err
}

// Put uploads data as objectName.
func (s *BundleStore) Put(ctx context.Context, objectName string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	return err
}

// PresignedURL returns a time-limited download URL for objectName.
func (s *BundleStore) PresignedURL(ctx context.Context, objectName string) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, objectName, s.expiry, nil)
	if err != nil {
		log.Errorf("Error generating presigned URL: %s", err)
		return "", err
	}
	return u.String(), nil
}
