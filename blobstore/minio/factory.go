package minio

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/neodb/blobstore"
)

// Config holds the connection settings of a MinIO server.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	Secure    bool
	// Prefix is prepended to all keys.
	Prefix string
}

// NewClient creates a MinIO client for cfg. No request is made.
func NewClient(cfg Config) (*minio.Client, error) {
	return minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
		Region: cfg.Region,
	})
}

// Factory returns a blobstore.Factory that opens a Store for any bucket of
// the server described by cfg.
func Factory(cfg Config) blobstore.Factory {
	return func(_ context.Context, bucket string) (blobstore.BlobStore, error) {
		client, err := NewClient(cfg)
		if err != nil {
			return nil, err
		}
		return NewStore(client, bucket, cfg.Prefix), nil
	}
}
