package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"

	"github.com/minio/minio-go/v7"

	"github.com/hupe1980/neodb/blobstore"
)

// API is the subset of *minio.Client used by Store.
type API interface {
	StatObject(ctx context.Context, bucket, key string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	GetObject(ctx context.Context, bucket, key string, opts minio.GetObjectOptions) (*minio.Object, error)
	PutObject(ctx context.Context, bucket, key string, r io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucket, key string, opts minio.RemoveObjectOptions) error
	ListObjects(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
}

var _ API = (*minio.Client)(nil)

// Store serves blobs from a bucket of a MinIO or other S3-compatible server.
type Store struct {
	api    API
	bucket string
	prefix string
}

var _ blobstore.BlobStore = (*Store)(nil)

// NewStore returns a store rooted at prefix inside bucket.
func NewStore(api API, bucket, prefix string) *Store {
	return &Store{api: api, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

func (s *Store) name(key string) string {
	if s.prefix == "" {
		return key
	}
	return strings.TrimPrefix(strings.TrimPrefix(key, s.prefix), "/")
}

func notFound(err error) bool {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NotFound":
		return true
	}
	return false
}

func (s *Store) head(ctx context.Context, name string) (minio.ObjectInfo, error) {
	key := s.key(name)
	info, err := s.api.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	switch {
	case err == nil:
		return info, nil
	case notFound(err):
		return info, fmt.Errorf("minio://%s/%s: %w", s.bucket, key, blobstore.ErrNotFound)
	default:
		return info, fmt.Errorf("minio: stat %s: %w", key, err)
	}
}

func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	info, err := s.head(ctx, name)
	if err != nil {
		return nil, err
	}
	return &object{api: s.api, bucket: s.bucket, key: s.key(name), size: info.Size}, nil
}

func (s *Store) Stat(ctx context.Context, name string) (blobstore.Info, error) {
	info, err := s.head(ctx, name)
	if err != nil {
		return blobstore.Info{}, err
	}
	return blobstore.Info{Size: info.Size, ModTime: info.LastModified}, nil
}

// Put stores data under name in a single request.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	opts := minio.PutObjectOptions{ContentType: blobstore.ContentType(name)}
	if _, err := s.api.PutObject(ctx, s.bucket, s.key(name), bytes.NewReader(data), int64(len(data)), opts); err != nil {
		return fmt.Errorf("minio: put %s: %w", name, err)
	}
	return nil
}

// Create streams writes into an upload of unknown size. The object
// becomes visible on Close.
func (s *Store) Create(ctx context.Context, name string) (blobstore.WritableBlob, error) {
	opts := minio.PutObjectOptions{ContentType: blobstore.ContentType(name)}
	key := s.key(name)

	return blobstore.StreamUpload(func(r io.Reader) error {
		_, err := s.api.PutObject(ctx, s.bucket, key, r, -1, opts)
		return err
	}), nil
}

// Delete removes name. Missing objects are not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	err := s.api.RemoveObject(ctx, s.bucket, s.key(name), minio.RemoveObjectOptions{})
	if err != nil && !notFound(err) {
		return fmt.Errorf("minio: delete %s: %w", name, err)
	}
	return nil
}

// List returns the sorted names below prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	opts := minio.ListObjectsOptions{Prefix: prefix, Recursive: true}
	if s.prefix != "" {
		opts.Prefix = s.prefix + "/" + prefix
	}

	var names []string
	for obj := range s.api.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("minio: list %q: %w", prefix, obj.Err)
		}
		if name := s.name(obj.Key); name != "" {
			names = append(names, name)
		}
	}

	slices.Sort(names)
	return names, nil
}
