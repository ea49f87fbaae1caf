// Package blobstore provides the storage abstraction used to read data sets
// and write query results.
//
// BlobStore is the interface for reading and writing data blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, mmap reads and atomic writes
//   - MemoryStore: in-memory store for tests
//   - s3.Store: Amazon S3 with range reads and multipart uploads
//   - minio.Store: MinIO and other S3-compatible servers
//
// # URIs
//
// A Resolver turns a location into a store and a blob name. Plain paths and
// file:// URIs resolve to a LocalStore on the parent directory. Other schemes
// are served by registered factories, keyed by scheme and bucket:
//
//	r := blobstore.NewResolver()
//	r.Register("s3", s3blob.Factory())
//	store, name, err := r.Resolve(ctx, "s3://my-bucket/data/cad.json")
package blobstore
