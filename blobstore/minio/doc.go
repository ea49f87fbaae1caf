// Package minio stores blobs on a MinIO server or any S3-compatible service
// reachable through minio-go, such as Ceph or Garage.
//
// Store depends only on the API interface, which *minio.Client satisfies:
//
//	client, err := minio.NewClient(minio.Config{Endpoint: "localhost:9000", AccessKey: ak, SecretKey: sk})
//	store := minio.NewStore(client, "neo-data", "exports")
//
// Register Factory to serve minio://bucket/key locations:
//
//	resolver.Register("minio", minio.Factory(cfg))
package minio
