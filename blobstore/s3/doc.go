// Package s3 stores blobs in Amazon S3 or an S3-compatible service through
// aws-sdk-go-v2.
//
// Reads are ranged GETs, writes stream through the multipart upload
// manager, and listings follow continuation tokens. A Factory serves
// s3://bucket/key locations for a blobstore.Resolver:
//
//	resolver.Register("s3", s3.Factory(s3.WithRegion("eu-central-1"), s3.WithPrefix("neo")))
//
// For a pre-built client:
//
//	awsCfg, err := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(awss3.NewFromConfig(awsCfg), "neo-data", "")
package s3
