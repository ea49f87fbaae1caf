package s3

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hupe1980/neodb/blobstore"
)

type factoryOptions struct {
	region       string
	endpoint     string
	usePathStyle bool
	prefix       string
	upload       UploadConfig
}

// FactoryOption configures Factory.
type FactoryOption func(*factoryOptions)

// WithRegion overrides the region from the shared AWS configuration.
func WithRegion(region string) FactoryOption {
	return func(o *factoryOptions) { o.region = region }
}

// WithEndpoint points the client at an S3-compatible endpoint and enables
// path-style addressing.
func WithEndpoint(endpoint string) FactoryOption {
	return func(o *factoryOptions) {
		o.endpoint = endpoint
		o.usePathStyle = true
	}
}

// WithPrefix sets the root prefix of every store the factory opens.
func WithPrefix(prefix string) FactoryOption {
	return func(o *factoryOptions) { o.prefix = prefix }
}

// WithUploadConfig sets the upload settings.
func WithUploadConfig(cfg UploadConfig) FactoryOption {
	return func(o *factoryOptions) { o.upload = cfg }
}

// Factory returns a blobstore.Factory that opens a Store per bucket using
// the default AWS credential chain.
func Factory(optFns ...FactoryOption) blobstore.Factory {
	opts := factoryOptions{upload: DefaultUploadConfig()}
	for _, fn := range optFns {
		fn(&opts)
	}

	return func(ctx context.Context, bucket string) (blobstore.BlobStore, error) {
		var loadOpts []func(*config.LoadOptions) error
		if opts.region != "" {
			loadOpts = append(loadOpts, config.WithRegion(opts.region))
		}

		cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, err
		}

		client := s3.NewFromConfig(cfg, func(o *s3.Options) {
			if opts.endpoint != "" {
				o.BaseEndpoint = aws.String(opts.endpoint)
			}
			o.UsePathStyle = opts.usePathStyle
		})

		return NewStoreWithConfig(client, bucket, opts.prefix, opts.upload), nil
	}
}
