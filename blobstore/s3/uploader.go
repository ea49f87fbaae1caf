package s3

import "github.com/aws/aws-sdk-go-v2/feature/s3/manager"

// UploadConfig tunes the multipart uploader behind Store.Create.
// Zero PartSize or Concurrency keeps the SDK default.
type UploadConfig struct {
	PartSize          int64
	Concurrency       int
	EnableChecksum    bool // CRC32C on every object
	LeavePartsOnError bool
}

// DefaultUploadConfig uses 8 MiB parts, five workers and CRC32C checksums.
func DefaultUploadConfig() UploadConfig {
	return UploadConfig{PartSize: 8 << 20, Concurrency: 5, EnableChecksum: true}
}

func newUploader(client Client, cfg UploadConfig) *manager.Uploader {
	return manager.NewUploader(client, func(u *manager.Uploader) {
		if cfg.PartSize > 0 {
			u.PartSize = cfg.PartSize
		}
		if cfg.Concurrency > 0 {
			u.Concurrency = cfg.Concurrency
		}
		u.LeavePartsOnError = cfg.LeavePartsOnError
	})
}
