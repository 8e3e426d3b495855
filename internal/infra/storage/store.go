package storage

import (
	"context"
	"log"

	"github.com/BruksfildServices01/essentia-tours/internal/config"
)

// Store saves uploaded files and returns the public URL they are served at.
type Store interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// New picks S3-compatible storage when a bucket is configured and falls
// back to the local upload directory otherwise.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	if cfg.StorageEnabled() {
		s, err := NewS3(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.Printf("[Storage] using bucket %s", cfg.Storage.Bucket)
		return s, nil
	}

	log.Printf("[Storage] bucket not configured, saving uploads to %s", cfg.Storage.UploadDir)
	return NewLocal(cfg.Storage.UploadDir, "/uploads"), nil
}
