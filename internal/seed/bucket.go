package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"salesboard/internal/config"
	"salesboard/internal/model"
)

// BucketSource reads the seed dataset object from an S3-compatible bucket.
// It is selected over HTTPSource when SEED_BUCKET is configured, for
// deployments where the dataset lives in private object storage.
type BucketSource struct {
	client *minio.Client
	bucket string
	object string
}

// NewBucketSource creates an S3-compatible seed source backed by MinIO.
func NewBucketSource(cfg config.SeedConfig) (*BucketSource, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required")
	}
	if cfg.Bucket == "" || cfg.Object == "" {
		return nil, fmt.Errorf("seed bucket and object are required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &BucketSource{client: cli, bucket: cfg.Bucket, object: cfg.Object}, nil
}

var _ Source = (*BucketSource)(nil)

// Fetch streams the object and decodes it; the dataset is never written to disk.
func (s *BucketSource) Fetch(ctx context.Context) ([]model.SaleRecord, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get seed object: %w", err)
	}
	defer obj.Close()

	var records []model.SaleRecord
	if err := json.NewDecoder(obj).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode seed object: %w", err)
	}
	return records, nil
}
