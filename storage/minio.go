// storage/minio.go - Proof photo storage (S3-compatible via MinIO client)
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// PhotoStore issues pre-signed upload URLs so clients push proof photos
// straight to object storage; the API never proxies image bytes.
type PhotoStore struct {
	client *minio.Client
	bucket string
}

func NewPhotoStore(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*PhotoStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage client: %w", err)
	}

	return &PhotoStore{client: client, bucket: bucket}, nil
}

// PresignedUploadURL returns a URL that allows a single PUT of the object
// key for the given validity window.
func (s *PhotoStore) PresignedUploadURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedPutObject(ctx, s.bucket, key, expiry)
	if err != nil {
		return "", fmt.Errorf("presign upload: %w", err)
	}
	return u.String(), nil
}

// PhotoURL is the public locator stored in the completion ledger for an
// uploaded file key.
func (s *PhotoStore) PhotoURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), s.bucket, key)
}
