package media

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// Uploader keeps an audit copy of uploaded import files in object storage.
// Importing works without it; callers treat a nil Uploader as disabled.
type Uploader struct {
	client *minio.Client
	bucket string
}

func NewUploader(client *minio.Client, bucket string) *Uploader {
	return &Uploader{client: client, bucket: bucket}
}

// SaveImportFile stores the raw spreadsheet bytes under a date-prefixed key
// and returns the object name.
func (u *Uploader) SaveImportFile(ctx context.Context, fileName string, data []byte) (string, error) {
	objectName := fmt.Sprintf("imports/%s/%s%s",
		time.Now().UTC().Format("2006-01-02"),
		uuid.New().String(),
		path.Ext(fileName),
	)

	_, err := u.client.PutObject(ctx, u.bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"},
	)
	if err != nil {
		return "", err
	}
	return objectName, nil
}
