// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package file

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
)

// Writer stores a file and returns its public URL.
type Writer interface {
	WriteFile(ctx context.Context, path string, contentType string, data []byte) (string, error)
}

// IO writes files to a Cloud Storage bucket.
type IO struct {
	storage *storage.Client
	bucket  string
}

func NewIO(storage *storage.Client, bucket string) *IO {
	return &IO{
		storage: storage,
		bucket:  bucket,
	}
}

func (io *IO) WriteFile(ctx context.Context, path string, contentType string, data []byte) (string, error) {
	wc := io.storage.Bucket(io.bucket).Object(path).NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := wc.Write(data); err != nil {
		_ = wc.Close()
		return "", fmt.Errorf("file: writing %s: %w", path, err)
	}
	// The object only exists once Close succeeds.
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("file: finalizing %s: %w", path, err)
	}
	return PublicURL(io.bucket, path), nil
}

func PublicURL(bucket, path string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, path)
}
