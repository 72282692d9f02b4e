// Package storage persists uploaded portfolio images and hands back the
// public URLs embedded in item records. Two backends exist: local disk
// (served by the HTTP server under /uploads) and S3-compatible object
// storage.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Store saves one image blob under a generated key and returns the public
// URL clients use to display it.
type Store interface {
	Save(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// NewKey returns a date-sharded object key with a uuid leaf and the
// original file extension, e.g. "2026/8/29/9f1c....png".
func NewKey(ext string) string {
	d := time.Now()
	return fmt.Sprintf("%d/%d/%d/%v%s", d.Year(), d.Month(), d.Day(), uuid.New(), ext)
}
