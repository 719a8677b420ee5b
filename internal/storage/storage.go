// Package storage contains the object store used for landing page images.
// Implementations stream content and never touch local disk.
package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("object not found")

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known, or -1 when unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is an S3-compatible object storage client.
type Storage interface {
	// Put uploads an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PublicURL returns the address browsers use to load the object.
	PublicURL(key string) string
}

// MediaPath is the API prefix that proxies objects when the bucket is not public.
const MediaPath = "/media/"

// publicURL joins a base with an object key. An empty publicBase falls back
// to the API media proxy under apiBase.
func publicURL(publicBase, apiBase, key string) string {
	key = strings.TrimLeft(key, "/")
	if publicBase != "" {
		return strings.TrimRight(publicBase, "/") + "/" + key
	}
	return strings.TrimRight(apiBase, "/") + MediaPath + key
}
