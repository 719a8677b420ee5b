package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"salespage/internal/metrics"
	"salespage/internal/model"
	"salespage/internal/storage"
)

// ImagePrefix is the object key prefix of every uploaded image.
const ImagePrefix = "landing-images/"

// sniffLen is how much of an upload is read to detect its real type.
const sniffLen = 3072

// ImageService stores pictures used by landing pages (hero, about).
type ImageService interface {
	// Upload checks that r holds an image no larger than the configured limit
	// and stores it under a fresh key.
	Upload(ctx context.Context, userID string, r io.Reader, filename string, size int64) (*model.Image, error)

	// Open streams a stored image for the media proxy.
	Open(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error)
}

type imageService struct {
	store    storage.Storage
	maxBytes int64
	metrics  *metrics.Collector
	log      *zap.Logger
}

// NewImageService constructs an ImageService. maxBytes <= 0 means 5 MiB.
func NewImageService(store storage.Storage, maxBytes int64, m *metrics.Collector, log *zap.Logger) ImageService {
	if maxBytes <= 0 {
		maxBytes = 5 << 20
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &imageService{store: store, maxBytes: maxBytes, metrics: m, log: log}
}

func (s *imageService) Upload(ctx context.Context, userID string, r io.Reader, filename string, size int64) (*model.Image, error) {
	img, err := s.upload(ctx, userID, r, filename, size)
	s.metrics.Upload(err == nil)
	return img, err
}

func (s *imageService) upload(ctx context.Context, userID string, r io.Reader, filename string, size int64) (*model.Image, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if size > s.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, size, s.maxBytes)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]
	if n == 0 {
		return nil, ErrNotImage
	}

	mt := mimetype.Detect(head)
	contentType := mt.String()
	// SVG can carry scripts and is served from our own origin by the media proxy.
	if !strings.HasPrefix(contentType, "image/") || mt.Is("image/svg+xml") {
		return nil, fmt.Errorf("%w: detected %s", ErrNotImage, contentType)
	}

	ext := mt.Extension()
	if given := strings.ToLower(filepath.Ext(filename)); sameExtension(given, ext) {
		ext = given
	}
	key := ImagePrefix + uuid.NewString() + ext

	body := io.MultiReader(bytes.NewReader(head), r)
	if size <= 0 {
		size = -1
	}
	info, err := s.store.Put(ctx, key, io.LimitReader(body, s.maxBytes+1), storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": filepath.Base(filename),
			"owner":             userID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}
	if info.Size > s.maxBytes {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			s.log.Error("image_rollback_failed", zap.String("key", key), zap.Error(delErr))
		}
		return nil, fmt.Errorf("%w: limit %d", ErrTooLarge, s.maxBytes)
	}

	s.log.Info("image_uploaded",
		zap.String("key", key),
		zap.String("user_id", userID),
		zap.String("content_type", contentType),
		zap.Int64("size", info.Size),
	)
	return &model.Image{
		Key:         key,
		URL:         s.store.PublicURL(key),
		Size:        info.Size,
		ContentType: contentType,
	}, nil
}

// sameExtension also accepts the alternate spellings of the jpeg extension.
func sameExtension(a, b string) bool {
	jpeg := map[string]bool{".jpg": true, ".jpeg": true, ".jpe": true}
	return a == b || jpeg[a] && jpeg[b]
}

func (s *imageService) Open(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	key = strings.TrimLeft(key, "/")
	if !strings.HasPrefix(key, ImagePrefix) || strings.Contains(key, "..") {
		return nil, storage.ObjectInfo{}, ErrNotFound
	}
	rc, info, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, storage.ObjectInfo{}, ErrNotFound
		}
		return nil, storage.ObjectInfo{}, err
	}
	return rc, info, nil
}
