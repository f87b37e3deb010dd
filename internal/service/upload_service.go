package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/luxestate/luxestate-api/internal/media"
	"github.com/luxestate/luxestate-api/internal/repository/ports"
)

var ErrUploadValidation = errors.New("upload validation failed")

var allowedUploadMIMEs = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

type ImageUpload struct {
	Reader      io.Reader
	Size        int64
	FileName    string
	ContentType string
}

type UploadServiceConfig struct {
	Bucket        string
	MaxImageBytes int64
	MaxDimension  int
}

// UploadService turns admin-submitted listing photos into webp objects in
// object storage and hands back their public URLs.
type UploadService struct {
	storage      ports.ObjectStorage
	processor    media.Processor
	bucket       string
	maxBytes     int64
	maxDimension int
}

func NewUploadService(storage ports.ObjectStorage, processor media.Processor, cfg UploadServiceConfig) *UploadService {
	maxBytes := cfg.MaxImageBytes
	if maxBytes <= 0 {
		maxBytes = 5 * 1024 * 1024
	}
	maxDimension := cfg.MaxDimension
	if maxDimension <= 0 {
		maxDimension = media.DefaultMaxDimension
	}
	return &UploadService{
		storage:      storage,
		processor:    processor,
		bucket:       strings.TrimSpace(cfg.Bucket),
		maxBytes:     maxBytes,
		maxDimension: maxDimension,
	}
}

func (s *UploadService) UploadImages(ctx context.Context, uploads []ImageUpload) ([]string, error) {
	if len(uploads) == 0 {
		return nil, fmt.Errorf("%w: no files uploaded", ErrUploadValidation)
	}

	urls := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		if upload.Size > s.maxBytes {
			return nil, fmt.Errorf("%w: %s exceeds the %d byte limit", ErrUploadValidation, upload.FileName, s.maxBytes)
		}
		contentType := strings.ToLower(strings.TrimSpace(upload.ContentType))
		if _, ok := allowedUploadMIMEs[contentType]; !ok {
			return nil, fmt.Errorf("%w: unsupported type %s", ErrUploadValidation, upload.ContentType)
		}

		result, err := s.processor.Process(ctx, media.Upload{
			Reader:      upload.Reader,
			Size:        upload.Size,
			FileName:    upload.FileName,
			ContentType: contentType,
		}, s.maxDimension)
		if err != nil {
			return nil, err
		}

		objectName := fmt.Sprintf("listings/%s.webp", uuid.NewString())
		url, err := s.storage.Upload(ctx, s.bucket, objectName, result.ContentType,
			bytes.NewReader(result.Bytes), int64(len(result.Bytes)))
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
