package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/luxestate/luxestate-api/internal/media"
)

type fakeStorage struct {
	uploaded []struct {
		bucket      string
		objectName  string
		contentType string
		size        int64
	}
	err error
}

func (f *fakeStorage) Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	f.uploaded = append(f.uploaded, struct {
		bucket      string
		objectName  string
		contentType string
		size        int64
	}{bucket: bucket, objectName: objectName, contentType: contentType, size: size})
	if f.err != nil {
		return "", f.err
	}
	return "https://storage/" + objectName, nil
}

type fakeProcessor struct {
	result *media.Result
	err    error
	calls  int
}

func (f *fakeProcessor) Process(ctx context.Context, upload media.Upload, maxDimension int) (*media.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &media.Result{Bytes: []byte("webp-bytes"), ContentType: "image/webp"}, nil
}

func jpegUpload() ImageUpload {
	return ImageUpload{
		Reader:      strings.NewReader("jpeg-bytes"),
		Size:        9,
		FileName:    "villa.jpg",
		ContentType: "image/jpeg",
	}
}

func TestUploadImages(t *testing.T) {
	ctx := context.Background()

	t.Run("stores processed bytes under listings/", func(t *testing.T) {
		storage := &fakeStorage{}
		processor := &fakeProcessor{}
		svc := NewUploadService(storage, processor, UploadServiceConfig{Bucket: "listings-bucket"})

		urls, err := svc.UploadImages(ctx, []ImageUpload{jpegUpload()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(urls) != 1 || !strings.HasPrefix(urls[0], "https://storage/listings/") {
			t.Fatalf("unexpected urls: %v", urls)
		}
		stored := storage.uploaded[0]
		if stored.bucket != "listings-bucket" || stored.contentType != "image/webp" {
			t.Fatalf("unexpected upload: %+v", stored)
		}
		if !strings.HasSuffix(stored.objectName, ".webp") {
			t.Fatalf("object name should end in .webp, got %q", stored.objectName)
		}
		if stored.size != int64(len("webp-bytes")) {
			t.Fatalf("size should reflect processed bytes, got %d", stored.size)
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		svc := NewUploadService(&fakeStorage{}, &fakeProcessor{}, UploadServiceConfig{Bucket: "b"})
		if _, err := svc.UploadImages(ctx, nil); !errors.Is(err, ErrUploadValidation) {
			t.Fatalf("expected ErrUploadValidation, got %v", err)
		}
	})

	t.Run("rejects oversize files before processing", func(t *testing.T) {
		processor := &fakeProcessor{}
		svc := NewUploadService(&fakeStorage{}, processor, UploadServiceConfig{Bucket: "b", MaxImageBytes: 4})

		upload := jpegUpload()
		upload.Size = 5
		if _, err := svc.UploadImages(ctx, []ImageUpload{upload}); !errors.Is(err, ErrUploadValidation) {
			t.Fatalf("expected ErrUploadValidation, got %v", err)
		}
		if processor.calls != 0 {
			t.Fatal("oversize file should not reach the processor")
		}
	})

	t.Run("rejects unsupported content types", func(t *testing.T) {
		svc := NewUploadService(&fakeStorage{}, &fakeProcessor{}, UploadServiceConfig{Bucket: "b"})
		upload := jpegUpload()
		upload.ContentType = "image/gif"
		if _, err := svc.UploadImages(ctx, []ImageUpload{upload}); !errors.Is(err, ErrUploadValidation) {
			t.Fatalf("expected ErrUploadValidation, got %v", err)
		}
	})

	t.Run("processor failure aborts the batch", func(t *testing.T) {
		storage := &fakeStorage{}
		svc := NewUploadService(storage, &fakeProcessor{err: errors.New("ffmpeg exploded")}, UploadServiceConfig{Bucket: "b"})
		if _, err := svc.UploadImages(ctx, []ImageUpload{jpegUpload()}); err == nil {
			t.Fatal("expected processor error to surface")
		}
		if len(storage.uploaded) != 0 {
			t.Fatal("nothing should be stored when processing fails")
		}
	})
}
