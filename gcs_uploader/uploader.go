// Package gcsuploader copies generated report artifacts to Google Cloud
// Storage.
package gcsuploader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/neehar-mavuduru/deti-coin-analysis/config"
)

// Stats tracks upload results.
type Stats struct {
	Successful int
	Failed     int
	TotalBytes int64
}

// putFunc writes one local file to bucket/object and returns its size.
type putFunc func(ctx context.Context, filePath, object string) (int64, error)

// Uploader writes files to a single bucket, one object per file.
type Uploader struct {
	config config.UploadConfig
	client *storage.Client
	put    putFunc
	stats  Stats
}

// New creates an uploader backed by a GCS client.
func New(ctx context.Context, cfg config.UploadConfig) (*Uploader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []option.ClientOption{option.WithGRPCConnectionPool(cfg.GRPCPoolSize)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint), option.WithoutAuthentication())
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	u := &Uploader{config: cfg, client: client}
	u.put = u.putObject
	return u, nil
}

// Close releases the storage client.
func (u *Uploader) Close() error {
	if u.client == nil {
		return nil
	}
	return u.client.Close()
}

// Stats returns the results of uploads so far.
func (u *Uploader) Stats() Stats {
	return u.stats
}

// UploadFiles uploads each path, retrying failures. Every file is attempted;
// the returned error joins the failures.
func (u *Uploader) UploadFiles(ctx context.Context, paths ...string) error {
	var errs []error
	for _, path := range paths {
		object := u.objectName(path)
		size, err := u.uploadWithRetry(ctx, path, object)
		if err != nil {
			slog.Error("upload failed", "file", path, "retries", u.config.MaxRetries, "error", err)
			u.stats.Failed++
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		u.stats.Successful++
		u.stats.TotalBytes += size
		slog.Info("uploaded artifact", "file", path, "url", "gs://"+u.config.Bucket+"/"+object, "bytes", size)
	}
	return errors.Join(errs...)
}

func (u *Uploader) uploadWithRetry(ctx context.Context, path, object string) (int64, error) {
	var lastErr error
	for attempt := 0; attempt <= u.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			case <-time.After(u.config.RetryDelay):
			}
		}

		size, err := u.put(ctx, path, object)
		if err == nil {
			return size, nil
		}
		lastErr = err
		if attempt < u.config.MaxRetries {
			slog.Warn("upload attempt failed, retrying",
				"attempt", attempt+1, "of", u.config.MaxRetries+1, "file", path, "error", err)
		}
	}
	return 0, fmt.Errorf("upload failed after %d attempts: %w", u.config.MaxRetries+1, lastErr)
}

// putObject streams the file into a new object and checks the stored size.
func (u *Uploader) putObject(ctx context.Context, filePath, object string) (int64, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat file: %w", err)
	}

	obj := u.client.Bucket(u.config.Bucket).Object(object)
	w := obj.NewWriter(ctx)
	w.ContentType = contentType(filePath)

	if _, err := io.Copy(w, file); err != nil {
		w.Close()
		return 0, fmt.Errorf("write error: %w", err)
	}
	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("close error: %w", err)
	}

	attrs, err := obj.Attrs(ctx)
	if err != nil {
		return 0, fmt.Errorf("attrs error: %w", err)
	}
	if attrs.Size != info.Size() {
		_ = obj.Delete(ctx)
		return 0, fmt.Errorf("size mismatch: expected %d bytes, got %d bytes", info.Size(), attrs.Size)
	}
	return attrs.Size, nil
}

func (u *Uploader) objectName(filePath string) string {
	return u.config.ObjectPrefix + filepath.Base(filePath)
}

func contentType(filePath string) string {
	switch filepath.Ext(filePath) {
	case ".png":
		return "image/png"
	case ".txt", ".log":
		return "text/plain"
	case ".csv":
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}
