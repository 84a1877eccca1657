package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"art_studio/internal/storage"

	"github.com/google/uuid"
)

// LocalFileStorage keeps uploaded images on disk and serves them under baseURL.
type LocalFileStorage struct {
	baseDir string // e.g. "./uploads"
	baseURL string // e.g. "http://localhost:8080/uploads"
	maxSize int64
}

func NewLocalFileStorage(baseDir, baseURL string, maxSize int64) (*LocalFileStorage, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	return &LocalFileStorage{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
		maxSize: maxSize,
	}, nil
}

// Save copies src to baseDir/subPath/filename and returns the relative path
// and the number of bytes written.
func (s *LocalFileStorage) Save(ctx context.Context, src io.Reader, subPath, filename string) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	filePath := filepath.Join(s.baseDir, subPath, filepath.Base(filename))

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create directories: %w", err)
	}

	dst, err := os.Create(filePath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if s.maxSize > 0 {
		src = io.LimitReader(src, s.maxSize+1)
	}

	size, err := io.Copy(dst, &ctxReader{ctx: ctx, r: src})
	if err != nil {
		_ = os.Remove(filePath)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", 0, ctxErr
		}
		return "", 0, fmt.Errorf("failed to copy file: %w", err)
	}

	if s.maxSize > 0 && size > s.maxSize {
		_ = os.Remove(filePath)
		return "", 0, storage.ErrFileTooLarge
	}

	return filepath.Join(subPath, filepath.Base(filename)), size, nil
}

// Upload stores the image under a fresh name and returns its public URL.
func (s *LocalFileStorage) Upload(ctx context.Context, filename, contentType string, src io.Reader) (string, error) {
	const op = "filestorage.Upload"

	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%s: %w: %s", op, storage.ErrInvalidFileType, contentType)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))

	rel, _, err := s.Save(ctx, src, "images", name)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return s.URL(rel), nil
}

func (s *LocalFileStorage) URL(relativePath string) string {
	return s.baseURL + "/" + path.Clean(filepath.ToSlash(relativePath))
}

// ctxReader stops a copy once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (r *ctxReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.r.Read(p)
}
