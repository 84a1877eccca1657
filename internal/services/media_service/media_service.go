package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"strings"

	"art_studio/internal/domain/models"
	"art_studio/internal/lib/logger/sl"
	"art_studio/internal/metrics"
	"art_studio/internal/transport/http/dto"
)

const dataURIPrefix = "data:"

// Uploader stores an image and returns the URL it is served from.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, src io.Reader) (string, error)
}

type MediaService struct {
	log      *slog.Logger
	uploader Uploader
	maxSize  int64
}

func NewMediaService(log *slog.Logger, uploader Uploader, maxSize int64) *MediaService {
	return &MediaService{
		log:      log,
		uploader: uploader,
		maxSize:  maxSize,
	}
}

// UploadImage stores a file received as multipart form data.
func (s *MediaService) UploadImage(ctx context.Context, img dto.ImageUpload) (string, error) {
	const op = "media_service.UploadImage"

	log := s.log.With(
		slog.String("op", op),
		slog.String("filename", img.Filename),
	)

	contentType := strings.ToLower(strings.TrimSpace(img.ContentType))
	if !strings.HasPrefix(contentType, "image/") {
		log.Warn("rejected non image upload", slog.String("content_type", contentType))

		return "", fmt.Errorf("%s: %w: %q is not an image", op, models.ErrValidation, img.ContentType)
	}

	url, err := s.uploader.Upload(ctx, img.Filename, contentType, img.Body)
	if err != nil {
		log.Error("failed to upload image", sl.Err(err))
		metrics.ImageUploadsTotal.WithLabelValues("error").Inc()

		return "", fmt.Errorf("%s: %w", op, err)
	}

	metrics.ImageUploadsTotal.WithLabelValues("ok").Inc()
	log.Info("image uploaded", slog.String("url", url))

	return url, nil
}

// ResolveImage uploads ref when it is a base64 data URI and returns the
// hosted URL. Any other value is returned trimmed and unchanged.
func (s *MediaService) ResolveImage(ctx context.Context, ref string) (string, error) {
	const op = "media_service.ResolveImage"

	ref = strings.TrimSpace(ref)
	if !strings.HasPrefix(ref, dataURIPrefix) {
		return ref, nil
	}

	contentType, data, err := decodeDataURI(ref)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %v", op, models.ErrValidation, err)
	}
	if s.maxSize > 0 && int64(len(data)) > s.maxSize {
		return "", fmt.Errorf("%s: %w: image exceeds %d bytes", op, models.ErrValidation, s.maxSize)
	}

	filename := "image"
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		filename += exts[0]
	}

	return s.UploadImage(ctx, dto.ImageUpload{
		Filename:    filename,
		ContentType: contentType,
		Body:        bytes.NewReader(data),
	})
}

// ResolveImages runs ResolveImage over refs, dropping blank entries.
func (s *MediaService) ResolveImages(ctx context.Context, refs []string) ([]string, error) {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		url, err := s.ResolveImage(ctx, ref)
		if err != nil {
			return nil, err
		}
		if url != "" {
			out = append(out, url)
		}
	}
	return out, nil
}

// decodeDataURI parses "data:<type>;base64,<payload>".
func decodeDataURI(uri string) (string, []byte, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(uri, dataURIPrefix), ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data uri")
	}

	contentType, params, _ := strings.Cut(meta, ";")
	if !strings.HasPrefix(contentType, "image/") {
		return "", nil, fmt.Errorf("data uri is not an image: %q", contentType)
	}
	if params != "base64" {
		return "", nil, fmt.Errorf("data uri must be base64 encoded")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode base64: %w", err)
	}

	return contentType, data, nil
}
