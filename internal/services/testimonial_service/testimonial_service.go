package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"art_studio/internal/domain/models"
	"art_studio/internal/lib/logger/sl"
	"art_studio/internal/repository"
	"art_studio/internal/storage/readcache"
	"art_studio/internal/transport/http/dto"

	"github.com/google/uuid"
)

const cacheTag = "testimonials"

type ImageResolver interface {
	ResolveImage(ctx context.Context, ref string) (string, error)
}

type TestimonialService struct {
	log    *slog.Logger
	repo   repository.TestimonialRepository
	images ImageResolver
	cache  *readcache.Cache
}

func NewTestimonialService(log *slog.Logger, repo repository.TestimonialRepository, images ImageResolver, cache *readcache.Cache) *TestimonialService {
	return &TestimonialService{
		log:    log,
		repo:   repo,
		images: images,
		cache:  cache,
	}
}

func (s *TestimonialService) CreateTestimonial(ctx context.Context, in dto.TestimonialInput) (models.Testimonial, error) {
	const op = "service.TestimonialService.CreateTestimonial"

	log := s.log.With(slog.String("op", op))

	var t models.Testimonial
	in.Apply(&t)
	if err := s.prepare(ctx, &t); err != nil {
		log.Warn("invalid testimonial", sl.Err(err))
		return models.Testimonial{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.repo.CreateTestimonial(ctx, t)
	if err != nil {
		log.Error("failed to create testimonial", sl.Err(err))
		return models.Testimonial{}, fmt.Errorf("%s: %w", op, err)
	}
	s.cache.Invalidate(cacheTag)

	log.Info("testimonial created", slog.String("id", created.ID.String()))
	return created, nil
}

func (s *TestimonialService) UpdateTestimonial(ctx context.Context, id uuid.UUID, in dto.TestimonialInput) (models.Testimonial, error) {
	const op = "service.TestimonialService.UpdateTestimonial"

	log := s.log.With(
		slog.String("op", op),
		slog.String("testimonial_id", id.String()),
	)

	t, err := s.repo.GetTestimonialByID(ctx, id)
	if err != nil {
		return models.Testimonial{}, fmt.Errorf("%s: %w", op, err)
	}

	in.Apply(&t)
	if err := s.prepare(ctx, &t); err != nil {
		log.Warn("invalid testimonial", sl.Err(err))
		return models.Testimonial{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.UpdateTestimonial(ctx, t)
	if err != nil {
		log.Error("failed to update testimonial", sl.Err(err))
		return models.Testimonial{}, fmt.Errorf("%s: %w", op, err)
	}
	s.cache.Invalidate(cacheTag)

	return updated, nil
}

func (s *TestimonialService) prepare(ctx context.Context, t *models.Testimonial) error {
	t.ClientName = strings.TrimSpace(t.ClientName)
	t.Content = strings.TrimSpace(t.Content)
	if t.ClientName == "" {
		return fmt.Errorf("%w: clientName is required", models.ErrValidation)
	}
	if t.Content == "" {
		return fmt.Errorf("%w: content is required", models.ErrValidation)
	}

	image, err := s.images.ResolveImage(ctx, t.Image)
	if err != nil {
		return err
	}
	t.Image = image

	return nil
}

func (s *TestimonialService) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	const op = "service.TestimonialService.DeleteTestimonial"

	if err := s.repo.DeleteTestimonial(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.cache.Invalidate(cacheTag)

	return nil
}

func (s *TestimonialService) GetTestimonial(ctx context.Context, id uuid.UUID) (models.Testimonial, error) {
	const op = "service.TestimonialService.GetTestimonial"

	t, err := s.repo.GetTestimonialByID(ctx, id)
	if err != nil {
		return models.Testimonial{}, fmt.Errorf("%s: %w", op, err)
	}

	return t, nil
}

func (s *TestimonialService) ListTestimonials(ctx context.Context, filter models.TestimonialFilter) ([]models.Testimonial, error) {
	const op = "service.TestimonialService.ListTestimonials"

	key := strings.ToLower(strings.TrimSpace(filter.Search)) + "|" + strconv.Itoa(filter.Limit)
	list, err := readcache.Remember(s.cache, cacheTag, key, func() ([]models.Testimonial, error) {
		return s.repo.ListTestimonials(ctx, filter)
	})
	if err != nil {
		s.log.Error("failed to list testimonials", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return list, nil
}
