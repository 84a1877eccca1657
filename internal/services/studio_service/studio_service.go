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
	"art_studio/internal/storage"
	"art_studio/internal/storage/readcache"
	"art_studio/internal/transport/http/dto"

	"github.com/google/uuid"
)

const cacheTag = "services"

// ImageResolver turns an inline image payload into a hosted URL.
type ImageResolver interface {
	ResolveImage(ctx context.Context, ref string) (string, error)
}

// StudioService manages the studio's offered services.
type StudioService struct {
	log    *slog.Logger
	repo   repository.ServiceRepository
	images ImageResolver
	cache  *readcache.Cache
}

func NewStudioService(log *slog.Logger, repo repository.ServiceRepository, images ImageResolver, cache *readcache.Cache) *StudioService {
	return &StudioService{
		log:    log,
		repo:   repo,
		images: images,
		cache:  cache,
	}
}

func (s *StudioService) CreateService(ctx context.Context, in dto.ServiceInput) (models.Service, error) {
	const op = "service.StudioService.CreateService"

	log := s.log.With(slog.String("op", op))

	service := models.Service{Active: true}
	in.Apply(&service)

	if err := s.prepare(ctx, &service); err != nil {
		log.Warn("invalid service", sl.Err(err))
		return models.Service{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.repo.CreateService(ctx, service)
	if err != nil {
		log.Error("failed to create service", sl.Err(err))
		return models.Service{}, fmt.Errorf("%s: %w", op, err)
	}
	s.cache.Invalidate(cacheTag)

	log.Info("service created", slog.String("id", created.ID.String()))
	return created, nil
}

func (s *StudioService) UpdateService(ctx context.Context, id uuid.UUID, in dto.ServiceInput) (models.Service, error) {
	const op = "service.StudioService.UpdateService"

	log := s.log.With(
		slog.String("op", op),
		slog.String("service_id", id.String()),
	)

	service, err := s.repo.GetServiceByID(ctx, id)
	if err != nil {
		return models.Service{}, fmt.Errorf("%s: %w", op, err)
	}

	in.Apply(&service)
	if err := s.prepare(ctx, &service); err != nil {
		log.Warn("invalid service", sl.Err(err))
		return models.Service{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.UpdateService(ctx, service)
	if err != nil {
		log.Error("failed to update service", sl.Err(err))
		return models.Service{}, fmt.Errorf("%s: %w", op, err)
	}
	s.cache.Invalidate(cacheTag)

	log.Info("service updated")
	return updated, nil
}

func (s *StudioService) prepare(ctx context.Context, svc *models.Service) error {
	svc.Title = strings.TrimSpace(svc.Title)
	if svc.Title == "" {
		return fmt.Errorf("%w: title is required", models.ErrValidation)
	}

	image, err := s.images.ResolveImage(ctx, svc.Image)
	if err != nil {
		return err
	}
	svc.Image = image

	return nil
}

func (s *StudioService) DeleteService(ctx context.Context, id uuid.UUID) error {
	const op = "service.StudioService.DeleteService"

	if err := s.repo.DeleteService(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.cache.Invalidate(cacheTag)

	s.log.Info("service deleted", slog.String("op", op), slog.String("service_id", id.String()))
	return nil
}

func (s *StudioService) GetService(ctx context.Context, id uuid.UUID, includeInactive bool) (models.Service, error) {
	const op = "service.StudioService.GetService"

	service, err := s.repo.GetServiceByID(ctx, id)
	if err != nil {
		return models.Service{}, fmt.Errorf("%s: %w", op, err)
	}
	if !service.Active && !includeInactive {
		return models.Service{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return service, nil
}

func (s *StudioService) ListServices(ctx context.Context, filter models.ServiceFilter) ([]models.Service, error) {
	const op = "service.StudioService.ListServices"

	load := func() ([]models.Service, error) {
		return s.repo.ListServices(ctx, filter)
	}

	var (
		services []models.Service
		err      error
	)
	if filter.IncludeInactive {
		services, err = load()
	} else {
		key := strings.ToLower(strings.TrimSpace(filter.Search)) + "|" + strconv.Itoa(filter.Limit)
		services, err = readcache.Remember(s.cache, cacheTag, key, load)
	}
	if err != nil {
		s.log.Error("failed to list services", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return services, nil
}

func (s *StudioService) ReorderServices(ctx context.Context, updates []models.OrderUpdate) error {
	const op = "service.StudioService.ReorderServices"

	if err := models.ValidateOrder(updates); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.ReorderServices(ctx, updates); err != nil {
		s.log.Warn("reorder rejected", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	s.cache.Invalidate(cacheTag)

	return nil
}
