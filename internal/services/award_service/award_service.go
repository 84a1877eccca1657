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

const cacheTag = "awards"

type ImageResolver interface {
	ResolveImage(ctx context.Context, ref string) (string, error)
}

type AwardService struct {
	log    *slog.Logger
	repo   repository.AwardRepository
	images ImageResolver
	cache  *readcache.Cache
}

func NewAwardService(log *slog.Logger, repo repository.AwardRepository, images ImageResolver, cache *readcache.Cache) *AwardService {
	return &AwardService{
		log:    log,
		repo:   repo,
		images: images,
		cache:  cache,
	}
}

func (s *AwardService) CreateAward(ctx context.Context, in dto.AwardInput) (models.Award, error) {
	const op = "service.AwardService.CreateAward"

	log := s.log.With(slog.String("op", op))

	var award models.Award
	in.Apply(&award)
	if err := s.prepare(ctx, &award); err != nil {
		log.Warn("invalid award", sl.Err(err))
		return models.Award{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.repo.CreateAward(ctx, award)
	if err != nil {
		log.Error("failed to create award", sl.Err(err))
		return models.Award{}, fmt.Errorf("%s: %w", op, err)
	}
	s.cache.Invalidate(cacheTag)

	log.Info("award created", slog.String("id", created.ID.String()))
	return created, nil
}

func (s *AwardService) UpdateAward(ctx context.Context, id uuid.UUID, in dto.AwardInput) (models.Award, error) {
	const op = "service.AwardService.UpdateAward"

	award, err := s.repo.GetAwardByID(ctx, id)
	if err != nil {
		return models.Award{}, fmt.Errorf("%s: %w", op, err)
	}

	in.Apply(&award)
	if err := s.prepare(ctx, &award); err != nil {
		return models.Award{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.UpdateAward(ctx, award)
	if err != nil {
		s.log.Error("failed to update award", slog.String("op", op), sl.Err(err))
		return models.Award{}, fmt.Errorf("%s: %w", op, err)
	}
	s.cache.Invalidate(cacheTag)

	return updated, nil
}

func (s *AwardService) prepare(ctx context.Context, a *models.Award) error {
	a.Title = strings.TrimSpace(a.Title)
	if a.Title == "" {
		return fmt.Errorf("%w: title is required", models.ErrValidation)
	}
	if a.Year == 0 {
		return fmt.Errorf("%w: year is required", models.ErrValidation)
	}

	image, err := s.images.ResolveImage(ctx, a.Image)
	if err != nil {
		return err
	}
	a.Image = image

	return nil
}

func (s *AwardService) DeleteAward(ctx context.Context, id uuid.UUID) error {
	const op = "service.AwardService.DeleteAward"

	if err := s.repo.DeleteAward(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.cache.Invalidate(cacheTag)

	return nil
}

func (s *AwardService) GetAward(ctx context.Context, id uuid.UUID) (models.Award, error) {
	const op = "service.AwardService.GetAward"

	award, err := s.repo.GetAwardByID(ctx, id)
	if err != nil {
		return models.Award{}, fmt.Errorf("%s: %w", op, err)
	}

	return award, nil
}

func (s *AwardService) ListAwards(ctx context.Context, filter models.AwardFilter) ([]models.Award, error) {
	const op = "service.AwardService.ListAwards"

	key := strings.Join([]string{
		strings.ToLower(strings.TrimSpace(filter.Search)),
		strconv.Itoa(filter.Year),
		strconv.Itoa(filter.Limit),
	}, "|")
	awards, err := readcache.Remember(s.cache, cacheTag, key, func() ([]models.Award, error) {
		return s.repo.ListAwards(ctx, filter)
	})
	if err != nil {
		s.log.Error("failed to list awards", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return awards, nil
}
