package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"art_studio/internal/domain/models"
	"art_studio/internal/lib/logger/sl"
	"art_studio/internal/repository"
	"art_studio/internal/storage"
	"art_studio/internal/storage/readcache"
	"art_studio/internal/transport/http/dto"
)

const (
	cacheTag  = "profile"
	activeKey = "active"
)

type ImageResolver interface {
	ResolveImage(ctx context.Context, ref string) (string, error)
}

// ProfileService serves and edits the single active artist profile.
type ProfileService struct {
	log    *slog.Logger
	repo   repository.ProfileRepository
	images ImageResolver
	cache  *readcache.Cache
}

func NewProfileService(log *slog.Logger, repo repository.ProfileRepository, images ImageResolver, cache *readcache.Cache) *ProfileService {
	return &ProfileService{
		log:    log,
		repo:   repo,
		images: images,
		cache:  cache,
	}
}

func (s *ProfileService) ActiveProfile(ctx context.Context) (models.Profile, error) {
	const op = "service.ProfileService.ActiveProfile"

	profile, err := readcache.Remember(s.cache, cacheTag, activeKey, func() (models.Profile, error) {
		return s.repo.ActiveProfile(ctx)
	})
	if err != nil {
		return models.Profile{}, fmt.Errorf("%s: %w", op, err)
	}

	return profile, nil
}

// UpdateProfile merges in onto the active profile, creating it when none
// exists yet. The saved record is always the active one.
func (s *ProfileService) UpdateProfile(ctx context.Context, in dto.ProfileInput) (models.Profile, error) {
	const op = "service.ProfileService.UpdateProfile"

	log := s.log.With(slog.String("op", op))

	profile, err := s.repo.ActiveProfile(ctx)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Error("failed to load active profile", sl.Err(err))
		return models.Profile{}, fmt.Errorf("%s: %w", op, err)
	}

	in.Apply(&profile)
	profile.IsActive = true

	if profile.HomeImage, err = s.images.ResolveImage(ctx, profile.HomeImage); err != nil {
		return models.Profile{}, fmt.Errorf("%s: %w", op, err)
	}
	if profile.AboutImage, err = s.images.ResolveImage(ctx, profile.AboutImage); err != nil {
		return models.Profile{}, fmt.Errorf("%s: %w", op, err)
	}

	saved, err := s.repo.SaveProfile(ctx, profile)
	if err != nil {
		log.Error("failed to save profile", sl.Err(err))
		return models.Profile{}, fmt.Errorf("%s: %w", op, err)
	}
	s.cache.Invalidate(cacheTag)

	log.Info("profile saved", slog.String("id", saved.ID.String()))
	return saved, nil
}
