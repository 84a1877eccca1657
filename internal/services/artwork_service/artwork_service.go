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

const cacheTag = "artworks"

// ImageResolver turns inline image payloads into hosted URLs.
type ImageResolver interface {
	ResolveImages(ctx context.Context, refs []string) ([]string, error)
}

type ArtworkService struct {
	log    *slog.Logger
	repo   repository.ArtworkRepository
	images ImageResolver
	cache  *readcache.Cache
}

func NewArtworkService(log *slog.Logger, repo repository.ArtworkRepository, images ImageResolver, cache *readcache.Cache) *ArtworkService {
	return &ArtworkService{
		log:    log,
		repo:   repo,
		images: images,
		cache:  cache,
	}
}

func (s *ArtworkService) CreateArtwork(ctx context.Context, in dto.ArtworkInput) (models.Artwork, error) {
	const op = "service.ArtworkService.CreateArtwork"

	log := s.log.With(slog.String("op", op))

	log.Info("creating artwork")

	artwork := models.Artwork{Active: true}
	in.Apply(&artwork)

	if err := s.prepare(ctx, &artwork, in.Images != nil); err != nil {
		log.Warn("invalid artwork", sl.Err(err))
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.repo.CreateArtwork(ctx, artwork)
	if err != nil {
		log.Error("failed to create artwork", sl.Err(err))
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}
	s.cache.Invalidate(cacheTag)

	log.Info("artwork created", slog.String("id", created.ID.String()))
	return created, nil
}

func (s *ArtworkService) UpdateArtwork(ctx context.Context, id uuid.UUID, in dto.ArtworkInput) (models.Artwork, error) {
	const op = "service.ArtworkService.UpdateArtwork"

	log := s.log.With(
		slog.String("op", op),
		slog.String("artwork_id", id.String()),
	)

	artwork, err := s.repo.GetArtworkByID(ctx, id)
	if err != nil {
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}

	in.Apply(&artwork)
	if err := s.prepare(ctx, &artwork, in.Images != nil); err != nil {
		log.Warn("invalid artwork", sl.Err(err))
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.UpdateArtwork(ctx, artwork)
	if err != nil {
		log.Error("failed to update artwork", sl.Err(err))
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}
	s.cache.Invalidate(cacheTag)

	log.Info("artwork updated")
	return updated, nil
}

// prepare uploads inline images and checks the required fields.
func (s *ArtworkService) prepare(ctx context.Context, a *models.Artwork, imagesChanged bool) error {
	a.Title = strings.TrimSpace(a.Title)
	if a.Title == "" {
		return fmt.Errorf("%w: title is required", models.ErrValidation)
	}

	if imagesChanged {
		urls, err := s.images.ResolveImages(ctx, a.Images)
		if err != nil {
			return err
		}
		a.Images = urls
	}
	if len(a.Images) == 0 {
		return fmt.Errorf("%w: at least one image is required", models.ErrValidation)
	}
	if a.Price != nil && *a.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", models.ErrValidation)
	}

	return nil
}

func (s *ArtworkService) DeleteArtwork(ctx context.Context, id uuid.UUID) error {
	const op = "service.ArtworkService.DeleteArtwork"

	log := s.log.With(
		slog.String("op", op),
		slog.String("artwork_id", id.String()),
	)

	if err := s.repo.DeleteArtwork(ctx, id); err != nil {
		log.Warn("failed to delete artwork", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	s.cache.Invalidate(cacheTag)

	log.Info("artwork deleted")
	return nil
}

// GetArtwork hides inactive artworks from callers that may not see them.
func (s *ArtworkService) GetArtwork(ctx context.Context, id uuid.UUID, includeInactive bool) (models.Artwork, error) {
	const op = "service.ArtworkService.GetArtwork"

	artwork, err := s.repo.GetArtworkByID(ctx, id)
	if err != nil {
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}
	if !artwork.Active && !includeInactive {
		return models.Artwork{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return artwork, nil
}

func (s *ArtworkService) ListArtworks(ctx context.Context, filter models.ArtworkFilter) ([]models.Artwork, error) {
	const op = "service.ArtworkService.ListArtworks"

	load := func() ([]models.Artwork, error) {
		return s.repo.ListArtworks(ctx, filter)
	}

	var (
		artworks []models.Artwork
		err      error
	)
	if filter.IncludeInactive {
		artworks, err = load()
	} else {
		artworks, err = readcache.Remember(s.cache, cacheTag, listKey(filter), load)
	}
	if err != nil {
		s.log.Error("failed to list artworks", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return artworks, nil
}

func listKey(f models.ArtworkFilter) string {
	featured := "any"
	if f.Featured != nil {
		featured = strconv.FormatBool(*f.Featured)
	}
	return strings.Join([]string{
		strings.ToLower(strings.TrimSpace(f.Search)),
		strings.ToLower(strings.TrimSpace(f.Category)),
		featured,
		strconv.Itoa(f.Limit),
	}, "|")
}

// ReorderArtworks applies every position in one transaction.
func (s *ArtworkService) ReorderArtworks(ctx context.Context, updates []models.OrderUpdate) error {
	const op = "service.ArtworkService.ReorderArtworks"

	log := s.log.With(
		slog.String("op", op),
		slog.Int("count", len(updates)),
	)

	if err := models.ValidateOrder(updates); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.ReorderArtworks(ctx, updates); err != nil {
		log.Warn("reorder rejected", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	s.cache.Invalidate(cacheTag)

	log.Info("artworks reordered")
	return nil
}
