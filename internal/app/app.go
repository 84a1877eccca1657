package app

import (
	"context"
	"fmt"
	"log/slog"

	httpapp "art_studio/internal/app/http"
	"art_studio/internal/config"
	"art_studio/internal/lib/imagehost"
	"art_studio/internal/repository"
	artworks "art_studio/internal/services/artwork_service"
	"art_studio/internal/services/auth"
	awards "art_studio/internal/services/award_service"
	contacts "art_studio/internal/services/contact_service"
	media "art_studio/internal/services/media_service"
	profile "art_studio/internal/services/profile_service"
	studio "art_studio/internal/services/studio_service"
	testimonials "art_studio/internal/services/testimonial_service"
	tokens "art_studio/internal/services/token_service"
	filestorage "art_studio/internal/storage/filestorage"
	"art_studio/internal/storage/postgresql"
	"art_studio/internal/storage/readcache"
	redisapp "art_studio/internal/storage/redis"
	httprouters "art_studio/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server
	log        *slog.Logger
	storage    *postgresql.Storage
	redis      *redisapp.Client
}

func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	storage, err := postgresql.New(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := storage.Migrate(ctx); err != nil {
		storage.Stop()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	repo := repository.NewRepository(storage.Pool())

	a := &App{
		log:     log,
		storage: storage,
	}

	var tokenRepo repository.TokenRepository
	if cfg.Redis.RedisAddr != "" {
		client, err := redisapp.Connect(ctx, cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)
		if err != nil {
			storage.Stop()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		a.redis = client
		tokenRepo = repository.NewRedisTokenRepo(client)
		log.Info("token denylist in redis", slog.String("addr", cfg.Redis.RedisAddr))
	} else {
		tokenRepo = repository.NewMemoryTokenRepo(cfg.Cache.CleanupInterval)
		log.Info("token denylist in memory")
	}

	uploader, err := newUploader(log, cfg)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cache := readcache.New(cfg.Cache.TTL, cfg.Cache.CleanupInterval)

	mediaService := media.NewMediaService(log, uploader, cfg.FileStorage.MaxSize)
	tokenService := tokens.NewTokenService(log, tokenRepo, cfg.Auth.Secret, cfg.Auth.TokenTTL)
	authService := auth.New(log, repo.Admin, repo.Admin, tokenService)

	if err := authService.EnsureAdmin(ctx, cfg.Auth.AdminName, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
		a.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	routers := httprouters.NewRouter(log, httprouters.Services{
		Artworks:     artworks.NewArtworkService(log, repo.Artwork, mediaService, cache),
		Studio:       studio.NewStudioService(log, repo.Service, mediaService, cache),
		Testimonials: testimonials.NewTestimonialService(log, repo.Testimonial, mediaService, cache),
		Awards:       awards.NewAwardService(log, repo.Award, mediaService, cache),
		Profile:      profile.NewProfileService(log, repo.Profile, mediaService, cache),
		Contacts:     contacts.NewContactService(log, repo.Contact),
		Media:        mediaService,
		Auth:         authService,
		Tokens:       tokenService,
	})

	uploadsDir := ""
	if cfg.ImageHost.BaseURL == "" {
		uploadsDir = cfg.FileStorage.BaseDir
	}

	a.HTTPServer = httpapp.New(log, cfg.HTTP, cfg.Auth.Secret, tokenService, uploadsDir, routers)
	a.HTTPServer.BuildRouters()

	return a, nil
}

// newUploader prefers the third-party image host and falls back to local
// file storage served under /uploads.
func newUploader(log *slog.Logger, cfg *config.Config) (media.Uploader, error) {
	if cfg.ImageHost.BaseURL != "" {
		log.Info("uploads go to image host", slog.String("url", cfg.ImageHost.BaseURL))
		return imagehost.New(
			cfg.ImageHost.BaseURL,
			cfg.ImageHost.UploadPreset,
			cfg.ImageHost.APIKey,
			cfg.ImageHost.Folder,
			cfg.ImageHost.Timeout,
		), nil
	}

	log.Info("uploads stored locally", slog.String("dir", cfg.FileStorage.BaseDir))
	return filestorage.NewLocalFileStorage(cfg.FileStorage.BaseDir, cfg.FileStorage.BaseURL, cfg.FileStorage.MaxSize)
}

// Close releases storage connections. The HTTP server is stopped separately.
func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Error("failed to close redis", slog.String("error", err.Error()))
		}
	}
	a.storage.Stop()
}
