package repository

import (
	"context"
	"time"

	"art_studio/internal/domain/models"

	"github.com/google/uuid"
)

type AdminRepository interface {
	SaveAdmin(ctx context.Context, admin models.Admin) (uuid.UUID, error)
	AdminByEmail(ctx context.Context, email string) (models.Admin, error)
	AdminByID(ctx context.Context, id uuid.UUID) (models.Admin, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
	CountAdmins(ctx context.Context) (int, error)
}

// TokenRepository tracks revoked bearer tokens until they expire.
type TokenRepository interface {
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type ArtworkRepository interface {
	CreateArtwork(ctx context.Context, artwork models.Artwork) (models.Artwork, error)
	UpdateArtwork(ctx context.Context, artwork models.Artwork) (models.Artwork, error)
	DeleteArtwork(ctx context.Context, id uuid.UUID) error
	GetArtworkByID(ctx context.Context, id uuid.UUID) (models.Artwork, error)
	ListArtworks(ctx context.Context, filter models.ArtworkFilter) ([]models.Artwork, error)
	ReorderArtworks(ctx context.Context, updates []models.OrderUpdate) error
}

type ServiceRepository interface {
	CreateService(ctx context.Context, service models.Service) (models.Service, error)
	UpdateService(ctx context.Context, service models.Service) (models.Service, error)
	DeleteService(ctx context.Context, id uuid.UUID) error
	GetServiceByID(ctx context.Context, id uuid.UUID) (models.Service, error)
	ListServices(ctx context.Context, filter models.ServiceFilter) ([]models.Service, error)
	ReorderServices(ctx context.Context, updates []models.OrderUpdate) error
}

type TestimonialRepository interface {
	CreateTestimonial(ctx context.Context, t models.Testimonial) (models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, t models.Testimonial) (models.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id uuid.UUID) error
	GetTestimonialByID(ctx context.Context, id uuid.UUID) (models.Testimonial, error)
	ListTestimonials(ctx context.Context, filter models.TestimonialFilter) ([]models.Testimonial, error)
}

type AwardRepository interface {
	CreateAward(ctx context.Context, award models.Award) (models.Award, error)
	UpdateAward(ctx context.Context, award models.Award) (models.Award, error)
	DeleteAward(ctx context.Context, id uuid.UUID) error
	GetAwardByID(ctx context.Context, id uuid.UUID) (models.Award, error)
	ListAwards(ctx context.Context, filter models.AwardFilter) ([]models.Award, error)
}

type ProfileRepository interface {
	// SaveProfile inserts or updates a profile. Saving an active profile
	// deactivates every other profile in the same transaction.
	SaveProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
	ActiveProfile(ctx context.Context) (models.Profile, error)
	ListActiveProfiles(ctx context.Context) ([]models.Profile, error)
}

type ContactRepository interface {
	CreateContact(ctx context.Context, contact models.ContactRequest) (models.ContactRequest, error)
	GetContactByID(ctx context.Context, id uuid.UUID) (models.ContactRequest, error)
	ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.ContactRequest, error)
	UpdateContactStatus(ctx context.Context, id uuid.UUID, status models.ContactStatus) (models.ContactRequest, error)
	DeleteContact(ctx context.Context, id uuid.UUID) error
}
