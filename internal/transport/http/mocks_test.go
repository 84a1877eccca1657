package http_test

import (
	"context"

	"art_studio/internal/domain/models"
	jwtlib "art_studio/internal/lib/jwt"
	"art_studio/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockArtworkService struct {
	mock.Mock
}

func (m *MockArtworkService) CreateArtwork(ctx context.Context, in dto.ArtworkInput) (models.Artwork, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.Artwork), args.Error(1)
}

func (m *MockArtworkService) UpdateArtwork(ctx context.Context, id uuid.UUID, in dto.ArtworkInput) (models.Artwork, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(models.Artwork), args.Error(1)
}

func (m *MockArtworkService) DeleteArtwork(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockArtworkService) GetArtwork(ctx context.Context, id uuid.UUID, includeInactive bool) (models.Artwork, error) {
	args := m.Called(ctx, id, includeInactive)
	return args.Get(0).(models.Artwork), args.Error(1)
}

func (m *MockArtworkService) ListArtworks(ctx context.Context, filter models.ArtworkFilter) ([]models.Artwork, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Artwork), args.Error(1)
}

func (m *MockArtworkService) ReorderArtworks(ctx context.Context, updates []models.OrderUpdate) error {
	return m.Called(ctx, updates).Error(0)
}

type MockStudioService struct {
	mock.Mock
}

func (m *MockStudioService) CreateService(ctx context.Context, in dto.ServiceInput) (models.Service, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.Service), args.Error(1)
}

func (m *MockStudioService) UpdateService(ctx context.Context, id uuid.UUID, in dto.ServiceInput) (models.Service, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(models.Service), args.Error(1)
}

func (m *MockStudioService) DeleteService(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStudioService) GetService(ctx context.Context, id uuid.UUID, includeInactive bool) (models.Service, error) {
	args := m.Called(ctx, id, includeInactive)
	return args.Get(0).(models.Service), args.Error(1)
}

func (m *MockStudioService) ListServices(ctx context.Context, filter models.ServiceFilter) ([]models.Service, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockStudioService) ReorderServices(ctx context.Context, updates []models.OrderUpdate) error {
	return m.Called(ctx, updates).Error(0)
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) SubmitContact(ctx context.Context, contact models.ContactRequest) (models.ContactRequest, error) {
	args := m.Called(ctx, contact)
	return args.Get(0).(models.ContactRequest), args.Error(1)
}

func (m *MockContactService) GetContact(ctx context.Context, id uuid.UUID) (models.ContactRequest, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.ContactRequest), args.Error(1)
}

func (m *MockContactService) ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.ContactRequest, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.ContactRequest), args.Error(1)
}

func (m *MockContactService) SetStatus(ctx context.Context, id uuid.UUID, status models.ContactStatus) (models.ContactRequest, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(models.ContactRequest), args.Error(1)
}

func (m *MockContactService) DeleteContact(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) ActiveProfile(ctx context.Context) (models.Profile, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Profile), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, in dto.ProfileInput) (models.Profile, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.Profile), args.Error(1)
}

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) UploadImage(ctx context.Context, img dto.ImageUpload) (string, error) {
	args := m.Called(ctx, img.Filename, img.ContentType)
	return args.String(0), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (models.AdminSession, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(models.AdminSession), args.Error(1)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) RevokeToken(ctx context.Context, claims *jwtlib.Claims) error {
	return m.Called(ctx, claims.ID).Error(0)
}

// revocations is the denylist consulted by the JWT middleware.
type revocations map[string]bool

func (r revocations) CheckRevoked(_ context.Context, claims *jwtlib.Claims) error {
	if r[claims.ID] {
		return models.ErrTokenRevoked
	}
	return nil
}
