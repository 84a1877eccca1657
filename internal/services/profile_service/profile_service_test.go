package services

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"art_studio/internal/domain/models"
	"art_studio/internal/storage"
	"art_studio/internal/storage/readcache"
	"art_studio/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) SaveProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	args := m.Called(ctx, profile)
	return args.Get(0).(models.Profile), args.Error(1)
}

func (m *MockProfileRepository) ActiveProfile(ctx context.Context) (models.Profile, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Profile), args.Error(1)
}

func (m *MockProfileRepository) ListActiveProfiles(ctx context.Context) ([]models.Profile, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Profile), args.Error(1)
}

type fakeImages struct{}

func (fakeImages) ResolveImage(_ context.Context, ref string) (string, error) {
	if strings.HasPrefix(ref, "data:") {
		return "https://cdn/uploaded.png", nil
	}
	return ref, nil
}

func TestProfileService_UpdateProfile_CreatesWhenMissing(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProfileRepository)
	svc := NewProfileService(slog.Default(), repo, fakeImages{}, readcache.New(time.Minute, time.Minute))

	name := "Studio"
	home := "data:image/png;base64,AAAA"

	repo.On("ActiveProfile", ctx).Return(models.Profile{}, storage.ErrNotFound).Once()
	repo.On("SaveProfile", ctx, mock.MatchedBy(func(p models.Profile) bool {
		return p.ID == uuid.Nil && p.IsActive && p.Name == name && p.HomeImage == "https://cdn/uploaded.png"
	})).Return(models.Profile{ID: uuid.New(), Name: name, IsActive: true}, nil).Once()

	saved, err := svc.UpdateProfile(ctx, dto.ProfileInput{Name: &name, HomeImage: &home})
	require.NoError(t, err)
	assert.True(t, saved.IsActive)
	repo.AssertExpectations(t)
}

func TestProfileService_ActiveProfileRefreshedAfterSave(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProfileRepository)
	svc := NewProfileService(slog.Default(), repo, fakeImages{}, readcache.New(time.Minute, time.Minute))

	old := models.Profile{ID: uuid.New(), Bio: "old", IsActive: true}
	fresh := models.Profile{ID: old.ID, Bio: "new", IsActive: true}

	repo.On("ActiveProfile", ctx).Return(old, nil).Twice()
	got, err := svc.ActiveProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "old", got.Bio)

	bio := "new"
	repo.On("SaveProfile", ctx, mock.Anything).Return(fresh, nil).Once()
	_, err = svc.UpdateProfile(ctx, dto.ProfileInput{Bio: &bio})
	require.NoError(t, err)

	repo.On("ActiveProfile", ctx).Return(fresh, nil).Once()
	got, err = svc.ActiveProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Bio)
}

func TestProfileService_ActiveProfileMissing(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProfileRepository)
	svc := NewProfileService(slog.Default(), repo, fakeImages{}, nil)

	repo.On("ActiveProfile", ctx).Return(models.Profile{}, storage.ErrNotFound).Once()

	_, err := svc.ActiveProfile(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
