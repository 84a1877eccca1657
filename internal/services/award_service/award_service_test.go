package services

import (
	"context"
	"log/slog"
	"testing"

	"art_studio/internal/domain/models"
	"art_studio/internal/storage"
	"art_studio/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAwardRepository struct {
	mock.Mock
}

func (m *MockAwardRepository) CreateAward(ctx context.Context, award models.Award) (models.Award, error) {
	args := m.Called(ctx, award)
	return args.Get(0).(models.Award), args.Error(1)
}

func (m *MockAwardRepository) UpdateAward(ctx context.Context, award models.Award) (models.Award, error) {
	args := m.Called(ctx, award)
	return args.Get(0).(models.Award), args.Error(1)
}

func (m *MockAwardRepository) DeleteAward(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAwardRepository) GetAwardByID(ctx context.Context, id uuid.UUID) (models.Award, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Award), args.Error(1)
}

func (m *MockAwardRepository) ListAwards(ctx context.Context, filter models.AwardFilter) ([]models.Award, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Award), args.Error(1)
}

type noImages struct{}

func (noImages) ResolveImage(_ context.Context, ref string) (string, error) { return ref, nil }

func TestAwardService_CreateAward(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   dto.AwardInput
		wantErr bool
	}{
		{name: "missing title", input: dto.AwardInput{Year: ptr(2024)}, wantErr: true},
		{name: "missing year", input: dto.AwardInput{Title: ptr("Best Bridal Artist")}, wantErr: true},
		{name: "valid", input: dto.AwardInput{Title: ptr("Best Bridal Artist"), Year: ptr(2024)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockAwardRepository)
			svc := NewAwardService(slog.Default(), repo, noImages{}, nil)

			if !tt.wantErr {
				repo.On("CreateAward", ctx, mock.Anything).Return(models.Award{ID: uuid.New()}, nil).Once()
			}

			_, err := svc.CreateAward(ctx, tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrValidation)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAwardService_DeleteMissing(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAwardRepository)
	svc := NewAwardService(slog.Default(), repo, noImages{}, nil)
	id := uuid.New()

	repo.On("DeleteAward", ctx, id).Return(storage.ErrNotFound).Once()
	assert.ErrorIs(t, svc.DeleteAward(ctx, id), storage.ErrNotFound)
}

func ptr[T any](v T) *T { return &v }
