package services

import (
	"context"
	"log/slog"
	"testing"

	"art_studio/internal/domain/models"
	"art_studio/internal/storage"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) CreateContact(ctx context.Context, contact models.ContactRequest) (models.ContactRequest, error) {
	args := m.Called(ctx, contact)
	return args.Get(0).(models.ContactRequest), args.Error(1)
}

func (m *MockContactRepository) GetContactByID(ctx context.Context, id uuid.UUID) (models.ContactRequest, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.ContactRequest), args.Error(1)
}

func (m *MockContactRepository) ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.ContactRequest, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.ContactRequest), args.Error(1)
}

func (m *MockContactRepository) UpdateContactStatus(ctx context.Context, id uuid.UUID, status models.ContactStatus) (models.ContactRequest, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(models.ContactRequest), args.Error(1)
}

func (m *MockContactRepository) DeleteContact(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validContact() models.ContactRequest {
	return models.ContactRequest{
		Name:      gofakeit.Name(),
		Email:     gofakeit.Email(),
		Phone:     gofakeit.Phone(),
		Service:   "Bridal Mehndi",
		EventDate: "2025-01-01",
		Message:   gofakeit.Sentence(8),
	}
}

func TestContactService_SubmitContact(t *testing.T) {
	ctx := context.Background()

	t.Run("stored", func(t *testing.T) {
		repo := new(MockContactRepository)
		svc := NewContactService(slog.Default(), repo)
		in := validContact()

		repo.On("CreateContact", ctx, in).Return(models.ContactRequest{ID: uuid.New(), Status: models.ContactStatusNew}, nil).Once()

		got, err := svc.SubmitContact(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, models.ContactStatusNew, got.Status)
	})

	blank := map[string]func(c *models.ContactRequest){
		"name":      func(c *models.ContactRequest) { c.Name = "" },
		"email":     func(c *models.ContactRequest) { c.Email = " " },
		"phone":     func(c *models.ContactRequest) { c.Phone = "" },
		"service":   func(c *models.ContactRequest) { c.Service = "" },
		"eventDate": func(c *models.ContactRequest) { c.EventDate = "" },
		"message":   func(c *models.ContactRequest) { c.Message = "\n" },
	}
	for field, blankOut := range blank {
		t.Run("missing "+field, func(t *testing.T) {
			repo := new(MockContactRepository)
			svc := NewContactService(slog.Default(), repo)
			in := validContact()
			blankOut(&in)

			_, err := svc.SubmitContact(ctx, in)
			assert.ErrorIs(t, err, models.ErrValidation)
			assert.Contains(t, err.Error(), field)
			repo.AssertNotCalled(t, "CreateContact", mock.Anything, mock.Anything)
		})
	}
}

func TestContactService_SetStatus(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepository)
	svc := NewContactService(slog.Default(), repo)
	id := uuid.New()

	repo.On("UpdateContactStatus", ctx, id, models.ContactStatusArchived).
		Return(models.ContactRequest{ID: id, Status: models.ContactStatusArchived}, nil).Once()

	got, err := svc.SetStatus(ctx, id, models.ContactStatusArchived)
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusArchived, got.Status)

	_, err = svc.SetStatus(ctx, id, "spam")
	assert.ErrorIs(t, err, models.ErrValidation)

	missing := uuid.New()
	repo.On("UpdateContactStatus", ctx, missing, models.ContactStatusRead).
		Return(models.ContactRequest{}, storage.ErrNotFound).Once()
	_, err = svc.SetStatus(ctx, missing, models.ContactStatusRead)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
