package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"art_studio/internal/domain/models"
	"art_studio/internal/lib/logger/sl"
	"art_studio/internal/repository"

	"github.com/google/uuid"
)

type ContactService struct {
	log  *slog.Logger
	repo repository.ContactRepository
}

func NewContactService(log *slog.Logger, repo repository.ContactRepository) *ContactService {
	return &ContactService{
		log:  log,
		repo: repo,
	}
}

// SubmitContact stores a visitor enquiry. Every field is required.
func (s *ContactService) SubmitContact(ctx context.Context, contact models.ContactRequest) (models.ContactRequest, error) {
	const op = "service.ContactService.SubmitContact"

	log := s.log.With(slog.String("op", op))

	fields := []struct {
		name string
		v    *string
	}{
		{"name", &contact.Name},
		{"email", &contact.Email},
		{"phone", &contact.Phone},
		{"service", &contact.Service},
		{"eventDate", &contact.EventDate},
		{"message", &contact.Message},
	}
	for _, f := range fields {
		*f.v = strings.TrimSpace(*f.v)
		if *f.v == "" {
			log.Warn("rejected contact request", slog.String("missing", f.name))
			return models.ContactRequest{}, fmt.Errorf("%s: %w: %s is required", op, models.ErrValidation, f.name)
		}
	}

	created, err := s.repo.CreateContact(ctx, contact)
	if err != nil {
		log.Error("failed to save contact request", sl.Err(err))
		return models.ContactRequest{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("contact request received", slog.String("id", created.ID.String()))
	return created, nil
}

func (s *ContactService) GetContact(ctx context.Context, id uuid.UUID) (models.ContactRequest, error) {
	const op = "service.ContactService.GetContact"

	contact, err := s.repo.GetContactByID(ctx, id)
	if err != nil {
		return models.ContactRequest{}, fmt.Errorf("%s: %w", op, err)
	}

	return contact, nil
}

func (s *ContactService) ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.ContactRequest, error) {
	const op = "service.ContactService.ListContacts"

	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%s: %w: unknown status %q", op, models.ErrValidation, filter.Status)
	}

	contacts, err := s.repo.ListContacts(ctx, filter)
	if err != nil {
		s.log.Error("failed to list contacts", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return contacts, nil
}

func (s *ContactService) SetStatus(ctx context.Context, id uuid.UUID, status models.ContactStatus) (models.ContactRequest, error) {
	const op = "service.ContactService.SetStatus"

	if !status.Valid() {
		return models.ContactRequest{}, fmt.Errorf("%s: %w: unknown status %q", op, models.ErrValidation, status)
	}

	updated, err := s.repo.UpdateContactStatus(ctx, id, status)
	if err != nil {
		return models.ContactRequest{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("contact status changed",
		slog.String("op", op),
		slog.String("contact_id", id.String()),
		slog.String("status", string(status)),
	)
	return updated, nil
}

func (s *ContactService) DeleteContact(ctx context.Context, id uuid.UUID) error {
	const op = "service.ContactService.DeleteContact"

	if err := s.repo.DeleteContact(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
