package repository

import (
	"context"
	"fmt"

	"art_studio/internal/domain/models"
	"art_studio/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const contactsTable = "contact_requests"

var contactColumns = []string{
	"id", "name", "email", "phone", "service", "event_date", "message", "status", "created_at",
}

type ContactRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{
		db: db,
		sb: newBuilder(),
	}
}

func scanContact(row pgx.Row) (models.ContactRequest, error) {
	var c models.ContactRequest
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Service, &c.EventDate, &c.Message, &c.Status, &c.CreatedAt)
	return c, err
}

// CreateContact stores a new enquiry. Status always starts as "new".
func (r *ContactRepo) CreateContact(ctx context.Context, contact models.ContactRequest) (models.ContactRequest, error) {
	const op = "repository.ContactRepo.CreateContact"

	query, args, err := r.sb.Insert(contactsTable).
		Columns("name", "email", "phone", "service", "event_date", "message", "status").
		Values(
			contact.Name,
			contact.Email,
			contact.Phone,
			contact.Service,
			contact.EventDate,
			contact.Message,
			string(models.ContactStatusNew),
		).
		Suffix("RETURNING " + columnList(contactColumns)).
		ToSql()
	if err != nil {
		return models.ContactRequest{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := scanContact(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.ContactRequest{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (r *ContactRepo) GetContactByID(ctx context.Context, id uuid.UUID) (models.ContactRequest, error) {
	const op = "repository.ContactRepo.GetContactByID"

	query, args, err := r.sb.Select(contactColumns...).
		From(contactsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.ContactRequest{}, fmt.Errorf("%s: %w", op, err)
	}

	contact, err := scanContact(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.ContactRequest{}, notFound(op, err)
	}

	return contact, nil
}

// ListContacts returns enquiries newest first.
func (r *ContactRepo) ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.ContactRequest, error) {
	const op = "repository.ContactRepo.ListContacts"

	qb := r.sb.Select(contactColumns...).From(contactsTable)
	if filter.Status != "" {
		qb = qb.Where(sq.Eq{"status": string(filter.Status)})
	}
	if filter.Search != "" {
		qb = qb.Where(searchClause(filter.Search, "name", "email", "service", "message"))
	}

	query, args, err := qb.
		OrderBy("created_at DESC").
		Limit(clampLimit(filter.Limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	contacts := make([]models.ContactRequest, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return contacts, nil
}

func (r *ContactRepo) UpdateContactStatus(ctx context.Context, id uuid.UUID, status models.ContactStatus) (models.ContactRequest, error) {
	const op = "repository.ContactRepo.UpdateContactStatus"

	query, args, err := r.sb.Update(contactsTable).
		Set("status", string(status)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList(contactColumns)).
		ToSql()
	if err != nil {
		return models.ContactRequest{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := scanContact(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.ContactRequest{}, notFound(op, err)
	}

	return updated, nil
}

func (r *ContactRepo) DeleteContact(ctx context.Context, id uuid.UUID) error {
	const op = "repository.ContactRepo.DeleteContact"

	query, args, err := r.sb.Delete(contactsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
