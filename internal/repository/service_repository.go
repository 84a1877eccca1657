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

const servicesTable = "services"

var serviceColumns = []string{
	"id", "title", "description", "price_start", "currency", "image",
	"active", "sort_order", "created_at", "updated_at",
}

type ServiceRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewServiceRepository(db *pgxpool.Pool) *ServiceRepo {
	return &ServiceRepo{
		db: db,
		sb: newBuilder(),
	}
}

func scanService(row pgx.Row) (models.Service, error) {
	var s models.Service
	err := row.Scan(
		&s.ID,
		&s.Title,
		&s.Description,
		&s.PriceStart,
		&s.Currency,
		&s.Image,
		&s.Active,
		&s.Order,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

func (r *ServiceRepo) CreateService(ctx context.Context, service models.Service) (models.Service, error) {
	const op = "repository.ServiceRepo.CreateService"

	query, args, err := r.sb.Insert(servicesTable).
		Columns("title", "description", "price_start", "currency", "image", "active", "sort_order").
		Values(
			service.Title,
			service.Description,
			service.PriceStart,
			service.Currency,
			service.Image,
			service.Active,
			service.Order,
		).
		Suffix("RETURNING " + columnList(serviceColumns)).
		ToSql()
	if err != nil {
		return models.Service{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := scanService(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Service{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (r *ServiceRepo) UpdateService(ctx context.Context, service models.Service) (models.Service, error) {
	const op = "repository.ServiceRepo.UpdateService"

	query, args, err := r.sb.Update(servicesTable).
		Set("title", service.Title).
		Set("description", service.Description).
		Set("price_start", service.PriceStart).
		Set("currency", service.Currency).
		Set("image", service.Image).
		Set("active", service.Active).
		Set("sort_order", service.Order).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": service.ID}).
		Suffix("RETURNING " + columnList(serviceColumns)).
		ToSql()
	if err != nil {
		return models.Service{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := scanService(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Service{}, notFound(op, err)
	}

	return updated, nil
}

func (r *ServiceRepo) DeleteService(ctx context.Context, id uuid.UUID) error {
	const op = "repository.ServiceRepo.DeleteService"

	query, args, err := r.sb.Delete(servicesTable).Where(sq.Eq{"id": id}).ToSql()
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

func (r *ServiceRepo) GetServiceByID(ctx context.Context, id uuid.UUID) (models.Service, error) {
	const op = "repository.ServiceRepo.GetServiceByID"

	query, args, err := r.sb.Select(serviceColumns...).
		From(servicesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Service{}, fmt.Errorf("%s: %w", op, err)
	}

	service, err := scanService(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Service{}, notFound(op, err)
	}

	return service, nil
}

func (r *ServiceRepo) ListServices(ctx context.Context, filter models.ServiceFilter) ([]models.Service, error) {
	const op = "repository.ServiceRepo.ListServices"

	qb := r.sb.Select(serviceColumns...).From(servicesTable)
	qb = qb.Where(activeOnly(filter.IncludeInactive))
	if filter.Search != "" {
		qb = qb.Where(searchClause(filter.Search, "title", "description"))
	}

	query, args, err := qb.
		OrderBy("sort_order ASC", "created_at DESC").
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

	services := make([]models.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return services, nil
}

func (r *ServiceRepo) ReorderServices(ctx context.Context, updates []models.OrderUpdate) error {
	const op = "repository.ServiceRepo.ReorderServices"

	if err := reorder(ctx, r.db, servicesTable, updates); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
