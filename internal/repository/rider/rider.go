package rider

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"orderdesk/internal/entities"
	"orderdesk/internal/repository"
	"orderdesk/internal/service/rider"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Rider, error) {
	query := `SELECT id, name, phone, active, created_at, updated_at
		FROM riders
		WHERE id = $1`

	var riderModel RiderDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&riderModel.ID,
			&riderModel.Name,
			&riderModel.Phone,
			&riderModel.Active,
			&riderModel.CreatedAt,
			&riderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || repository.IsPgErrorWithCode(err, repository.PgErrInvalidTextRepr) {
			return nil, rider.ErrRiderNotFound
		}

		return nil, fmt.Errorf("unexpected rider repository getbyid error: %w", err)
	}

	return ToDomain(&riderModel), nil
}

func (r *Repository) GetAll(ctx context.Context, activeOnly bool) ([]entities.Rider, error) {
	builder := qb.
		Select("id", "name", "phone", "active", "created_at", "updated_at").
		From("riders").
		OrderBy("name", "id")

	if activeOnly {
		builder = builder.Where(sq.Eq{"active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository getall error: %w", err)
	}
	defer rows.Close()

	riderModels := make([]RiderDB, 0, 8)
	for rows.Next() {
		var riderModel RiderDB
		err := rows.Scan(
			&riderModel.ID,
			&riderModel.Name,
			&riderModel.Phone,
			&riderModel.Active,
			&riderModel.CreatedAt,
			&riderModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected rider repository getall error: %w", err)
		}
		riderModels = append(riderModels, riderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected rider repository getall error: %w", err)
	}

	return ToDomainList(riderModels), nil
}
