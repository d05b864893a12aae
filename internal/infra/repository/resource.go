package repository

import (
	"context"

	"school-booking/internal/infra"
	"school-booking/internal/infra/db"
	"school-booking/internal/pkg/pgconv"
	"school-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findResourceByIDSQL = `
SELECT id, name, subject, active, created_at, updated_at
FROM resources
WHERE id = $1`

type ResourceRepository struct {
	db db.DBTX
}

func NewResourceRepository(db db.DBTX) *ResourceRepository {
	return &ResourceRepository{db: db}
}

func (r *ResourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.ResourceSnapshot, error) {
	var (
		snapshot  commands.ResourceSnapshot
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, findResourceByIDSQL, id).Scan(
		&snapshot.ID,
		&snapshot.Name,
		&snapshot.Subject,
		&snapshot.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}

	snapshot.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snapshot.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &snapshot, nil
}
