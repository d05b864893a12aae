package readstore

import (
	"context"

	"school-booking/internal/infra"
	"school-booking/internal/infra/db"
	"school-booking/internal/pkg/pgconv"
	"school-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findResourceViewByIDSQL = `
SELECT id, name, subject, active, created_at, updated_at
FROM resources
WHERE id = $1`

const listResourcesSQL = `
SELECT id, name, subject, active, created_at, updated_at
FROM resources
ORDER BY name`

type ResourceReadStore struct {
	db db.DBTX
}

func NewResourceReadStore(db db.DBTX) *ResourceReadStore {
	return &ResourceReadStore{db: db}
}

func (r *ResourceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	view, err := scanResourceView(r.db.QueryRow(ctx, findResourceViewByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}
	return view, nil
}

func (r *ResourceReadStore) List(ctx context.Context) ([]*queries.ResourceView, error) {
	rows, err := r.db.Query(ctx, listResourcesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resources", err)
	}
	defer rows.Close()

	var result []*queries.ResourceView
	for rows.Next() {
		view, err := scanResourceView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan resource row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read resource rows", err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResourceView(row rowScanner) (*queries.ResourceView, error) {
	var (
		view      queries.ResourceView
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&view.ID, &view.Name, &view.Subject, &view.Active, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
