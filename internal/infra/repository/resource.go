package repository

import (
	"context"

	"court-slot-engine/internal/domain/resource"
	"court-slot-engine/internal/infra"
	"court-slot-engine/internal/infra/repository/converter"
	sqlc "court-slot-engine/internal/infra/sqlc/generated"
	"court-slot-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ResourceWriteQueries interface {
	GetResourceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Resources, error)
	LockResourceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Resources, error)
	CreateResource(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateResourceParams) error
	UpdateResourcePolicy(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateResourcePolicyParams) (int64, error)
}

type ResourceRepository struct {
	queries ResourceWriteQueries
	db      sqlc.DBTX
}

func NewResourceRepository(queries ResourceWriteQueries, db sqlc.DBTX) *ResourceRepository {
	return &ResourceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	row, err := r.queries.GetResourceByID(ctx, r.db, id)
	return r.toDomain(row, err)
}

func (r *ResourceRepository) Lock(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	row, err := r.queries.LockResourceByID(ctx, r.db, id)
	return r.toDomain(row, err)
}

func (r *ResourceRepository) Create(ctx context.Context, res *resource.Resource) error {
	if err := r.queries.CreateResource(ctx, r.db, converter.ResourceToCreateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create resource", err)
	}
	return nil
}

func (r *ResourceRepository) UpdatePolicy(ctx context.Context, res *resource.Resource) error {
	n, err := r.queries.UpdateResourcePolicy(ctx, r.db, converter.ResourceToPolicyParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update resource policy", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("resource not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ResourceRepository) toDomain(row sqlc.Resources, err error) (*resource.Resource, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get resource", err)
	}
	res, err := converter.ResourceFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode resource", err)
	}
	return res, nil
}
