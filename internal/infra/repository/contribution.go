package repository

import (
	"context"

	"sabzi/internal/domain/contribution"
	"sabzi/internal/infra"
	"sabzi/internal/infra/repository/converter"
	sqlc "sabzi/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ContributionWriteQueries interface {
	CreateContribution(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateContributionParams) (sqlc.Contributions, error)
}

type ContributionRepository struct {
	queries ContributionWriteQueries
}

func NewContributionRepository(queries ContributionWriteQueries) *ContributionRepository {
	return &ContributionRepository{queries: queries}
}

func (r *ContributionRepository) Create(ctx context.Context, tx sqlc.DBTX, c *contribution.Contribution) (uuid.UUID, error) {
	row, err := r.queries.CreateContribution(ctx, tx, converter.ContributionToCreateParams(c))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create contribution", err)
	}
	return row.ID, nil
}
