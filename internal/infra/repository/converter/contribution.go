package converter

import (
	"sabzi/internal/domain/contribution"
	sqlc "sabzi/internal/infra/sqlc/generated"
	"sabzi/internal/pkg/pgconv"
)

func ContributionToCreateParams(c *contribution.Contribution) sqlc.CreateContributionParams {
	return sqlc.CreateContributionParams{
		ID:            c.ID(),
		DealID:        c.DealID(),
		ContributorID: c.ContributorID(),
		Quantity:      pgconv.Float64ToNumeric(c.Quantity().Value()),
		Unit:          c.Unit().String(),
		CreatedAt:     pgconv.TimeToPgtype(c.CreatedAt()),
	}
}
