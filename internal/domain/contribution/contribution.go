package contribution

import (
	"time"

	"sabzi/internal/domain/deal"

	"github.com/google/uuid"
)

// Contribution is an immutable pledge toward a deal's target. Records
// are append-only; the sum of quantities per deal equals the deal's
// collected quantity after every settled contribution.
type Contribution struct {
	id            uuid.UUID
	dealID        uuid.UUID
	contributorID uuid.UUID
	quantity      deal.Quantity
	unit          deal.Unit
	createdAt     time.Time
}

func NewContribution(dealID, contributorID uuid.UUID, quantity deal.Quantity, unit deal.Unit, now time.Time) *Contribution {
	return &Contribution{
		id:            uuid.New(),
		dealID:        dealID,
		contributorID: contributorID,
		quantity:      quantity,
		unit:          unit,
		createdAt:     now,
	}
}

func ReconstructContribution(id, dealID, contributorID uuid.UUID, quantity deal.Quantity, unit deal.Unit, createdAt time.Time) *Contribution {
	return &Contribution{
		id:            id,
		dealID:        dealID,
		contributorID: contributorID,
		quantity:      quantity,
		unit:          unit,
		createdAt:     createdAt,
	}
}

func (c *Contribution) ID() uuid.UUID            { return c.id }
func (c *Contribution) DealID() uuid.UUID        { return c.dealID }
func (c *Contribution) ContributorID() uuid.UUID { return c.contributorID }
func (c *Contribution) Quantity() deal.Quantity  { return c.quantity }
func (c *Contribution) Unit() deal.Unit          { return c.unit }
func (c *Contribution) CreatedAt() time.Time     { return c.createdAt }
