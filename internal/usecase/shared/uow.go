package shared

import (
	"context"
	"time"

	"sabzi/internal/domain/contribution"
	"sabzi/internal/domain/deal"
	"sabzi/internal/domain/offer"
	"sabzi/internal/domain/user"
	sqlc "sabzi/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Deals() DealRepository
	Contributions() ContributionRepository
	Offers() OfferRepository
	Users() UserRepository
	Events() EventNotifier
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	DealByID(ctx context.Context, id uuid.UUID) (*DealSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
}

// Minimal snapshots for command read operations
type DealSnapshot struct {
	ID              uuid.UUID
	Status          string
	RequestedBy     uuid.UUID
	TargetQuantity  float64
	CurrentQuantity float64
	Deadline        time.Time
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
}

type DealRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, d *deal.Deal) (uuid.UUID, error)
	// LockByID acquires the deal row exclusively for the transaction.
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*deal.Deal, error)
	SaveProgress(ctx context.Context, tx sqlc.DBTX, d *deal.Deal) error
	SaveAcceptance(ctx context.Context, tx sqlc.DBTX, d *deal.Deal) error
	SaveExpiry(ctx context.Context, tx sqlc.DBTX, d *deal.Deal) error
	ExpireOverdue(ctx context.Context, tx sqlc.DBTX, now time.Time) ([]uuid.UUID, error)
}

type ContributionRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *contribution.Contribution) (uuid.UUID, error)
}

type OfferRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *offer.Offer) (uuid.UUID, error)
	FindForDeal(ctx context.Context, tx sqlc.DBTX, offerID, dealID uuid.UUID) (*offer.Offer, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
}

// EventNotifier publishes a deal_events notification from inside the
// write transaction so live subscribers see committed state only.
type EventNotifier interface {
	DealChanged(ctx context.Context, tx sqlc.DBTX, dealID uuid.UUID) error
}
