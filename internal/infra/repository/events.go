package repository

import (
	"context"

	"sabzi/internal/infra"
	sqlc "sabzi/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type EventQueries interface {
	NotifyDealEvents(ctx context.Context, db sqlc.DBTX, payload string) error
}

// EventNotifier emits deal_events notifications via pg_notify. Fired
// inside the write transaction, so listeners only wake for committed
// changes.
type EventNotifier struct {
	queries EventQueries
}

func NewEventNotifier(queries EventQueries) *EventNotifier {
	return &EventNotifier{queries: queries}
}

func (n *EventNotifier) DealChanged(ctx context.Context, tx sqlc.DBTX, dealID uuid.UUID) error {
	if err := n.queries.NotifyDealEvents(ctx, tx, dealID.String()); err != nil {
		return infra.WrapRepoErr("failed to notify deal change", err)
	}
	return nil
}
