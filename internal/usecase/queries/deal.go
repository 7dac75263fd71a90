package queries

import (
	"context"
	"strings"
	"time"

	"sabzi/internal/infra"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type DealView struct {
	ID                    uuid.UUID  `json:"id"`
	ItemName              string     `json:"item_name"`
	TargetQuantity        float64    `json:"target_quantity"`
	CurrentQuantity       float64    `json:"current_quantity"`
	Unit                  string     `json:"unit"`
	Deadline              time.Time  `json:"deadline"`
	RequestedBy           uuid.UUID  `json:"requested_by"`
	RequestedByEmail      string     `json:"requested_by_email"`
	Status                string     `json:"status"`
	AcceptedOfferID       *uuid.UUID `json:"accepted_offer_id,omitempty"`
	AcceptedPricePerUnit  *float64   `json:"accepted_price_per_unit,omitempty"`
	AcceptedSupplierID    *uuid.UUID `json:"accepted_supplier_id,omitempty"`
	AcceptedSupplierEmail *string    `json:"accepted_supplier_email,omitempty"`
	ClosedAt              *time.Time `json:"closed_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}

// DealBoard is the vendor dashboard split: deals still collecting or
// awaiting an offer, and deals that reached a terminal state.
type DealBoard struct {
	Active  []*DealView `json:"active"`
	History []*DealView `json:"history"`
}

type ContributionView struct {
	ID               uuid.UUID `json:"id"`
	DealID           uuid.UUID `json:"deal_id"`
	ContributorID    uuid.UUID `json:"contributor_id"`
	ContributorEmail string    `json:"contributor_email"`
	Quantity         float64   `json:"quantity"`
	Unit             string    `json:"unit"`
	CreatedAt        time.Time `json:"created_at"`
}

type DealReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DealView, error)
	ListAll(ctx context.Context) ([]*DealView, error)
	ListByStatus(ctx context.Context, status string) ([]*DealView, error)
	ListContributionsByDeal(ctx context.Context, dealID uuid.UUID) ([]*ContributionView, error)
}

type DealQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*DealView, error)
	ListBoard(ctx context.Context, viewerID uuid.UUID, mode ListMode, search string) (*DealBoard, error)
	ListReady(ctx context.Context, search string) ([]*DealView, error)
	ListContributions(ctx context.Context, dealID uuid.UUID) ([]*ContributionView, error)
}

type dealQueriesImpl struct {
	readStore DealReadStore
	directory *EmailDirectory
	sweeper   *Sweeper
}

func NewDealQueries(readStore DealReadStore, directory *EmailDirectory, sweeper *Sweeper) DealQueries {
	return &dealQueriesImpl{
		readStore: readStore,
		directory: directory,
		sweeper:   sweeper,
	}
}

func (q *dealQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*DealView, error) {
	if err := q.sweep(ctx); err != nil {
		return nil, err
	}

	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDealNotFound
		}
		return nil, err
	}
	q.resolveEmails(ctx, []*DealView{view})
	return view, nil
}

func (q *dealQueriesImpl) ListBoard(ctx context.Context, viewerID uuid.UUID, mode ListMode, search string) (*DealBoard, error) {
	if err := q.sweep(ctx); err != nil {
		return nil, err
	}

	views, err := q.readStore.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if mode == ModeMine {
		views = lo.Filter(views, func(v *DealView, _ int) bool {
			return v.RequestedBy == viewerID
		})
	}
	views = filterBySearch(views, search)
	q.resolveEmails(ctx, views)

	board := &DealBoard{
		Active:  []*DealView{},
		History: []*DealView{},
	}
	for _, v := range views {
		if v.Status == "closed_accepted" || v.Status == "closed_expired" {
			board.History = append(board.History, v)
		} else {
			board.Active = append(board.Active, v)
		}
	}
	return board, nil
}

// ListReady is the supplier's worklist, oldest deal first.
func (q *dealQueriesImpl) ListReady(ctx context.Context, search string) ([]*DealView, error) {
	if err := q.sweep(ctx); err != nil {
		return nil, err
	}

	views, err := q.readStore.ListByStatus(ctx, "ready_for_supplier_offer")
	if err != nil {
		return nil, err
	}
	views = filterBySearch(views, search)
	q.resolveEmails(ctx, views)
	return views, nil
}

func (q *dealQueriesImpl) ListContributions(ctx context.Context, dealID uuid.UUID) ([]*ContributionView, error) {
	if _, err := q.GetByID(ctx, dealID); err != nil {
		return nil, err
	}
	return q.readStore.ListContributionsByDeal(ctx, dealID)
}

// Overdue deals are settled before every read so the caller never sees
// a deal past its deadline still marked active.
func (q *dealQueriesImpl) sweep(ctx context.Context) error {
	_, err := q.sweeper.Sweep(ctx)
	return err
}

func (q *dealQueriesImpl) resolveEmails(ctx context.Context, views []*DealView) {
	ids := make([]uuid.UUID, 0, len(views)*2)
	for _, v := range views {
		ids = append(ids, v.RequestedBy)
		if v.AcceptedSupplierID != nil {
			ids = append(ids, *v.AcceptedSupplierID)
		}
	}
	if len(ids) == 0 {
		return
	}

	emails := q.directory.Resolve(ctx, lo.Uniq(ids))
	for _, v := range views {
		v.RequestedByEmail = emails[v.RequestedBy]
		if v.AcceptedSupplierID != nil {
			email := emails[*v.AcceptedSupplierID]
			v.AcceptedSupplierEmail = &email
		}
	}
}

func filterBySearch(views []*DealView, search string) []*DealView {
	search = strings.TrimSpace(strings.ToLower(search))
	if search == "" {
		return views
	}
	return lo.Filter(views, func(v *DealView, _ int) bool {
		return strings.Contains(strings.ToLower(v.ItemName), search)
	})
}
