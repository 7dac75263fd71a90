//go:build unit

package deal_test

import (
	"testing"
	"time"

	"sabzi/internal/domain/deal"
	"sabzi/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.DealBuilder)
	errIs  error
}

func mustQuantity(t *testing.T, v float64) deal.Quantity {
	t.Helper()
	q, err := deal.NewQuantity(v)
	require.NoError(t, err)
	return q
}

func TestNewDeal(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewDealBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Potatoes", actual.ItemName().String())
		assert.Equal(t, 50.0, actual.TargetQuantity().Value())
		assert.Equal(t, 0.0, actual.CurrentQuantity())
		assert.Equal(t, deal.UnitKg, actual.Unit())
		assert.Equal(t, deal.StatusOpen, actual.Status())
		assert.Nil(t, actual.Acceptance())
		assert.Nil(t, actual.ClosedAt())
		assert.Equal(t, builder.BaseTime, actual.CreatedAt())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty item name",
				mutate: func(b *builder.DealBuilder) { b.ItemName = "   " },
				errIs:  deal.ErrEmptyItemName,
			},
			{
				name:   "zero target quantity",
				mutate: func(b *builder.DealBuilder) { b.TargetQuantity = 0 },
				errIs:  deal.ErrNonPositiveQuantity,
			},
			{
				name:   "negative target quantity",
				mutate: func(b *builder.DealBuilder) { b.TargetQuantity = -5 },
				errIs:  deal.ErrNonPositiveQuantity,
			},
			{
				name:   "unknown unit",
				mutate: func(b *builder.DealBuilder) { b.Unit = "tonne" },
				errIs:  deal.ErrInvalidUnit,
			},
			{
				name:   "deadline in the past",
				mutate: func(b *builder.DealBuilder) { b.Deadline = builder.BaseTime.Add(-time.Hour) },
				errIs:  deal.ErrDeadlineNotInFuture,
			},
			{
				name:   "deadline equal to now",
				mutate: func(b *builder.DealBuilder) { b.Deadline = builder.BaseTime },
				errIs:  deal.ErrDeadlineNotInFuture,
			},
			{
				name:   "fractional target quantity",
				mutate: func(b *builder.DealBuilder) { b.TargetQuantity = 2.5; b.Unit = "dozen" },
			},
		})
	})
}

func TestDealContribute(t *testing.T) {
	now := builder.BaseTime.Add(time.Hour)

	t.Run("partial contribution keeps deal open", func(t *testing.T) {
		d, err := builder.NewDealBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, d.Contribute(mustQuantity(t, 20), now))

		assert.Equal(t, 20.0, d.CurrentQuantity())
		assert.Equal(t, deal.StatusOpen, d.Status())
		assert.Equal(t, 30.0, d.Remaining())
	})

	t.Run("over-contribution is rejected with remaining quantity", func(t *testing.T) {
		d, err := builder.NewDealBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, d.Contribute(mustQuantity(t, 20), now))

		err = d.Contribute(mustQuantity(t, 35), now)
		require.Error(t, err)

		var overErr *deal.OverContributionError
		require.ErrorAs(t, err, &overErr)
		assert.Equal(t, 30.0, overErr.Remaining)
		assert.Equal(t, deal.UnitKg, overErr.Unit)
		assert.Contains(t, overErr.Error(), "30.00 kg left")

		assert.Equal(t, 20.0, d.CurrentQuantity(), "rejected contribution must not change state")
		assert.Equal(t, deal.StatusOpen, d.Status())
	})

	t.Run("contribution reaching target flips status", func(t *testing.T) {
		d, err := builder.NewDealBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, d.Contribute(mustQuantity(t, 20), now))

		require.NoError(t, d.Contribute(mustQuantity(t, 30), now))

		assert.Equal(t, 50.0, d.CurrentQuantity())
		assert.Equal(t, deal.StatusReadyForOffer, d.Status())
		assert.True(t, d.TargetMet())
	})

	t.Run("ready deal rejects further contributions", func(t *testing.T) {
		d := builder.NewDealBuilder().With(func(b *builder.DealBuilder) {
			b.CurrentQuantity = 50
			b.Status = deal.StatusReadyForOffer
		}).BuildReconstructed()

		err := d.Contribute(mustQuantity(t, 1), now)
		require.ErrorIs(t, err, deal.ErrDealNotOpen)
	})

	t.Run("contribution after deadline is rejected", func(t *testing.T) {
		d, err := builder.NewDealBuilder().BuildDomain()
		require.NoError(t, err)

		err = d.Contribute(mustQuantity(t, 10), d.Deadline().Add(time.Second))
		require.ErrorIs(t, err, deal.ErrDealClosed)
	})

	t.Run("contribution at exact deadline is accepted", func(t *testing.T) {
		d, err := builder.NewDealBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, d.Contribute(mustQuantity(t, 10), d.Deadline()))
		assert.Equal(t, 10.0, d.CurrentQuantity())
	})
}

func TestDealExpire(t *testing.T) {
	past := builder.BaseTime.Add(100 * time.Hour)

	t.Run("open deal past deadline expires", func(t *testing.T) {
		d, err := builder.NewDealBuilder().BuildDomain()
		require.NoError(t, err)

		assert.True(t, d.Expire(past))
		assert.Equal(t, deal.StatusClosedExpired, d.Status())
		require.NotNil(t, d.ClosedAt())
		assert.Equal(t, past, *d.ClosedAt())
	})

	t.Run("ready deal past deadline expires", func(t *testing.T) {
		d := builder.NewDealBuilder().With(func(b *builder.DealBuilder) {
			b.CurrentQuantity = 50
			b.Status = deal.StatusReadyForOffer
		}).BuildReconstructed()

		assert.True(t, d.Expire(past))
		assert.Equal(t, deal.StatusClosedExpired, d.Status())
	})

	t.Run("expiry is idempotent", func(t *testing.T) {
		d, err := builder.NewDealBuilder().BuildDomain()
		require.NoError(t, err)

		require.True(t, d.Expire(past))
		closedAt := *d.ClosedAt()

		assert.False(t, d.Expire(past.Add(time.Hour)))
		assert.Equal(t, deal.StatusClosedExpired, d.Status())
		assert.Equal(t, closedAt, *d.ClosedAt(), "second expiry must not move closedAt")
	})

	t.Run("deal before deadline does not expire", func(t *testing.T) {
		d, err := builder.NewDealBuilder().BuildDomain()
		require.NoError(t, err)

		assert.False(t, d.Expire(builder.BaseTime.Add(time.Hour)))
		assert.Equal(t, deal.StatusOpen, d.Status())
	})

	t.Run("accepted deal never expires", func(t *testing.T) {
		d := builder.NewDealBuilder().With(func(b *builder.DealBuilder) {
			b.CurrentQuantity = 50
			b.Status = deal.StatusClosedAccepted
		}).BuildReconstructed()

		assert.False(t, d.Expire(past))
		assert.Equal(t, deal.StatusClosedAccepted, d.Status())
	})
}

func TestDealAcceptOffer(t *testing.T) {
	now := builder.BaseTime.Add(time.Hour)

	readyDeal := func(b *builder.DealBuilder) {
		b.CurrentQuantity = 50
		b.Status = deal.StatusReadyForOffer
	}

	t.Run("owning vendor accepts an offer", func(t *testing.T) {
		d := builder.NewDealBuilder().With(readyDeal).BuildReconstructed()
		offerID := uuid.New()
		supplierID := uuid.New()

		require.NoError(t, d.AcceptOffer(d.RequestedBy(), offerID, supplierID, 25.50, now))

		assert.Equal(t, deal.StatusClosedAccepted, d.Status())
		require.NotNil(t, d.Acceptance())
		assert.Equal(t, offerID, d.Acceptance().OfferID)
		assert.Equal(t, supplierID, d.Acceptance().SupplierID)
		assert.Equal(t, d.RequestedBy(), d.Acceptance().ByVendorID)
		assert.Equal(t, 25.50, d.Acceptance().PricePerUnit)
		require.NotNil(t, d.ClosedAt())
		assert.Equal(t, now, *d.ClosedAt())
	})

	t.Run("non-owner cannot accept", func(t *testing.T) {
		d := builder.NewDealBuilder().With(readyDeal).BuildReconstructed()

		err := d.AcceptOffer(uuid.New(), uuid.New(), uuid.New(), 25.50, now)
		require.ErrorIs(t, err, deal.ErrNotDealOwner)
		assert.Equal(t, deal.StatusReadyForOffer, d.Status())
	})

	t.Run("open deal cannot accept", func(t *testing.T) {
		d, err := builder.NewDealBuilder().BuildDomain()
		require.NoError(t, err)

		err = d.AcceptOffer(d.RequestedBy(), uuid.New(), uuid.New(), 25.50, now)
		require.ErrorIs(t, err, deal.ErrDealNotReady)
	})

	t.Run("second acceptance fails", func(t *testing.T) {
		d := builder.NewDealBuilder().With(readyDeal).BuildReconstructed()
		firstOffer := uuid.New()
		require.NoError(t, d.AcceptOffer(d.RequestedBy(), firstOffer, uuid.New(), 25.50, now))

		err := d.AcceptOffer(d.RequestedBy(), uuid.New(), uuid.New(), 24.00, now.Add(time.Minute))
		require.ErrorIs(t, err, deal.ErrDealNotReady)

		assert.Equal(t, firstOffer, d.Acceptance().OfferID, "first acceptance must stand")
	})

	t.Run("expired deal cannot accept", func(t *testing.T) {
		d := builder.NewDealBuilder().With(func(b *builder.DealBuilder) {
			b.Status = deal.StatusClosedExpired
		}).BuildReconstructed()

		err := d.AcceptOffer(d.RequestedBy(), uuid.New(), uuid.New(), 25.50, now)
		require.ErrorIs(t, err, deal.ErrDealNotReady)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewDealBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
