//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"sabzi/internal/domain/deal"
	"sabzi/internal/infra"
	sqlc "sabzi/internal/infra/sqlc/generated"
	"sabzi/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDealWriteQueries struct {
	mock.Mock
}

func (m *MockDealWriteQueries) CreateDeal(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDealParams) (sqlc.Deals, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Deals), args.Error(1)
}

func (m *MockDealWriteQueries) GetDealForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Deals, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Deals), args.Error(1)
}

func (m *MockDealWriteQueries) UpdateDealProgress(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateDealProgressParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDealWriteQueries) AcceptDealOffer(ctx context.Context, db sqlc.DBTX, arg sqlc.AcceptDealOfferParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDealWriteQueries) ExpireDeal(ctx context.Context, db sqlc.DBTX, arg sqlc.ExpireDealParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDealWriteQueries) ExpireOverdueDeals(ctx context.Context, db sqlc.DBTX, closedAt pgtype.Timestamptz) ([]uuid.UUID, error) {
	args := m.Called(ctx, db, closedAt)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

// sqlc.DBTX implementation so the mock can stand in for a transaction
func (m *MockDealWriteQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDealWriteQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockDealWriteQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func TestLockByID(t *testing.T) {
	row := builder.NewDealBuilder().BuildInfra()

	tests := []struct {
		name      string
		mockRow   sqlc.Deals
		mockError error
		wantKind  infra.RepositoryErrorKind
		wantDeal  bool
	}{
		{
			name:     "success",
			mockRow:  row,
			wantDeal: true,
		},
		{
			name:      "not found is classified",
			mockRow:   sqlc.Deals{},
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "other errors become db failures",
			mockRow:   sqlc.Deals{},
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockDealWriteQueries)
			repo := NewDealRepository(mockQueries)
			mockQueries.On("GetDealForUpdate", mock.Anything, mock.Anything, tt.mockRow.ID).
				Return(tt.mockRow, tt.mockError)

			d, err := repo.LockByID(context.Background(), mockQueries, tt.mockRow.ID)

			if tt.wantDeal {
				require.NoError(t, err)
				assert.Equal(t, tt.mockRow.ID, d.ID())
				assert.Equal(t, deal.StatusOpen, d.Status())
			} else {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestSaveProgress(t *testing.T) {
	d := builder.NewDealBuilder().BuildReconstructed()

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockDealWriteQueries)
		repo := NewDealRepository(mockQueries)
		mockQueries.On("UpdateDealProgress", mock.Anything, mock.Anything, mock.Anything).
			Return(int64(1), nil)

		err := repo.SaveProgress(context.Background(), mockQueries, d)
		require.NoError(t, err)
		mockQueries.AssertExpectations(t)
	})

	t.Run("zero rows means the deal left the open state", func(t *testing.T) {
		mockQueries := new(MockDealWriteQueries)
		repo := NewDealRepository(mockQueries)
		mockQueries.On("UpdateDealProgress", mock.Anything, mock.Anything, mock.Anything).
			Return(int64(0), nil)

		err := repo.SaveProgress(context.Background(), mockQueries, d)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})
}

func TestSaveAcceptance(t *testing.T) {
	t.Run("deal without acceptance is rejected", func(t *testing.T) {
		mockQueries := new(MockDealWriteQueries)
		repo := NewDealRepository(mockQueries)
		d := builder.NewDealBuilder().BuildReconstructed()

		err := repo.SaveAcceptance(context.Background(), mockQueries, d)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("zero rows means the deal was no longer ready", func(t *testing.T) {
		mockQueries := new(MockDealWriteQueries)
		repo := NewDealRepository(mockQueries)

		d := builder.NewDealBuilder().With(func(b *builder.DealBuilder) {
			b.Status = deal.StatusReadyForOffer
			b.CurrentQuantity = b.TargetQuantity
		}).BuildReconstructed()
		require.NoError(t, d.AcceptOffer(d.RequestedBy(), uuid.New(), uuid.New(), 25.50, builder.BaseTime))

		mockQueries.On("AcceptDealOffer", mock.Anything, mock.Anything, mock.Anything).
			Return(int64(0), nil)

		err := repo.SaveAcceptance(context.Background(), mockQueries, d)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})
}

func TestSaveExpiry(t *testing.T) {
	t.Run("zero rows is tolerated", func(t *testing.T) {
		mockQueries := new(MockDealWriteQueries)
		repo := NewDealRepository(mockQueries)

		d := builder.NewDealBuilder().BuildReconstructed()
		d.Expire(d.Deadline().Add(time.Hour))

		mockQueries.On("ExpireDeal", mock.Anything, mock.Anything, mock.Anything).
			Return(int64(0), nil)

		err := repo.SaveExpiry(context.Background(), mockQueries, d)
		require.NoError(t, err)
		mockQueries.AssertExpectations(t)
	})
}

func TestExpireOverdue(t *testing.T) {
	t.Run("returns expired ids", func(t *testing.T) {
		mockQueries := new(MockDealWriteQueries)
		repo := NewDealRepository(mockQueries)
		expired := []uuid.UUID{uuid.New(), uuid.New()}

		mockQueries.On("ExpireOverdueDeals", mock.Anything, mock.Anything, mock.Anything).
			Return(expired, nil)

		ids, err := repo.ExpireOverdue(context.Background(), mockQueries, builder.BaseTime)
		require.NoError(t, err)
		assert.Equal(t, expired, ids)
	})
}
