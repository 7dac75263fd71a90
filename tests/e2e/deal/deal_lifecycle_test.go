//go:build e2e

package deal_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"sabzi/internal/domain/user"
	"sabzi/internal/handler/dto/request"
	"sabzi/internal/handler/dto/response"
	"sabzi/tests/common/authtest"
	"sabzi/tests/common/builder"
	"sabzi/tests/common/dbtest"
	"sabzi/tests/common/httptest"
	"sabzi/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}

const (
	dealsURL         = "/api/deals"
	dealURL          = "/api/deals/%s"
	contributionsURL = "/api/deals/%s/contributions"
	dealOffersURL    = "/api/deals/%s/offers"
	acceptURL        = "/api/deals/%s/accept"
	readyURL         = "/api/deals/ready"
	myOffersURL      = "/api/offers"
)

type DealSuite struct {
	e2e.SharedSuite
}

func (s *DealSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestDealSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(DealSuite))
}

// creates a deal through the API and returns its id
func (s *DealSuite) createDeal(t *testing.T, token string, req request.CreateDealRequest) string {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, dealsURL, req, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.DealResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	require.NotEmpty(t, created.ID)
	return created.ID
}

func (s *DealSuite) contribute(t *testing.T, token, dealID string, quantity float64) *response.DealResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(contributionsURL, dealID),
		request.ContributeRequest{Quantity: quantity}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.DealResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return &res
}

func futureDealRequest() request.CreateDealRequest {
	return builder.NewDealBuilder().
		With(func(b *builder.DealBuilder) {
			b.Deadline = time.Now().Add(48 * time.Hour)
		}).
		BuildCreateRequestDTO()
}

// =============================================================================
// TestCreateDeal - Deal creation API tests
// =============================================================================

func (s *DealSuite) TestCreateDeal() {
	s.Run("Normal case: Vendor can open a deal", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "vendor@example.com", string(user.RoleVendor))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, dealsURL, futureDealRequest(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var actual response.DealResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))

		expected := &response.DealResponse{
			ItemName:          "Potatoes",
			TargetQuantity:    50,
			CurrentQuantity:   0,
			RemainingQuantity: 50,
			Unit:              "kg",
			RequestedByEmail:  "vendor@example.com",
			Status:            "open",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.DealResponse{}, "ID", "Deadline", "RequestedBy", "CreatedAt"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Deal response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: Supplier cannot open a deal", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "supplier@example.com", string(user.RoleSupplier))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, dealsURL, futureDealRequest(), token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Error case: Deadline in the past is rejected", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "vendor@example.com", string(user.RoleVendor))

		req := futureDealRequest()
		req.Deadline = time.Now().Add(-1 * time.Hour)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, dealsURL, req, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})

	s.Run("Error case: Unauthenticated request is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, dealsURL, futureDealRequest(), "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestDealLifecycle - End-to-end group-buy flow
// =============================================================================

func (s *DealSuite) TestDealLifecycle() {
	s.Run("Normal case: Contributions fill the deal, an offer closes it", func() {
		t := s.T()

		vendorToken := authtest.CreateAndLogin(t, s.DB, s.Router, "vendor@example.com", string(user.RoleVendor))
		helper1Token := authtest.CreateAndLogin(t, s.DB, s.Router, "helper1@example.com", string(user.RoleVendor))
		helper2Token := authtest.CreateAndLogin(t, s.DB, s.Router, "helper2@example.com", string(user.RoleVendor))
		supplierToken := authtest.CreateAndLogin(t, s.DB, s.Router, "supplier@example.com", string(user.RoleSupplier))

		dealID := s.createDeal(t, vendorToken, futureDealRequest())

		// 20 of 50 collected, deal stays open
		after20 := s.contribute(t, helper1Token, dealID, 20)
		require.Equal(t, "open", after20.Status)
		require.Equal(t, 20.0, after20.CurrentQuantity)
		require.Equal(t, 30.0, after20.RemainingQuantity)

		// 35 would overshoot the target, rejected with the remaining amount
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(contributionsURL, dealID),
			request.ContributeRequest{Quantity: 35}, helper2Token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Contribution exceeds remaining quantity")

		var overshoot struct {
			Detail struct {
				Remaining float64 `json:"remaining"`
				Unit      string  `json:"unit"`
			} `json:"detail"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &overshoot))
		require.Equal(t, 30.0, overshoot.Detail.Remaining)
		require.Equal(t, "kg", overshoot.Detail.Unit)

		// exactly the remaining 30 flips the deal to ready
		afterFill := s.contribute(t, helper2Token, dealID, 30)
		require.Equal(t, "ready_for_supplier_offer", afterFill.Status)
		require.Equal(t, 50.0, afterFill.CurrentQuantity)
		require.Equal(t, 0.0, afterFill.RemainingQuantity)

		// a ready deal no longer accepts contributions
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(contributionsURL, dealID),
			request.ContributeRequest{Quantity: 1}, helper1Token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "no longer accepting contributions")

		// the ready deal shows up on the supplier board
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, readyURL, nil, supplierToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var readyDeals []*response.DealResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &readyDeals))
		require.Len(t, readyDeals, 1)
		require.Equal(t, dealID, readyDeals[0].ID)

		// supplier offers 25.50/kg, total derived from the target quantity
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(dealOffersURL, dealID),
			request.SubmitOfferRequest{PricePerUnit: 25.50, Notes: "Fresh stock, can deliver tomorrow"}, supplierToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var submitted response.SubmitOfferResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &submitted))
		require.NotEmpty(t, submitted.ID)
		require.Equal(t, 1275.0, submitted.TotalPrice)

		// only the requesting vendor may accept
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(acceptURL, dealID),
			request.AcceptOfferRequest{OfferID: mustUUID(t, submitted.ID)}, helper1Token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Only the deal owner")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(acceptURL, dealID),
			request.AcceptOfferRequest{OfferID: mustUUID(t, submitted.ID)}, vendorToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		// acceptance closes the deal with the winning offer recorded
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(dealURL, dealID), nil, vendorToken)
		require.Equal(t, http.StatusOK, w.Code)
		var closed response.DealResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &closed))
		require.Equal(t, "closed_accepted", closed.Status)
		require.NotNil(t, closed.AcceptedOfferID)
		require.Equal(t, submitted.ID, *closed.AcceptedOfferID)
		require.NotNil(t, closed.AcceptedPricePerUnit)
		require.Equal(t, 25.50, *closed.AcceptedPricePerUnit)
		require.NotNil(t, closed.AcceptedSupplierEmail)
		require.Equal(t, "supplier@example.com", *closed.AcceptedSupplierEmail)
		require.NotNil(t, closed.ClosedAt)

		// a second acceptance on the closed deal fails
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(acceptURL, dealID),
			request.AcceptOfferRequest{OfferID: mustUUID(t, submitted.ID)}, vendorToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// the contribution ledger keeps both pledges
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(contributionsURL, dealID), nil, vendorToken)
		require.Equal(t, http.StatusOK, w.Code)
		var ledger []*response.ContributionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &ledger))
		require.Len(t, ledger, 2)
	})

	s.Run("Normal case: Losing offers are marked rejected after acceptance", func() {
		t := s.T()

		vendorToken := authtest.CreateAndLogin(t, s.DB, s.Router, "vendor@example.com", string(user.RoleVendor))
		winnerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "winner@example.com", string(user.RoleSupplier))
		loserToken := authtest.CreateAndLogin(t, s.DB, s.Router, "loser@example.com", string(user.RoleSupplier))

		dealID := s.createDeal(t, vendorToken, futureDealRequest())
		s.contribute(t, vendorToken, dealID, 50)

		winningID := s.submitOffer(t, winnerToken, dealID, 25.50)
		losingID := s.submitOffer(t, loserToken, dealID, 27.00)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(acceptURL, dealID),
			request.AcceptOfferRequest{OfferID: mustUUID(t, winningID)}, vendorToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		// deal owner sees derived outcomes on both offers
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(dealOffersURL, dealID), nil, vendorToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var offers []*response.OfferResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &offers))
		require.Len(t, offers, 2)

		outcomes := map[string]string{}
		for _, o := range offers {
			outcomes[o.ID] = o.Outcome
		}
		require.Equal(t, "accepted", outcomes[winningID])
		require.Equal(t, "rejected", outcomes[losingID])

		// the losing supplier sees the rejection on their own board
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, myOffersURL, nil, loserToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var mine []*response.SupplierOfferResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &mine))
		require.Len(t, mine, 1)
		require.Equal(t, "rejected", mine[0].Outcome)
		require.Equal(t, "closed_accepted", mine[0].DealStatus)
	})

	s.Run("Error case: Offers on an open deal are rejected", func() {
		t := s.T()

		vendorToken := authtest.CreateAndLogin(t, s.DB, s.Router, "vendor@example.com", string(user.RoleVendor))
		supplierToken := authtest.CreateAndLogin(t, s.DB, s.Router, "supplier@example.com", string(user.RoleSupplier))

		dealID := s.createDeal(t, vendorToken, futureDealRequest())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(dealOffersURL, dealID),
			request.SubmitOfferRequest{PricePerUnit: 25.50}, supplierToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "not accepting offers")
	})

	s.Run("Error case: Only the deal owner can list offers", func() {
		t := s.T()

		vendorToken := authtest.CreateAndLogin(t, s.DB, s.Router, "vendor@example.com", string(user.RoleVendor))
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleVendor))

		dealID := s.createDeal(t, vendorToken, futureDealRequest())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(dealOffersURL, dealID), nil, otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Only the deal owner")
	})
}

// =============================================================================
// TestExpiry - Lazy expiry on reads
// =============================================================================

func (s *DealSuite) TestExpiry() {
	s.Run("Normal case: Overdue open deal expires on read", func() {
		t := s.T()

		vendorID := dbtest.CreateTestUser(t, s.DB, "vendor@example.com", string(user.RoleVendor))
		token := authtest.LoginUser(t, s.Router, "vendor@example.com", "password123")
		dealID := dbtest.CreateTestDeal(t, s.DB, vendorID, "Tomatoes", 40, "kg",
			time.Now().Add(-1*time.Hour), "open")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(dealURL, dealID), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var expired response.DealResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &expired))
		require.Equal(t, "closed_expired", expired.Status)
		require.NotNil(t, expired.ClosedAt)

		// expiry is idempotent, rereading changes nothing
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(dealURL, dealID), nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var again response.DealResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &again))
		require.Equal(t, "closed_expired", again.Status)
		require.Equal(t, *expired.ClosedAt, *again.ClosedAt)
	})

	s.Run("Error case: Contribution to an overdue deal is rejected and settles it", func() {
		t := s.T()

		vendorID := dbtest.CreateTestUser(t, s.DB, "vendor@example.com", string(user.RoleVendor))
		dealID := dbtest.CreateTestDeal(t, s.DB, vendorID, "Tomatoes", 40, "kg",
			time.Now().Add(-1*time.Hour), "open")

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "helper@example.com", string(user.RoleVendor))
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(contributionsURL, dealID.String()),
			request.ContributeRequest{Quantity: 5}, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// the rejection must leave the expiry committed, not rolled back
		var status string
		require.NoError(t, s.DB.QueryRow(context.Background(),
			"SELECT status FROM deals WHERE id = $1", dealID).Scan(&status))
		require.Equal(t, "closed_expired", status)
	})

	s.Run("Error case: Offer on an overdue deal is rejected and settles it", func() {
		t := s.T()

		vendorID := dbtest.CreateTestUser(t, s.DB, "vendor@example.com", string(user.RoleVendor))
		dealID := dbtest.CreateTestDeal(t, s.DB, vendorID, "Tomatoes", 40, "kg",
			time.Now().Add(-1*time.Hour), "ready_for_supplier_offer")

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "supplier@example.com", string(user.RoleSupplier))
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(dealOffersURL, dealID.String()),
			request.SubmitOfferRequest{PricePerUnit: 10}, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		var status string
		require.NoError(t, s.DB.QueryRow(context.Background(),
			"SELECT status FROM deals WHERE id = $1", dealID).Scan(&status))
		require.Equal(t, "closed_expired", status)
	})
}

// =============================================================================
// TestBoard - Vendor board listing
// =============================================================================

func (s *DealSuite) TestBoard() {
	s.Run("Normal case: Board splits active deals from history", func() {
		t := s.T()

		vendorID := dbtest.CreateTestUser(t, s.DB, "vendor@example.com", string(user.RoleVendor))
		token := authtest.LoginUser(t, s.Router, "vendor@example.com", "password123")

		openID := dbtest.CreateTestDeal(t, s.DB, vendorID, "Potatoes", 50, "kg",
			time.Now().Add(48*time.Hour), "open")
		expiredID := dbtest.CreateTestDeal(t, s.DB, vendorID, "Onions", 30, "kg",
			time.Now().Add(-1*time.Hour), "open")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, dealsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var board response.DealBoardResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &board))
		require.Len(t, board.Active, 1)
		require.Equal(t, openID.String(), board.Active[0].ID)
		require.Len(t, board.History, 1)
		require.Equal(t, expiredID.String(), board.History[0].ID)
		require.Equal(t, "closed_expired", board.History[0].Status)
	})

	s.Run("Normal case: Search filters by item name", func() {
		t := s.T()

		vendorID := dbtest.CreateTestUser(t, s.DB, "vendor@example.com", string(user.RoleVendor))
		token := authtest.LoginUser(t, s.Router, "vendor@example.com", "password123")

		dbtest.CreateTestDeal(t, s.DB, vendorID, "Potatoes", 50, "kg",
			time.Now().Add(48*time.Hour), "open")
		onionID := dbtest.CreateTestDeal(t, s.DB, vendorID, "Red Onions", 30, "kg",
			time.Now().Add(48*time.Hour), "open")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, dealsURL+"?search=onion", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var board response.DealBoardResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &board))
		require.Len(t, board.Active, 1)
		require.Equal(t, onionID.String(), board.Active[0].ID)
	})

	s.Run("Error case: Unknown mode is rejected", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "vendor@example.com", string(user.RoleVendor))
		token := authtest.LoginUser(t, s.Router, "vendor@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, dealsURL+"?mode=theirs", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid mode")
	})
}

func (s *DealSuite) submitOffer(t *testing.T, token, dealID string, price float64) string {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(dealOffersURL, dealID),
		request.SubmitOfferRequest{PricePerUnit: price}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var submitted response.SubmitOfferResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &submitted))
	return submitted.ID
}
