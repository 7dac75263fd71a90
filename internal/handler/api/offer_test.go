//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"sabzi/internal/domain/deal"
	"sabzi/internal/domain/user"
	"sabzi/internal/handler/api"
	"sabzi/internal/usecase/commands"
	"sabzi/internal/usecase/queries"
	"sabzi/tests/common/builder"
	"sabzi/tests/common/httptest"
	"sabzi/tests/common/testutil"
	commandsmock "sabzi/tests/mock/commands"
	queriesmock "sabzi/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOfferCommands
	mockQueries  *queriesmock.MockOfferQueries
	handler      *api.OfferHandler
	actorID      uuid.UUID
}

func (s *OfferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOfferCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOfferQueries(s.mockCtrl)
	s.handler = api.NewOfferHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleSupplier)
		c.Next()
	}

	s.router.POST("/deals/:id/offers", authMiddleware, s.handler.Submit)
	s.router.GET("/deals/:id/offers", authMiddleware, s.handler.ListForDeal)
	s.router.POST("/deals/:id/accept", authMiddleware, s.handler.Accept)
	s.router.GET("/offers", authMiddleware, s.handler.ListMine)
}

func (s *OfferHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfferHandlerTestSuite))
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *OfferHandlerTestSuite) TestSubmit() {
	dealID := uuid.New()
	url := "/deals/" + dealID.String() + "/offers"
	reqBody := builder.NewOfferBuilder().BuildSubmitRequestDTO()
	expectedResult := &commands.SubmitOfferResult{OfferID: uuid.New(), TotalPrice: 1275}

	s.Run("success: returns 201 Created with locked total", func() {
		s.mockCommands.EXPECT().SubmitOffer(gomock.Any(), dealID, gomock.Any(), s.actorID).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(expectedResult.OfferID.String(), body["id"])
		s.Equal(1275.0, body["total_price"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "non-positive price", mutate: testutil.Field("price_per_unit", 0)},
			{name: "negative price", mutate: testutil.Field("price_per_unit", -3)},
			{name: "missing price", mutate: testutil.Field("price_per_unit", nil)},
			{name: "notes too long", mutate: testutil.Field("notes", strings.Repeat("a", 501))},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 409 Conflict when deal cannot take offers", func() {
		s.mockCommands.EXPECT().SubmitOffer(gomock.Any(), dealID, gomock.Any(), s.actorID).
			Return(nil, deal.ErrDealNotAcceptingOffers).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not accepting offers")
	})
}

// ================================================================================
// TestAccept
// ================================================================================

func (s *OfferHandlerTestSuite) TestAccept() {
	dealID := uuid.New()
	offerID := uuid.New()
	url := "/deals/" + dealID.String() + "/accept"
	reqBody := map[string]any{"offer_id": offerID.String()}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().AcceptOffer(gomock.Any(), dealID, offerID, s.actorID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 Forbidden when caller does not own the deal", func() {
		s.mockCommands.EXPECT().AcceptOffer(gomock.Any(), dealID, offerID, s.actorID).
			Return(deal.ErrNotDealOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "deal owner")
	})

	s.Run("error: 409 Conflict when deal is not ready", func() {
		s.mockCommands.EXPECT().AcceptOffer(gomock.Any(), dealID, offerID, s.actorID).
			Return(deal.ErrDealNotReady).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not ready")
	})

	s.Run("error: 400 Bad Request without offer_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestListForDeal
// ================================================================================

func (s *OfferHandlerTestSuite) TestListForDeal() {
	dealID := uuid.New()
	url := "/deals/" + dealID.String() + "/offers"
	offerView := builder.NewOfferBuilder().BuildViewQuery()

	s.Run("success: returns offers with outcomes", func() {
		s.mockQueries.EXPECT().ListForDeal(gomock.Any(), dealID, s.actorID).
			Return([]*queries.OfferView{offerView}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal("pending", body[0]["outcome"])
	})

	s.Run("error: 403 Forbidden for non-owner", func() {
		s.mockQueries.EXPECT().ListForDeal(gomock.Any(), dealID, s.actorID).
			Return(nil, queries.ErrOfferAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "deal owner")
	})

	s.Run("error: 404 Not Found for unknown deal", func() {
		s.mockQueries.EXPECT().ListForDeal(gomock.Any(), dealID, s.actorID).
			Return(nil, queries.ErrDealNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Deal not found")
	})
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *OfferHandlerTestSuite) TestListMine() {
	supplierView := builder.NewOfferBuilder().BuildSupplierViewQuery()

	s.Run("success: returns supplier offers with deal snapshots", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.actorID).
			Return([]*queries.SupplierOfferView{supplierView}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers", nil, "bearer-token")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(supplierView.DealItemName, body[0]["deal_item_name"])
	})
}
