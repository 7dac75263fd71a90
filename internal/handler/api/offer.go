package api

import (
	"errors"
	"net/http"

	"sabzi/internal/domain/deal"
	reqdto "sabzi/internal/handler/dto/request"
	resdto "sabzi/internal/handler/dto/response"
	"sabzi/internal/handler/httperr"
	"sabzi/internal/handler/middleware"
	"sabzi/internal/infra"
	"sabzi/internal/usecase/commands"
	"sabzi/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfferHandler struct {
	cmds commands.OfferCommands
	q    queries.OfferQueries
}

func NewOfferHandler(cmds commands.OfferCommands, q queries.OfferQueries) *OfferHandler {
	return &OfferHandler{cmds: cmds, q: q}
}

// @Summary Submit offer
// @Description Submit a supplier price offer against a deal
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Param request body reqdto.SubmitOfferRequest true "Offer request"
// @Success 201 {object} resdto.SubmitOfferResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /deals/{id}/offers [post]
func (h *OfferHandler) Submit(c *gin.Context) {
	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	supplierID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.SubmitOfferRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	result, err := h.cmds.SubmitOffer(c.Request.Context(), dealID, req.ToCommand(), supplierID)
	if err != nil {
		switch {
		case errors.Is(err, deal.ErrDealNotAcceptingOffers):
			httperr.AbortWithError(c, http.StatusConflict, err, "Deal is not accepting offers", nil)
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Deal not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Submit offer failed", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.SubmitOfferResponse{
		ID:         result.OfferID.String(),
		TotalPrice: result.TotalPrice,
	})
}

// @Summary Accept offer
// @Description Deal owner accepts exactly one supplier offer, closing the deal
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Param request body reqdto.AcceptOfferRequest true "Accept request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /deals/{id}/accept [post]
func (h *OfferHandler) Accept(c *gin.Context) {
	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.AcceptOfferRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err = h.cmds.AcceptOffer(c.Request.Context(), dealID, req.OfferID, actorID); err != nil {
		switch {
		case errors.Is(err, deal.ErrNotDealOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only the deal owner can accept offers", nil)
		case errors.Is(err, deal.ErrDealNotReady):
			httperr.AbortWithError(c, http.StatusConflict, err, "Deal is not ready for acceptance", nil)
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Deal or offer not found", nil)
		case infra.IsKind(err, infra.KindConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Deal already closed", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Accept offer failed", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List offers for deal
// @Description Deal owner's view of all offers with derived outcomes
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 200 {array} resdto.OfferResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /deals/{id}/offers [get]
func (h *OfferHandler) ListForDeal(c *gin.Context) {
	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListForDeal(c.Request.Context(), dealID, actorID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOfferAccess):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only the deal owner can view offers", nil)
		case errors.Is(err, queries.ErrDealNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Deal not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load offers", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferViews(views))
}

// @Summary List my offers
// @Description Supplier's own offers with deal snapshots and outcomes
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SupplierOfferResponse
// @Failure 401 {object} map[string]string
// @Router /offers [get]
func (h *OfferHandler) ListMine(c *gin.Context) {
	supplierID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	views, err := h.q.ListMine(c.Request.Context(), supplierID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load offers", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSupplierOfferViews(views))
}
