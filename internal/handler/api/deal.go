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

type DealHandler struct {
	cmds commands.DealCommands
	q    queries.DealQueries
}

func NewDealHandler(cmds commands.DealCommands, q queries.DealQueries) *DealHandler {
	return &DealHandler{cmds: cmds, q: q}
}

// @Summary Create deal
// @Description Open a new group-buy deal for an item
// @Tags deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDealRequest true "Create deal request"
// @Success 201 {object} resdto.DealResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /deals [post]
func (h *DealHandler) Create(c *gin.Context) {
	vendorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateDeal(c.Request.Context(), req.ToCommand(), vendorID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Create deal failed", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.DealID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load deal", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromDealView(view))
}

// @Summary Get deal
// @Description Get a deal by ID
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.DealResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /deals/{id} [get]
func (h *DealHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrDealNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Deal not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load deal", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealView(view))
}

// @Summary List deal board
// @Description Vendor dashboard: active deals plus closed history, optionally scoped to the caller
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Param mode query string false "all or mine" Enums(all, mine)
// @Param search query string false "Item name filter"
// @Success 200 {object} resdto.DealBoardResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /deals [get]
func (h *DealHandler) ListBoard(c *gin.Context) {
	viewerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	mode, err := queries.NewListMode(c.Query("mode"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid mode", nil)
		return
	}

	board, err := h.q.ListBoard(c.Request.Context(), viewerID, mode, c.Query("search"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load deals", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealBoard(board))
}

// @Summary List ready deals
// @Description Supplier feed: deals awaiting a supplier offer, oldest first
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Param search query string false "Item name filter"
// @Success 200 {array} resdto.DealResponse
// @Failure 401 {object} map[string]string
// @Router /deals/ready [get]
func (h *DealHandler) ListReady(c *gin.Context) {
	views, err := h.q.ListReady(c.Request.Context(), c.Query("search"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load deals", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealViews(views))
}

// @Summary List contributions
// @Description Contribution ledger for a deal, oldest first
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 200 {array} resdto.ContributionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /deals/{id}/contributions [get]
func (h *DealHandler) ListContributions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	views, err := h.q.ListContributions(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrDealNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Deal not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load contributions", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromContributionViews(views))
}

// @Summary Contribute to deal
// @Description Add a vendor quantity commitment to an open deal
// @Tags deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Param request body reqdto.ContributeRequest true "Contribution request"
// @Success 200 {object} resdto.DealResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /deals/{id}/contributions [post]
func (h *DealHandler) Contribute(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	vendorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.ContributeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err = h.cmds.Contribute(c.Request.Context(), id, req.ToCommand(), vendorID); err != nil {
		var overErr *deal.OverContributionError
		switch {
		case errors.As(err, &overErr):
			httperr.AbortWithError(c, http.StatusConflict, err, "Contribution exceeds remaining quantity", gin.H{
				"remaining": overErr.Remaining,
				"unit":      overErr.Unit,
			})
		case errors.Is(err, deal.ErrDealClosed), errors.Is(err, deal.ErrDealNotOpen):
			httperr.AbortWithError(c, http.StatusConflict, err, "Deal is no longer accepting contributions", nil)
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Deal not found", nil)
		case infra.IsKind(err, infra.KindConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Deal changed concurrently, retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Contribution failed", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load deal", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealView(view))
}
