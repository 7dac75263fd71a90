package api

import (
	"io"
	"net/http"
	"time"

	resdto "sabzi/internal/handler/dto/response"
	"sabzi/internal/handler/httperr"
	"sabzi/internal/handler/middleware"
	"sabzi/internal/infra/listen"
	"sabzi/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const heartbeatInterval = 30 * time.Second

type EventsHandler struct {
	hub *listen.Hub
	q   queries.DealQueries
}

func NewEventsHandler(hub *listen.Hub, q queries.DealQueries) *EventsHandler {
	return &EventsHandler{hub: hub, q: q}
}

// @Summary Deal events stream
// @Description Server-sent events: a fresh deal board snapshot on connect and after every deal change
// @Tags events
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string "SSE stream"
// @Failure 401 {object} map[string]string
// @Router /events/deals [get]
func (h *EventsHandler) StreamDeals(c *gin.Context) {
	viewerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	wakeup, cancel := h.hub.Subscribe()
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	// First frame carries the current state so clients never render empty.
	if !h.sendSnapshot(c, viewerID) {
		return
	}

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case <-wakeup:
			return h.sendSnapshot(c, viewerID)
		case <-heartbeat.C:
			c.SSEvent("heartbeat", time.Now().Unix())
			return true
		}
	})
}

// sendSnapshot re-queries the full board; the wakeup signal carries no
// payload, state always comes from the store after a sweep.
func (h *EventsHandler) sendSnapshot(c *gin.Context, viewerID uuid.UUID) bool {
	board, err := h.q.ListBoard(c.Request.Context(), viewerID, queries.ModeAll, "")
	if err != nil {
		return false
	}
	c.SSEvent("deals", resdto.FromDealBoard(board))
	c.Writer.Flush()
	return true
}
