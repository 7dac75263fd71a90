package listen

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const dealEventsChannel = "deal_events"

// Hub fans Postgres deal_events notifications out to in-process
// subscribers. Signals are coalesced: a subscriber that has not drained
// its channel yet will see at most one pending wakeup, which is enough
// because consumers re-query the full state.
type Hub struct {
	pool *pgxpool.Pool

	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

func NewHub(pool *pgxpool.Pool) *Hub {
	return &Hub{
		pool: pool,
		subs: make(map[chan struct{}]struct{}),
	}
}

// Subscribe registers a wakeup channel. The returned cancel func must be
// called on teardown; afterwards the channel is never signalled again.
func (h *Hub) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		delete(h.subs, ch)
		h.mu.Unlock()
	}
	return ch, cancel
}

// Run blocks on the Postgres connection waiting for notifications until
// the context is cancelled. Connection failures back off and redial.
func (h *Hub) Run(ctx context.Context) error {
	for {
		if err := h.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			slog.Warn("deal events listener disconnected, reconnecting", "error", err.Error())
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
		}
	}
}

func (h *Hub) listen(ctx context.Context) error {
	conn, err := h.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+dealEventsChannel); err != nil {
		return err
	}

	for {
		if _, err := conn.Conn().WaitForNotification(ctx); err != nil {
			return err
		}
		h.broadcast()
	}
}

func (h *Hub) broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
