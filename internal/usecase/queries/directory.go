package queries

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

type EmailReadStore interface {
	EmailsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

// EmailDirectory is a read-through cache over the users table for
// display names. Misses degrade to UnknownUserEmail rather than failing
// the surrounding query.
type EmailDirectory struct {
	store EmailReadStore
	cache *gocache.Cache
}

func NewEmailDirectory(store EmailReadStore) *EmailDirectory {
	return &EmailDirectory{
		store: store,
		cache: gocache.New(10*time.Minute, 30*time.Minute),
	}
}

func (d *EmailDirectory) Resolve(ctx context.Context, ids []uuid.UUID) map[uuid.UUID]string {
	result := make(map[uuid.UUID]string, len(ids))
	var missing []uuid.UUID

	for _, id := range ids {
		if email, ok := d.cache.Get(id.String()); ok {
			result[id] = email.(string)
			continue
		}
		missing = append(missing, id)
	}

	if len(missing) > 0 {
		fetched, err := d.store.EmailsByIDs(ctx, missing)
		if err != nil {
			slog.Warn("email lookup failed, using placeholder", "error", err.Error())
			fetched = nil
		}
		for _, id := range missing {
			email, ok := fetched[id]
			if !ok {
				result[id] = UnknownUserEmail
				continue
			}
			d.cache.SetDefault(id.String(), email)
			result[id] = email
		}
	}

	return result
}

func (d *EmailDirectory) ResolveOne(ctx context.Context, id uuid.UUID) string {
	return d.Resolve(ctx, []uuid.UUID{id})[id]
}
