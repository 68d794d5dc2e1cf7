package plan

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ArbabsLab/GymBab/internal/database"
)

// ActiveCache keeps the most recently read active plan per user so the
// active-plan endpoint does not hit Postgres on every poll from the app.
// Entries are dropped when a new plan is generated for the user.
type ActiveCache struct {
	c *lru.Cache[string, database.Plan]
}

func NewActiveCache(size int) (*ActiveCache, error) {
	c, err := lru.New[string, database.Plan](size)
	if err != nil {
		return nil, err
	}
	return &ActiveCache{c: c}, nil
}

func (a *ActiveCache) Get(userID string) (database.Plan, bool) {
	return a.c.Get(userID)
}

func (a *ActiveCache) Add(userID string, p database.Plan) {
	a.c.Add(userID, p)
}

// Invalidate removes the cached plan after a new one is persisted.
func (a *ActiveCache) Invalidate(userID string) {
	a.c.Remove(userID)
}
