package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/repositories"
)

// Snapshot is a copy of a collection's state.
type Snapshot[T any] struct {
	Data        []T       `json:"data"`
	Loading     bool      `json:"loading"`
	Error       string    `json:"error,omitempty"`
	RefreshedAt time.Time `json:"refreshedAt"`
}

// Collection holds the last fetched copy of a whole backend collection.
// A failed refresh empties the data and records the error.
type Collection[T any] struct {
	name   string
	fetch  func(context.Context) ([]T, error)
	logger *slog.Logger

	mu          sync.RWMutex
	data        []T
	loading     bool
	err         string
	refreshedAt time.Time
	// started counts refreshes begun; applied is the newest one written.
	started uint64
	applied uint64
}

func NewCollection[T any](name string, fetch func(context.Context) ([]T, error), logger *slog.Logger) *Collection[T] {
	return &Collection[T]{name: name, fetch: fetch, logger: logger}
}

func (c *Collection[T]) Name() string { return c.name }

// Refresh refetches the collection. When refreshes overlap, the result of
// the one started last wins and older results are dropped.
func (c *Collection[T]) Refresh(ctx context.Context) (Snapshot[T], error) {
	c.mu.Lock()
	c.started++
	gen := c.started
	c.loading = true
	c.err = ""
	c.mu.Unlock()

	items, err := c.fetch(ctx)

	c.mu.Lock()
	if gen < c.applied {
		c.mu.Unlock()
		c.logger.DebugContext(ctx, "dropping stale collection refresh", slog.String("collection", c.name))
		return c.Snapshot(), err
	}
	c.applied = gen
	c.loading = c.applied < c.started
	c.refreshedAt = time.Now()
	if err != nil {
		c.data = nil
		c.err = UserMessage("Loading "+c.name, err)
		c.logger.ErrorContext(ctx, "collection refresh failed", slog.String("collection", c.name), slog.Any("error", err))
	} else {
		c.data = items
	}
	c.mu.Unlock()

	return c.Snapshot(), err
}

func (c *Collection[T]) Snapshot() Snapshot[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data := make([]T, len(c.data))
	copy(data, c.data)
	return Snapshot[T]{Data: data, Loading: c.loading, Error: c.err, RefreshedAt: c.refreshedAt}
}

// Collections bundles the three top-level collections.
type Collections struct {
	Players     *Collection[models.Player]
	Tournaments *Collection[models.Tournament]
	Venues      *Collection[models.Venue]
}

func NewCollections(
	playerRepo repositories.PlayerRepository,
	tournamentRepo repositories.TournamentRepository,
	venueRepo repositories.VenueRepository,
	logger *slog.Logger,
) *Collections {
	return &Collections{
		Players:     NewCollection("players", playerRepo.List, logger),
		Tournaments: NewCollection("tournaments", tournamentRepo.List, logger),
		Venues:      NewCollection("venues", venueRepo.List, logger),
	}
}

// RefreshAll reloads all collections concurrently. Every collection is
// refreshed even if another one fails; the first error is returned.
func (c *Collections) RefreshAll(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { _, err := c.Players.Refresh(ctx); return err })
	g.Go(func() error { _, err := c.Tournaments.Refresh(ctx); return err })
	g.Go(func() error { _, err := c.Venues.Refresh(ctx); return err })
	return g.Wait()
}
