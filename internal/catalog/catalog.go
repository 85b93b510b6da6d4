// Package catalog caches the backend's seed and location lists.
package catalog

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/IdleGarden_Go/internal/domain"
)

// CacheSchemaVersion is the current version of the cached entry layout
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

const (
	keySeeds     = "seeds"
	keyLocations = "locations"
)

// Source loads catalog lists from the backend
type Source interface {
	Seeds(ctx context.Context) ([]domain.Seed, error)
	Locations(ctx context.Context) ([]domain.Location, error)
}

type cachedEntry struct {
	Version   string
	Seeds     []domain.Seed
	Locations []domain.Location
	CachedAt  time.Time
}

// Catalog serves seeds and locations from an expiring LRU, refetching on miss
type Catalog struct {
	src Source
	lru *expirable.LRU[string, *cachedEntry]
	mu  sync.Mutex // serializes refetches
}

// New creates a catalog holding at most size lists for ttl
func New(src Source, size int, ttl time.Duration) *Catalog {
	return &Catalog{
		src: src,
		lru: expirable.NewLRU[string, *cachedEntry](max(size, 2), nil, ttl),
	}
}

// Seeds returns every seed in backend order
func (c *Catalog) Seeds(ctx context.Context) ([]domain.Seed, error) {
	if entry, ok := c.get(keySeeds); ok {
		return slices.Clone(entry.Seeds), nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.get(keySeeds); ok {
		return slices.Clone(entry.Seeds), nil
	}

	seeds, err := c.src.Seeds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load seeds: %w", err)
	}
	c.lru.Add(keySeeds, &cachedEntry{Version: CacheSchemaVersion, Seeds: seeds, CachedAt: time.Now()})
	return slices.Clone(seeds), nil
}

// Locations returns every garden location
func (c *Catalog) Locations(ctx context.Context) ([]domain.Location, error) {
	if entry, ok := c.get(keyLocations); ok {
		return slices.Clone(entry.Locations), nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.get(keyLocations); ok {
		return slices.Clone(entry.Locations), nil
	}

	locations, err := c.src.Locations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}
	c.lru.Add(keyLocations, &cachedEntry{Version: CacheSchemaVersion, Locations: locations, CachedAt: time.Now()})
	return slices.Clone(locations), nil
}

// SeedByID finds a seed by its backend identifier
func (c *Catalog) SeedByID(ctx context.Context, id string) (*domain.Seed, error) {
	seeds, err := c.Seeds(ctx)
	if err != nil {
		return nil, err
	}
	for i := range seeds {
		if seeds[i].ID == id {
			return &seeds[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrSeedNotFound, id)
}

// LocationByCode finds a location by its code
func (c *Catalog) LocationByCode(ctx context.Context, code string) (*domain.Location, error) {
	locations, err := c.Locations(ctx)
	if err != nil {
		return nil, err
	}
	for i := range locations {
		if locations[i].Code == code {
			return &locations[i], nil
		}
	}
	return nil, fmt.Errorf("%w: location %s", domain.ErrNotFound, code)
}

// Invalidate drops every cached list
func (c *Catalog) Invalidate() {
	c.lru.Purge()
}

func (c *Catalog) get(key string) (*cachedEntry, bool) {
	entry, found := c.lru.Get(key)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		return nil, false
	}
	return entry, true
}
