package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleGarden_Go/internal/domain"
)

type fakeSource struct {
	seeds         []domain.Seed
	locations     []domain.Location
	err           error
	seedCalls     int
	locationCalls int
}

func (f *fakeSource) Seeds(context.Context) ([]domain.Seed, error) {
	f.seedCalls++
	return f.seeds, f.err
}

func (f *fakeSource) Locations(context.Context) ([]domain.Location, error) {
	f.locationCalls++
	return f.locations, f.err
}

func testSource() *fakeSource {
	return &fakeSource{
		seeds: []domain.Seed{
			{ID: "s1", Code: "radish", UnlockRequirement: domain.UnlockRequirement{Type: domain.UnlockDefault}},
			{ID: "s2", Code: "carrot", UnlockRequirement: domain.UnlockRequirement{Type: domain.UnlockGold, Value: 500}},
			{ID: "s3", Code: "oak", UnlockRequirement: domain.UnlockRequirement{Type: domain.UnlockTreesSold, Value: 10}},
		},
		locations: []domain.Location{{ID: "l1", Code: "backyard"}, {ID: "l2", Code: "greenhouse"}},
	}
}

func TestCatalog_CachesLists(t *testing.T) {
	src := testSource()
	c := New(src, 8, time.Minute)
	ctx := context.Background()

	for range 3 {
		seeds, err := c.Seeds(ctx)
		require.NoError(t, err)
		assert.Len(t, seeds, 3)

		locations, err := c.Locations(ctx)
		require.NoError(t, err)
		assert.Len(t, locations, 2)
	}

	assert.Equal(t, 1, src.seedCalls)
	assert.Equal(t, 1, src.locationCalls)

	c.Invalidate()
	_, err := c.Seeds(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, src.seedCalls)
}

func TestCatalog_Expires(t *testing.T) {
	src := testSource()
	c := New(src, 8, 20*time.Millisecond)
	ctx := context.Background()

	_, err := c.Seeds(ctx)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, err := c.Seeds(ctx)
		return err == nil && src.seedCalls > 1
	}, time.Second, 10*time.Millisecond)
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c := New(testSource(), 8, time.Minute)
	ctx := context.Background()

	seeds, err := c.Seeds(ctx)
	require.NoError(t, err)
	seeds[0].Code = "mutated"

	again, err := c.Seeds(ctx)
	require.NoError(t, err)
	assert.Equal(t, "radish", again[0].Code)
}

func TestCatalog_Lookups(t *testing.T) {
	c := New(testSource(), 8, time.Minute)
	ctx := context.Background()

	seed, err := c.SeedByID(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, "carrot", seed.Code)

	_, err = c.SeedByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSeedNotFound)

	loc, err := c.LocationByCode(ctx, "greenhouse")
	require.NoError(t, err)
	assert.Equal(t, "l2", loc.ID)

	_, err = c.LocationByCode(ctx, "moon")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_SourceErrorNotCached(t *testing.T) {
	src := testSource()
	src.err = errors.New("offline")
	c := New(src, 8, time.Minute)
	ctx := context.Background()

	_, err := c.Seeds(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load seeds")

	src.err = nil
	seeds, err := c.Seeds(ctx)
	require.NoError(t, err)
	assert.Len(t, seeds, 3)
}
