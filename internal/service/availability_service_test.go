package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahlimouna/gari-app/internal/db"
	"github.com/sahlimouna/gari-app/internal/entities"
)

func seededFeed(seed int64, parkings ...db.Parking) *SimulatedAvailabilityFeed {
	feed := NewSimulatedAvailabilityFeed()
	feed.rng = rand.New(rand.NewSource(seed))
	feed.Seed(parkings)
	return feed
}

func TestFeedStaysWithinBounds(t *testing.T) {
	feed := seededFeed(1, db.Parking{ID: "p1", TotalSpots: 3, AvailableSpots: 2})

	for i := 0; i < 500; i++ {
		feed.Tick()
		snap, err := feed.Snapshot("p1")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, snap.AvailableSpots, 0)
		assert.LessOrEqual(t, snap.AvailableSpots, 3)
	}
}

func TestFeedTrendFollowsChange(t *testing.T) {
	feed := seededFeed(42, db.Parking{ID: "p1", TotalSpots: 100, AvailableSpots: 50})

	prev, err := feed.Snapshot("p1")
	require.NoError(t, err)
	assert.Equal(t, entities.TrendStable, prev.Trend)

	for i := 0; i < 50; i++ {
		feed.Tick()
		snap, err := feed.Snapshot("p1")
		require.NoError(t, err)
		switch {
		case snap.AvailableSpots > prev.AvailableSpots:
			assert.Equal(t, entities.TrendUp, snap.Trend)
		case snap.AvailableSpots < prev.AvailableSpots:
			assert.Equal(t, entities.TrendDown, snap.Trend)
		default:
			assert.Equal(t, entities.TrendStable, snap.Trend)
		}
		prev = snap
	}
}

func TestFeedClampKeepsTrendConsistent(t *testing.T) {
	// A lot pinned at zero can only go up or stay; the clamp must never
	// report a downward trend.
	feed := seededFeed(7, db.Parking{ID: "empty", TotalSpots: 5, AvailableSpots: 0})

	feed.Tick()
	snap, err := feed.Snapshot("empty")
	require.NoError(t, err)
	assert.NotEqual(t, entities.TrendDown, snap.Trend)
}

func TestFeedUnknownParking(t *testing.T) {
	feed := seededFeed(1)
	_, err := feed.Snapshot("nope")
	assert.Error(t, err)
}

func TestOccupancyLevel(t *testing.T) {
	tests := []struct {
		available, total int
		want             string
	}{
		{available: 90, total: 100, want: "Faible affluence"},
		{available: 50, total: 100, want: "Affluence modérée"},
		{available: 15, total: 100, want: "Forte affluence"},
		{available: 2, total: 100, want: "Complet"},
		{available: 0, total: 0, want: "Complet"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, occupancyLevel(tt.available, tt.total))
	}
}
