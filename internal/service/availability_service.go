package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/sahlimouna/gari-app/internal/db"
	"github.com/sahlimouna/gari-app/internal/entities"
)

// AvailabilityFeed serves live spot counts for a lot. The simulated feed below
// is the only implementation today; a real sensor feed can replace it without
// touching callers.
type AvailabilityFeed interface {
	Snapshot(parkingID string) (*entities.AvailabilitySnapshot, error)
}

// SimulatedAvailabilityFeed nudges each lot's counter by -1, 0 or +1 per tick,
// clamped to [0, totalSpots], and derives the trend from the direction of the
// last change. Purely decorative and local; it reads no external source.
type SimulatedAvailabilityFeed struct {
	mu   sync.Mutex
	rng  *rand.Rand
	lots map[string]*lotAvailability
}

type lotAvailability struct {
	total     int
	available int
	trend     entities.Trend
	updatedAt time.Time
}

func NewSimulatedAvailabilityFeed() *SimulatedAvailabilityFeed {
	return &SimulatedAvailabilityFeed{
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		lots: make(map[string]*lotAvailability),
	}
}

// Seed registers the lots to simulate, starting from their stored counts.
func (f *SimulatedAvailabilityFeed) Seed(parkings []db.Parking) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range parkings {
		f.lots[p.ID] = &lotAvailability{
			total:     p.TotalSpots,
			available: p.AvailableSpots,
			trend:     entities.TrendStable,
			updatedAt: time.Now(),
		}
	}
}

// Tick applies one nudge to every registered lot.
func (f *SimulatedAvailabilityFeed) Tick() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, lot := range f.lots {
		change := f.rng.Intn(3) - 1
		next := lot.available + change
		if next < 0 {
			next = 0
		}
		if next > lot.total {
			next = lot.total
		}

		switch {
		case next > lot.available:
			lot.trend = entities.TrendUp
		case next < lot.available:
			lot.trend = entities.TrendDown
		default:
			lot.trend = entities.TrendStable
		}
		lot.available = next
		lot.updatedAt = time.Now()
	}
}

func (f *SimulatedAvailabilityFeed) Snapshot(parkingID string) (*entities.AvailabilitySnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	lot, ok := f.lots[parkingID]
	if !ok {
		return nil, fmt.Errorf("no availability feed for parking %s", parkingID)
	}
	return &entities.AvailabilitySnapshot{
		ParkingID:      parkingID,
		AvailableSpots: lot.available,
		TotalSpots:     lot.total,
		Trend:          lot.trend,
		OccupancyLevel: occupancyLevel(lot.available, lot.total),
		UpdatedAt:      lot.updatedAt,
	}, nil
}

func occupancyLevel(available, total int) string {
	if total == 0 {
		return "Complet"
	}
	occupied := float64(total-available) / float64(total) * 100
	switch {
	case occupied < 30:
		return "Faible affluence"
	case occupied < 70:
		return "Affluence modérée"
	case occupied < 90:
		return "Forte affluence"
	default:
		return "Complet"
	}
}
