package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahlimouna/gari-app/internal/db"
	"github.com/sahlimouna/gari-app/internal/entities"
)

func TestQuoteStay(t *testing.T) {
	svc := NewCatalogService(&stubParkingStore{parkings: map[string]*db.Parking{
		"parking-1": {ID: "parking-1", Name: "Parking Centre-Ville", PricePerHour: 100},
	}})

	quote, err := svc.QuoteStay(entities.QuoteRequest{
		ParkingID: "parking-1",
		StartDate: "2024-06-01",
		StartHour: 9,
		EndDate:   "2024-06-01",
		EndHour:   17,
	})
	require.NoError(t, err)
	assert.Equal(t, 8, quote.DurationHours)
	assert.Equal(t, 800, quote.TotalPrice)
	assert.Equal(t, 100, quote.PricePerHour)

	_, err = svc.QuoteStay(entities.QuoteRequest{
		ParkingID: "parking-1",
		StartDate: "2024-06-02",
		StartHour: 9,
		EndDate:   "2024-06-01",
		EndHour:   9,
	})
	assert.ErrorIs(t, err, ErrEndBeforeStart)

	_, err = svc.QuoteStay(entities.QuoteRequest{ParkingID: "ghost", StartDate: "2024-06-01", EndDate: "2024-06-01"})
	assert.Error(t, err)
}

func TestGetParkingAbsent(t *testing.T) {
	svc := NewCatalogService(&stubParkingStore{parkings: map[string]*db.Parking{}})
	parking, err := svc.GetParking("ghost")
	require.NoError(t, err)
	assert.Nil(t, parking)
}
