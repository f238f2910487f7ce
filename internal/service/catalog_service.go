package service

import (
	"fmt"

	"github.com/sahlimouna/gari-app/internal/db"
	"github.com/sahlimouna/gari-app/internal/entities"
	apperrors "github.com/sahlimouna/gari-app/internal/errors"
)

type ParkingStore interface {
	ListParkings() ([]db.Parking, error)
	GetParking(id string) (*db.Parking, error)
}

type CatalogService struct {
	Store ParkingStore
}

func NewCatalogService(store ParkingStore) *CatalogService {
	return &CatalogService{Store: store}
}

func (s *CatalogService) ListParkings() ([]entities.ParkingResponse, error) {
	parkings, err := s.Store.ListParkings()
	if err != nil {
		return nil, fmt.Errorf("listing parkings: %w", err)
	}
	out := make([]entities.ParkingResponse, 0, len(parkings))
	for _, p := range parkings {
		out = append(out, toParkingResponse(&p))
	}
	return out, nil
}

func (s *CatalogService) GetParking(id string) (*entities.ParkingResponse, error) {
	p, err := s.Store.GetParking(id)
	if err != nil {
		return nil, fmt.Errorf("loading parking: %w", err)
	}
	if p == nil {
		return nil, nil
	}
	resp := toParkingResponse(p)
	return &resp, nil
}

// QuoteStay combines the picker fields into two instants and prices the stay
// at the lot's hourly rate.
func (s *CatalogService) QuoteStay(req entities.QuoteRequest) (*entities.QuoteResponse, error) {
	parking, err := s.Store.GetParking(req.ParkingID)
	if err != nil {
		return nil, fmt.Errorf("loading parking: %w", err)
	}
	if parking == nil {
		return nil, apperrors.NotFound("Parking introuvable")
	}

	start, err := CombineDateHour(req.StartDate, req.StartHour)
	if err != nil {
		return nil, err
	}
	end, err := CombineDateHour(req.EndDate, req.EndHour)
	if err != nil {
		return nil, err
	}

	hours, total, err := Quote(start, end, parking.PricePerHour)
	if err != nil {
		return nil, err
	}
	return &entities.QuoteResponse{
		ParkingID:     parking.ID,
		StartTime:     start,
		EndTime:       end,
		DurationHours: hours,
		PricePerHour:  parking.PricePerHour,
		TotalPrice:    total,
	}, nil
}

func toParkingResponse(p *db.Parking) entities.ParkingResponse {
	return entities.ParkingResponse{
		ID:             p.ID,
		Name:           p.Name,
		Address:        p.Address,
		TotalSpots:     p.TotalSpots,
		AvailableSpots: p.AvailableSpots,
		PricePerHour:   p.PricePerHour,
		ImageURL:       p.ImageURL,
		Features:       p.Features,
	}
}
