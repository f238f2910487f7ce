package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/sahlimouna/gari-app/internal/db"
	"github.com/sahlimouna/gari-app/internal/entities"
)

// ErrMissingIdentity is returned when a submission arrives without an
// authenticated user id. Rejected locally, no remote call is made.
var ErrMissingIdentity = errors.New("missing identity")

// SubmissionState tracks the linear life cycle of one submission attempt.
type SubmissionState string

const (
	SubmissionIdle       SubmissionState = "idle"
	SubmissionValidating SubmissionState = "validating"
	SubmissionSubmitting SubmissionState = "submitting"
	SubmissionConfirmed  SubmissionState = "confirmed"
	SubmissionFailed     SubmissionState = "failed"
)

type ReservationStore interface {
	CreateReservation(res *db.Reservation) error
	GetReservation(id, userID string) (*db.Reservation, error)
	GetReservationByID(id string) (*db.Reservation, error)
}

type PlateImageUploader interface {
	UploadLicensePlateImage(ctx context.Context, userID, filename string, body io.Reader) (string, error)
}

// ReservationNotifier is invoked after a confirmed submission. Failures are
// the notifier's problem; they never fail the reservation.
type ReservationNotifier interface {
	NotifyReservationConfirmed(res *db.Reservation)
}

type ReservationService struct {
	Store    ReservationStore
	Uploader PlateImageUploader
	Notifier ReservationNotifier
}

func NewReservationService(store ReservationStore, uploader PlateImageUploader, notifier ReservationNotifier) *ReservationService {
	return &ReservationService{Store: store, Uploader: uploader, Notifier: notifier}
}

// PlateImage is the optional license-plate photo attached to a submission.
type PlateImage struct {
	Filename string
	Body     io.Reader
}

// Submit walks one attempt through idle, validating, submitting and a terminal
// confirmed or failed state.
//
// Entry guard: an authenticated user id and an already-validated start/end pair
// must be present, otherwise the attempt fails before any external call. On a
// valid entry at most one image upload and exactly one reservation write are
// performed; there are no automatic retries, and a failed upload leaves no
// partial reservation behind.
func (s *ReservationService) Submit(ctx context.Context, userID string, req entities.ReservationRequest, image *PlateImage) (*db.Reservation, error) {
	state := SubmissionIdle

	state = transition(state, SubmissionValidating)
	if userID == "" {
		transition(state, SubmissionFailed)
		return nil, ErrMissingIdentity
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() || !req.EndTime.After(req.StartTime) {
		transition(state, SubmissionFailed)
		return nil, ErrEndBeforeStart
	}

	state = transition(state, SubmissionSubmitting)

	var imageURL string
	if image != nil {
		if s.Uploader == nil {
			transition(state, SubmissionFailed)
			return nil, errors.New("image uploads are not configured")
		}
		url, err := s.Uploader.UploadLicensePlateImage(ctx, userID, image.Filename, image.Body)
		if err != nil {
			transition(state, SubmissionFailed)
			return nil, fmt.Errorf("uploading license plate image: %w", err)
		}
		imageURL = url
	}

	res := &db.Reservation{
		ID:                   uuid.NewString(),
		UserID:               userID,
		ParkingID:            req.ParkingID,
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		CarBrand:             req.CarBrand,
		CarColor:             req.CarColor,
		LicensePlate:         req.LicensePlate,
		LicensePlateImageURL: imageURL,
		Status:               db.ReservationStatusConfirmed,
		CreatedAt:            time.Now().UTC(),
	}

	if err := s.Store.CreateReservation(res); err != nil {
		transition(state, SubmissionFailed)
		return nil, fmt.Errorf("creating reservation: %w", err)
	}

	transition(state, SubmissionConfirmed)
	if s.Notifier != nil {
		s.Notifier.NotifyReservationConfirmed(res)
	}
	return res, nil
}

func (s *ReservationService) GetReservation(id, userID string) (*entities.ReservationResponse, error) {
	res, err := s.Store.GetReservation(id, userID)
	if err != nil {
		return nil, err
	}
	return &entities.ReservationResponse{
		ID:                   res.ID,
		ParkingID:            res.ParkingID,
		StartTime:            res.StartTime,
		EndTime:              res.EndTime,
		FirstName:            res.FirstName,
		LastName:             res.LastName,
		CarBrand:             res.CarBrand,
		CarColor:             res.CarColor,
		LicensePlate:         res.LicensePlate,
		LicensePlateImageURL: res.LicensePlateImageURL,
		Status:               res.Status,
		CreatedAt:            res.CreatedAt,
	}, nil
}

// FindByID looks a reservation up without a user scope, for the payment
// webhook which authenticates with the gateway signature instead.
func (s *ReservationService) FindByID(id string) (*db.Reservation, error) {
	return s.Store.GetReservationByID(id)
}

func transition(from, to SubmissionState) SubmissionState {
	if to == SubmissionFailed {
		log.Printf("reservation submission: %s -> %s", from, to)
	}
	return to
}
