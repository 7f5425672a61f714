package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Chetanya2001/zip-mobility-solutions-sub000/backend"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/models"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/pricing"
)

// ErrBookingInFlight is returned when Submit is invoked while a previous
// submission has not resolved. The guard is this flag, not UI disablement.
var ErrBookingInFlight = errors.New("a booking submission is already in flight")

// ErrIncompleteDraft is returned when Submit is invoked before a car and trip
// window have been chosen
var ErrIncompleteDraft = errors.New("booking draft is incomplete")

// BookingStore holds the self-drive booking draft. The price breakdown is
// derived state: every mutator recomputes it, nothing else ever writes it.
type BookingStore struct {
	mu       sync.Mutex
	bookings backend.BookingAPI

	selectedCar           *models.Car
	pickupLocation        *models.Location
	pickupDateTime        time.Time
	dropoffDateTime       time.Time
	insureTrip            bool
	differentDropLocation bool
	dropoffLocation       *models.Location

	breakdown  models.PriceBreakdown
	submitting bool
	booked     bool
}

// NewBookingStore returns an empty booking draft
func NewBookingStore(bookings backend.BookingAPI) *BookingStore {
	return &BookingStore{bookings: bookings}
}

// SelectCar starts a draft from a search result, carrying the chosen trip
// window and pickup location over from the search filters
func (s *BookingStore) SelectCar(car *models.Car, filters models.SearchFilters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCar = car
	s.pickupLocation = filters.PickupLocation
	s.pickupDateTime = filters.PickupDateTime
	s.dropoffDateTime = filters.DropoffDateTime
	s.booked = false
	s.recomputeLocked()
}

// SetTripWindow updates the pickup and dropoff datetimes
func (s *BookingStore) SetTripWindow(pickup, dropoff time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pickupDateTime = pickup
	s.dropoffDateTime = dropoff
	s.recomputeLocked()
}

// SetInsureTrip toggles the trip insurance add-on
func (s *BookingStore) SetInsureTrip(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insureTrip = on
	s.recomputeLocked()
}

// SetDifferentDropLocation toggles the alternate-drop add-on
func (s *BookingStore) SetDifferentDropLocation(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.differentDropLocation = on
	s.recomputeLocked()
}

// SetDropoffLocation sets where the car is returned when the alternate-drop
// add-on is on
func (s *BookingStore) SetDropoffLocation(loc *models.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropoffLocation = loc
	s.recomputeLocked()
}

// recomputeLocked re-derives the breakdown from the base fields. Skips the
// recompute, leaving the previous values, when the car or either datetime is
// missing.
func (s *BookingStore) recomputeLocked() {
	if s.selectedCar == nil || s.pickupDateTime.IsZero() || s.dropoffDateTime.IsZero() {
		return
	}
	s.breakdown = pricing.SelfDrive(
		s.selectedCar.PricePerHour,
		s.pickupDateTime,
		s.dropoffDateTime,
		s.insureTrip,
		s.differentDropLocation,
	)
}

// Breakdown returns the derived price breakdown
func (s *BookingStore) Breakdown() models.PriceBreakdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.breakdown
}

// SelectedCar returns the car the draft was started from, or nil
func (s *BookingStore) SelectedCar() *models.Car {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedCar
}

// InsureTrip reports the insurance toggle
func (s *BookingStore) InsureTrip() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insureTrip
}

// Submitting is true while a submission is in flight
func (s *BookingStore) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

// Booked is true after a successful submission, until a new draft starts
func (s *BookingStore) Booked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.booked
}

// Submit sends the finalized draft to the backend. Double invocation while a
// call is outstanding returns ErrBookingInFlight without a second POST. A
// successful submission marks the draft booked and resets it.
func (s *BookingStore) Submit(ctx context.Context) (*models.BookingResponse, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return nil, ErrBookingInFlight
	}
	if s.selectedCar == nil || s.pickupDateTime.IsZero() || s.dropoffDateTime.IsZero() || s.pickupLocation == nil {
		s.mu.Unlock()
		return nil, ErrIncompleteDraft
	}
	s.submitting = true
	req := s.requestLocked()
	s.mu.Unlock()

	resp, err := s.bookings.BookSelfDrive(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	if err != nil {
		return nil, err
	}

	zap.S().Infow("self-drive booking created",
		"booking_id", resp.BookingID,
		"car_id", req.CarID,
		"total", req.TotalAmount)
	s.booked = true
	s.resetDraftLocked()
	return resp, nil
}

func (s *BookingStore) requestLocked() models.SelfDriveBookingRequest {
	drop := s.pickupLocation
	if s.differentDropLocation && s.dropoffLocation != nil {
		drop = s.dropoffLocation
	}
	return models.SelfDriveBookingRequest{
		CarID:           s.selectedCar.ID,
		StartDatetime:   s.pickupDateTime.Format(time.RFC3339),
		EndDatetime:     s.dropoffDateTime.Format(time.RFC3339),
		PickupAddress:   s.pickupLocation.Address,
		PickupLat:       s.pickupLocation.Lat,
		PickupLng:       s.pickupLocation.Lng,
		DropAddress:     drop.Address,
		DropLat:         drop.Lat,
		DropLng:         drop.Lng,
		InsuranceAmount: s.breakdown.InsuranceCharges,
		DropAmount:      s.breakdown.PickDropCharges,
		TotalAmount:     s.breakdown.TotalCost,
		IdempotencyKey:  uuid.New().String(),
	}
}

// resetDraftLocked clears the draft after a successful booking; the booked
// flag survives so the summary screen can show the confirmation.
func (s *BookingStore) resetDraftLocked() {
	s.selectedCar = nil
	s.pickupLocation = nil
	s.pickupDateTime = time.Time{}
	s.dropoffDateTime = time.Time{}
	s.insureTrip = false
	s.differentDropLocation = false
	s.dropoffLocation = nil
	s.breakdown = models.PriceBreakdown{}
}
