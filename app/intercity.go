package app

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Chetanya2001/zip-mobility-solutions-sub000/backend"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/config"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/models"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/pricing"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/store"
)

// IntercitySummary drives the intercity booking summary screen. The screen is
// navigated to with its params; the fare is re-derived from them on every
// read rather than stored.
type IntercitySummary struct {
	mu       sync.Mutex
	gate     *Gate
	bookings backend.BookingAPI
	params   models.IntercityParams

	insureTrip    bool
	termsAccepted bool
	submitting    bool
	booked        bool
	alert         string
}

// NewIntercitySummary wires an intercity summary screen for the given trip
func NewIntercitySummary(gate *Gate, bookings backend.BookingAPI, params models.IntercityParams) *IntercitySummary {
	return &IntercitySummary{gate: gate, bookings: bookings, params: params}
}

// SetInsureTrip toggles trip insurance
func (s *IntercitySummary) SetInsureTrip(on bool) {
	s.mu.Lock()
	s.insureTrip = on
	s.mu.Unlock()
}

// SetTermsAccepted records the terms checkbox
func (s *IntercitySummary) SetTermsAccepted(accepted bool) {
	s.mu.Lock()
	s.termsAccepted = accepted
	s.mu.Unlock()
}

// Fare derives the intercity fare from the trip params and the insurance
// toggle
func (s *IntercitySummary) Fare() models.IntercityFare {
	s.mu.Lock()
	insure := s.insureTrip
	s.mu.Unlock()
	return pricing.Intercity(s.params.TripDistanceKm, s.params.PricePerKm, insure)
}

// State derives the pay-control state for the current render
func (s *IntercitySummary) State() GateState {
	s.mu.Lock()
	terms, processing, booked := s.termsAccepted, s.submitting, s.booked
	s.mu.Unlock()
	return s.gate.State(terms, processing, booked)
}

// Alert returns the last surfaced alert string, or ""
func (s *IntercitySummary) Alert() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alert
}

// Booked is true once the trip has been confirmed; the screen is terminal
// after that
func (s *IntercitySummary) Booked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.booked
}

// ConfirmPay re-validates the gate and submits the intercity booking. The
// request carries the insurance charge in driver_amount and omits the drop
// datetime, which the server derives from the distance.
func (s *IntercitySummary) ConfirmPay(ctx context.Context) (*models.BookingResponse, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return nil, store.ErrBookingInFlight
	}
	s.submitting = true
	terms := s.termsAccepted
	insure := s.insureTrip
	s.alert = ""
	s.mu.Unlock()

	if err := s.gate.Validate(terms); err != nil {
		s.mu.Lock()
		s.submitting = false
		s.alert = config.AlertError("cannot book yet", err)
		s.mu.Unlock()
		return nil, err
	}

	fare := pricing.Intercity(s.params.TripDistanceKm, s.params.PricePerKm, insure)
	req := models.IntercityBookingRequest{
		CarID:          s.params.CarID,
		TotalAmount:    fare.Total,
		PickupAddress:  s.params.Pickup.Address,
		PickupLat:      s.params.Pickup.Lat,
		PickupLong:     s.params.Pickup.Lng,
		DropAddress:    s.params.Drop.Address,
		DropLat:        s.params.Drop.Lat,
		DropLong:       s.params.Drop.Lng,
		Passengers:     s.params.Passengers,
		Luggage:        s.params.Luggage,
		DistanceKm:     s.params.TripDistanceKm,
		DriverAmount:   fare.Insurance,
		PickupDatetime: s.params.PickupDatetime,
		IdempotencyKey: uuid.New().String(),
	}

	resp, err := s.bookings.BookIntercity(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	if err != nil {
		s.alert = config.AlertError("failed to book your trip", err)
		return nil, err
	}

	zap.S().Infow("intercity booking created",
		"booking_id", resp.BookingID,
		"car_id", req.CarID,
		"total", req.TotalAmount)
	s.booked = true
	return resp, nil
}
