package app

import (
	"context"
	"sync"

	"github.com/Chetanya2001/zip-mobility-solutions-sub000/config"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/models"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/store"
)

// SelfDriveSummary drives the self-drive booking summary screen: the fare
// breakdown, the gated pay control, and the confirmation flow.
type SelfDriveSummary struct {
	mu      sync.Mutex
	gate    *Gate
	booking *store.BookingStore

	termsAccepted bool
	alert         string
}

// NewSelfDriveSummary wires a summary screen over the gate and booking store
func NewSelfDriveSummary(gate *Gate, booking *store.BookingStore) *SelfDriveSummary {
	return &SelfDriveSummary{gate: gate, booking: booking}
}

// SetTermsAccepted records the terms checkbox
func (s *SelfDriveSummary) SetTermsAccepted(accepted bool) {
	s.mu.Lock()
	s.termsAccepted = accepted
	s.mu.Unlock()
}

// State derives the pay-control state for the current render
func (s *SelfDriveSummary) State() GateState {
	s.mu.Lock()
	terms := s.termsAccepted
	s.mu.Unlock()
	return s.gate.State(terms, s.booking.Submitting(), s.booking.Booked())
}

// Breakdown returns the derived fare breakdown for display
func (s *SelfDriveSummary) Breakdown() models.PriceBreakdown {
	return s.booking.Breakdown()
}

// Alert returns the last surfaced alert string, or ""
func (s *SelfDriveSummary) Alert() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alert
}

// ConfirmPay re-validates the gate in render order and submits the booking.
// Failures become a dismissable alert; nothing is retried automatically.
func (s *SelfDriveSummary) ConfirmPay(ctx context.Context) (*models.BookingResponse, error) {
	s.mu.Lock()
	terms := s.termsAccepted
	s.alert = ""
	s.mu.Unlock()

	if err := s.gate.Validate(terms); err != nil {
		s.setAlert(config.AlertError("cannot book yet", err))
		return nil, err
	}

	resp, err := s.booking.Submit(ctx)
	if err != nil {
		s.setAlert(config.AlertError("failed to book your trip", err))
		return nil, err
	}
	return resp, nil
}

func (s *SelfDriveSummary) setAlert(alert string) {
	s.mu.Lock()
	s.alert = alert
	s.mu.Unlock()
}
