package app

import (
	"errors"
	"fmt"

	"github.com/Chetanya2001/zip-mobility-solutions-sub000/store"
)

// GateState is what the pay control renders on a booking summary screen
type GateState string

// The gate states, in evaluation order
const (
	GateLogin      GateState = "login"
	GateChecking   GateState = "checking"
	GateKYC        GateState = "kyc"
	GateDisabled   GateState = "disabled"
	GateProcessing GateState = "processing"
	GateBooked     GateState = "booked"
	GateReady      GateState = "ready"
)

// Click-time validation failures, surfaced as alerts
var (
	ErrNotLoggedIn      = errors.New("please log in to continue")
	ErrTermsNotAccepted = errors.New("please accept the terms to continue")
)

// NotEligibleError carries the server's reason why the user cannot book yet
type NotEligibleError struct {
	Reason string
}

func (e *NotEligibleError) Error() string {
	if e.Reason == "" {
		return "your documents are not verified yet"
	}
	return fmt.Sprintf("your documents are not verified yet: %s", e.Reason)
}

// Gate derives the pay-control state from the auth and eligibility stores.
// It is evaluated on every read, not event-driven, and the same ordering is
// enforced again at click time by Validate, so label and behavior cannot
// drift apart.
type Gate struct {
	Auth        *store.AuthStore
	Eligibility *store.EligibilityStore
}

// State evaluates the gate for the given screen-local flags
func (g *Gate) State(termsAccepted, processing, booked bool) GateState {
	if !g.Auth.IsAuthenticated() {
		return GateLogin
	}
	if g.Eligibility.Checking() {
		return GateChecking
	}
	if eligible := g.Eligibility.IsEligible(); eligible == nil || !*eligible {
		return GateKYC
	}
	if !termsAccepted {
		return GateDisabled
	}
	if processing {
		return GateProcessing
	}
	if booked {
		return GateBooked
	}
	return GateReady
}

// Validate re-checks auth, eligibility, and terms in that order before a
// booking submission, independent of the rendered label
func (g *Gate) Validate(termsAccepted bool) error {
	if !g.Auth.IsAuthenticated() {
		return ErrNotLoggedIn
	}
	if eligible := g.Eligibility.IsEligible(); eligible == nil || !*eligible {
		return &NotEligibleError{Reason: g.Eligibility.Reason()}
	}
	if !termsAccepted {
		return ErrTermsNotAccepted
	}
	return nil
}
