package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Chetanya2001/zip-mobility-solutions-sub000/backend"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/models"
)

// Validation messages shown before any network call is made
const (
	errMissingFilters = "please choose a pickup location and both trip times"
	errWindowOrder    = "dropoff time must be after the pickup time"
)

// SearchStore holds the self-drive search filters and the last result set.
// hasSearched distinguishes "never searched" from "searched, zero results"
// in the empty-state UI.
type SearchStore struct {
	mu   sync.Mutex
	cars backend.CarAPI

	filters     models.SearchFilters
	results     []models.Car
	hasSearched bool
	lastError   string
}

// NewSearchStore returns an empty search store
func NewSearchStore(cars backend.CarAPI) *SearchStore {
	return &SearchStore{cars: cars}
}

// Update merges the non-nil patch fields into the filters
func (s *SearchStore) Update(patch models.SearchFiltersPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.PickupLocation != nil {
		s.filters.PickupLocation = patch.PickupLocation
	}
	if patch.PickupDateTime != nil {
		s.filters.PickupDateTime = *patch.PickupDateTime
	}
	if patch.DropoffDateTime != nil {
		s.filters.DropoffDateTime = *patch.DropoffDateTime
	}
	if patch.PickupAddress != nil {
		s.filters.PickupAddress = *patch.PickupAddress
	}
}

// Filters returns a snapshot of the current filters
func (s *SearchStore) Filters() models.SearchFilters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// SearchCars validates the filters and issues the car search. On validation
// failure it records a local error and never touches the network. Network
// failures are mapped to the canonical TIMEOUT/NETWORK/SERVER messages.
func (s *SearchStore) SearchCars(ctx context.Context) error {
	s.mu.Lock()
	filters := s.filters
	s.mu.Unlock()

	if filters.PickupLocation == nil || filters.PickupDateTime.IsZero() || filters.DropoffDateTime.IsZero() {
		s.setError(errMissingFilters)
		return &ValidationError{Message: errMissingFilters}
	}
	if !filters.PickupDateTime.Before(filters.DropoffDateTime) {
		s.setError(errWindowOrder)
		return &ValidationError{Message: errWindowOrder}
	}

	s.mu.Lock()
	s.hasSearched = true
	s.lastError = ""
	s.mu.Unlock()

	req := models.CarSearchRequest{
		PickupLocation:  *filters.PickupLocation,
		PickupDateTime:  filters.PickupDateTime.Format(time.RFC3339),
		DropoffDateTime: filters.DropoffDateTime.Format(time.RFC3339),
	}

	cars, err := s.cars.Search(ctx, req)
	if err != nil {
		canonical := backend.Canonical(err)
		s.setError(canonical)
		zap.S().Errorw("car search failed",
			"error", err,
			"canonical", canonical)
		return err
	}

	s.mu.Lock()
	s.results = cars
	s.mu.Unlock()
	zap.S().Infow("car search completed", "results", len(cars))
	return nil
}

// Results returns the last result set
func (s *SearchStore) Results() []models.Car {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// HasSearched is true once a valid search has been issued, whatever its outcome
func (s *SearchStore) HasSearched() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasSearched
}

// LastError returns the current error message, or "" when the last search
// succeeded
func (s *SearchStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

func (s *SearchStore) setError(msg string) {
	s.mu.Lock()
	s.lastError = msg
	s.mu.Unlock()
}

// ValidationError is a client-side rejection raised before any network call
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
