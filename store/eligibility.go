package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Chetanya2001/zip-mobility-solutions-sub000/backend"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/models"
)

// EligibilityStore asks the backend whether the current user's KYC documents
// are uploaded and verified. Any check failure fails closed: not eligible,
// with the error message as the reason. Overlapping checks are sequenced by a
// per-check request id; a response for a superseded check is dropped instead
// of overwriting newer state.
type EligibilityStore struct {
	mu   sync.Mutex
	docs backend.DocumentAPI

	isEligible *bool
	reason     string
	checking   bool
	latest     uuid.UUID
}

// NewEligibilityStore returns an eligibility store in the unknown state
func NewEligibilityStore(docs backend.DocumentAPI) *EligibilityStore {
	return &EligibilityStore{docs: docs}
}

// Check calls the eligibility endpoint and stores the server's decision.
// Returns the resulting eligibility snapshot; a stale check (one superseded
// while in flight) returns the state left by the newer check.
func (s *EligibilityStore) Check(ctx context.Context) models.Eligibility {
	id := uuid.New()

	s.mu.Lock()
	s.latest = id
	s.checking = true
	s.mu.Unlock()

	resp, err := s.docs.CheckEligibility(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.latest != id {
		zap.S().Debugw("dropping stale eligibility response", "request_id", id)
		return s.snapshotLocked()
	}
	s.checking = false

	if err != nil {
		eligible := false
		s.isEligible = &eligible
		s.reason = err.Error()
		zap.S().Errorw("eligibility check failed, treating user as not eligible",
			"error", err)
		return s.snapshotLocked()
	}

	eligible := resp.IsEligible
	s.isEligible = &eligible
	s.reason = resp.Reason
	return s.snapshotLocked()
}

// Reset returns the store to the unknown state, e.g. on logout
func (s *EligibilityStore) Reset() {
	s.mu.Lock()
	s.isEligible = nil
	s.reason = ""
	s.checking = false
	s.latest = uuid.UUID{}
	s.mu.Unlock()
}

// Checking is true while a check is in flight
func (s *EligibilityStore) Checking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checking
}

// IsEligible returns the last decision, or nil while unknown
func (s *EligibilityStore) IsEligible() *bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyDecision(s.isEligible)
}

// Reason returns the human-readable reason for the last decision
func (s *EligibilityStore) Reason() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reason
}

// Snapshot returns the current eligibility state
func (s *EligibilityStore) Snapshot() models.Eligibility {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *EligibilityStore) snapshotLocked() models.Eligibility {
	return models.Eligibility{IsEligible: copyDecision(s.isEligible), Reason: s.reason}
}

// copyDecision hands out a copy so callers cannot write through to the store
func copyDecision(d *bool) *bool {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
