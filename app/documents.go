package app

import (
	"context"
	"errors"
	"sync"

	"github.com/Chetanya2001/zip-mobility-solutions-sub000/backend"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/config"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/models"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/store"
)

// SlotStatus is the per-document-slot upload state
type SlotStatus string

// Slot statuses
const (
	SlotIdle      SlotStatus = "idle"
	SlotUploading SlotStatus = "uploading"
	SlotUploaded  SlotStatus = "uploaded"
	SlotError     SlotStatus = "error"
)

// ErrDocumentsMissing is returned when Submit runs before every required
// slot has been uploaded
var ErrDocumentsMissing = errors.New("required documents are not uploaded yet")

var requiredSlots = []models.DocumentType{
	models.DocumentAadhaar,
	models.DocumentDrivingLicence,
}

// DocumentModal tracks the upload status of the fixed KYC slots. Submission
// does not trust local state: it re-runs the server eligibility check, which
// stays the authoritative verification decision.
type DocumentModal struct {
	mu          sync.Mutex
	docs        backend.DocumentAPI
	eligibility *store.EligibilityStore

	slots map[models.DocumentType]SlotStatus
	alert string
}

// NewDocumentModal returns a modal with every slot idle
func NewDocumentModal(docs backend.DocumentAPI, eligibility *store.EligibilityStore) *DocumentModal {
	return &DocumentModal{
		docs:        docs,
		eligibility: eligibility,
		slots: map[models.DocumentType]SlotStatus{
			models.DocumentAadhaar:        SlotIdle,
			models.DocumentDrivingLicence: SlotIdle,
			models.DocumentProfilePhoto:   SlotIdle,
		},
	}
}

// Status returns the state of one slot
func (m *DocumentModal) Status(slot models.DocumentType) SlotStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slots[slot]
}

// Alert returns the last surfaced alert string, or ""
func (m *DocumentModal) Alert() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alert
}

// Upload pushes one document to its slot's endpoint and tracks the slot
// status across the call
func (m *DocumentModal) Upload(ctx context.Context, slot models.DocumentType, file backend.Upload) error {
	m.setStatus(slot, SlotUploading)

	var err error
	if slot == models.DocumentProfilePhoto {
		err = m.docs.AddProfileImage(ctx, file)
	} else {
		err = m.docs.UploadID(ctx, slot, file)
	}
	if err != nil {
		m.setStatus(slot, SlotError)
		m.setAlert(config.AlertError("failed to upload document", err))
		return err
	}

	m.setStatus(slot, SlotUploaded)
	return nil
}

// CanSubmit is true once every required slot is uploaded; the profile photo
// is optional
func (m *DocumentModal) CanSubmit() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, slot := range requiredSlots {
		if m.slots[slot] != SlotUploaded {
			return false
		}
	}
	return true
}

// Submit gates on the required slots and then asks the server for the
// verification decision
func (m *DocumentModal) Submit(ctx context.Context) (models.Eligibility, error) {
	if !m.CanSubmit() {
		return models.Eligibility{}, ErrDocumentsMissing
	}
	return m.eligibility.Check(ctx), nil
}

func (m *DocumentModal) setStatus(slot models.DocumentType, status SlotStatus) {
	m.mu.Lock()
	m.slots[slot] = status
	m.mu.Unlock()
}

func (m *DocumentModal) setAlert(alert string) {
	m.mu.Lock()
	m.alert = alert
	m.mu.Unlock()
}
