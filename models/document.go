package models

// DocumentType identifies a KYC document slot
type DocumentType string

// The fixed KYC document slots. Aadhaar and the driving licence are required,
// the profile photo is optional.
const (
	DocumentAadhaar        DocumentType = "aadhaar"
	DocumentDrivingLicence DocumentType = "driving_licence"
	DocumentProfilePhoto   DocumentType = "profile_photo"
)

// EligibilityResponse is the body returned by
// GET /user-document/check-eligibility
type EligibilityResponse struct {
	IsEligible           bool   `json:"isEligible"`
	AllDocumentsVerified bool   `json:"all_documents_verified"`
	DocumentsCount       int    `json:"documents_count"`
	UserVerified         bool   `json:"user_verified"`
	Reason               string `json:"reason"`
}

// Eligibility is the client-side view of the server's verification decision.
// A nil IsEligible means the check has not completed yet.
type Eligibility struct {
	IsEligible *bool  `json:"isEligible"`
	Reason     string `json:"reason"`
}

// Document is one uploaded KYC document as returned by
// GET /user-document/get-document
type Document struct {
	ID       string       `json:"id"`
	Type     DocumentType `json:"type"`
	Status   string       `json:"status"`
	URL      string       `json:"url"`
	Verified bool         `json:"verified"`
}

// DocumentsResponse wraps the document list endpoint
type DocumentsResponse struct {
	Documents []Document `json:"documents"`
}

// UploadResponse is the body returned by the multipart upload endpoints
type UploadResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}
