package backend

//go generate: mockery --name DocumentAPI

import (
	"context"

	"github.com/Chetanya2001/zip-mobility-solutions-sub000/models"
)

// DocumentAPI contains the KYC document endpoints. CheckEligibility is the
// authoritative verification decision; local upload state is never trusted.
type DocumentAPI interface {
	CheckEligibility(ctx context.Context) (*models.EligibilityResponse, error)
	GetDocuments(ctx context.Context) ([]models.Document, error)
	UploadID(ctx context.Context, docType models.DocumentType, file Upload) error
	AddProfileImage(ctx context.Context, file Upload) error
}

type documentAPI struct {
	c Caller
}

// NewDocumentAPI initializes a new instance of the document client with the provided caller
func NewDocumentAPI(c Caller) DocumentAPI {
	return &documentAPI{c: c}
}

func (a *documentAPI) CheckEligibility(ctx context.Context) (*models.EligibilityResponse, error) {
	var resp models.EligibilityResponse
	if err := a.c.GetJSON(ctx, "/user-document/check-eligibility", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *documentAPI) GetDocuments(ctx context.Context) ([]models.Document, error) {
	var resp models.DocumentsResponse
	if err := a.c.GetJSON(ctx, "/user-document/get-document", &resp); err != nil {
		return nil, err
	}
	return resp.Documents, nil
}

func (a *documentAPI) UploadID(ctx context.Context, docType models.DocumentType, file Upload) error {
	fields := map[string]string{"document_type": string(docType)}
	return a.c.PostMultipart(ctx, "/user-documents/upload-id", fields, []Upload{file}, nil)
}

func (a *documentAPI) AddProfileImage(ctx context.Context, file Upload) error {
	return a.c.PostMultipart(ctx, "/user-profile/add-profile-image", nil, []Upload{file}, nil)
}
