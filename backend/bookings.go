package backend

//go generate: mockery --name BookingAPI

import (
	"context"

	"github.com/Chetanya2001/zip-mobility-solutions-sub000/models"
)

// BookingAPI contains the booking submission endpoints
type BookingAPI interface {
	BookSelfDrive(ctx context.Context, req models.SelfDriveBookingRequest) (*models.BookingResponse, error)
	BookIntercity(ctx context.Context, req models.IntercityBookingRequest) (*models.BookingResponse, error)
}

type bookingAPI struct {
	c Caller
}

// NewBookingAPI initializes a new instance of the booking client with the provided caller
func NewBookingAPI(c Caller) BookingAPI {
	return &bookingAPI{c: c}
}

func (a *bookingAPI) BookSelfDrive(ctx context.Context, req models.SelfDriveBookingRequest) (*models.BookingResponse, error) {
	var resp models.BookingResponse
	if err := a.c.PostJSON(ctx, "/self-drive-bookings/book", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *bookingAPI) BookIntercity(ctx context.Context, req models.IntercityBookingRequest) (*models.BookingResponse, error) {
	var resp models.BookingResponse
	if err := a.c.PostJSON(ctx, "/intercity-bookings/book", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
