package backend

//go generate: mockery --name ServiceAPI

import (
	"context"
	"strconv"

	"github.com/Chetanya2001/zip-mobility-solutions-sub000/models"
)

// ServiceAPI contains the vehicle-service catalog and booking endpoints
type ServiceAPI interface {
	List(ctx context.Context) ([]models.ServicePlan, error)
	Book(ctx context.Context, req models.ServiceBookingRequest) (*models.BookingResponse, error)
	AddCar(ctx context.Context, req models.ServiceCarRequest, photo Upload) error
}

type serviceAPI struct {
	c Caller
}

// NewServiceAPI initializes a new instance of the service client with the provided caller
func NewServiceAPI(c Caller) ServiceAPI {
	return &serviceAPI{c: c}
}

func (a *serviceAPI) List(ctx context.Context) ([]models.ServicePlan, error) {
	var resp models.ServicePlansResponse
	if err := a.c.GetJSON(ctx, "/service", &resp); err != nil {
		return nil, err
	}
	return resp.Services, nil
}

func (a *serviceAPI) Book(ctx context.Context, req models.ServiceBookingRequest) (*models.BookingResponse, error) {
	var resp models.BookingResponse
	if err := a.c.PostJSON(ctx, "/service/book", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *serviceAPI) AddCar(ctx context.Context, req models.ServiceCarRequest, photo Upload) error {
	fields := map[string]string{
		"make":         req.Make,
		"model":        req.Model,
		"year":         strconv.Itoa(req.Year),
		"registration": req.Registration,
	}
	return a.c.PostMultipart(ctx, "/service/addCar", fields, []Upload{photo}, nil)
}
