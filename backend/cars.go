package backend

//go generate: mockery --name CarAPI

import (
	"context"

	"github.com/Chetanya2001/zip-mobility-solutions-sub000/models"
)

// CarAPI contains the car endpoints: search, details, and the sequential
// host-wizard uploads keyed by the car id step one creates
type CarAPI interface {
	Search(ctx context.Context, req models.CarSearchRequest) ([]models.Car, error)
	Details(ctx context.Context, carID string) (*models.Car, error)
	Add(ctx context.Context, form models.CarDetailsForm) (string, error)
	AddRC(ctx context.Context, carID string, form models.RegistrationForm, images []Upload) error
	AddInsurance(ctx context.Context, carID string, form models.InsuranceForm, images []Upload) error
	AddFeatures(ctx context.Context, form models.CarFeaturesForm) error
	AddImages(ctx context.Context, carID string, photos []Upload) error
	AddAvailability(ctx context.Context, form models.AvailabilityForm) error
	MyHostCars(ctx context.Context) ([]models.Car, error)
}

type carAPI struct {
	c Caller
}

// NewCarAPI initializes a new instance of the car client with the provided caller
func NewCarAPI(c Caller) CarAPI {
	return &carAPI{c: c}
}

func (a *carAPI) Search(ctx context.Context, req models.CarSearchRequest) ([]models.Car, error) {
	var resp models.CarSearchResponse
	if err := a.c.PostJSON(ctx, "/cars/search", req, &resp); err != nil {
		return nil, err
	}
	return resp.Cars, nil
}

func (a *carAPI) Details(ctx context.Context, carID string) (*models.Car, error) {
	var resp models.CarDetailsResponse
	err := a.c.PostJSON(ctx, "/car-details/getCarDetails", models.CarDetailsRequest{CarID: carID}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.Car, nil
}

func (a *carAPI) Add(ctx context.Context, form models.CarDetailsForm) (string, error) {
	var resp models.AddCarResponse
	if err := a.c.PostJSON(ctx, "/cars/addCar", form, &resp); err != nil {
		return "", err
	}
	return resp.CarID, nil
}

func (a *carAPI) AddRC(ctx context.Context, carID string, form models.RegistrationForm, images []Upload) error {
	fields := map[string]string{
		"car_id":      carID,
		"rc_number":   form.RCNumber,
		"owner_name":  form.OwnerName,
		"valid_until": form.ValidUntil,
	}
	return a.c.PostMultipart(ctx, "/cars/addRC", fields, images, nil)
}

func (a *carAPI) AddInsurance(ctx context.Context, carID string, form models.InsuranceForm, images []Upload) error {
	fields := map[string]string{
		"car_id":        carID,
		"policy_number": form.PolicyNumber,
		"provider":      form.Provider,
		"valid_until":   form.ValidUntil,
	}
	return a.c.PostMultipart(ctx, "/cars/addInsurance", fields, images, nil)
}

func (a *carAPI) AddFeatures(ctx context.Context, form models.CarFeaturesForm) error {
	return a.c.PostJSON(ctx, "/car-features", form, nil)
}

func (a *carAPI) AddImages(ctx context.Context, carID string, photos []Upload) error {
	return a.c.PostMultipart(ctx, "/cars/addImage", map[string]string{"car_id": carID}, photos, nil)
}

func (a *carAPI) AddAvailability(ctx context.Context, form models.AvailabilityForm) error {
	return a.c.PostJSON(ctx, "/cars/more-details", form, nil)
}

func (a *carAPI) MyHostCars(ctx context.Context) ([]models.Car, error) {
	var resp models.HostCarsResponse
	if err := a.c.PostJSON(ctx, "/cars/my-host-cars", struct{}{}, &resp); err != nil {
		return nil, err
	}
	return resp.Cars, nil
}
