package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Chetanya2001/zip-mobility-solutions-sub000/app"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/backend"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/backend/mocks"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/models"
)

func carDetailsForm() models.CarDetailsForm {
	return models.CarDetailsForm{Make: "Maruti", Model: "Swift", Year: 2022, Color: "white", Seats: 5}
}

func uploads(n int) []backend.Upload {
	out := make([]backend.Upload, n)
	for i := range out {
		out[i] = backend.Upload{Field: "images", Filename: "img.jpg", Content: []byte("jpeg")}
	}
	return out
}

func TestWizardStepOneYieldsCarID(t *testing.T) {
	cars := &mocks.CarAPI{}
	cars.On("Add", mock.Anything, mock.Anything).Return("car-55", nil)
	w := app.NewHostWizard(cars)

	assert.Equal(t, app.StepCarDetails, w.Step())
	assert.NoError(t, w.SubmitCarDetails(context.Background(), carDetailsForm()))
	assert.Equal(t, "car-55", w.CarID())
	assert.Equal(t, app.StepRegistration, w.Step())
}

func TestWizardLaterStepsUnreachableOutOfOrder(t *testing.T) {
	cars := &mocks.CarAPI{}
	w := app.NewHostWizard(cars)

	err := w.SubmitRegistration(context.Background(), models.RegistrationForm{RCNumber: "KA01AB1234"}, uploads(1))

	assert.ErrorIs(t, err, app.ErrWrongStep)
	cars.AssertNotCalled(t, "AddRC", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWizardRejectsEmptyCarIDFromServer(t *testing.T) {
	cars := &mocks.CarAPI{}
	cars.On("Add", mock.Anything, mock.Anything).Return("", nil)
	w := app.NewHostWizard(cars)

	err := w.SubmitCarDetails(context.Background(), carDetailsForm())

	assert.Error(t, err)
	assert.Equal(t, app.StepCarDetails, w.Step())
	assert.Equal(t, "", w.CarID())
}

func TestWizardFailedUploadKeepsStep(t *testing.T) {
	cars := &mocks.CarAPI{}
	cars.On("Add", mock.Anything, mock.Anything).Return("car-55", nil)
	cars.On("AddRC", mock.Anything, "car-55", mock.Anything, mock.Anything).Return(assert.AnError)
	w := app.NewHostWizard(cars)
	assert.NoError(t, w.SubmitCarDetails(context.Background(), carDetailsForm()))

	err := w.SubmitRegistration(context.Background(), models.RegistrationForm{RCNumber: "KA01AB1234"}, uploads(1))

	assert.Error(t, err)
	assert.Equal(t, app.StepRegistration, w.Step())
	assert.NotEmpty(t, w.Alert())
}

func TestWizardPhotoBounds(t *testing.T) {
	cars := &mocks.CarAPI{}
	cars.On("Add", mock.Anything, mock.Anything).Return("car-55", nil)
	cars.On("AddRC", mock.Anything, "car-55", mock.Anything, mock.Anything).Return(nil)
	cars.On("AddInsurance", mock.Anything, "car-55", mock.Anything, mock.Anything).Return(nil)
	cars.On("AddFeatures", mock.Anything, mock.Anything).Return(nil)
	w := app.NewHostWizard(cars)

	assert.NoError(t, w.SubmitCarDetails(context.Background(), carDetailsForm()))
	assert.NoError(t, w.SubmitRegistration(context.Background(), models.RegistrationForm{RCNumber: "KA01AB1234"}, uploads(1)))
	assert.NoError(t, w.SubmitInsurance(context.Background(), models.InsuranceForm{PolicyNumber: "P-1"}, uploads(1)))
	assert.NoError(t, w.SubmitFeatures(context.Background(), map[string]bool{"ac": true}))

	assert.ErrorIs(t, w.SubmitImages(context.Background(), uploads(2)), app.ErrPhotoCount)
	assert.ErrorIs(t, w.SubmitImages(context.Background(), uploads(11)), app.ErrPhotoCount)
	cars.AssertNotCalled(t, "AddImages", mock.Anything, mock.Anything, mock.Anything)
}

func TestWizardWalksAllSixSteps(t *testing.T) {
	cars := &mocks.CarAPI{}
	cars.On("Add", mock.Anything, mock.Anything).Return("car-55", nil)
	cars.On("AddRC", mock.Anything, "car-55", mock.Anything, mock.Anything).Return(nil)
	cars.On("AddInsurance", mock.Anything, "car-55", mock.Anything, mock.Anything).Return(nil)
	cars.On("AddFeatures", mock.Anything, mock.Anything).Return(nil)
	cars.On("AddImages", mock.Anything, "car-55", mock.Anything).Return(nil)
	var availability models.AvailabilityForm
	cars.On("AddAvailability", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		availability = args.Get(1).(models.AvailabilityForm)
	})
	w := app.NewHostWizard(cars)

	assert.NoError(t, w.SubmitCarDetails(context.Background(), carDetailsForm()))
	assert.NoError(t, w.SubmitRegistration(context.Background(), models.RegistrationForm{RCNumber: "KA01AB1234"}, uploads(1)))
	assert.NoError(t, w.SubmitInsurance(context.Background(), models.InsuranceForm{PolicyNumber: "P-1"}, uploads(1)))
	assert.NoError(t, w.SubmitFeatures(context.Background(), map[string]bool{"ac": true, "sunroof": false}))
	assert.NoError(t, w.SubmitImages(context.Background(), uploads(3)))
	assert.NoError(t, w.SubmitAvailability(context.Background(), models.AvailabilityForm{
		AvailableFrom: "2024-06-01",
		AvailableTo:   "2024-12-31",
		PricePerHour:  1200,
		PricePerKm:    15,
		CarMode:       models.CarModeBoth,
	}))

	assert.True(t, w.Done())
	// the wizard stamps the created car id into the final form
	assert.Equal(t, "car-55", availability.CarID)
}

func TestWizardBack(t *testing.T) {
	cars := &mocks.CarAPI{}
	cars.On("Add", mock.Anything, mock.Anything).Return("car-55", nil)
	w := app.NewHostWizard(cars)

	// backing out of the first step exits the wizard
	assert.True(t, w.Back())

	assert.NoError(t, w.SubmitCarDetails(context.Background(), carDetailsForm()))
	assert.False(t, w.Back())
	assert.Equal(t, app.StepCarDetails, w.Step())
	// the already-created car is not rolled back
	assert.Equal(t, "car-55", w.CarID())
}
