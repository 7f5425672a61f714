package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Chetanya2001/zip-mobility-solutions-sub000/backend"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/config"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/models"
)

// WizardStep identifies one of the six fixed host-wizard steps
type WizardStep int

// The wizard steps, in order. Step zero's submission creates the car
// server-side; every later step uploads against that car id.
const (
	StepCarDetails WizardStep = iota
	StepRegistration
	StepInsurance
	StepFeatures
	StepImages
	StepAvailability
	stepDone
)

// Photo count bounds enforced before the image upload step submits
const (
	MinWizardPhotos = 3
	MaxWizardPhotos = 10
)

// Wizard guard failures
var (
	ErrNoCarID    = errors.New("car has not been created yet")
	ErrWrongStep  = errors.New("submission does not match the current step")
	ErrPhotoCount = fmt.Errorf("between %d and %d photos are required", MinWizardPhotos, MaxWizardPhotos)
)

// HostWizard is the linear six-step add-car flow. Each step performs its own
// upload; a failed upload keeps the user on the step, and abandoning the flow
// leaves whatever was already uploaded in place server-side.
type HostWizard struct {
	mu   sync.Mutex
	cars backend.CarAPI

	step  WizardStep
	carID string
	alert string
}

// NewHostWizard starts a wizard at the car-details step
func NewHostWizard(cars backend.CarAPI) *HostWizard {
	return &HostWizard{cars: cars}
}

// Step returns the step currently shown
func (w *HostWizard) Step() WizardStep {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// CarID returns the id created by step one, or "" before that
func (w *HostWizard) CarID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.carID
}

// Done is true once the final step has been submitted
func (w *HostWizard) Done() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step == stepDone
}

// Alert returns the last surfaced alert string, or ""
func (w *HostWizard) Alert() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.alert
}

// Back steps to the prior step without undoing its already-submitted upload.
// Returns true when invoked on the first step, meaning the wizard exits.
func (w *HostWizard) Back() (exited bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step == StepCarDetails {
		return true
	}
	w.step--
	return false
}

// SubmitCarDetails runs step one: creates the car and records the car id the
// rest of the wizard is keyed by
func (w *HostWizard) SubmitCarDetails(ctx context.Context, form models.CarDetailsForm) error {
	if err := w.guard(StepCarDetails); err != nil {
		return err
	}
	if form.Make == "" || form.Model == "" || form.Year == 0 {
		return w.fail("make, model and year are required", errors.New("missing required fields"))
	}

	carID, err := w.cars.Add(ctx, form)
	if err != nil {
		return w.fail("failed to create car", err)
	}
	if carID == "" {
		return w.fail("failed to create car", errors.New("server returned no car id"))
	}

	w.mu.Lock()
	w.carID = carID
	w.step = StepRegistration
	w.mu.Unlock()
	zap.S().Infow("host wizard created car", "car_id", carID)
	return nil
}

// SubmitRegistration runs the RC upload step
func (w *HostWizard) SubmitRegistration(ctx context.Context, form models.RegistrationForm, images []backend.Upload) error {
	if err := w.guard(StepRegistration); err != nil {
		return err
	}
	if form.RCNumber == "" || len(images) == 0 {
		return w.fail("RC number and document images are required", errors.New("missing required fields"))
	}

	if err := w.cars.AddRC(ctx, w.CarID(), form, images); err != nil {
		return w.fail("failed to upload registration", err)
	}
	w.advance(StepInsurance)
	return nil
}

// SubmitInsurance runs the insurance upload step
func (w *HostWizard) SubmitInsurance(ctx context.Context, form models.InsuranceForm, images []backend.Upload) error {
	if err := w.guard(StepInsurance); err != nil {
		return err
	}
	if form.PolicyNumber == "" || len(images) == 0 {
		return w.fail("policy number and document images are required", errors.New("missing required fields"))
	}

	if err := w.cars.AddInsurance(ctx, w.CarID(), form, images); err != nil {
		return w.fail("failed to upload insurance", err)
	}
	w.advance(StepFeatures)
	return nil
}

// SubmitFeatures runs the features step
func (w *HostWizard) SubmitFeatures(ctx context.Context, features map[string]bool) error {
	if err := w.guard(StepFeatures); err != nil {
		return err
	}

	form := models.CarFeaturesForm{CarID: w.CarID(), Features: features}
	if err := w.cars.AddFeatures(ctx, form); err != nil {
		return w.fail("failed to save features", err)
	}
	w.advance(StepImages)
	return nil
}

// SubmitImages runs the photo upload step, enforcing the 3..10 photo bounds
func (w *HostWizard) SubmitImages(ctx context.Context, photos []backend.Upload) error {
	if err := w.guard(StepImages); err != nil {
		return err
	}
	if len(photos) < MinWizardPhotos || len(photos) > MaxWizardPhotos {
		return w.fail("photo count out of range", ErrPhotoCount)
	}

	if err := w.cars.AddImages(ctx, w.CarID(), photos); err != nil {
		return w.fail("failed to upload photos", err)
	}
	w.advance(StepAvailability)
	return nil
}

// SubmitAvailability runs the final step: the availability window, pricing,
// and car mode
func (w *HostWizard) SubmitAvailability(ctx context.Context, form models.AvailabilityForm) error {
	if err := w.guard(StepAvailability); err != nil {
		return err
	}
	if form.AvailableFrom == "" || form.AvailableTo == "" {
		return w.fail("availability window is required", errors.New("missing required fields"))
	}

	form.CarID = w.CarID()
	if err := w.cars.AddAvailability(ctx, form); err != nil {
		return w.fail("failed to save availability", err)
	}
	w.advance(stepDone)
	zap.S().Infow("host wizard completed", "car_id", form.CarID)
	return nil
}

// guard structurally prevents running a step out of order or, past step
// zero, without a car id
func (w *HostWizard) guard(step WizardStep) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != step {
		return ErrWrongStep
	}
	if step > StepCarDetails && w.carID == "" {
		return ErrNoCarID
	}
	return nil
}

func (w *HostWizard) advance(next WizardStep) {
	w.mu.Lock()
	w.step = next
	w.alert = ""
	w.mu.Unlock()
}

// fail records the alert and keeps the wizard on the current step
func (w *HostWizard) fail(message string, err error) error {
	alert := config.AlertError(message, err)
	w.mu.Lock()
	w.alert = alert
	w.mu.Unlock()
	return err
}
