package app

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/Chetanya2001/zip-mobility-solutions-sub000/backend"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/config"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/models"
)

// ErrServiceSelection is returned when Book runs before a car, plan, and
// slot have all been chosen
var ErrServiceSelection = errors.New("please choose a car, a service plan, and a time slot")

// ServiceBooking drives the vehicle-service flow: pick one of the user's
// cars, a plan from the catalog, and a date/time slot, then submit a single
// booking POST.
type ServiceBooking struct {
	mu  sync.Mutex
	svc backend.ServiceAPI

	plans    []models.ServicePlan
	carID    string
	planID   string
	date     string
	timeSlot string
	alert    string
}

// NewServiceBooking returns an empty service-booking flow
func NewServiceBooking(svc backend.ServiceAPI) *ServiceBooking {
	return &ServiceBooking{svc: svc}
}

// LoadPlans fetches the service catalog
func (s *ServiceBooking) LoadPlans(ctx context.Context) ([]models.ServicePlan, error) {
	plans, err := s.svc.List(ctx)
	if err != nil {
		s.setAlert(config.AlertError("failed to load service plans", err))
		return nil, err
	}
	s.mu.Lock()
	s.plans = plans
	s.mu.Unlock()
	return plans, nil
}

// Plans returns the last fetched catalog
func (s *ServiceBooking) Plans() []models.ServicePlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plans
}

// SelectCar records which of the user's cars is being serviced
func (s *ServiceBooking) SelectCar(carID string) {
	s.mu.Lock()
	s.carID = carID
	s.mu.Unlock()
}

// SelectPlan records the chosen service plan
func (s *ServiceBooking) SelectPlan(planID string) {
	s.mu.Lock()
	s.planID = planID
	s.mu.Unlock()
}

// SelectSlot records the chosen date and time slot
func (s *ServiceBooking) SelectSlot(date, timeSlot string) {
	s.mu.Lock()
	s.date = date
	s.timeSlot = timeSlot
	s.mu.Unlock()
}

// Alert returns the last surfaced alert string, or ""
func (s *ServiceBooking) Alert() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alert
}

// Book validates the selection and submits the service booking
func (s *ServiceBooking) Book(ctx context.Context) (*models.BookingResponse, error) {
	s.mu.Lock()
	req := models.ServiceBookingRequest{
		CarID:    s.carID,
		PlanID:   s.planID,
		Date:     s.date,
		TimeSlot: s.timeSlot,
	}
	s.mu.Unlock()

	if req.CarID == "" || req.PlanID == "" || req.Date == "" || req.TimeSlot == "" {
		return nil, ErrServiceSelection
	}

	resp, err := s.svc.Book(ctx, req)
	if err != nil {
		s.setAlert(config.AlertError("failed to book the service", err))
		return nil, err
	}

	zap.S().Infow("service booking created",
		"booking_id", resp.BookingID,
		"car_id", req.CarID,
		"service_id", req.PlanID)
	return resp, nil
}

// AddCar registers a car for servicing via the multipart service endpoint
func (s *ServiceBooking) AddCar(ctx context.Context, req models.ServiceCarRequest, photo backend.Upload) error {
	if err := s.svc.AddCar(ctx, req, photo); err != nil {
		s.setAlert(config.AlertError("failed to add your car", err))
		return err
	}
	return nil
}

func (s *ServiceBooking) setAlert(alert string) {
	s.mu.Lock()
	s.alert = alert
	s.mu.Unlock()
}
