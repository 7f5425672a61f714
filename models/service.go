package models

// ServicePlan is one entry of the vehicle-service catalog (GET /service)
type ServicePlan struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
}

// ServicePlansResponse wraps the catalog endpoint
type ServicePlansResponse struct {
	Services []ServicePlan `json:"services"`
}

// ServiceBookingRequest is the body for POST /service/book
type ServiceBookingRequest struct {
	CarID    string `json:"car_id"`
	PlanID   string `json:"service_id"`
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
}

// ServiceCarRequest carries the form fields for POST /service/addCar; the
// car photo rides along as a multipart file part.
type ServiceCarRequest struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	Registration string `json:"registration"`
}
