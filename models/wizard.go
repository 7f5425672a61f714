package models

// CarDetailsForm is step one of the host wizard, POST /cars/addCar. Its
// response yields the car id every later step is keyed by.
type CarDetailsForm struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	Color        string `json:"color"`
	Seats        int    `json:"seats"`
	FuelType     string `json:"fuel_type"`
	Transmission string `json:"transmission"`
}

// AddCarResponse is the body returned by POST /cars/addCar
type AddCarResponse struct {
	CarID   string `json:"car_id"`
	Message string `json:"message"`
}

// RegistrationForm carries the RC fields for POST /cars/addRC; the RC images
// ride along as multipart file parts.
type RegistrationForm struct {
	RCNumber   string `json:"rc_number"`
	OwnerName  string `json:"owner_name"`
	ValidUntil string `json:"valid_until"`
}

// InsuranceForm carries the policy fields for POST /cars/addInsurance
type InsuranceForm struct {
	PolicyNumber string `json:"policy_number"`
	Provider     string `json:"provider"`
	ValidUntil   string `json:"valid_until"`
}

// CarFeaturesForm is the body for POST /car-features
type CarFeaturesForm struct {
	CarID    string          `json:"car_id"`
	Features map[string]bool `json:"features"`
}

// AvailabilityForm is the body for POST /cars/more-details, the final wizard
// step: the availability window, pricing, and which flows the car serves.
type AvailabilityForm struct {
	CarID         string  `json:"car_id"`
	AvailableFrom string  `json:"available_from"`
	AvailableTo   string  `json:"available_to"`
	PricePerHour  float64 `json:"price_per_hour"`
	PricePerKm    float64 `json:"price_per_km"`
	CarMode       CarMode `json:"car_mode"`
}

// HostCarsResponse is the body returned by POST /cars/my-host-cars
type HostCarsResponse struct {
	Cars []Car `json:"cars"`
}
