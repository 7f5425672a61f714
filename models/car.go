package models

// CarMode says which booking flows a car participates in
type CarMode string

// Car modes as stored server-side
const (
	CarModeSelfDrive CarMode = "selfdrive"
	CarModeIntercity CarMode = "intercity"
	CarModeBoth      CarMode = "both"
)

// Location is a point the user picked on the map plus its reverse-geocoded
// address
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
	City    string  `json:"city"`
}

// Car holds the structure for a car record as returned by the backend. The
// record is owned server-side; the client only reads it or appends
// sub-resources during the host wizard.
type Car struct {
	ID            string          `json:"id"`
	Make          string          `json:"make"`
	Model         string          `json:"model"`
	Year          int             `json:"year"`
	Color         string          `json:"color"`
	PricePerHour  float64         `json:"price_per_hour"`
	PricePerKm    float64         `json:"price_per_km"`
	Location      Location        `json:"location"`
	Features      map[string]bool `json:"features"`
	Photos        []string        `json:"photos"`
	CarMode       CarMode         `json:"car_mode"`
	AvailableFrom string          `json:"available_from"`
	AvailableTo   string          `json:"available_to"`
	Seats         int             `json:"seats"`
	FuelType      string          `json:"fuel_type"`
	Transmission  string          `json:"transmission"`
}

// CarDetailsRequest is the body for POST /car-details/getCarDetails
type CarDetailsRequest struct {
	CarID string `json:"car_id"`
}

// CarDetailsResponse wraps the car returned by getCarDetails
type CarDetailsResponse struct {
	Car Car `json:"car"`
}
