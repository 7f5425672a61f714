package models

// PriceBreakdown holds the four-line self-drive fare breakdown. These fields
// are derived from the booking draft and are only ever written by the
// recompute step, never set independently.
type PriceBreakdown struct {
	CarCharges       float64 `json:"carCharges"`
	InsuranceCharges float64 `json:"insuranceCharges"`
	PickDropCharges  float64 `json:"pickDropCharges"`
	GST              float64 `json:"gst"`
	TotalCost        float64 `json:"totalCost"`
}

// SelfDriveBookingRequest is the body for POST /self-drive-bookings/book
type SelfDriveBookingRequest struct {
	CarID           string  `json:"car_id"`
	StartDatetime   string  `json:"start_datetime"`
	EndDatetime     string  `json:"end_datetime"`
	PickupAddress   string  `json:"pickup_address"`
	PickupLat       float64 `json:"pickup_lat"`
	PickupLng       float64 `json:"pickup_lng"`
	DropAddress     string  `json:"drop_address"`
	DropLat         float64 `json:"drop_lat"`
	DropLng         float64 `json:"drop_lng"`
	InsuranceAmount float64 `json:"insurance_amount"`
	DropAmount      float64 `json:"drop_amount"`
	TotalAmount     float64 `json:"total_amount"`
	IdempotencyKey  string  `json:"idempotency_key"`
}

// IntercityBookingRequest is the body for POST /intercity-bookings/book.
// The coordinate fields are literally named pickup_long/drop_long server-side,
// driver_amount carries the insurance charge, and drop_datetime is omitted on
// purpose: the server derives it from the distance.
type IntercityBookingRequest struct {
	CarID          string  `json:"car_id"`
	TotalAmount    float64 `json:"total_amount"`
	PickupAddress  string  `json:"pickup_address"`
	PickupLat      float64 `json:"pickup_lat"`
	PickupLong     float64 `json:"pickup_long"`
	DropAddress    string  `json:"drop_address"`
	DropLat        float64 `json:"drop_lat"`
	DropLong       float64 `json:"drop_long"`
	Passengers     int     `json:"pax"`
	Luggage        int     `json:"luggage"`
	DistanceKm     float64 `json:"distance_km"`
	DriverAmount   float64 `json:"driver_amount"`
	PickupDatetime string  `json:"pickup_datetime"`
	IdempotencyKey string  `json:"idempotency_key"`
}

// BookingResponse is the body returned by both booking endpoints
type BookingResponse struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}
