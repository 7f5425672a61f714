package models

// IntercityParams is the bundle the intercity summary screen is navigated
// with. It is never stored; the fare is re-derived from it on every read.
type IntercityParams struct {
	CarID          string   `json:"car_id"`
	CarName        string   `json:"car_name"`
	Pickup         Location `json:"pickup"`
	Drop           Location `json:"drop"`
	TripDistanceKm float64  `json:"trip_distance_km"`
	PricePerKm     float64  `json:"price_per_km"`
	Passengers     int      `json:"pax"`
	Luggage        int      `json:"luggage"`
	PickupDatetime string   `json:"pickup_datetime"`
}

// IntercityFare is the derived intercity fare breakdown
type IntercityFare struct {
	BaseFare  float64 `json:"baseFare"`
	Insurance float64 `json:"insurance"`
	GST       float64 `json:"gst"`
	Total     float64 `json:"total"`
}
