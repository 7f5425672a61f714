package models

import "time"

// SearchFilters holds the pickup location and trip window the user picked on
// the self-drive search screen. Zero times mean "not chosen yet".
type SearchFilters struct {
	PickupLocation  *Location `json:"pickupLocation"`
	PickupDateTime  time.Time `json:"pickupDateTime"`
	DropoffDateTime time.Time `json:"dropoffDateTime"`
	PickupAddress   string    `json:"pickupAddress"`
}

// SearchFiltersPatch carries a partial update to the filters; nil fields are
// left untouched
type SearchFiltersPatch struct {
	PickupLocation  *Location
	PickupDateTime  *time.Time
	DropoffDateTime *time.Time
	PickupAddress   *string
}

// CarSearchRequest is the body for POST /cars/search
type CarSearchRequest struct {
	PickupLocation  Location `json:"pickup_location"`
	PickupDateTime  string   `json:"pickup_datetime"`
	DropoffDateTime string   `json:"dropoff_datetime"`
}

// CarSearchResponse is the body returned by POST /cars/search
type CarSearchResponse struct {
	Cars []Car `json:"cars"`
}
