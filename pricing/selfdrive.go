package pricing

import (
	"math"
	"time"

	"github.com/Chetanya2001/zip-mobility-solutions-sub000/models"
)

// Rates and fees shared by the fare calculations, in whole currency units
const (
	GSTRate        = 0.18
	InsuranceRate  = 0.10
	DropFee        = 500.0
	InsurancePerKm = 1.5
)

const millisPerHour = 3600000

// DurationHours returns the billable hours for a trip window. Partial hours
// round up; a non-positive window is zero hours.
func DurationHours(pickup, dropoff time.Time) int64 {
	ms := dropoff.Sub(pickup).Milliseconds()
	if ms <= 0 {
		return 0
	}
	return (ms + millisPerHour - 1) / millisPerHour
}

// SelfDrive derives the four-line self-drive fare breakdown from the hourly
// rate, the trip window, and the two add-on toggles. Pure: same inputs, same
// breakdown.
func SelfDrive(pricePerHour float64, pickup, dropoff time.Time, insureTrip, differentDropLocation bool) models.PriceBreakdown {
	carCharges := pricePerHour * float64(DurationHours(pickup, dropoff))

	var insuranceCharges float64
	if insureTrip {
		insuranceCharges = math.Round(carCharges * InsuranceRate)
	}

	var pickDropCharges float64
	if differentDropLocation {
		pickDropCharges = DropFee
	}

	subtotal := carCharges + insuranceCharges + pickDropCharges
	gst := math.Round(subtotal * GSTRate)

	return models.PriceBreakdown{
		CarCharges:       carCharges,
		InsuranceCharges: insuranceCharges,
		PickDropCharges:  pickDropCharges,
		GST:              gst,
		TotalCost:        subtotal + gst,
	}
}
