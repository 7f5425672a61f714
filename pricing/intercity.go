package pricing

import (
	"math"

	"github.com/Chetanya2001/zip-mobility-solutions-sub000/models"
)

// Intercity derives the intercity fare from the trip distance, the car's
// per-km rate, and the insurance toggle, at the default insurance rate of
// 1.5 per km. Pure and total: there is no missing-input branch.
func Intercity(tripDistanceKm, pricePerKm float64, insureTrip bool) models.IntercityFare {
	return IntercityAtRate(tripDistanceKm, pricePerKm, insureTrip, InsurancePerKm)
}

// IntercityAtRate is Intercity with an explicit per-km insurance rate
func IntercityAtRate(tripDistanceKm, pricePerKm float64, insureTrip bool, insurancePerKm float64) models.IntercityFare {
	baseFare := math.Round(tripDistanceKm * pricePerKm)

	var insurance float64
	if insureTrip {
		insurance = math.Round(tripDistanceKm * insurancePerKm)
	}

	subTotal := baseFare + insurance
	gst := math.Round(subTotal * GSTRate)

	return models.IntercityFare{
		BaseFare:  baseFare,
		Insurance: insurance,
		GST:       gst,
		Total:     subTotal + gst,
	}
}
