package app_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Chetanya2001/zip-mobility-solutions-sub000/app"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/backend/mocks"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/models"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/store"
)

func tripParams() models.IntercityParams {
	return models.IntercityParams{
		CarID:          "car-7",
		CarName:        "Dzire",
		Pickup:         models.Location{Lat: 12.97, Lng: 77.59, Address: "Bengaluru"},
		Drop:           models.Location{Lat: 13.08, Lng: 80.27, Address: "Chennai"},
		TripDistanceKm: 100,
		PricePerKm:     15,
		Passengers:     3,
		Luggage:        2,
		PickupDatetime: "2024-06-01T06:00:00Z",
	}
}

func TestIntercityFareFollowsInsuranceToggle(t *testing.T) {
	gate := &app.Gate{Auth: authedStore(), Eligibility: eligibilityWith(t, true, "")}
	s := app.NewIntercitySummary(gate, &mocks.BookingAPI{}, tripParams())

	assert.Equal(t, 1770.0, s.Fare().Total)

	s.SetInsureTrip(true)
	f := s.Fare()
	assert.Equal(t, 1500.0, f.BaseFare)
	assert.Equal(t, 150.0, f.Insurance)
	assert.Equal(t, 297.0, f.GST)
	assert.Equal(t, 1947.0, f.Total)
}

func TestIntercityConfirmPayRequestShape(t *testing.T) {
	bookings := &mocks.BookingAPI{}
	var captured models.IntercityBookingRequest
	bookings.On("BookIntercity", mock.Anything, mock.Anything).Return(&models.BookingResponse{BookingID: "b-3"}, nil).Run(func(args mock.Arguments) {
		captured = args.Get(1).(models.IntercityBookingRequest)
	})

	gate := &app.Gate{Auth: authedStore(), Eligibility: eligibilityWith(t, true, "")}
	s := app.NewIntercitySummary(gate, bookings, tripParams())
	s.SetInsureTrip(true)
	s.SetTermsAccepted(true)

	_, err := s.ConfirmPay(context.Background())

	assert.NoError(t, err)
	assert.True(t, s.Booked())
	assert.Equal(t, "car-7", captured.CarID)
	assert.Equal(t, 1947.0, captured.TotalAmount)
	// the insurance charge rides in driver_amount
	assert.Equal(t, 150.0, captured.DriverAmount)
	assert.Equal(t, 77.59, captured.PickupLong)
	assert.Equal(t, 80.27, captured.DropLong)
	assert.Equal(t, 3, captured.Passengers)
	assert.Equal(t, 100.0, captured.DistanceKm)
	assert.Equal(t, "2024-06-01T06:00:00Z", captured.PickupDatetime)
}

func TestIntercityRequestOmitsDropDatetime(t *testing.T) {
	// the server derives the drop time from the distance; the wire body must
	// not carry one
	b, err := json.Marshal(models.IntercityBookingRequest{})
	assert.NoError(t, err)

	var wire map[string]interface{}
	assert.NoError(t, json.Unmarshal(b, &wire))
	_, present := wire["drop_datetime"]
	assert.False(t, present)
	_, present = wire["pickup_long"]
	assert.True(t, present)
}

func TestIntercityConfirmPayGatesLikeRender(t *testing.T) {
	bookings := &mocks.BookingAPI{}
	gate := &app.Gate{Auth: store.NewAuthStore(), Eligibility: eligibilityWith(t, true, "")}
	s := app.NewIntercitySummary(gate, bookings, tripParams())
	s.SetTermsAccepted(true)

	assert.Equal(t, app.GateLogin, s.State())

	_, err := s.ConfirmPay(context.Background())
	assert.ErrorIs(t, err, app.ErrNotLoggedIn)
	bookings.AssertNotCalled(t, "BookIntercity", mock.Anything, mock.Anything)
}

func TestIntercityConfirmPayGuardsReentrancy(t *testing.T) {
	bookings := &mocks.BookingAPI{}
	firstStarted := make(chan struct{})
	release := make(chan struct{})
	bookings.On("BookIntercity", mock.Anything, mock.Anything).Return(&models.BookingResponse{BookingID: "b-9"}, nil).Run(func(mock.Arguments) {
		close(firstStarted)
		<-release
	})

	gate := &app.Gate{Auth: authedStore(), Eligibility: eligibilityWith(t, true, "")}
	s := app.NewIntercitySummary(gate, bookings, tripParams())
	s.SetTermsAccepted(true)

	done := make(chan struct{})
	go func() {
		_, _ = s.ConfirmPay(context.Background())
		close(done)
	}()
	<-firstStarted

	// a second tap while the first call is outstanding must not POST again
	_, err := s.ConfirmPay(context.Background())
	assert.ErrorIs(t, err, store.ErrBookingInFlight)

	close(release)
	<-done
	bookings.AssertNumberOfCalls(t, "BookIntercity", 1)
}

func TestIntercityGuardReleasedAfterValidationFailure(t *testing.T) {
	bookings := &mocks.BookingAPI{}
	bookings.On("BookIntercity", mock.Anything, mock.Anything).Return(&models.BookingResponse{BookingID: "b-4"}, nil)

	gate := &app.Gate{Auth: authedStore(), Eligibility: eligibilityWith(t, true, "")}
	s := app.NewIntercitySummary(gate, bookings, tripParams())

	_, err := s.ConfirmPay(context.Background())
	assert.ErrorIs(t, err, app.ErrTermsNotAccepted)

	// the rejected tap must not leave the screen stuck in flight
	s.SetTermsAccepted(true)
	_, err = s.ConfirmPay(context.Background())
	assert.NoError(t, err)
	assert.True(t, s.Booked())
}

func TestIntercityConfirmPaySurfacesFailure(t *testing.T) {
	bookings := &mocks.BookingAPI{}
	bookings.On("BookIntercity", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	gate := &app.Gate{Auth: authedStore(), Eligibility: eligibilityWith(t, true, "")}
	s := app.NewIntercitySummary(gate, bookings, tripParams())
	s.SetTermsAccepted(true)

	_, err := s.ConfirmPay(context.Background())

	assert.Error(t, err)
	assert.False(t, s.Booked())
	assert.Contains(t, s.Alert(), "failed to book your trip")
}
