package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Chetanya2001/zip-mobility-solutions-sub000/backend"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/backend/mocks"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/models"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/store"
)

func validFilters() models.SearchFiltersPatch {
	pickup := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	dropoff := pickup.Add(4 * time.Hour)
	return models.SearchFiltersPatch{
		PickupLocation:  &models.Location{Lat: 12.97, Lng: 77.59, Address: "MG Road", City: "Bengaluru"},
		PickupDateTime:  &pickup,
		DropoffDateTime: &dropoff,
	}
}

func TestSearchCarsRejectsMissingFilters(t *testing.T) {
	cars := &mocks.CarAPI{}
	s := store.NewSearchStore(cars)

	err := s.SearchCars(context.Background())

	var verr *store.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, s.LastError())
	assert.False(t, s.HasSearched())
	cars.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestSearchCarsRejectsInvertedWindow(t *testing.T) {
	cars := &mocks.CarAPI{}
	s := store.NewSearchStore(cars)

	patch := validFilters()
	inverted := patch.PickupDateTime.Add(-time.Hour)
	patch.DropoffDateTime = &inverted
	s.Update(patch)

	err := s.SearchCars(context.Background())

	var verr *store.ValidationError
	assert.ErrorAs(t, err, &verr)
	cars.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestSearchCarsStoresResults(t *testing.T) {
	cars := &mocks.CarAPI{}
	cars.On("Search", mock.Anything, mock.Anything).Return([]models.Car{{ID: "car-1"}, {ID: "car-2"}}, nil)
	s := store.NewSearchStore(cars)
	s.Update(validFilters())

	err := s.SearchCars(context.Background())

	assert.NoError(t, err)
	assert.Len(t, s.Results(), 2)
	assert.True(t, s.HasSearched())
	assert.Equal(t, "", s.LastError())
}

func TestSearchCarsSendsISOWindow(t *testing.T) {
	cars := &mocks.CarAPI{}
	var captured models.CarSearchRequest
	cars.On("Search", mock.Anything, mock.Anything).Return(nil, nil).Run(func(args mock.Arguments) {
		captured = args.Get(1).(models.CarSearchRequest)
	})
	s := store.NewSearchStore(cars)
	s.Update(validFilters())

	assert.NoError(t, s.SearchCars(context.Background()))
	assert.Equal(t, "2024-06-01T10:00:00Z", captured.PickupDateTime)
	assert.Equal(t, "2024-06-01T14:00:00Z", captured.DropoffDateTime)
	assert.Equal(t, "Bengaluru", captured.PickupLocation.City)
}

func TestSearchCarsMapsCanonicalErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"timeout", &backend.Error{Kind: backend.KindTimeout}, backend.TimeoutError},
		{"network", &backend.Error{Kind: backend.KindNetwork}, backend.NetworkError},
		{"server", &backend.Error{Kind: backend.KindServer, StatusCode: 500}, backend.ServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cars := &mocks.CarAPI{}
			cars.On("Search", mock.Anything, mock.Anything).Return(nil, tc.err)
			s := store.NewSearchStore(cars)
			s.Update(validFilters())

			err := s.SearchCars(context.Background())

			assert.Error(t, err)
			assert.Equal(t, tc.want, s.LastError())
			assert.True(t, s.HasSearched())
		})
	}
}

func TestUpdateMergesPartially(t *testing.T) {
	cars := &mocks.CarAPI{}
	s := store.NewSearchStore(cars)
	s.Update(validFilters())

	addr := "near the airport"
	s.Update(models.SearchFiltersPatch{PickupAddress: &addr})

	f := s.Filters()
	assert.Equal(t, "near the airport", f.PickupAddress)
	assert.NotNil(t, f.PickupLocation)
	assert.False(t, f.PickupDateTime.IsZero())
}
