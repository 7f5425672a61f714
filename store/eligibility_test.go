package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Chetanya2001/zip-mobility-solutions-sub000/backend/mocks"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/models"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/store"
)

func TestEligibilityStartsUnknown(t *testing.T) {
	docs := &mocks.DocumentAPI{}
	s := store.NewEligibilityStore(docs)

	assert.Nil(t, s.IsEligible())
	assert.False(t, s.Checking())
}

func TestEligibilityCheckStoresServerDecision(t *testing.T) {
	docs := &mocks.DocumentAPI{}
	docs.On("CheckEligibility", mock.Anything).Return(&models.EligibilityResponse{
		IsEligible:           true,
		AllDocumentsVerified: true,
		DocumentsCount:       2,
		UserVerified:         true,
	}, nil)
	s := store.NewEligibilityStore(docs)

	got := s.Check(context.Background())

	assert.NotNil(t, got.IsEligible)
	assert.True(t, *got.IsEligible)
	assert.False(t, s.Checking())
}

func TestEligibilityFailsClosed(t *testing.T) {
	docs := &mocks.DocumentAPI{}
	docs.On("CheckEligibility", mock.Anything).Return(nil, errors.New("boom"))
	s := store.NewEligibilityStore(docs)

	got := s.Check(context.Background())

	assert.NotNil(t, got.IsEligible)
	assert.False(t, *got.IsEligible)
	assert.Equal(t, "boom", got.Reason)
}

func TestEligibilityDropsStaleResponse(t *testing.T) {
	docs := &mocks.DocumentAPI{}
	firstStarted := make(chan struct{})
	release := make(chan struct{})

	// First check resolves eligible, but only after the second one has landed.
	docs.On("CheckEligibility", mock.Anything).Return(&models.EligibilityResponse{IsEligible: true}, nil).Once().Run(func(mock.Arguments) {
		close(firstStarted)
		<-release
	})
	docs.On("CheckEligibility", mock.Anything).Return(&models.EligibilityResponse{IsEligible: false, Reason: "documents pending"}, nil).Once()

	s := store.NewEligibilityStore(docs)

	done := make(chan struct{})
	go func() {
		s.Check(context.Background())
		close(done)
	}()
	<-firstStarted

	s.Check(context.Background())
	close(release)
	<-done

	// the superseded check must not overwrite the newer decision
	eligible := s.IsEligible()
	assert.NotNil(t, eligible)
	assert.False(t, *eligible)
	assert.Equal(t, "documents pending", s.Reason())
}

func TestEligibilityDecisionIsCopied(t *testing.T) {
	docs := &mocks.DocumentAPI{}
	docs.On("CheckEligibility", mock.Anything).Return(&models.EligibilityResponse{IsEligible: true}, nil)
	s := store.NewEligibilityStore(docs)
	s.Check(context.Background())

	// writing through a returned pointer must not change the stored decision
	*s.IsEligible() = false
	*s.Snapshot().IsEligible = false

	assert.True(t, *s.IsEligible())
}

func TestEligibilityReset(t *testing.T) {
	docs := &mocks.DocumentAPI{}
	docs.On("CheckEligibility", mock.Anything).Return(&models.EligibilityResponse{IsEligible: true}, nil)
	s := store.NewEligibilityStore(docs)
	s.Check(context.Background())

	s.Reset()

	assert.Nil(t, s.IsEligible())
	assert.Equal(t, "", s.Reason())
}
