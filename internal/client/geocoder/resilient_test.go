package geocoder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shaladi/reuse/internal/core/domain"
	"github.com/shaladi/reuse/mocks"
)

func TestResilient_RetriesUntilSuccess(t *testing.T) {
	next := mocks.NewGeocoder(t)
	coords := &domain.Coordinates{Latitude: 1, Longitude: 2}
	next.EXPECT().Lookup(mock.Anything, "E62").Return(nil, errors.New("timeout")).Twice()
	next.EXPECT().Lookup(mock.Anything, "E62").Return(coords, nil).Once()

	r := NewResilient(next, ResilienceConfig{Name: "test-retry", MaxAttempts: 3})

	got, err := r.Lookup(context.Background(), "E62")

	require.NoError(t, err)
	assert.Equal(t, coords, got)
}

func TestResilient_GivesUpAfterMaxAttempts(t *testing.T) {
	next := mocks.NewGeocoder(t)
	expectedErr := errors.New("timeout")
	next.EXPECT().Lookup(mock.Anything, "E62").Return(nil, expectedErr).Times(2)

	r := NewResilient(next, ResilienceConfig{Name: "test-give-up", MaxAttempts: 2})

	_, err := r.Lookup(context.Background(), "E62")

	assert.ErrorIs(t, err, expectedErr)
}

func TestResilient_AttemptTimeout(t *testing.T) {
	next := mocks.NewGeocoder(t)
	next.EXPECT().Lookup(mock.Anything, "E62").
		RunAndReturn(func(ctx context.Context, _ string) (*domain.Coordinates, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()

	r := NewResilient(next, ResilienceConfig{Name: "test-timeout", MaxAttempts: 1, AttemptTimeout: 10 * time.Millisecond})

	_, err := r.Lookup(context.Background(), "E62")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestResilient_OpensCircuit(t *testing.T) {
	next := mocks.NewGeocoder(t)
	next.EXPECT().Lookup(mock.Anything, mock.Anything).Return(nil, errors.New("down")).Twice()

	r := NewResilient(next, ResilienceConfig{Name: "test-circuit", MaxAttempts: 1, FailureThreshold: 2, OpenTimeout: time.Minute})

	_, _ = r.Lookup(context.Background(), "E62")
	_, _ = r.Lookup(context.Background(), "W20")
	_, err := r.Lookup(context.Background(), "NW86")

	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestResilient_UnknownLocationIsNotAFailure(t *testing.T) {
	next := mocks.NewGeocoder(t)
	next.EXPECT().Lookup(mock.Anything, mock.Anything).Return(nil, nil).Times(3)

	r := NewResilient(next, ResilienceConfig{Name: "test-miss", MaxAttempts: 3, FailureThreshold: 1})

	for _, location := range []string{"a", "b", "c"} {
		coords, err := r.Lookup(context.Background(), location)
		require.NoError(t, err)
		assert.Nil(t, coords)
	}
}
