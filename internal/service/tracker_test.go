package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-agent/internal/domain"
)

func TestTrackExistingOrder(t *testing.T) {
	orders := &fakeOrders{created: []domain.Order{
		{OrderNumber: "234567", Status: domain.StatusPreparing},
	}}
	svc := NewTrackerService(orders)

	status, found, err := svc.Track(context.Background(), "234567")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.StatusPreparing, status)
}

func TestTrackNumericOrderID(t *testing.T) {
	// Dialogflow delivers numeric slots as float64.
	orders := &fakeOrders{created: []domain.Order{
		{OrderNumber: "234567", Status: domain.StatusPreparing},
	}}
	svc := NewTrackerService(orders)

	status, found, err := svc.Track(context.Background(), float64(234567))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.StatusPreparing, status)
}

func TestTrackMalformedOrderID(t *testing.T) {
	svc := NewTrackerService(&fakeOrders{})

	for _, id := range []any{nil, "", "   ", []string{"x"}, map[string]any{}} {
		_, found, err := svc.Track(context.Background(), id)
		require.NoError(t, err, "malformed id %v must not error", id)
		assert.False(t, found)
	}
}

func TestTrackUnknownOrder(t *testing.T) {
	svc := NewTrackerService(&fakeOrders{})
	_, found, err := svc.Track(context.Background(), "999999")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTrackRepositoryFailure(t *testing.T) {
	svc := NewTrackerService(&fakeOrders{findErr: errors.New("connection refused")})
	_, _, err := svc.Track(context.Background(), "234567")
	assert.Error(t, err)
}
