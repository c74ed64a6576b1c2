package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	allowed := map[OrderStatus]OrderStatus{
		StatusPending:    StatusConfirmed,
		StatusConfirmed:  StatusPreparing,
		StatusPreparing:  StatusDelivering,
		StatusDelivering: StatusDelivered,
	}

	all := []OrderStatus{
		StatusPending, StatusConfirmed, StatusPreparing,
		StatusDelivering, StatusDelivered, StatusCancelled,
	}

	for from, to := range allowed {
		assert.True(t, from.CanTransitionTo(to), "%s -> %s", from, to)
	}

	// cancellation is reachable from pending only
	for _, from := range all {
		want := from == StatusPending
		assert.Equal(t, want, from.CanTransitionTo(StatusCancelled), "%s -> cancelled", from)
	}

	// no skipping ahead
	assert.False(t, StatusPending.CanTransitionTo(StatusPreparing))
	assert.False(t, StatusConfirmed.CanTransitionTo(StatusDelivered))

	// no going back
	assert.False(t, StatusConfirmed.CanTransitionTo(StatusPending))
	assert.False(t, StatusDelivering.CanTransitionTo(StatusPreparing))
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusDelivering.IsTerminal())
}

func TestOrderStatusLabel(t *testing.T) {
	assert.Equal(t, "Pending", StatusPending.Label())
	assert.Equal(t, "Cancelled", StatusCancelled.Label())
	assert.Equal(t, "weird", OrderStatus("weird").Label())
}
