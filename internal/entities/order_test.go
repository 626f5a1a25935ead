package entities_test

import (
	"testing"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	allowed := []struct {
		from, to entities.OrderStatus
	}{
		{entities.StatusPending, entities.StatusProcessing},
		{entities.StatusPending, entities.StatusCancelled},
		{entities.StatusProcessing, entities.StatusShipped},
		{entities.StatusProcessing, entities.StatusCancelled},
		{entities.StatusShipped, entities.StatusCompleted},
	}
	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}

	forbidden := []struct {
		from, to entities.OrderStatus
	}{
		{entities.StatusShipped, entities.StatusCancelled},
		{entities.StatusCompleted, entities.StatusPending},
		{entities.StatusCancelled, entities.StatusProcessing},
		{entities.StatusCompleted, entities.StatusShipped},
		{entities.StatusPending, entities.StatusPending},
	}
	for _, tc := range forbidden {
		assert.False(t, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, entities.StatusPending.Valid())
	assert.True(t, entities.StatusCancelled.Valid())
	assert.False(t, entities.OrderStatus("teleported").Valid())
	assert.False(t, entities.OrderStatus("").Valid())
}

func TestOrder_MarshalRoundTrip(t *testing.T) {
	order := entities.Order{
		ID:          77,
		OrderNumber: "ORD-20250101-12345",
		Status:      entities.StatusProcessing,
		TotalCents:  7699,
		Items: []entities.OrderItem{
			{OrderID: 77, ProductID: 1, Quantity: 2, UnitPriceCents: 2500, TotalCents: 5000},
		},
	}

	data, err := order.Marshal()
	require.NoError(t, err)

	var got entities.Order
	require.NoError(t, got.Unmarshal(data))
	assert.Equal(t, order, got)
}
