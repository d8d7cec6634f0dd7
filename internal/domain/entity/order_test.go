package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
)

func TestOrderStatus_IsValid(t *testing.T) {
	for _, s := range entity.OrderStatuses() {
		assert.True(t, s.IsValid(), "estado del catálogo: %s", s)
	}
	assert.False(t, entity.OrderStatus("Confirmed").IsValid())
	assert.False(t, entity.OrderStatus("").IsValid())
	assert.False(t, entity.OrderStatus("pending").IsValid(), "los estados distinguen mayúsculas")
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, entity.OrderCancelled.IsTerminal())
	assert.True(t, entity.OrderDelivered.IsTerminal())
	assert.False(t, entity.OrderPending.IsTerminal())
	assert.False(t, entity.OrderShipped.IsTerminal())
}
