package service

import (
	"context"
	"testing"

	"smart-box-service/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestInitOrder(t *testing.T) {
	repo := newFakeRepo()
	svc := NewOrderService(repo)

	order, err := svc.InitOrder(context.Background(), "A1", "u1", "D8BC38FB509C", "sender@test.com", "receiver@test.com", model.Shipping{AddressLine1: "Calle Falsa 123"})
	assert.NoError(t, err)
	assert.Equal(t, "Pendiente", order.Status)
	assert.Equal(t, "D8BC38FB509C", order.ESP32ID)
	assert.Empty(t, order.BoxStatus)
	assert.Empty(t, order.ReceiverBox)

	// Reinicializar la misma orden no pisa nada
	_, err = svc.InitOrder(context.Background(), "A1", "u1", "OTRO", "", "", model.Shipping{})
	assert.ErrorIs(t, err, ErrOrderAlreadyExists)
	assert.Equal(t, "D8BC38FB509C", repo.orders["A1"].ESP32ID)
}

func TestInitOrderDefaultShipping(t *testing.T) {
	repo := newFakeRepo()
	svc := NewOrderService(repo)

	order, err := svc.InitOrder(context.Background(), "B2", "u2", "OTHER", "s@test.com", "r@test.com", model.Shipping{})
	assert.NoError(t, err)
	assert.NotEmpty(t, order.Shipping.AddressLine1, "shipping vacío usa la dirección por defecto")
}
