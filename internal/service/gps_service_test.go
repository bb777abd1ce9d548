package service

import (
	"context"
	"testing"

	"smart-box-service/internal/repository"

	"github.com/stretchr/testify/assert"
)

func TestGPSService_ForOrderMatchesDeviceKey(t *testing.T) {
	repo := newFakeRepo(
		testOrder("A1", "D8BC38FB509C", "a@test.com"),
		testOrder("B2", "OTHER", "b@test.com"),
	)
	svc := NewGPSService(repo)

	// Sin reporte todavía
	_, err := svc.ForOrder(context.Background(), "A1")
	assert.ErrorIs(t, err, ErrNoGPSData)

	svc.Report(22.296255, 73.247021, "D8BC38FB509C")

	// La orden del dispositivo que reportó sí ve el snapshot
	snap, err := svc.ForOrder(context.Background(), "A1")
	assert.NoError(t, err)
	assert.Equal(t, 22.296255, snap.Latitude)
	assert.Equal(t, 73.247021, snap.Longitude)

	// Otra orden con otro dispositivo no ve nada, aunque el snapshot exista
	_, err = svc.ForOrder(context.Background(), "B2")
	assert.ErrorIs(t, err, ErrNoGPSData)

	// Orden inexistente
	_, err = svc.ForOrder(context.Background(), "ZZ")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGPSService_ForOrderWithoutDevice(t *testing.T) {
	repo := newFakeRepo(testOrder("A1", "", "a@test.com"))
	svc := NewGPSService(repo)
	svc.Report(1, 2, "D8BC38FB509C")

	_, err := svc.ForOrder(context.Background(), "A1")
	assert.ErrorIs(t, err, ErrNoDeviceForOrder)
}

func TestGPSService_SnapshotIsUnscopedAndOverwritten(t *testing.T) {
	svc := NewGPSService(newFakeRepo())

	_, ok := svc.Snapshot()
	assert.False(t, ok)

	svc.Report(10, 20, "AAA")
	svc.Report(30, 40, "BBB")

	// El lector sin orden ve lo último que haya, sea de quien sea
	snap, ok := svc.Snapshot()
	assert.True(t, ok)
	assert.Equal(t, 30.0, snap.Latitude)
	assert.Equal(t, 40.0, snap.Longitude)
	assert.Equal(t, "BBB", snap.UniqueKey)
}
