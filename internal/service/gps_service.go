package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"smart-box-service/internal/model"
)

var (
	ErrNoDeviceForOrder = errors.New("la orden no tiene ESP32 asociado")
	ErrNoGPSData        = errors.New("sin datos GPS para esta orden")
)

// GPSService guarda la última posición reportada por el dispositivo.
// Un único snapshot por proceso: cada reporte pisa al anterior.
type GPSService struct {
	mu   sync.RWMutex
	snap model.GPSSnapshot
	has  bool

	repo OrderRepository
}

func NewGPSService(repo OrderRepository) *GPSService {
	return &GPSService{repo: repo}
}

// Report sobreescribe el snapshot incondicionalmente.
// No se validan rangos de coordenadas ni se autentica al dispositivo.
func (s *GPSService) Report(latitude, longitude float64, uniqueKey string) {
	s.mu.Lock()
	s.snap = model.GPSSnapshot{
		Latitude:   latitude,
		Longitude:  longitude,
		UniqueKey:  uniqueKey,
		ReceivedAt: time.Now(),
	}
	s.has = true
	s.mu.Unlock()
}

// Snapshot devuelve el último reporte sin filtrar por orden.
// Lo consume el mapa del dashboard, que muestra lo que haya.
func (s *GPSService) Snapshot() (model.GPSSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap, s.has
}

// ForOrder devuelve el snapshot solo si pertenece al dispositivo de la
// orden: se busca la orden, y la unique_key del snapshot tiene que
// coincidir con su esp32_id.
func (s *GPSService) ForOrder(ctx context.Context, orderID string) (model.GPSSnapshot, error) {
	ord, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		return model.GPSSnapshot{}, err
	}
	if ord.ESP32ID == "" {
		return model.GPSSnapshot{}, ErrNoDeviceForOrder
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.has || s.snap.UniqueKey != ord.ESP32ID {
		return model.GPSSnapshot{}, ErrNoGPSData
	}
	return s.snap, nil
}
