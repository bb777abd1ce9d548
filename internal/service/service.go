package service

import (
	"context"
	"errors"
	"time"

	"smart-box-service/internal/model"
)

// Interfaz que debe implementar repository
type OrderRepository interface {
	Save(ctx context.Context, o *model.Order) error
	FindByOrderID(ctx context.Context, orderID string) (*model.Order, error)
	SetBoxStatus(ctx context.Context, orderID, field, value string) error
	FindAll(ctx context.Context) ([]*model.Order, error)
}

// Errores de negocio exportados (los usa el controller)
var (
	ErrOrderAlreadyExists = errors.New("la orden ya fue inicializada previamente")
)

type OrderService struct {
	repo OrderRepository
}

func NewOrderService(r OrderRepository) *OrderService {
	return &OrderService{repo: r}
}

// InitOrder crea la orden con sus estados de caja sin setear.
// Se invoca desde el consumer Rabbit cuando otro servicio coloca la orden;
// el esp32_id queda asociado acá y no cambia más.
func (s *OrderService) InitOrder(ctx context.Context, orderID, userID, esp32ID, senderEmail, receiverEmail string, shipping model.Shipping) (*model.Order, error) {

	// 1. Primero preguntamos si ya existe
	existing, err := s.repo.FindByOrderID(ctx, orderID)

	// 2. Si NO hay error (significa que ya existe), no hacemos nada
	if err == nil && existing != nil {
		return nil, ErrOrderAlreadyExists
	}

	// 3. Si da error ErrNotFound, entonces sí la creamos desde cero

	// Shipping por defecto si viene vacío
	if shipping.AddressLine1 == "" {
		shipping = model.Shipping{
			AddressLine1: "Av San Martín 1234",
			City:         "Mendoza",
			PostalCode:   "5500",
			Province:     "Mendoza",
			Country:      "Argentina",
			Comments:     "Orden inicializada automáticamente",
		}
	}

	order := &model.Order{
		OrderID:       orderID,
		UserID:        userID,
		ESP32ID:       esp32ID,
		Status:        "Pendiente",
		SenderEmail:   senderEmail,
		ReceiverEmail: receiverEmail,
		Shipping:      shipping,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	return order, s.repo.Save(ctx, order)
}

// Getters
func (s *OrderService) GetByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	return s.repo.FindByOrderID(ctx, orderID)
}

func (s *OrderService) GetAll(ctx context.Context) ([]*model.Order, error) {
	return s.repo.FindAll(ctx)
}
